// Package cli implements proposalctl, which renders and exports proposals
// from a local briefing file without touching DynamoDB, S3 or the network.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/domain/render"
	"proposalcraft/internal/infrastructure/pdf"
	"proposalcraft/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	Version = "0.1.0"

	localOwner    = "local"
	localProposal = "local"
)

type app struct {
	out      io.Writer
	now      func() time.Time
	logLevel string
}

// NewRootCmd builds the proposalctl command tree. Command output goes to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, now: func() time.Time { return time.Now().UTC() }}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposalctl",
		Short: "Render and export proposals from a briefing file",
		Long: `proposalctl builds a proposal from a YAML or JSON briefing and either
prints the rendered document or writes the paginated PDF. It works offline.`,
		SilenceUsage: true,
	}
	cmd.SetOut(a.out)
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(a.renderCmd(), a.exportCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "proposalctl version %s\n", Version)
		},
	})
	return cmd
}

func (a *app) renderCmd() *cobra.Command {
	var templateID string
	cmd := &cobra.Command{
		Use:   "render <briefing>",
		Short: "Print the rendered document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := a.build(args[0], templateID)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
	cmd.Flags().StringVarP(&templateID, "template", "t", "", "Template id (modern, elegant); defaults to the briefing's")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		templateID string
		output     string
		maxPages   int
	)
	cmd := &cobra.Command{
		Use:   "export <briefing>",
		Short: "Write the proposal as a paginated PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(a.logLevel, false)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			doc, p, err := a.build(args[0], templateID)
			if err != nil {
				return err
			}
			out, err := pdf.NewExporter(maxPages, log).Export(doc)
			if err != nil {
				return err
			}

			path := output
			name := render.ExportFileName(p.ClientName, doc.Footer.GeneratedAt)
			if path == "" {
				path = name
			} else if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				path = filepath.Join(path, name)
			}
			if err := os.WriteFile(path, out.Data, 0o644); err != nil {
				return fmt.Errorf("write pdf: %w", err)
			}
			log.Info("[cli][export] pdf written", zap.String("path", path), zap.Int("pages", out.Pages))
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d pages)\n", path, out.Pages)
			return nil
		},
	}
	cmd.Flags().StringVarP(&templateID, "template", "t", "", "Template id (modern, elegant); defaults to the briefing's")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory")
	cmd.Flags().IntVar(&maxPages, "max-pages", 50, "Refuse documents longer than this")
	return cmd
}

func (a *app) build(path, templateID string) (render.Document, entities.Proposal, error) {
	b, err := readBriefing(path)
	if err != nil {
		return render.Document{}, entities.Proposal{}, err
	}
	settings, err := b.settings()
	if err != nil {
		return render.Document{}, entities.Proposal{}, err
	}

	now := a.now()
	p, err := entities.NewProposalFromBriefing(b.toBriefing(), localProposal, now)
	if err != nil {
		return render.Document{}, entities.Proposal{}, err
	}
	p.OwnerID = localOwner

	tpl := p.Template
	if templateID != "" {
		tpl = entities.TemplateID(templateID)
	}
	doc, err := render.Render(p, tpl, settings, now)
	if err != nil {
		return render.Document{}, entities.Proposal{}, err
	}
	return doc, p, nil
}
