package pdf

import (
	"bytes"
	"fmt"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/domain/render"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const ContentType = "application/pdf"

type Exporter struct {
	format   PageFormat
	maxPages int
	logger   *zap.Logger
}

func NewExporter(maxPages int, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{format: A4, maxPages: maxPages, logger: logger}
}

// Export lays the document out and writes it as an A4 PDF. Pagination runs
// first, so every page footer carries the final page count.
func (e *Exporter) Export(doc render.Document) (render.ExportedDocument, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(e.format.Margin, e.format.Margin, e.format.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Header.Title, true)
	pdf.SetCreator("proposalcraft", false)
	if !doc.Footer.GeneratedAt.IsZero() {
		pdf.SetCreationDate(doc.Footer.GeneratedAt)
		pdf.SetModificationDate(doc.Footer.GeneratedAt)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	plan, err := Paginate(doc, e.format, pdf, tr, e.maxPages)
	if err != nil {
		e.logger.Warn("[pdf][export] pagination failed",
			zap.String("proposal_id", doc.ProposalID), zap.Error(err))
		return render.ExportedDocument{}, err
	}

	draw(pdf, plan, doc.Footer, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		e.logger.Error("[pdf][export] write failed",
			zap.String("proposal_id", doc.ProposalID), zap.Error(err))
		return render.ExportedDocument{}, fmt.Errorf("%w: %v", entities.ErrExport, err)
	}

	e.logger.Info("[pdf][export] document written",
		zap.String("proposal_id", doc.ProposalID),
		zap.String("template", doc.Template),
		zap.Int("pages", plan.Total()),
		zap.Int("bytes", buf.Len()))

	return render.ExportedDocument{ContentType: ContentType, Data: buf.Bytes(), Pages: plan.Total()}, nil
}

func draw(pdf *fpdf.Fpdf, plan Plan, footer render.Footer, tr func(string) string) {
	f := plan.Format
	for i, page := range plan.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch op.Kind {
			case opFill:
				pdf.SetFillColor(op.Color.R, op.Color.G, op.Color.B)
				pdf.Rect(op.X, op.Y, op.W, op.H, "F")
			case opRule:
				pdf.SetDrawColor(op.Color.R, op.Color.G, op.Color.B)
				pdf.SetLineWidth(op.H)
				pdf.Line(op.X, op.Y, op.X+op.W, op.Y)
			default:
				pdf.SetFont(fontFamily, op.Style, op.Size)
				pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
				pdf.Text(op.X, op.Y, op.Text)
			}
		}

		pdf.SetFont(fontFamily, "", 10)
		pdf.SetTextColor(gray.R, gray.G, gray.B)
		y := f.Height - 10
		pdf.Text(f.Margin, y, tr(footer.GeneratedLabel))
		label := tr(plan.FooterLabel(i + 1))
		pdf.Text(f.Width-f.Margin-pdf.GetStringWidth(label), y, label)
	}
}
