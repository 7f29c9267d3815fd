package pdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/domain/render"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)

func renderDoc(t *testing.T, features int, tpl entities.TemplateID) render.Document {
	t.Helper()
	p := entities.Proposal{
		ID:          "p-1",
		ClientName:  "Acme",
		ClientEmail: "a@acme.com",
		ProjectType: entities.ProjectTypeLanding,
		PageCount:   1,
		BudgetTier:  entities.BudgetTier1000To3000,
		Timeline:    entities.Timeline15Days,
		Template:    tpl,
		Status:      entities.ProposalStatusDraft,
		CreatedAt:   now,
	}
	for i := 0; i < features; i++ {
		p.Features = append(p.Features, fmt.Sprintf("Funcionalidade número %d com descrição estendida", i+1))
	}
	doc, err := render.Render(p, tpl, nil, now)
	require.NoError(t, err)
	return doc
}

func measurer() (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func TestPaginate_ShortProposalFitsOnePage(t *testing.T) {
	m, tr := measurer()
	plan, err := Paginate(renderDoc(t, 1, entities.TemplateModern), A4, m, tr, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Total())
	assert.Equal(t, "Página 1 de 1", plan.FooterLabel(1))
}

func TestPaginate_LongFeatureListSpansPages(t *testing.T) {
	m, tr := measurer()
	plan, err := Paginate(renderDoc(t, 40, entities.TemplateModern), A4, m, tr, 0)
	require.NoError(t, err)
	require.Greater(t, plan.Total(), 1)

	for i, page := range plan.Pages {
		assert.Equal(t, i+1, page.Number)
		assert.LessOrEqual(t, page.Number, plan.Total())
		for _, op := range page.Ops {
			if op.Kind == opText {
				assert.LessOrEqual(t, op.Y, A4.breakAt(), "text drawn below the break line")
			}
		}
	}
}

func TestPaginate_MaxPagesGuard(t *testing.T) {
	m, tr := measurer()
	_, err := Paginate(renderDoc(t, 40, entities.TemplateModern), A4, m, tr, 1)
	assert.ErrorIs(t, err, entities.ErrExport)
}

func TestPaginate_ElegantCentersTitle(t *testing.T) {
	m, tr := measurer()
	plan, err := Paginate(renderDoc(t, 1, entities.TemplateElegant), A4, m, tr, 0)
	require.NoError(t, err)

	first := plan.Pages[0].Ops[0]
	assert.Equal(t, opText, first.Kind)
	assert.Equal(t, "PROPOSTA", first.Text)
	assert.Greater(t, first.X, A4.Margin)
}

func TestExporter_Export(t *testing.T) {
	out, err := NewExporter(50, nil).Export(renderDoc(t, 40, entities.TemplateModern))
	require.NoError(t, err)
	assert.Equal(t, ContentType, out.ContentType)
	assert.Greater(t, out.Pages, 1)
	assert.True(t, bytes.HasPrefix(out.Data, []byte("%PDF")))
}

func TestPaginate_WrapsAccentedText(t *testing.T) {
	m, tr := measurer()
	var plan Plan
	require.NotPanics(t, func() {
		var err error
		plan, err = Paginate(renderDoc(t, 3, entities.TemplateModern), A4, m, tr, 0)
		require.NoError(t, err)
	})

	var texts []string
	for _, page := range plan.Pages {
		for _, op := range page.Ops {
			if op.Kind == opText {
				texts = append(texts, op.Text)
			}
		}
	}
	assert.Contains(t, texts, tr("• Funcionalidade número 1 com descrição estendida"))
}

func signedAcmeProposal(t *testing.T) entities.Proposal {
	t.Helper()
	p, err := entities.NewProposalFromBriefing(entities.Briefing{
		ClientName:  "Acme",
		ClientEmail: "a@acme.com",
		ProjectType: entities.ProjectTypeLanding,
		PageCount:   1,
		Features:    []string{"Sistema de contato"},
		BudgetTier:  entities.BudgetTier1000To3000,
		Timeline:    entities.Timeline15Days,
		Description: "Página de captação com formulário e seção de depoimentos.",
	}, "p-acme", now)
	require.NoError(t, err)
	p, err = p.Accept("Maria Silva", true, now.Add(time.Hour))
	require.NoError(t, err)
	return p
}

func TestExporter_ExportSignedProposal(t *testing.T) {
	settings := &entities.CompanySettings{
		OwnerID:      "u-1",
		CompanyName:  "Estúdio Ação Digital",
		Address:      "Rua São João, 100 - São Paulo",
		PrimaryColor: "#1E40AF",
	}
	for _, tpl := range []entities.TemplateID{entities.TemplateModern, entities.TemplateElegant} {
		t.Run(string(tpl), func(t *testing.T) {
			doc, err := render.Render(signedAcmeProposal(t), tpl, settings, now)
			require.NoError(t, err)
			require.NotNil(t, doc.Signature)

			var out render.ExportedDocument
			require.NotPanics(t, func() {
				out, err = NewExporter(50, nil).Export(doc)
			})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, out.Pages, 1)
			assert.True(t, bytes.HasPrefix(out.Data, []byte("%PDF")))
		})
	}
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, rgb{59, 130, 246}, parseHexColor("#3B82F6", black))
	assert.Equal(t, rgb{255, 255, 255}, parseHexColor("#fff", black))
	assert.Equal(t, black, parseHexColor("blue", black))
}
