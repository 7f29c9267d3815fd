package render

import (
	"fmt"
	"strconv"
	"time"

	"proposalcraft/internal/domain/entities"
)

const undefinedTimeline = "A definir"

// Render projects a proposal onto a template. It has no side effects: the same
// proposal, template, settings and generation time always produce the same
// Document. settings may be nil.
func Render(p entities.Proposal, templateID entities.TemplateID, settings *entities.CompanySettings, generatedAt time.Time) (Document, error) {
	tpl, ok := templates[templateID]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", entities.ErrUnknownTemplate, templateID)
	}

	projectLabel := entities.ProjectTypeLabel(p.ProjectType)
	budget := entities.BudgetDisplay(p.BudgetTier)
	timeline := timelineText(p.Timeline)
	pages := pagesText(p.PageCount)

	doc := Document{
		ProposalID: p.ID,
		Template:   string(tpl.id),
		Header: Header{
			Title:         tpl.title,
			Subtitle:      tpl.subtitle(projectLabel, p.ClientName),
			Alignment:     tpl.alignment,
			ClientLogoURL: p.ClientLogoURL,
			Metrics: []Metric{
				{Label: "Investimento", Value: budget},
				{Label: "Prazo", Value: timeline},
				{Label: "Páginas", Value: pages},
			},
		},
		Palette:  resolvePalette(tpl, p.CustomColors, settings),
		Branding: branding(settings),
		Sections: []Section{
			clientSection(tpl, p),
			scopeSection(tpl, p, projectLabel, timeline, pages),
			featuresSection(tpl, p),
			investmentSection(tpl, budget),
			nextActionsSection(tpl),
		},
		Footer: Footer{
			GeneratedAt:    generatedAt,
			GeneratedLabel: "Gerado em " + generatedAt.Format(generatedAtLayout),
			PageLabel:      pageLabelFormat,
		},
	}

	if p.Status == entities.ProposalStatusAccepted && p.IsSigned() {
		signedAt := p.SignedAt.UTC()
		doc.Signature = &Signature{
			SignerName: p.SignerName,
			SignedAt:   signedAt,
			Label:      fmt.Sprintf("Aceita por %s em %s", p.SignerName, signedAt.Format("02/01/2006 15:04")),
		}
	}
	return doc, nil
}

// resolvePalette applies the color precedence per channel: proposal colors,
// then company colors, then the template default.
func resolvePalette(tpl template, custom *entities.Colors, settings *entities.CompanySettings) Palette {
	company := settings.BrandColors()
	return Palette{
		Primary:   firstColor(channel(custom, true), channel(company, true), tpl.defaultPrimary),
		Secondary: firstColor(channel(custom, false), channel(company, false), tpl.defaultSecondary),
		Text:      textColor,
	}
}

func channel(c *entities.Colors, primary bool) string {
	if c == nil {
		return ""
	}
	if primary {
		return c.Primary
	}
	return c.Secondary
}

func firstColor(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

func branding(settings *entities.CompanySettings) Branding {
	if settings == nil {
		return Branding{}
	}
	return Branding{
		CompanyName: settings.CompanyName,
		LogoURL:     settings.LogoURL,
		Address:     settings.Address,
		Phone:       settings.Phone,
		Email:       settings.Email,
	}
}

func clientSection(tpl template, p entities.Proposal) Section {
	return Section{
		Kind:    SectionClientInfo,
		Heading: tpl.headings[SectionClientInfo],
		Items: []Item{
			{Style: ItemField, Label: "Nome", Text: p.ClientName},
			{Style: ItemField, Label: "E-mail", Text: p.ClientEmail},
		},
	}
}

func scopeSection(tpl template, p entities.Proposal, projectLabel, timeline, pages string) Section {
	items := []Item{{Style: ItemHighlight, Text: projectLabel}}
	if scope := entities.ProjectScopeText(p.ProjectType); scope != "" {
		items = append(items, Item{Style: ItemText, Text: scope})
	}
	if p.Description != "" {
		items = append(items, Item{Style: ItemText, Text: p.Description})
	}
	items = append(items,
		Item{Style: ItemField, Label: "Número de Páginas", Text: pages},
		Item{Style: ItemField, Label: "Prazo de Entrega", Text: timeline},
	)
	return Section{Kind: SectionScope, Heading: tpl.headings[SectionScope], Items: items}
}

func featuresSection(tpl template, p entities.Proposal) Section {
	items := make([]Item, 0, len(p.Features))
	for _, f := range p.Features {
		items = append(items, Item{Style: ItemBullet, Text: f})
	}
	if len(items) == 0 {
		items = append(items, Item{Style: ItemNote, Text: "Nenhuma funcionalidade adicional selecionada"})
	}
	return Section{Kind: SectionFeatures, Heading: tpl.headings[SectionFeatures], Items: items}
}

func investmentSection(tpl template, budget string) Section {
	return Section{
		Kind:    SectionInvestment,
		Heading: tpl.headings[SectionInvestment],
		Items: []Item{
			{Style: ItemHighlight, Label: "Valor Total", Text: budget},
			{Style: ItemText, Text: totalValueLabel},
			{Style: ItemNote, Text: paymentTermsNote},
		},
	}
}

func nextActionsSection(tpl template) Section {
	items := make([]Item, 0, len(nextActions))
	for i, step := range nextActions {
		items = append(items, Item{Style: ItemNumbered, Label: strconv.Itoa(i + 1), Text: step})
	}
	return Section{Kind: SectionNextActions, Heading: tpl.headings[SectionNextActions], Items: items}
}

func timelineText(t entities.Timeline) string {
	if s := entities.TimelineDisplay(t); s != "" {
		return s
	}
	return undefinedTimeline
}

func pagesText(n int) string {
	return strconv.Itoa(n) + " página(s)"
}
