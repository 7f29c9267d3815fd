package render

import "proposalcraft/internal/domain/entities"

// template holds the fixed texts and default colors of a built-in template.
type template struct {
	id               entities.TemplateID
	displayName      string
	title            string
	alignment        string
	subtitle         func(projectLabel, clientName string) string
	defaultPrimary   string
	defaultSecondary string
	headings         map[SectionKind]string
}

var templates = map[entities.TemplateID]template{
	entities.TemplateModern: {
		id:          entities.TemplateModern,
		displayName: "Moderno",
		title:       "Proposta Comercial",
		alignment:   "left",
		subtitle: func(projectLabel, _ string) string {
			return "Desenvolvimento de " + projectLabel
		},
		defaultPrimary:   "#3B82F6",
		defaultSecondary: "#8B5CF6",
		headings: map[SectionKind]string{
			SectionClientInfo:  "Informações do Cliente",
			SectionScope:       "Escopo do Projeto",
			SectionFeatures:    "Funcionalidades Incluídas",
			SectionInvestment:  "Investimento",
			SectionNextActions: "Próximos Passos",
		},
	},
	entities.TemplateElegant: {
		id:          entities.TemplateElegant,
		displayName: "Elegante",
		title:       "Proposta",
		alignment:   "center",
		subtitle: func(projectLabel, clientName string) string {
			return projectLabel + " para " + clientName
		},
		defaultPrimary:   "#9333EA",
		defaultSecondary: "#4B5563",
		headings: map[SectionKind]string{
			SectionClientInfo:  "Cliente",
			SectionScope:       "Sobre o Projeto",
			SectionFeatures:    "O que está incluído",
			SectionInvestment:  "Investimento",
			SectionNextActions: "Pronto para começar?",
		},
	},
}

// nextActions is the standard three-step list closing every proposal.
var nextActions = []string{
	"Aprovação da proposta pelo cliente",
	"Assinatura do contrato e pagamento da entrada",
	"Início do desenvolvimento conforme cronograma",
}

const (
	textColor         = "#1F2937"
	paymentTermsNote  = "*Condições de pagamento a combinar"
	totalValueLabel   = "Valor total do projeto"
	pageLabelFormat   = "Página %d de %d"
	generatedAtLayout = "02/01/2006"
)

// TemplateInfo describes a template for listings.
type TemplateInfo struct {
	ID          entities.TemplateID `json:"id"`
	Name        string              `json:"name"`
	Primary     string              `json:"default_primary"`
	Secondary   string              `json:"default_secondary"`
	Orientation string              `json:"alignment"`
}

// Templates lists the built-in templates in a stable order.
func Templates() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(templates))
	for _, id := range []entities.TemplateID{entities.TemplateModern, entities.TemplateElegant} {
		t := templates[id]
		out = append(out, TemplateInfo{
			ID:          t.id,
			Name:        t.displayName,
			Primary:     t.defaultPrimary,
			Secondary:   t.defaultSecondary,
			Orientation: t.alignment,
		})
	}
	return out
}
