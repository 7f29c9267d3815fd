package entities

import "strings"

// ProjectType selects the scope text used when rendering a proposal.
type ProjectType string

const (
	ProjectTypeLanding       ProjectType = "landing"
	ProjectTypeInstitutional ProjectType = "institutional"
	ProjectTypeEcommerce     ProjectType = "ecommerce"
	ProjectTypeBlog          ProjectType = "blog"
	ProjectTypeCustom        ProjectType = "custom"
)

// BudgetTier is a coarse price bucket picked in the briefing.
type BudgetTier string

const (
	BudgetTier1000To3000  BudgetTier = "1000-3000"
	BudgetTier3000To6000  BudgetTier = "3000-6000"
	BudgetTier6000To10000 BudgetTier = "6000-10000"
	BudgetTier10000Plus   BudgetTier = "10000+"
)

// Timeline is a coarse delivery-duration bucket picked in the briefing.
type Timeline string

const (
	Timeline15Days Timeline = "15-dias"
	Timeline30Days Timeline = "30-dias"
	Timeline45Days Timeline = "45-dias"
	Timeline60Days Timeline = "60-dias"
)

// BudgetFallbackDisplay is shown for budget tiers outside the known buckets.
const BudgetFallbackDisplay = "Sob consulta"

var featureCatalog = []string{
	"Sistema de contato",
	"Galeria de imagens",
	"Blog integrado",
	"Sistema de login",
	"Carrinho de compras",
	"Sistema de pagamento",
	"Chat online",
	"Newsletter",
	"SEO otimizado",
	"Responsivo mobile",
}

func ProjectTypes() []ProjectType {
	return []ProjectType{
		ProjectTypeLanding,
		ProjectTypeInstitutional,
		ProjectTypeEcommerce,
		ProjectTypeBlog,
		ProjectTypeCustom,
	}
}

func BudgetTiers() []BudgetTier {
	return []BudgetTier{BudgetTier1000To3000, BudgetTier3000To6000, BudgetTier6000To10000, BudgetTier10000Plus}
}

func Timelines() []Timeline {
	return []Timeline{Timeline15Days, Timeline30Days, Timeline45Days, Timeline60Days}
}

// FeatureCatalog returns a copy of the selectable features, in display order.
func FeatureCatalog() []string {
	out := make([]string, len(featureCatalog))
	copy(out, featureCatalog)
	return out
}

func IsCatalogFeature(feature string) bool {
	for _, f := range featureCatalog {
		if f == feature {
			return true
		}
	}
	return false
}

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeLanding, ProjectTypeInstitutional, ProjectTypeEcommerce, ProjectTypeBlog, ProjectTypeCustom:
		return true
	default:
		return false
	}
}

// ProjectTypeLabel returns the display name of a project type, or the raw key
// when the type is unknown.
func ProjectTypeLabel(t ProjectType) string {
	switch t {
	case ProjectTypeLanding:
		return "Landing Page"
	case ProjectTypeInstitutional:
		return "Site Institucional"
	case ProjectTypeEcommerce:
		return "E-commerce"
	case ProjectTypeBlog:
		return "Blog/Portal"
	case ProjectTypeCustom:
		return "Personalizado"
	default:
		return string(t)
	}
}

// ProjectScopeText is the short scope statement printed under the project type.
func ProjectScopeText(t ProjectType) string {
	switch t {
	case ProjectTypeLanding:
		return "Página única focada em conversão"
	case ProjectTypeInstitutional:
		return "Site de apresentação da empresa"
	case ProjectTypeEcommerce:
		return "Loja virtual completa"
	case ProjectTypeBlog:
		return "Site de conteúdo com publicação de artigos"
	case ProjectTypeCustom:
		return "Projeto sob medida"
	default:
		return ""
	}
}

func (b BudgetTier) Valid() bool {
	switch b {
	case BudgetTier1000To3000, BudgetTier3000To6000, BudgetTier6000To10000, BudgetTier10000Plus:
		return true
	default:
		return false
	}
}

// BudgetDisplay maps a budget tier to its representative display amount.
// Unknown tiers render BudgetFallbackDisplay; it never fails.
func BudgetDisplay(b BudgetTier) string {
	switch b {
	case BudgetTier1000To3000:
		return "R$ 2.500"
	case BudgetTier3000To6000:
		return "R$ 4.500"
	case BudgetTier6000To10000:
		return "R$ 8.000"
	case BudgetTier10000Plus:
		return "R$ 12.000"
	default:
		return BudgetFallbackDisplay
	}
}

// BudgetAmount is the numeric counterpart of BudgetDisplay, in BRL.
// Unknown tiers have no amount.
func BudgetAmount(b BudgetTier) float64 {
	switch b {
	case BudgetTier1000To3000:
		return 2500
	case BudgetTier3000To6000:
		return 4500
	case BudgetTier6000To10000:
		return 8000
	case BudgetTier10000Plus:
		return 12000
	default:
		return 0
	}
}

// BudgetRangeLabel is the range shown in the briefing form.
func BudgetRangeLabel(b BudgetTier) string {
	switch b {
	case BudgetTier1000To3000:
		return "R$ 1.000 - R$ 3.000"
	case BudgetTier3000To6000:
		return "R$ 3.000 - R$ 6.000"
	case BudgetTier6000To10000:
		return "R$ 6.000 - R$ 10.000"
	case BudgetTier10000Plus:
		return "Acima de R$ 10.000"
	default:
		return string(b)
	}
}

func (t Timeline) Valid() bool {
	switch t {
	case Timeline15Days, Timeline30Days, Timeline45Days, Timeline60Days:
		return true
	default:
		return false
	}
}

// TimelineDisplay returns the human readable duration, or the raw key when unknown.
func TimelineDisplay(t Timeline) string {
	switch t {
	case Timeline15Days:
		return "15 dias"
	case Timeline30Days:
		return "30 dias"
	case Timeline45Days:
		return "45 dias"
	case Timeline60Days:
		return "60 dias"
	default:
		return strings.TrimSpace(string(t))
	}
}
