package response

import (
	"time"

	"proposalcraft/internal/domain/entities"
)

type ColorsResponse struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

type ProposalResponse struct {
	ID               string          `json:"id"`
	ClientName       string          `json:"client_name"`
	ClientEmail      string          `json:"client_email"`
	ProjectType      string          `json:"project_type"`
	ProjectTypeLabel string          `json:"project_type_label"`
	PageCount        int             `json:"page_count"`
	Features         []string        `json:"features"`
	BudgetTier       string          `json:"budget_tier,omitempty"`
	BudgetDisplay    string          `json:"budget_display"`
	Timeline         string          `json:"timeline,omitempty"`
	TimelineDisplay  string          `json:"timeline_display"`
	Description      string          `json:"description,omitempty"`
	Template         string          `json:"template"`
	Status           string          `json:"status"`
	CustomColors     *ColorsResponse `json:"custom_colors,omitempty"`
	ClientLogoURL    string          `json:"client_logo_url,omitempty"`
	PDFURL           string          `json:"pdf_url,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	SentAt           *time.Time      `json:"sent_at,omitempty"`
	SignedAt         *time.Time      `json:"signed_at,omitempty"`
	SignerName       string          `json:"signer_name,omitempty"`
	RejectedAt       *time.Time      `json:"rejected_at,omitempty"`
	ShareExpiresAt   *time.Time      `json:"share_expires_at,omitempty"`
	Version          int64           `json:"version"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	res := ProposalResponse{
		ID:               p.ID,
		ClientName:       p.ClientName,
		ClientEmail:      p.ClientEmail,
		ProjectType:      string(p.ProjectType),
		ProjectTypeLabel: entities.ProjectTypeLabel(p.ProjectType),
		PageCount:        p.PageCount,
		Features:         p.Features,
		BudgetTier:       string(p.BudgetTier),
		BudgetDisplay:    entities.BudgetDisplay(p.BudgetTier),
		Timeline:         string(p.Timeline),
		TimelineDisplay:  entities.TimelineDisplay(p.Timeline),
		Description:      p.Description,
		Template:         string(p.Template),
		Status:           string(p.Status),
		ClientLogoURL:    p.ClientLogoURL,
		PDFURL:           p.PDFURL,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
		SentAt:           p.SentAt,
		SignedAt:         p.SignedAt,
		SignerName:       p.SignerName,
		RejectedAt:       p.RejectedAt,
		ShareExpiresAt:   p.ShareExpiresAt,
		Version:          p.Version,
	}
	if res.Features == nil {
		res.Features = []string{}
	}
	if p.CustomColors != nil {
		res.CustomColors = &ColorsResponse{Primary: p.CustomColors.Primary, Secondary: p.CustomColors.Secondary}
	}
	return res
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

// PublicProposalResponse is what the client sees through the share link. It
// leaves out internal bookkeeping such as the PDF archive and the version.
type PublicProposalResponse struct {
	ID               string     `json:"id"`
	ClientName       string     `json:"client_name"`
	ProjectTypeLabel string     `json:"project_type_label"`
	Features         []string   `json:"features"`
	BudgetDisplay    string     `json:"budget_display"`
	TimelineDisplay  string     `json:"timeline_display"`
	Description      string     `json:"description,omitempty"`
	Template         string     `json:"template"`
	Status           string     `json:"status"`
	ClientLogoURL    string     `json:"client_logo_url,omitempty"`
	SignedAt         *time.Time `json:"signed_at,omitempty"`
	SignerName       string     `json:"signer_name,omitempty"`
	ShareExpiresAt   *time.Time `json:"share_expires_at,omitempty"`
}

func FromProposalPublic(p entities.Proposal) PublicProposalResponse {
	full := FromProposal(p)
	return PublicProposalResponse{
		ID:               full.ID,
		ClientName:       full.ClientName,
		ProjectTypeLabel: full.ProjectTypeLabel,
		Features:         full.Features,
		BudgetDisplay:    full.BudgetDisplay,
		TimelineDisplay:  full.TimelineDisplay,
		Description:      full.Description,
		Template:         full.Template,
		Status:           full.Status,
		ClientLogoURL:    full.ClientLogoURL,
		SignedAt:         full.SignedAt,
		SignerName:       full.SignerName,
		ShareExpiresAt:   full.ShareExpiresAt,
	}
}

type ShareLinkResponse struct {
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CatalogResponse lists the values accepted by the briefing form.
type CatalogResponse struct {
	ProjectTypes []CatalogOption `json:"project_types"`
	BudgetTiers  []CatalogOption `json:"budget_tiers"`
	Timelines    []CatalogOption `json:"timelines"`
	Features     []string        `json:"features"`
	Templates    []string        `json:"templates"`
}

type CatalogOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func Catalog() CatalogResponse {
	res := CatalogResponse{
		Features:  entities.FeatureCatalog(),
		Templates: []string{string(entities.TemplateModern), string(entities.TemplateElegant)},
	}
	for _, t := range entities.ProjectTypes() {
		res.ProjectTypes = append(res.ProjectTypes, CatalogOption{Value: string(t), Label: entities.ProjectTypeLabel(t)})
	}
	for _, b := range entities.BudgetTiers() {
		res.BudgetTiers = append(res.BudgetTiers, CatalogOption{Value: string(b), Label: entities.BudgetRangeLabel(b)})
	}
	for _, tl := range entities.Timelines() {
		res.Timelines = append(res.Timelines, CatalogOption{Value: string(tl), Label: entities.TimelineDisplay(tl)})
	}
	return res
}
