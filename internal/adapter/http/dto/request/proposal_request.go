package request

import (
	"strings"

	"proposalcraft/internal/domain/entities"
)

type ColorsRequest struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

func (c *ColorsRequest) toEntity() *entities.Colors {
	if c == nil {
		return nil
	}
	return &entities.Colors{Primary: c.Primary, Secondary: c.Secondary}
}

// ProposalBriefingRequest is the intake form a proposal is generated from.
type ProposalBriefingRequest struct {
	ClientName    string         `json:"client_name" binding:"required"`
	ClientEmail   string         `json:"client_email" binding:"required"`
	ProjectType   string         `json:"project_type" binding:"required"`
	PageCount     int            `json:"page_count"`
	Features      []string       `json:"features"`
	BudgetTier    string         `json:"budget_tier"`
	Timeline      string         `json:"timeline"`
	Description   string         `json:"description"`
	Template      string         `json:"template"`
	ClientLogoURL string         `json:"client_logo_url"`
	CustomColors  *ColorsRequest `json:"custom_colors"`
}

func (r ProposalBriefingRequest) ToBriefing() entities.Briefing {
	return entities.Briefing{
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ProjectType:   entities.ProjectType(r.ProjectType),
		PageCount:     r.PageCount,
		Features:      r.Features,
		BudgetTier:    entities.BudgetTier(r.BudgetTier),
		Timeline:      entities.Timeline(r.Timeline),
		Description:   r.Description,
		Template:      entities.TemplateID(strings.TrimSpace(r.Template)),
		ClientLogoURL: r.ClientLogoURL,
		CustomColors:  r.CustomColors.toEntity(),
	}
}

// ProposalPatchRequest edits a draft. Absent fields are kept; Version, when
// sent, must match the stored version.
type ProposalPatchRequest struct {
	ClientName    *string        `json:"client_name"`
	ClientEmail   *string        `json:"client_email"`
	ProjectType   *string        `json:"project_type"`
	PageCount     *int           `json:"page_count"`
	Features      *[]string      `json:"features"`
	BudgetTier    *string        `json:"budget_tier"`
	Timeline      *string        `json:"timeline"`
	Description   *string        `json:"description"`
	Template      *string        `json:"template"`
	ClientLogoURL *string        `json:"client_logo_url"`
	CustomColors  *ColorsRequest `json:"custom_colors"`
	ClearColors   bool           `json:"clear_colors"`
	Version       int64          `json:"version"`
}

func (r ProposalPatchRequest) ToPatch() entities.ProposalPatch {
	patch := entities.ProposalPatch{
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		PageCount:       r.PageCount,
		Features:        r.Features,
		Description:     r.Description,
		ClientLogoURL:   r.ClientLogoURL,
		CustomColors:    r.CustomColors.toEntity(),
		ClearColors:     r.ClearColors,
		ExpectedVersion: r.Version,
	}
	if r.ProjectType != nil {
		v := entities.ProjectType(*r.ProjectType)
		patch.ProjectType = &v
	}
	if r.BudgetTier != nil {
		v := entities.BudgetTier(*r.BudgetTier)
		patch.BudgetTier = &v
	}
	if r.Timeline != nil {
		v := entities.Timeline(*r.Timeline)
		patch.Timeline = &v
	}
	if r.Template != nil {
		v := entities.TemplateID(strings.TrimSpace(*r.Template))
		patch.Template = &v
	}
	return patch
}

// AcceptProposalRequest is the client's digital signature.
type AcceptProposalRequest struct {
	SignerName string `json:"signer_name"`
	Agreed     bool   `json:"agreed"`
}
