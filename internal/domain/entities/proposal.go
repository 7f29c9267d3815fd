package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ProposalStatus represents the lifecycle of a commercial proposal.
//
// Transitions only move forward:
//
//	draft -> sent -> accepted | rejected
//
// accepted and rejected are terminal. See lifecycle.go.
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// TemplateID names a built-in document template.
type TemplateID string

const (
	TemplateModern  TemplateID = "modern"
	TemplateElegant TemplateID = "elegant"
)

func (t TemplateID) Valid() bool {
	return t == TemplateModern || t == TemplateElegant
}

// Colors is a primary/secondary pair in #RRGGBB notation. Either channel may be
// empty, in which case the next source in the precedence chain applies.
type Colors struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

func (c *Colors) IsZero() bool {
	return c == nil || (c.Primary == "" && c.Secondary == "")
}

// Proposal is the commercial proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-created_at-index): owner_id + created_at
//
// SignedAt and SignerName are set together, only when Status is accepted.
type Proposal struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"owner_id"`
	ClientName  string         `json:"client_name"`
	ClientEmail string         `json:"client_email"`
	ProjectType ProjectType    `json:"project_type"`
	PageCount   int            `json:"page_count"`
	Features    []string       `json:"features"`
	BudgetTier  BudgetTier     `json:"budget_tier"`
	Timeline    Timeline       `json:"timeline"`
	Description string         `json:"description"`
	Template    TemplateID     `json:"template"`
	Status      ProposalStatus `json:"status"`

	CustomColors  *Colors `json:"custom_colors,omitempty"`
	ClientLogoURL string  `json:"client_logo_url,omitempty"`
	PDFURL        string  `json:"pdf_url,omitempty"`

	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	SignedAt       *time.Time `json:"signed_at,omitempty"`
	SignerName     string     `json:"signer_name,omitempty"`
	RejectedAt     *time.Time `json:"rejected_at,omitempty"`
	ShareExpiresAt *time.Time `json:"share_expires_at,omitempty"`

	// Version is bumped on every write and used for optimistic locking.
	Version int64 `json:"version"`
}

// Briefing is the raw client intake a proposal is generated from.
type Briefing struct {
	ClientName    string
	ClientEmail   string
	ProjectType   ProjectType
	PageCount     int
	Features      []string
	BudgetTier    BudgetTier
	Timeline      Timeline
	Description   string
	Template      TemplateID
	ClientLogoURL string
	CustomColors  *Colors
}

// ProposalPatch carries the editable fields. Nil fields are left untouched.
type ProposalPatch struct {
	ClientName    *string
	ClientEmail   *string
	ProjectType   *ProjectType
	PageCount     *int
	Features      *[]string
	BudgetTier    *BudgetTier
	Timeline      *Timeline
	Description   *string
	Template      *TemplateID
	ClientLogoURL *string
	CustomColors  *Colors
	ClearColors   bool

	// ExpectedVersion, when non-zero, must match the stored Version.
	ExpectedVersion int64
}

var validate = validator.New()

// NewProposalFromBriefing normalizes a briefing into a draft proposal.
func NewProposalFromBriefing(b Briefing, id string, now time.Time) (Proposal, error) {
	p := Proposal{
		ID:            strings.TrimSpace(id),
		ClientName:    strings.TrimSpace(b.ClientName),
		ClientEmail:   strings.TrimSpace(b.ClientEmail),
		ProjectType:   ProjectType(strings.TrimSpace(string(b.ProjectType))),
		PageCount:     b.PageCount,
		Features:      normalizeFeatures(b.Features),
		BudgetTier:    BudgetTier(strings.TrimSpace(string(b.BudgetTier))),
		Timeline:      Timeline(strings.TrimSpace(string(b.Timeline))),
		Description:   strings.TrimSpace(b.Description),
		Template:      b.Template,
		ClientLogoURL: strings.TrimSpace(b.ClientLogoURL),
		CustomColors:  normalizeColors(b.CustomColors),
		Status:        ProposalStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
		Version:       1,
	}
	if p.Template == "" {
		p.Template = TemplateModern
	}
	if p.ID == "" {
		return Proposal{}, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if err := p.Validate(); err != nil {
		return Proposal{}, err
	}
	return p, nil
}

// Validate checks the briefing-derived fields of a proposal.
func (p Proposal) Validate() error {
	if p.ClientName == "" {
		return fmt.Errorf("%w: client_name is required", ErrValidation)
	}
	if p.ClientEmail == "" {
		return fmt.Errorf("%w: client_email is required", ErrValidation)
	}
	if err := validate.Var(p.ClientEmail, "email"); err != nil {
		return fmt.Errorf("%w: client_email is invalid", ErrValidation)
	}
	if p.ProjectType == "" {
		return fmt.Errorf("%w: project_type is required", ErrValidation)
	}
	if !p.ProjectType.Valid() {
		return fmt.Errorf("%w: unknown project_type %q", ErrValidation, p.ProjectType)
	}
	if p.PageCount < 1 {
		return fmt.Errorf("%w: page_count must be at least 1", ErrValidation)
	}
	for _, f := range p.Features {
		if !IsCatalogFeature(f) {
			return fmt.Errorf("%w: unknown feature %q", ErrValidation, f)
		}
	}
	if p.BudgetTier != "" && !p.BudgetTier.Valid() {
		return fmt.Errorf("%w: unknown budget_tier %q", ErrValidation, p.BudgetTier)
	}
	if p.Timeline != "" && !p.Timeline.Valid() {
		return fmt.Errorf("%w: unknown timeline %q", ErrValidation, p.Timeline)
	}
	if !p.Template.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, p.Template)
	}
	return ValidateColors(p.CustomColors)
}

// ValidateColors accepts nil, empty channels and #RGB/#RRGGBB values.
func ValidateColors(c *Colors) error {
	if c == nil {
		return nil
	}
	for name, v := range map[string]string{"primary": c.Primary, "secondary": c.Secondary} {
		if v == "" {
			continue
		}
		if err := validate.Var(v, "hexcolor"); err != nil {
			return fmt.Errorf("%w: %s color %q is not a hex color", ErrValidation, name, v)
		}
	}
	return nil
}

// ApplyEdits returns a copy of p with the patch merged in. Only drafts are
// editable; ID, OwnerID, CreatedAt and status fields are never touched.
func (p Proposal) ApplyEdits(patch ProposalPatch, now time.Time) (Proposal, error) {
	if p.Status != ProposalStatusDraft {
		return Proposal{}, fmt.Errorf("%w: status is %s", ErrNotEditable, p.Status)
	}

	out := p.clone()
	if patch.ClientName != nil {
		out.ClientName = strings.TrimSpace(*patch.ClientName)
	}
	if patch.ClientEmail != nil {
		out.ClientEmail = strings.TrimSpace(*patch.ClientEmail)
	}
	if patch.ProjectType != nil {
		out.ProjectType = ProjectType(strings.TrimSpace(string(*patch.ProjectType)))
	}
	if patch.PageCount != nil {
		out.PageCount = *patch.PageCount
	}
	if patch.Features != nil {
		out.Features = normalizeFeatures(*patch.Features)
	}
	if patch.BudgetTier != nil {
		out.BudgetTier = BudgetTier(strings.TrimSpace(string(*patch.BudgetTier)))
	}
	if patch.Timeline != nil {
		out.Timeline = Timeline(strings.TrimSpace(string(*patch.Timeline)))
	}
	if patch.Description != nil {
		out.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Template != nil {
		out.Template = *patch.Template
	}
	if patch.ClientLogoURL != nil {
		out.ClientLogoURL = strings.TrimSpace(*patch.ClientLogoURL)
	}
	if patch.ClearColors {
		out.CustomColors = nil
	} else if patch.CustomColors != nil {
		out.CustomColors = normalizeColors(patch.CustomColors)
	}

	if err := out.Validate(); err != nil {
		return Proposal{}, err
	}
	out.UpdatedAt = now
	return out, nil
}

// IsSigned reports whether the acceptance fields are populated.
func (p Proposal) IsSigned() bool {
	return p.SignedAt != nil && p.SignerName != ""
}

func (p Proposal) clone() Proposal {
	out := p
	if p.Features != nil {
		out.Features = append([]string(nil), p.Features...)
	}
	if p.CustomColors != nil {
		c := *p.CustomColors
		out.CustomColors = &c
	}
	return out
}

// normalizeFeatures trims entries and drops blanks and duplicates, keeping
// the first occurrence order.
func normalizeFeatures(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, f := range in {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func normalizeColors(c *Colors) *Colors {
	if c == nil {
		return nil
	}
	n := &Colors{
		Primary:   strings.TrimSpace(c.Primary),
		Secondary: strings.TrimSpace(c.Secondary),
	}
	if n.IsZero() {
		return nil
	}
	return n
}
