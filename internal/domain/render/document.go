package render

import "time"

// SectionKind identifies a body section. Sections always appear in the order
// the constants are declared.
type SectionKind string

const (
	SectionClientInfo  SectionKind = "client_info"
	SectionScope       SectionKind = "project_scope"
	SectionFeatures    SectionKind = "features"
	SectionInvestment  SectionKind = "investment"
	SectionNextActions SectionKind = "next_actions"
)

// ItemStyle tells a front end how to present a section item.
type ItemStyle string

const (
	ItemText      ItemStyle = "text"
	ItemField     ItemStyle = "field"
	ItemBullet    ItemStyle = "bullet"
	ItemNumbered  ItemStyle = "numbered"
	ItemHighlight ItemStyle = "highlight"
	ItemNote      ItemStyle = "note"
)

// Document is the template-specific, front-end agnostic description of a
// rendered proposal. It is consumed by the JSON preview endpoint and by the
// paginated PDF exporter.
type Document struct {
	ProposalID string     `json:"proposal_id"`
	Template   string     `json:"template"`
	Header     Header     `json:"header"`
	Palette    Palette    `json:"palette"`
	Branding   Branding   `json:"branding"`
	Sections   []Section  `json:"sections"`
	Footer     Footer     `json:"footer"`
	Signature  *Signature `json:"signature,omitempty"`
}

type Header struct {
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Alignment     string   `json:"alignment"`
	ClientLogoURL string   `json:"client_logo_url,omitempty"`
	Metrics       []Metric `json:"metrics"`
}

// Metric is one of the three key figures shown in the header.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Text      string `json:"text"`
}

type Branding struct {
	CompanyName string `json:"company_name,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

type Section struct {
	Kind    SectionKind `json:"kind"`
	Heading string      `json:"heading"`
	Items   []Item      `json:"items"`
}

type Item struct {
	Style ItemStyle `json:"style"`
	Label string    `json:"label,omitempty"`
	Text  string    `json:"text"`
}

// Footer carries the values stamped on every exported page. PageLabel is a
// format string taking the page index and the page count.
type Footer struct {
	GeneratedAt    time.Time `json:"generated_at"`
	GeneratedLabel string    `json:"generated_label"`
	PageLabel      string    `json:"page_label"`
}

// Signature is present once the proposal has been accepted.
type Signature struct {
	SignerName string    `json:"signer_name"`
	SignedAt   time.Time `json:"signed_at"`
	Label      string    `json:"label"`
}

// ExportedDocument is a rendered document serialized for download.
type ExportedDocument struct {
	FileName    string
	ContentType string
	Data        []byte
	Pages       int
}
