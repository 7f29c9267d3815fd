package cli

import (
	"fmt"
	"os"

	"proposalcraft/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

// briefingFile is the on-disk briefing. JSON files parse too, JSON being a
// subset of YAML.
type briefingFile struct {
	ClientName    string       `yaml:"client_name"`
	ClientEmail   string       `yaml:"client_email"`
	ProjectType   string       `yaml:"project_type"`
	PageCount     int          `yaml:"page_count"`
	Features      []string     `yaml:"features"`
	BudgetTier    string       `yaml:"budget_tier"`
	Timeline      string       `yaml:"timeline"`
	Description   string       `yaml:"description"`
	Template      string       `yaml:"template"`
	ClientLogoURL string       `yaml:"client_logo_url"`
	CustomColors  *colorsFile  `yaml:"custom_colors"`
	Company       *companyFile `yaml:"company"`
}

type colorsFile struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
}

type companyFile struct {
	Name           string `yaml:"name"`
	LogoURL        string `yaml:"logo_url"`
	PrimaryColor   string `yaml:"primary_color"`
	SecondaryColor string `yaml:"secondary_color"`
	Address        string `yaml:"address"`
	Phone          string `yaml:"phone"`
	Email          string `yaml:"email"`
}

func readBriefing(path string) (briefingFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return briefingFile{}, fmt.Errorf("read briefing: %w", err)
	}
	var b briefingFile
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return briefingFile{}, fmt.Errorf("parse briefing %s: %w", path, err)
	}
	return b, nil
}

func (b briefingFile) toBriefing() entities.Briefing {
	out := entities.Briefing{
		ClientName:    b.ClientName,
		ClientEmail:   b.ClientEmail,
		ProjectType:   entities.ProjectType(b.ProjectType),
		PageCount:     b.PageCount,
		Features:      b.Features,
		BudgetTier:    entities.BudgetTier(b.BudgetTier),
		Timeline:      entities.Timeline(b.Timeline),
		Description:   b.Description,
		Template:      entities.TemplateID(b.Template),
		ClientLogoURL: b.ClientLogoURL,
	}
	if b.CustomColors != nil {
		out.CustomColors = &entities.Colors{Primary: b.CustomColors.Primary, Secondary: b.CustomColors.Secondary}
	}
	return out
}

// settings returns nil when the file carries no company block.
func (b briefingFile) settings() (*entities.CompanySettings, error) {
	if b.Company == nil {
		return nil, nil
	}
	s, err := entities.CompanySettings{
		OwnerID:        localOwner,
		CompanyName:    b.Company.Name,
		LogoURL:        b.Company.LogoURL,
		PrimaryColor:   b.Company.PrimaryColor,
		SecondaryColor: b.Company.SecondaryColor,
		Address:        b.Company.Address,
		Phone:          b.Company.Phone,
		Email:          b.Company.Email,
	}.Normalize()
	if err != nil {
		return nil, err
	}
	return &s, nil
}
