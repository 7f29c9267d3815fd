package entities

import (
	"fmt"
	"strings"
	"time"
)

// CompanySettings holds per-account branding used as a fallback when a
// proposal has no overrides.
//
// Storage model (DynamoDB):
//   - PK: owner_id (one record per account, written by upsert)
type CompanySettings struct {
	OwnerID        string    `json:"owner_id"`
	CompanyName    string    `json:"company_name"`
	LogoURL        string    `json:"logo_url"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Normalize trims every free-text field and validates colors and email.
func (s CompanySettings) Normalize() (CompanySettings, error) {
	s.OwnerID = strings.TrimSpace(s.OwnerID)
	s.CompanyName = strings.TrimSpace(s.CompanyName)
	s.LogoURL = strings.TrimSpace(s.LogoURL)
	s.PrimaryColor = strings.TrimSpace(s.PrimaryColor)
	s.SecondaryColor = strings.TrimSpace(s.SecondaryColor)
	s.Address = strings.TrimSpace(s.Address)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Email = strings.TrimSpace(s.Email)

	if s.OwnerID == "" {
		return CompanySettings{}, fmt.Errorf("%w: owner is required", ErrValidation)
	}
	if s.Email != "" {
		if err := validate.Var(s.Email, "email"); err != nil {
			return CompanySettings{}, fmt.Errorf("%w: email is invalid", ErrValidation)
		}
	}
	if err := ValidateColors(&Colors{Primary: s.PrimaryColor, Secondary: s.SecondaryColor}); err != nil {
		return CompanySettings{}, err
	}
	return s, nil
}

// BrandColors exposes the settings colors as a Colors pair.
func (s *CompanySettings) BrandColors() *Colors {
	if s == nil {
		return nil
	}
	return &Colors{Primary: s.PrimaryColor, Secondary: s.SecondaryColor}
}
