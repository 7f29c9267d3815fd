package response

import (
	"time"

	"proposalcraft/internal/domain/entities"
)

type CompanySettingsResponse struct {
	CompanyName    string    `json:"company_name"`
	LogoURL        string    `json:"logo_url,omitempty"`
	PrimaryColor   string    `json:"primary_color,omitempty"`
	SecondaryColor string    `json:"secondary_color,omitempty"`
	Address        string    `json:"address,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromCompanySettings(s entities.CompanySettings) CompanySettingsResponse {
	return CompanySettingsResponse{
		CompanyName:    s.CompanyName,
		LogoURL:        s.LogoURL,
		PrimaryColor:   s.PrimaryColor,
		SecondaryColor: s.SecondaryColor,
		Address:        s.Address,
		Phone:          s.Phone,
		Email:          s.Email,
		UpdatedAt:      s.UpdatedAt,
	}
}
