package request

import "proposalcraft/internal/domain/entities"

type CompanySettingsRequest struct {
	CompanyName    string `json:"company_name"`
	LogoURL        string `json:"logo_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

func (r CompanySettingsRequest) ToEntity() entities.CompanySettings {
	return entities.CompanySettings{
		CompanyName:    r.CompanyName,
		LogoURL:        r.LogoURL,
		PrimaryColor:   r.PrimaryColor,
		SecondaryColor: r.SecondaryColor,
		Address:        r.Address,
		Phone:          r.Phone,
		Email:          r.Email,
	}
}
