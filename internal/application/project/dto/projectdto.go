package dto

import (
	"time"

	"crowdfund/internal/domain/project"
)

type ProjectDTO struct {
	ID              uint      `json:"id"`
	OrganizationID  uint      `json:"organization_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html"`
	LocationText    string    `json:"location_text,omitempty"`
	Currency        string    `json:"currency"`
	MinPerUser      int64     `json:"min_per_user"`
	MaxPerUser      int64     `json:"max_per_user"`
	InvestmentCap   int64     `json:"investment_cap"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Active          bool      `json:"active"`
	MainImage       *uint     `json:"main_image,omitempty"`
	Gallery         []uint    `json:"gallery,omitempty"`
	CreatedByUUID   string    `json:"created_by_uuid"`
	WalletID        *uint     `json:"wallet_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	// CurrentFunding is nil when the project wallet balance is unavailable.
	CurrentFunding *int64 `json:"current_funding,omitempty"`
}

func ProjectToDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:              p.ID(),
		OrganizationID:  p.OrganizationID(),
		Name:            p.Name(),
		Description:     p.Description(),
		DescriptionHTML: p.DescriptionHTML(),
		LocationText:    p.LocationText(),
		Currency:        p.Currency(),
		MinPerUser:      p.MinPerUser(),
		MaxPerUser:      p.MaxPerUser(),
		InvestmentCap:   p.InvestmentCap(),
		StartDate:       p.StartDate(),
		EndDate:         p.EndDate(),
		Active:          p.Active(),
		MainImage:       p.MainImage(),
		Gallery:         p.Gallery(),
		CreatedByUUID:   p.CreatedByUUID(),
		WalletID:        p.WalletID(),
		CreatedAt:       p.CreatedAt(),
	}
}

func ProjectsToDTO(projects []*project.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		out[i] = ProjectToDTO(p)
	}
	return out
}
