package dto

import (
	"time"

	"crowdfund/internal/domain/organization"
)

type OrganizationDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	CreatedByUUID string    `json:"created_by_uuid"`
	Approved      bool      `json:"approved"`
	LegalInfo     string    `json:"legal_info,omitempty"`
	WalletID      *uint     `json:"wallet_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func OrganizationToDTO(o *organization.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:            o.ID(),
		Name:          o.Name(),
		CreatedByUUID: o.CreatedByUUID(),
		Approved:      o.Approved(),
		LegalInfo:     o.LegalInfo(),
		WalletID:      o.WalletID(),
		CreatedAt:     o.CreatedAt(),
	}
}

func OrganizationsToDTO(orgs []*organization.Organization) []OrganizationDTO {
	out := make([]OrganizationDTO, len(orgs))
	for i, o := range orgs {
		out[i] = OrganizationToDTO(o)
	}
	return out
}
