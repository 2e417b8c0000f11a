// Package project contains the project aggregate: a crowdfunding campaign
// run by an organization.
package project

import (
	"fmt"
	"time"

	"crowdfund/internal/shared/biztime"
)

type Project struct {
	id              uint
	organizationID  uint
	name            string
	description     string
	descriptionHTML string
	locationText    string
	currency        string
	minPerUser      int64
	maxPerUser      int64
	investmentCap   int64
	startDate       time.Time
	endDate         time.Time
	active          bool
	mainImage       *uint
	gallery         []uint
	createdByUUID   string
	walletID        *uint
	createdAt       time.Time
}

type NewProjectParams struct {
	OrganizationID  uint
	Name            string
	Description     string
	DescriptionHTML string
	LocationText    string
	Currency        string
	MinPerUser      int64
	MaxPerUser      int64
	InvestmentCap   int64
	StartDate       time.Time
	EndDate         time.Time
	CreatedByUUID   string
}

func NewProject(p NewProjectParams) (*Project, error) {
	if p.OrganizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if p.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if p.CreatedByUUID == "" {
		return nil, fmt.Errorf("creator UUID is required")
	}
	if p.InvestmentCap <= 0 {
		return nil, fmt.Errorf("investment cap must be positive")
	}
	if p.MinPerUser <= 0 || p.MaxPerUser < p.MinPerUser {
		return nil, fmt.Errorf("invalid per-user investment bounds")
	}
	if p.MaxPerUser > p.InvestmentCap {
		return nil, fmt.Errorf("max investment per user exceeds investment cap")
	}
	if !p.EndDate.After(p.StartDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	currency := p.Currency
	if currency == "" {
		currency = "EUR"
	}

	return &Project{
		organizationID:  p.OrganizationID,
		name:            p.Name,
		description:     p.Description,
		descriptionHTML: p.DescriptionHTML,
		locationText:    p.LocationText,
		currency:        currency,
		minPerUser:      p.MinPerUser,
		maxPerUser:      p.MaxPerUser,
		investmentCap:   p.InvestmentCap,
		startDate:       p.StartDate,
		endDate:         p.EndDate,
		active:          true,
		createdByUUID:   p.CreatedByUUID,
		createdAt:       biztime.NowUTC(),
	}, nil
}

func (p *Project) SetMainImage(documentID uint) {
	p.mainImage = &documentID
}

func (p *Project) AddGalleryImages(documentIDs []uint) {
	p.gallery = append(p.gallery, documentIDs...)
}

// AttachWallet links the project to its on-chain wallet.
func (p *Project) AttachWallet(walletID uint) error {
	if p.walletID != nil {
		return fmt.Errorf("project already has a wallet")
	}
	p.walletID = &walletID
	return nil
}

func (p *Project) Deactivate() {
	p.active = false
}

func (p *Project) SetID(id uint) { p.id = id }

func (p *Project) ID() uint                { return p.id }
func (p *Project) OrganizationID() uint    { return p.organizationID }
func (p *Project) Name() string            { return p.name }
func (p *Project) Description() string     { return p.description }
func (p *Project) DescriptionHTML() string { return p.descriptionHTML }
func (p *Project) LocationText() string    { return p.locationText }
func (p *Project) Currency() string        { return p.currency }
func (p *Project) MinPerUser() int64       { return p.minPerUser }
func (p *Project) MaxPerUser() int64       { return p.maxPerUser }
func (p *Project) InvestmentCap() int64    { return p.investmentCap }
func (p *Project) StartDate() time.Time    { return p.startDate }
func (p *Project) EndDate() time.Time      { return p.endDate }
func (p *Project) Active() bool            { return p.active }
func (p *Project) MainImage() *uint        { return p.mainImage }
func (p *Project) Gallery() []uint         { return p.gallery }
func (p *Project) CreatedByUUID() string   { return p.createdByUUID }
func (p *Project) WalletID() *uint         { return p.walletID }
func (p *Project) CreatedAt() time.Time    { return p.createdAt }

type ReconstructParams struct {
	ID              uint
	OrganizationID  uint
	Name            string
	Description     string
	DescriptionHTML string
	LocationText    string
	Currency        string
	MinPerUser      int64
	MaxPerUser      int64
	InvestmentCap   int64
	StartDate       time.Time
	EndDate         time.Time
	Active          bool
	MainImage       *uint
	Gallery         []uint
	CreatedByUUID   string
	WalletID        *uint
	CreatedAt       time.Time
}

// ReconstructProject creates a Project from persistence.
func ReconstructProject(p ReconstructParams) *Project {
	return &Project{
		id:              p.ID,
		organizationID:  p.OrganizationID,
		name:            p.Name,
		description:     p.Description,
		descriptionHTML: p.DescriptionHTML,
		locationText:    p.LocationText,
		currency:        p.Currency,
		minPerUser:      p.MinPerUser,
		maxPerUser:      p.MaxPerUser,
		investmentCap:   p.InvestmentCap,
		startDate:       p.StartDate,
		endDate:         p.EndDate,
		active:          p.Active,
		mainImage:       p.MainImage,
		gallery:         p.Gallery,
		createdByUUID:   p.CreatedByUUID,
		walletID:        p.WalletID,
		createdAt:       p.CreatedAt,
	}
}
