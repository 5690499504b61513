package offer

import (
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferLine is one priced product row of an offer document
type OfferLine struct {
	ProductID       uuid.UUID       `json:"product_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	LineTotal       decimal.Decimal `json:"line_total"`
	DiscountDisplay string          `json:"discount_display"`
}

// OfferSection groups the lines of one product group under its manufacturer
type OfferSection struct {
	Category     string              `json:"category"`
	Manufacturer string              `json:"manufacturer"`
	GroupName    string              `json:"group_name"`
	Option       project.GroupOption `json:"option"`
	Lines        []OfferLine         `json:"lines"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
}

// OfferDocument is a complete generated offer. MAIN sections make up the
// quoted total; OPTIONAL sections are priced alternatives listed alongside.
type OfferDocument struct {
	ProjectID    uuid.UUID       `json:"project_id"`
	ProjectName  string          `json:"project_name"`
	CustomerName string          `json:"customer_name"`
	Address      string          `json:"address,omitempty"`
	IssuedAt     string          `json:"issued_at"`
	Currency     string          `json:"currency"`
	Sections     []OfferSection  `json:"sections"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
	FooterNote   string          `json:"footer_note,omitempty"`
}
