package entity

import (
	"time"
)

type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyBRL Currency = "BRL"
	CurrencyMXN Currency = "MXN"
)

type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

type Shipping string

const (
	ShippingFree     Shipping = "free"
	ShippingStandard Shipping = "standard"
	ShippingPremium  Shipping = "premium"
)

type Product struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription,omitempty"`
	Price           float64         `json:"price"`
	Currency        Currency        `json:"currency"`
	Category        Ref[Category]   `json:"category"`
	Store           Ref[Store]      `json:"store"`
	Questions       []Ref[Question] `json:"questions"`
	Images          []string        `json:"images"`
	Condition       Condition       `json:"condition"`
	Features        []string        `json:"features,omitempty"`
	Shipping        Shipping        `json:"shipping"`
	Stock           int             `json:"stock"`

	Rating  float64 `json:"rating"`  // Computed field
	Reviews int     `json:"reviews"` // Computed field

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
