package entity

import (
	"time"
)

type Store struct {
	ID          string          `json:"id"`
	StoreCode   string          `json:"storeCode"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description,omitempty"`
	Categories  []Ref[Category] `json:"categories"`
	Logo        string          `json:"logo,omitempty"`
	Banner      string          `json:"banner,omitempty"`
	IsActive    bool            `json:"isActive"`
	IsVerified  bool            `json:"isVerified"`
	VerifiedAt  *time.Time      `json:"verifiedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}
