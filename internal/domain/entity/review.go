package entity

import (
	"time"
)

// Review rates a product 1-5 on behalf of a user.
type Review struct {
	ID        string       `json:"id"`
	User      Ref[User]    `json:"user"`
	Product   Ref[Product] `json:"product"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt *time.Time   `json:"updatedAt,omitempty"`
}
