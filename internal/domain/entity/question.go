package entity

import (
	"time"
)

type Question struct {
	ID         string       `json:"id"`
	Product    Ref[Product] `json:"product"`
	User       Ref[User]    `json:"user"`
	Content    string       `json:"content"`
	Answers    []Answer     `json:"answers"`
	IsAnswered bool         `json:"isAnswered"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  *time.Time   `json:"updatedAt,omitempty"`
}

// Answer lives embedded in its question; it has no collection of its own.
type Answer struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	User      Ref[User] `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
