// Package models defines the wire shapes for every Homecircle resource.
//
// These are plain data-transfer structs mirroring the backend's JSON
// payloads. Optional fields are pointers and stay nil when the server omits
// them. Equality for identity-bearing resources is identifier equality
// only; everything else about two records with the same ID is allowed to
// differ between payloads.
package models

import (
	"time"

	"github.com/homecircle/homecircle-go/types"
)

// Model is the base model for all identified resources.
type Model struct {
	ID        types.ID   `json:"id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Equal reports whether two resources identify the same backend record.
func (m Model) Equal(n Model) bool {
	return m.ID == n.ID
}

// Pagination is the paging metadata the backend appends to list responses.
type Pagination struct {
	Count  int `json:"count"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}
