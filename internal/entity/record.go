// Package entity defines the entities and errors shared across the client.
// It includes the Record struct, which represents one shortened-URL entry
// owned by a user, along with the error taxonomy used to classify failures.
package entity

import "time"

// Record represents one shortened-URL entry owned by a user.
// Field names follow the wire format of the records endpoints.
type Record struct {
	ID          string    `json:"_id"`         // ID is the server-assigned unique identifier of the record.
	UserID      string    `json:"userId"`      // UserID references the owning user and is never mutated by the client.
	OriginalURL string    `json:"originalURL"` // OriginalURL is the full URL the short link resolves to.
	ShortURL    string    `json:"shortURL"`    // ShortURL is the server-assigned short token.
	Counter     int64     `json:"counter"`     // Counter is the click count, read-only to the client.
	CreatedAt   time.Time `json:"createdAt"`   // CreatedAt is the server-assigned creation timestamp.
	UpdatedAt   time.Time `json:"updatedAt"`   // UpdatedAt is the server-assigned last-update timestamp.
}
