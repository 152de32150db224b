package domain

import "time"

// Book is a catalogue entry owned by exactly one user.
// A book can sit on any number of shelves; those links are stored separately
// as ShelfBookLink rows and never embedded here.
type Book struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
}

// IsOwnedBy reports whether userID owns the book.
func (b *Book) IsOwnedBy(userID string) bool {
	return b.OwnerID == userID
}
