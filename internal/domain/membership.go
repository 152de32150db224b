package domain

import "time"

// Membership grants a user standing access to a shelf.
// (ShelfID, UserID) is unique; the owner's membership is created with the shelf.
type Membership struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	ShelfID   string    `json:"shelf_id"`
	UserID    string    `json:"user_id"`
}

// ShelfBookLink places a book on a shelf. (ShelfID, BookID) is unique.
type ShelfBookLink struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	ShelfID   string    `json:"shelf_id"`
	BookID    string    `json:"book_id"`
}
