package domain

import "time"

// Visibility controls who can read a shelf.
type Visibility string

const (
	// VisibilityPublic shelves are readable by anyone and can be joined.
	VisibilityPublic Visibility = "public"
	// VisibilityPrivate shelves are readable only by the owner and members.
	VisibilityPrivate Visibility = "private"
)

// VisibilityFromBool maps an is_public flag onto a Visibility.
func VisibilityFromBool(isPublic bool) Visibility {
	if isPublic {
		return VisibilityPublic
	}
	return VisibilityPrivate
}

// Shelf is a named list of books that can be kept private or shared.
// Ownership and visibility are fixed at creation; nothing in the service
// changes them afterwards.
type Shelf struct {
	CreatedAt   time.Time  `json:"created_at"`
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Visibility  Visibility `json:"visibility"`
}

// IsPublic reports whether the shelf is publicly visible.
func (s *Shelf) IsPublic() bool {
	return s.Visibility == VisibilityPublic
}

// IsOwnedBy reports whether userID owns the shelf.
func (s *Shelf) IsOwnedBy(userID string) bool {
	return s.OwnerID == userID
}
