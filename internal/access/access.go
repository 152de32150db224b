// Package access holds the shelf authorization rules.
//
// Every function here is a pure decision over facts the caller has already
// loaded: the shelf or book row and whether a membership exists. Nothing in
// this package touches storage, so the rules can be read and tested on their own.
//
// A user can see a shelf if:
//  1. The shelf is public, OR
//  2. The user owns it, OR
//  3. The user holds a membership on it.
//
// Content on a shelf (its book links) can be changed by the owner or by any
// member. The same rule applies to adding and removing.
package access

import "github.com/listenupapp/shelves-server/internal/domain"

// CanView reports whether principal may read the shelf and its contents.
func CanView(principal string, shelf *domain.Shelf, isMember bool) bool {
	return shelf.IsPublic() || shelf.IsOwnedBy(principal) || isMember
}

// CanModifyShelfContent reports whether principal may add or remove books on the shelf.
func CanModifyShelfContent(principal string, shelf *domain.Shelf, isMember bool) bool {
	return shelf.IsOwnedBy(principal) || isMember
}

// CanJoin reports whether a user may take a new membership on the shelf.
// Only public shelves accept joins, and never from someone who already has access.
func CanJoin(shelf *domain.Shelf, isOwner, isMember bool) bool {
	return shelf.IsPublic() && !isOwner && !isMember
}

// CanDeleteBook reports whether principal may delete the book.
func CanDeleteBook(principal string, book *domain.Book) bool {
	return book.IsOwnedBy(principal)
}

// CanEditProfile reports whether principal may edit the profile of targetUserID.
func CanEditProfile(principal, targetUserID string) bool {
	return principal != "" && principal == targetUserID
}
