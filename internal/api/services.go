package api

import "github.com/listenupapp/shelves-server/internal/service"

// Services groups the business logic services used by the API server.
type Services struct {
	Membership *service.MembershipService
	Content    *service.ContentService
	Book       *service.BookService
	Profile    *service.ProfileService
}
