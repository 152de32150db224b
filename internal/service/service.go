// Package service implements shelf membership, shelf content, books and
// profiles on top of the entity store.
//
// Every operation takes the acting principal explicitly. Services load the
// rows they need, ask the access package for a decision and only then write,
// grouping multi-row writes into a single store transaction.
package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"

	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/id"
	"github.com/listenupapp/shelves-server/internal/store"
)

// requirePrincipal rejects calls made without an authenticated user.
func requirePrincipal(principal string) error {
	if principal == "" {
		return domainerrors.Unauthorized("authentication required")
	}
	return nil
}

// cleanText trims s and puts it in Unicode normal form C, so that equal
// text is stored with equal bytes and length limits count composed runes.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// checkID rejects identifiers that could not have been generated for prefix.
func checkID(prefix, value, field string) error {
	if id.Valid(prefix, value) {
		return nil
	}
	return domainerrors.ValidationWithDetails("invalid "+field, map[string]string{
		field: "is not a valid " + prefix + " id",
	})
}

// storeError converts a store failure into a domain error. what names the
// entity reported on a missing row or a uniqueness violation.
func storeError(err error, what string) error {
	var domainErr *domainerrors.Error
	switch {
	case errors.As(err, &domainErr):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, store.ErrNotFound):
		return domainerrors.NotFound(what + " not found")
	case errors.Is(err, store.ErrAlreadyExists):
		return domainerrors.Conflict(what + " already exists")
	case errors.Is(err, store.ErrReferenced):
		return domainerrors.Conflict(what + " changed while being deleted, try again")
	default:
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "storage failure")
	}
}
