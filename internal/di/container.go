// Package di provides dependency injection configuration for the shelves server.
package di

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/listenupapp/shelves-server/internal/auth"
	"github.com/listenupapp/shelves-server/internal/config"
	"github.com/listenupapp/shelves-server/internal/di/providers"
	"github.com/listenupapp/shelves-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideAuthKey)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Business services
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideMembershipService)
	do.Provide(injector, providers.ProvideContentService)
	do.Provide(injector, providers.ProvideProfileService)

	// Server
	do.Provide(injector, providers.ProvideWriteRateLimiter)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes the core services without starting the HTTP server.
func Bootstrap(injector *do.RootScope) error {
	invokers := []func(do.Injector) error{
		invoke[*config.Config],
		invoke[*slog.Logger],
		invoke[*providers.StoreHandle],
		invoke[*auth.TokenService],
		invoke[*service.UserService],
		invoke[*service.BookService],
		invoke[*service.MembershipService],
		invoke[*service.ContentService],
		invoke[*service.ProfileService],
	}
	for _, fn := range invokers {
		if err := fn(injector); err != nil {
			return err
		}
	}
	return nil
}

// Serve bootstraps the container and starts the HTTP server.
func Serve(injector *do.RootScope) error {
	if err := Bootstrap(injector); err != nil {
		return err
	}
	return invoke[*providers.HTTPServerHandle](injector)
}

func invoke[T any](i do.Injector) error {
	_, err := do.Invoke[T](i)
	return err
}
