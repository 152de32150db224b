package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/listenupapp/shelves-server/internal/auth"
	"github.com/listenupapp/shelves-server/internal/config"
)

// AuthKey wraps the token key bytes.
type AuthKey []byte

// ProvideAuthKey uses the configured key, or loads or generates one in the
// data directory.
func ProvideAuthKey(i do.Injector) (AuthKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	var (
		key []byte
		err error
	)
	source := "config"
	if cfg.Auth.AccessTokenKey != "" {
		key, err = auth.ParseKeyHex(cfg.Auth.AccessTokenKey)
	} else {
		source = "data_path"
		key, err = auth.LoadOrGenerateKey(cfg.Data.Path)
	}
	if err != nil {
		return nil, err
	}

	log.Info("Authentication key loaded",
		"source", source,
		"access_token_duration", cfg.Auth.AccessTokenDuration,
	)

	return AuthKey(key), nil
}

// ProvideTokenService provides the PASETO token service.
func ProvideTokenService(i do.Injector) (*auth.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	authKey := do.MustInvoke[AuthKey](i)

	return auth.NewTokenService(authKey, cfg.Auth.AccessTokenDuration)
}
