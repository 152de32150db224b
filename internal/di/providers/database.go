package providers

import (
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/listenupapp/shelves-server/internal/config"
	"github.com/listenupapp/shelves-server/internal/store/sqlstore"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*sqlstore.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore opens the configured store. Postgres schemas are migrated to
// the latest version first; SQLite applies its schema on open.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		if err := sqlstore.MigratePostgres(cfg.Database.PostgresDSN, "up"); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		st, err := sqlstore.OpenPostgres(cfg.Database.PostgresDSN, log)
		if err != nil {
			return nil, err
		}
		log.Info("Database initialized", "driver", st.Dialect())
		return &StoreHandle{Store: st}, nil

	default:
		st, err := sqlstore.OpenSQLite(cfg.Database.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		log.Info("Database initialized", "driver", st.Dialect(), "path", cfg.Database.SQLitePath)
		return &StoreHandle{Store: st}, nil
	}
}
