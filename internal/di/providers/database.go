package providers

import (
	"github.com/samber/do/v2"

	"github.com/salonbook/salonbook-server/internal/config"
	"github.com/salonbook/salonbook-server/internal/logger"
	"github.com/salonbook/salonbook-server/internal/store"
	"github.com/salonbook/salonbook-server/internal/store/local"
	"github.com/salonbook/salonbook-server/internal/store/sqlite"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the persistence backend selected by configuration.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	var (
		st  store.Store
		err error
	)
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		st, err = sqlite.Open(cfg.Storage.Path, log.Logger)
	default:
		st, err = local.Open(cfg.Storage.Path, log.Logger)
	}
	if err != nil {
		return nil, err
	}

	log.Info("Store initialized", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)

	return &StoreHandle{Store: st}, nil
}
