package providers

import (
	"github.com/samber/do/v2"

	"github.com/salonbook/salonbook-server/internal/logger"
	"github.com/salonbook/salonbook-server/internal/service"
	"github.com/salonbook/salonbook-server/internal/validation"
)

// ProvideClientService provides the client collection service.
func ProvideClientService(i do.Injector) (*service.ClientService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewClientService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideCatalogService provides the service catalog service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideAppointmentService provides the appointment collection service.
func ProvideAppointmentService(i do.Injector) (*service.AppointmentService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAppointmentService(storeHandle.Store, validator, log.Logger), nil
}
