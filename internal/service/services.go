package service

import (
	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/store"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(storages *store.ServerStorages, cfg *config.ServerConfig, version string, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.RefreshSessionRepository, cfg.Auth, logger),
		ItemService:    NewItemService(storages.ItemRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
