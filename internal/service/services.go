package service

import (
	"github.com/thirstydigital/django/internal/config"
	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/store"
)

type Services struct {
	AuthService    AuthService
	PermService    PermService
	MessageService MessageService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		PermService:    NewPermService(storages.PermissionRepository, logger),
		MessageService: NewMessageService(storages.MessageRepository, storages.SessionStore, logger),
	}
}
