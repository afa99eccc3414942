package handler

import (
	"go.uber.org/zap"

	"configecho/internal/domain/settings"
)

type Handler struct {
	SettingsSvc settings.Service
	Log         *zap.Logger
}

func New(settingsSvc settings.Service, log *zap.Logger) *Handler {
	return &Handler{
		SettingsSvc: settingsSvc,
		Log:         log,
	}
}
