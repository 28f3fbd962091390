package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

const (
	apiTitle       = "Reactive Notes API"
	apiDescription = "API for managing notes in a non-blocking Go service"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAPIInfo(ctx context.Context) models.APIInfo {
	return models.APIInfo{
		Title:       apiTitle,
		Version:     s.appVersion,
		Description: apiDescription,
	}
}
