package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type clientAppInfoService struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func NewClientAppInfoService(server adapter.ServerAdapter, logger *logger.Logger) ClientAppInfoService {
	return &clientAppInfoService{server: server, logger: logger}
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.server.ServerVersion(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientAppInfoService.ServerVersion").Msg("server version unavailable")
		return "", fmt.Errorf("server version: %w", mapAdapterError(err))
	}
	return version, nil
}
