package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/plm-api/internal/repo"
)

const (
	HealthOK   = "OK"
	HealthFail = "FAIL"
)

type HealthService struct {
	db     repo.Prober
	logger *zap.Logger
}

func NewHealthService(db repo.Prober, logger *zap.Logger) *HealthService {
	return &HealthService{db: db, logger: logger}
}

// Check probes every dependency. The report is returned even when unhealthy.
func (s *HealthService) Check(ctx context.Context) (map[string]string, bool) {
	report := map[string]string{"postgres": HealthOK}
	healthy := true

	if err := s.db.Probe(ctx); err != nil {
		healthy = false
		report["postgres"] = HealthFail
		report["postgres_error"] = err.Error()
		s.logger.Error("unable to connect to postgres", zap.Error(err))
	}

	return report, healthy
}
