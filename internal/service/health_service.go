package service

import (
	"context"

	"access-log-service/internal/repository"
)

const HomeMessage = "Smart Access Log Viewer backend is live!"

// HealthStatus is the body of the health endpoint
type HealthStatus struct {
	Status       string `json:"status"`
	DBConnection string `json:"db_connection,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Healthy reports whether the status should be served as 200
func (h HealthStatus) Healthy() bool {
	return h.Error == ""
}

type HealthService struct {
	pinger repository.Pinger
}

// NewHealthService takes the backend's Pinger, or nil for backends
// without a connection to check
func NewHealthService(pinger repository.Pinger) *HealthService {
	return &HealthService{pinger: pinger}
}

// Check reports backend health
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	if s.pinger == nil {
		return HealthStatus{Status: "OK"}
	}

	if err := s.pinger.Ping(ctx); err != nil {
		return HealthStatus{
			Status:       "error",
			DBConnection: "failed",
			Error:        err.Error(),
		}
	}

	return HealthStatus{Status: "OK", DBConnection: "successful"}
}
