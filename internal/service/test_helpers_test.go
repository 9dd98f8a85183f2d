package service

import (
	"context"
	"errors"
	"time"

	"access-log-service/internal/models"
	"access-log-service/internal/repository"
)

// stepClock returns a clock that advances by one second per call.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Second)
		return t
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var errStorageDown = errors.New("connection refused")

// failingLogRepo fails every call with errStorageDown.
type failingLogRepo struct{}

func (failingLogRepo) Create(context.Context, *models.LogEntry) error { return errStorageDown }
func (failingLogRepo) List(context.Context) ([]models.LogEntry, error) {
	return nil, errStorageDown
}
func (failingLogRepo) UpdateAction(context.Context, uint, string) (*models.LogEntry, error) {
	return nil, errStorageDown
}
func (failingLogRepo) Delete(context.Context, uint) error { return errStorageDown }

var _ repository.LogRepository = failingLogRepo{}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }
