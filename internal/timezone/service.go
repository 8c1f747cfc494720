package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"worldwise/internal/types"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(position types.Position) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// tzf loads its polygon data into memory once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for a city position,
// e.g. "Europe/Lisbon".
func (s *service) GetTimezone(position types.Position) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// tzf takes longitude first
	timezone := s.finder.GetTimezoneName(position.Lng, position.Lat)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lng=%f", position.Lat, position.Lng)
	}

	return timezone, nil
}
