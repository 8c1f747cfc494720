package cities

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"worldwise/internal/providers/citiesapi"
	"worldwise/internal/types"
)

// CitiesProvider is the REST backend the store talks to.
type CitiesProvider interface {
	ListCities(ctx context.Context) ([]types.City, error)
	GetCity(ctx context.Context, id types.CityID) (*types.City, error)
	CreateCity(ctx context.Context, newCity types.NewCity) (*types.City, error)
	DeleteCity(ctx context.Context, id types.CityID) error
}

// Store holds the cities state and runs the request lifecycles against the
// backend. Build one at startup and pass it to whatever needs it.
type Store struct {
	mu       sync.Mutex
	state    State
	provider CitiesProvider
	logger   *slog.Logger
	pending  sync.WaitGroup
}

// NewStore creates a store backed by the REST client.
func NewStore(client *citiesapi.Client, logger *slog.Logger) *Store {
	return NewStoreWithProvider(client, logger)
}

// NewStoreWithProvider creates a store with a custom provider.
// This is useful for testing with mock providers
func NewStoreWithProvider(provider CitiesProvider, logger *slog.Logger) *Store {
	return &Store{
		state:    InitialState(),
		provider: provider,
		logger:   logger.With("component", "cities-store"),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies an action. It is the only way the state changes.
func (s *Store) Dispatch(action Action) {
	s.apply(action)

	if r, ok := action.(Rejected); ok {
		s.logger.Error(r.Message)
		return
	}
	s.logger.Debug("dispatched action", "type", action.Type())
}

func (s *Store) apply(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
}

// Load fetches the city collection.
func (s *Store) Load(ctx context.Context) error {
	s.Dispatch(Loading{})

	cities, err := s.provider.ListCities(ctx)
	if err != nil {
		return s.reject(fmt.Errorf("there was an error loading cities: %w", err))
	}

	s.Dispatch(CitiesLoaded{Cities: cities})
	return nil
}

// GetCity fetches one city and makes it the current city. The returned city is
// the one fetched by this call; CurrentCity may already hold a later one.
func (s *Store) GetCity(ctx context.Context, id types.CityID) (*types.City, error) {
	s.Dispatch(Loading{})

	city, err := s.provider.GetCity(ctx, id)
	if err != nil {
		return nil, s.reject(fmt.Errorf("there was an error loading city (id:%s): %w", id, err))
	}

	s.Dispatch(CityLoaded{City: *city})
	return city, nil
}

// CreateCity stores a new city on the backend and appends the stored record.
func (s *Store) CreateCity(ctx context.Context, newCity types.NewCity) (*types.City, error) {
	s.Dispatch(Loading{})

	city, err := s.provider.CreateCity(ctx, newCity)
	if err != nil {
		return nil, s.reject(fmt.Errorf("there was an error creating city: %w", err))
	}

	s.Dispatch(CityCreated{City: *city})
	return city, nil
}

// DeleteCity removes the city from state right away and sends the DELETE in
// the background. A failed DELETE is only logged; the state never sees it.
func (s *Store) DeleteCity(ctx context.Context, id types.CityID) {
	s.Dispatch(Loading{})

	reqCtx := context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.provider.DeleteCity(reqCtx, id); err != nil {
			s.logger.Warn("background city deletion failed", "id", id, "error", err)
		}
	}()

	s.Dispatch(CityDeleted{ID: id})
}

// Wait blocks until background deletions have finished.
func (s *Store) Wait() {
	s.pending.Wait()
}

func (s *Store) reject(err error) error {
	s.Dispatch(Rejected{Message: err.Error()})
	return err
}
