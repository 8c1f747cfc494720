// Package citystore keeps city records in a JSON file laid out like a
// json-server database: {"cities": [...]}.
package citystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/google/uuid"

	"worldwise/internal/types"
)

var (
	ErrNotFound  = errors.New("city not found")
	ErrDuplicate = errors.New("city id already exists")
)

type database struct {
	Cities []types.City `json:"cities"`
}

// record is a city as written to disk. ID stays raw so ids that were numbers
// in the file are written back as numbers.
type record struct {
	ID json.RawMessage `json:"id"`
	types.NewCity
}

// Store is a thread-safe city collection persisted to a single file.
// An empty path keeps everything in memory.
type Store struct {
	mu      sync.RWMutex
	path    string
	cities  []types.City
	numeric map[types.CityID]bool
}

// Open loads the file at path, starting empty if it does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, cities: []types.City{}, numeric: map[types.CityID]bool{}}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var db database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if db.Cities != nil {
		s.cities = db.Cities
	}

	var raw struct {
		Cities []struct {
			ID json.RawMessage `json:"id"`
		} `json:"cities"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	for i, c := range raw.Cities {
		if len(c.ID) > 0 && c.ID[0] != '"' && string(c.ID) != "null" {
			s.numeric[s.cities[i].ID] = true
		}
	}
	return s, nil
}

// List returns every city in insertion order.
func (s *Store) List() []types.City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cities)
}

func (s *Store) Get(id types.CityID) (types.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return types.City{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.cities[i], nil
}

// Create appends a city. A missing id is filled with a random UUID.
func (s *Store) Create(city types.City) (types.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if city.ID == "" {
		city.ID = types.CityID(uuid.NewString())
	} else if s.indexLocked(city.ID) >= 0 {
		return types.City{}, fmt.Errorf("%w: %s", ErrDuplicate, city.ID)
	}

	s.cities = append(s.cities, city)
	if err := s.saveLocked(); err != nil {
		s.cities = s.cities[:len(s.cities)-1]
		return types.City{}, err
	}
	return city, nil
}

func (s *Store) Delete(id types.CityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	previous := slices.Clone(s.cities)
	s.cities = slices.Delete(s.cities, i, i+1)
	if err := s.saveLocked(); err != nil {
		s.cities = previous
		return err
	}
	delete(s.numeric, id)
	return nil
}

func (s *Store) indexLocked(id types.CityID) int {
	return slices.IndexFunc(s.cities, func(c types.City) bool {
		return c.ID == id
	})
}

// saveLocked writes through a temp file so a crash never leaves a torn file.
func (s *Store) saveLocked() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	records := make([]record, 0, len(s.cities))
	for _, c := range s.cities {
		rec, err := s.recordLocked(c)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}
	b, err := json.MarshalIndent(struct {
		Cities []record `json:"cities"`
	}{Cities: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cities: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("failed to write cities: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace cities file: %w", err)
	}
	return nil
}

func (s *Store) recordLocked(c types.City) (record, error) {
	id := json.RawMessage(c.ID)
	if !s.numeric[c.ID] {
		quoted, err := json.Marshal(string(c.ID))
		if err != nil {
			return record{}, fmt.Errorf("failed to encode city id: %w", err)
		}
		id = quoted
	}
	return record{
		ID: id,
		NewCity: types.NewCity{
			CityName: c.CityName,
			Country:  c.Country,
			Emoji:    c.Emoji,
			Date:     c.Date,
			Notes:    c.Notes,
			Position: c.Position,
		},
	}, nil
}
