package cities

import (
	"slices"

	"worldwise/internal/types"
)

// State is everything the container holds about the visited cities.
type State struct {
	Cities      []types.City `json:"cities" doc:"Visited cities in backend order"`
	CurrentCity types.City   `json:"currentCity" doc:"Most recently loaded city"`
	IsLoading   bool         `json:"isLoading" doc:"A request is in flight"`
	Error       string       `json:"error" doc:"Last request failure, if any"`
}

// InitialState is the state before anything has been fetched.
func InitialState() State {
	return State{Cities: []types.City{}}
}

// clone returns a copy that shares no slices with s.
func (s State) clone() State {
	s.Cities = slices.Clone(s.Cities)
	if s.Cities == nil {
		s.Cities = []types.City{}
	}
	return s
}

// Action types. The string values are the names used in logs.
const (
	TypeLoading      = "loading"
	TypeCitiesLoaded = "cities/loaded"
	TypeCityLoaded   = "city/loaded"
	TypeCityCreated  = "city/created"
	TypeCityDeleted  = "city/deleted"
	TypeRejected     = "rejected"
)

// Action is a tagged state transition consumed by Reduce.
type Action interface {
	Type() string
}

// Loading marks the start of a request.
type Loading struct{}

// CitiesLoaded replaces the city collection.
type CitiesLoaded struct {
	Cities []types.City
}

// CityLoaded sets the current city.
type CityLoaded struct {
	City types.City
}

// CityCreated appends a newly stored city.
type CityCreated struct {
	City types.City
}

// CityDeleted drops the city with the given id.
type CityDeleted struct {
	ID types.CityID
}

// Rejected records a failed request.
type Rejected struct {
	Message string
}

func (Loading) Type() string      { return TypeLoading }
func (CitiesLoaded) Type() string { return TypeCitiesLoaded }
func (CityLoaded) Type() string   { return TypeCityLoaded }
func (CityCreated) Type() string  { return TypeCityCreated }
func (CityDeleted) Type() string  { return TypeCityDeleted }
func (Rejected) Type() string     { return TypeRejected }
