package cities

import (
	"errors"
	"reflect"
	"testing"

	"worldwise/internal/types"
)

var (
	lisbon = types.City{ID: "1", CityName: "Lisbon", Country: "Portugal", Emoji: "🇵🇹"}
	madrid = types.City{ID: "2", CityName: "Madrid", Country: "Spain", Emoji: "🇪🇸"}
	berlin = types.City{ID: "3", CityName: "Berlin", Country: "Germany", Emoji: "🇩🇪"}
)

// populated is a state with every field set, so a transition that touches the
// wrong field shows up in the comparison.
func populated() State {
	return State{
		Cities:      []types.City{lisbon, madrid},
		CurrentCity: madrid,
		IsLoading:   true,
		Error:       "previous failure",
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   func() State
	}{
		{
			name:   "loading",
			action: Loading{},
			want: func() State {
				s := populated()
				s.IsLoading = true
				return s
			},
		},
		{
			name:   "cities loaded",
			action: CitiesLoaded{Cities: []types.City{berlin}},
			want: func() State {
				s := populated()
				s.IsLoading = false
				s.Cities = []types.City{berlin}
				return s
			},
		},
		{
			name:   "cities loaded with nil payload",
			action: CitiesLoaded{},
			want: func() State {
				s := populated()
				s.IsLoading = false
				s.Cities = []types.City{}
				return s
			},
		},
		{
			name:   "city loaded",
			action: CityLoaded{City: berlin},
			want: func() State {
				s := populated()
				s.IsLoading = false
				s.CurrentCity = berlin
				return s
			},
		},
		{
			name:   "city created",
			action: CityCreated{City: berlin},
			want: func() State {
				s := populated()
				s.IsLoading = false
				s.Cities = []types.City{lisbon, madrid, berlin}
				return s
			},
		},
		{
			name:   "city deleted",
			action: CityDeleted{ID: "1"},
			want: func() State {
				s := populated()
				s.IsLoading = false
				s.Cities = []types.City{madrid}
				return s
			},
		},
		{
			name:   "city deleted with unknown id",
			action: CityDeleted{ID: "404"},
			want: func() State {
				s := populated()
				s.IsLoading = false
				return s
			},
		},
		{
			name:   "rejected",
			action: Rejected{Message: "there was an error loading cities: boom"},
			want: func() State {
				s := populated()
				s.IsLoading = false
				s.Error = "there was an error loading cities: boom"
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reduce(populated(), tt.action)
			want := tt.want()
			if !reflect.DeepEqual(result, want) {
				t.Errorf("Reduce(%s) =\n%+v\nwant\n%+v", tt.action.Type(), result, want)
			}
		})
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := populated()
	payload := []types.City{berlin}

	after := Reduce(before, CityDeleted{ID: "1"})
	after = Reduce(after, CitiesLoaded{Cities: payload})
	payload[0].CityName = "changed"

	if !reflect.DeepEqual(before, populated()) {
		t.Errorf("input state was modified: %+v", before)
	}
	if after.Cities[0].CityName != "Berlin" {
		t.Errorf("state aliases the action payload: %+v", after.Cities)
	}
}

type unknownAction struct{}

func (unknownAction) Type() string { return "city/renamed" }

func TestReduce_UnknownActionPanics(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{name: "unhandled variant", action: unknownAction{}},
		{name: "pointer to known variant", action: &Loading{}},
		{name: "nil action", action: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("Reduce() did not panic")
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("panic value = %v (%T), want error", r, r)
				}
				if !errors.Is(err, ErrUnknownAction) {
					t.Errorf("panic error = %v, want ErrUnknownAction", err)
				}
			}()
			Reduce(InitialState(), tt.action)
		})
	}
}
