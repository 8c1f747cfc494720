package cities

import (
	"errors"
	"fmt"
	"slices"

	"worldwise/internal/types"
)

// ErrUnknownAction is the panic value (wrapped) for an action Reduce does not
// handle. Reaching it is a programming error.
var ErrUnknownAction = errors.New("unknown action type")

// Reduce maps a state and an action to the next state. It is pure: s is not
// modified and the result shares no slices with s or the action payload.
// Unknown actions panic.
func Reduce(s State, action Action) State {
	next := s.clone()

	switch a := action.(type) {
	case Loading:
		next.IsLoading = true
	case CitiesLoaded:
		next.IsLoading = false
		next.Cities = slices.Clone(a.Cities)
		if next.Cities == nil {
			next.Cities = []types.City{}
		}
	case CityLoaded:
		next.IsLoading = false
		next.CurrentCity = a.City
	case CityCreated:
		next.IsLoading = false
		next.Cities = append(next.Cities, a.City)
	case CityDeleted:
		next.IsLoading = false
		next.Cities = slices.DeleteFunc(next.Cities, func(c types.City) bool {
			return c.ID == a.ID
		})
	case Rejected:
		next.IsLoading = false
		next.Error = a.Message
	case nil:
		panic(fmt.Errorf("%w: <nil>", ErrUnknownAction))
	default:
		panic(fmt.Errorf("%w: %q", ErrUnknownAction, action.Type()))
	}

	return next
}
