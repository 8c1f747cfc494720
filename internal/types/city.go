package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// CityID identifies a city record on the backend. Backends disagree on whether
// ids are numbers or strings, so both are accepted when decoding.
type CityID string

func (id CityID) String() string {
	return string(id)
}

// UnmarshalJSON accepts `"73930385"` as well as `73930385`.
func (id *CityID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid city id: %w", err)
		}
		*id = CityID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid city id %s: %w", string(data), err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("invalid city id %s: %w", string(data), err)
	}
	*id = CityID(n.String())
	return nil
}

// City is a single visited location
type City struct {
	ID       CityID    `json:"id" example:"73930385" doc:"Backend identifier"`
	CityName string    `json:"cityName" example:"Lisbon" doc:"City name"`
	Country  string    `json:"country" example:"Portugal" doc:"Country name"`
	Emoji    string    `json:"emoji" example:"🇵🇹" doc:"Country flag emoji"`
	Date     time.Time `json:"date" doc:"Date of the visit"`
	Notes    string    `json:"notes" example:"My favorite city so far!" doc:"Free-form notes"`
	Position Position  `json:"position" doc:"Map position"`
}

// NewCity is the body posted to the backend when creating a city; the backend
// assigns the id.
type NewCity struct {
	CityName string    `json:"cityName" example:"Lisbon" doc:"City name"`
	Country  string    `json:"country" example:"Portugal" doc:"Country name"`
	Emoji    string    `json:"emoji" example:"🇵🇹" doc:"Country flag emoji"`
	Date     time.Time `json:"date" doc:"Date of the visit"`
	Notes    string    `json:"notes" doc:"Free-form notes"`
	Position Position  `json:"position" doc:"Map position"`
}

// WithID returns the city record the backend would store for n.
func (n NewCity) WithID(id CityID) City {
	return City{
		ID:       id,
		CityName: n.CityName,
		Country:  n.Country,
		Emoji:    n.Emoji,
		Date:     n.Date,
		Notes:    n.Notes,
		Position: n.Position,
	}
}
