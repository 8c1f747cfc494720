package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCityID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CityID
		wantErr bool
	}{
		{name: "number", input: `73930385`, want: "73930385"},
		{name: "string", input: `"73930385"`, want: "73930385"},
		{name: "uuid string", input: `"5d3c1f8e-0c1b-4a0e-9d3b-2f1f4a9d0c11"`, want: "5d3c1f8e-0c1b-4a0e-9d3b-2f1f4a9d0c11"},
		{name: "null", input: `null`, want: ""},
		{name: "object", input: `{"id":1}`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got CityID
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Unmarshal(%s) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCity_DecodeBackendRecord(t *testing.T) {
	raw := `{
		"cityName": "Lisbon",
		"country": "Portugal",
		"emoji": "🇵🇹",
		"date": "2027-10-31T15:59:59.138Z",
		"notes": "My favorite city so far!",
		"position": {"lat": 38.727881642324164, "lng": -9.140900099907554},
		"id": 73930385
	}`

	var city City
	if err := json.Unmarshal([]byte(raw), &city); err != nil {
		t.Fatalf("failed to decode city: %v", err)
	}

	if city.ID != "73930385" {
		t.Errorf("ID = %q, want %q", city.ID, "73930385")
	}
	if city.Country != "Portugal" {
		t.Errorf("Country = %q, want %q", city.Country, "Portugal")
	}
	if city.Position.Lng != -9.140900099907554 {
		t.Errorf("Position.Lng = %v, want %v", city.Position.Lng, -9.140900099907554)
	}
	if city.Date.Year() != 2027 || city.Date.Month() != time.October {
		t.Errorf("Date = %v, want October 2027", city.Date)
	}
}
