package types

// Position is a point on the map. JSON field names match the cities backend.
type Position struct {
	Lat float64 `json:"lat" example:"38.7279" doc:"Latitude in decimal degrees"`
	Lng float64 `json:"lng" example:"-9.1409" doc:"Longitude in decimal degrees"`
}

func NewPosition(latitude, longitude float64) Position {
	return Position{
		Lat: latitude,
		Lng: longitude,
	}
}

// IsZero reports whether the position was left unset.
func (p Position) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}
