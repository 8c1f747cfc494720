package types

// LocationInfo contains human-readable location metadata for a map position
type LocationInfo struct {
	City        string `json:"city" example:"Lisbon" doc:"City, town or village name"`
	State       string `json:"state" example:"Lisbon" doc:"State or province name"`
	Country     string `json:"country" example:"Portugal" doc:"Country name"`
	CountryCode string `json:"country_code" example:"PT" doc:"ISO country code"`
	Timezone    string `json:"timezone" example:"Europe/Lisbon" doc:"IANA time zone"`
}
