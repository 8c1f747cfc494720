package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"worldwise/internal/providers/openstreetmap"
	"worldwise/internal/timezone"
	"worldwise/internal/types"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrNotACity         = errors.New("that doesn't seem to be a city, click somewhere else")
)

// Service turns a clicked map position into city metadata
type Service interface {
	// Lookup retrieves location metadata for a position
	Lookup(ctx context.Context, position types.Position) (*types.LocationInfo, error)
	// DraftCity builds a new city record for a position, ready to be posted
	DraftCity(ctx context.Context, position types.Position, date time.Time, notes string) (*types.NewCity, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Reverse(ctx context.Context, latitude, longitude float64) (*openstreetmap.ReverseAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider ReverseGeocodeProvider
	timezoneService timezone.Service
	logger          *slog.Logger
}

// NewLocationService creates a new location service with real provider clients
func NewLocationService(geocoder *openstreetmap.Client, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewLocationServiceWithProviders(geocoder, tzSvc, logger), nil
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	geocodeProvider ReverseGeocodeProvider,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		timezoneService: timezoneService,
		logger:          logger.With("component", "location-service"),
	}
}

// Validate checks that a position lies on the globe.
func Validate(position types.Position) error {
	if position.Lat < -90 || position.Lat > 90 {
		return fmt.Errorf("%w: %f", ErrInvalidLatitude, position.Lat)
	}
	if position.Lng < -180 || position.Lng > 180 {
		return fmt.Errorf("%w: %f", ErrInvalidLongitude, position.Lng)
	}
	return nil
}

// Lookup resolves the address and time zone in parallel
func (s *locationService) Lookup(ctx context.Context, position types.Position) (*types.LocationInfo, error) {
	if err := Validate(position); err != nil {
		return nil, err
	}

	var (
		wg          sync.WaitGroup
		geocodeResp *openstreetmap.ReverseAPIResponse
		tz          string
		geocodeErr  error
		tzErr       error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		geocodeResp, geocodeErr = s.geocodeProvider.Reverse(ctx, position.Lat, position.Lng)
		if geocodeErr != nil {
			geocodeErr = fmt.Errorf("failed to get location: %w", geocodeErr)
		}
	}()

	go func() {
		defer wg.Done()
		tz, tzErr = s.timezoneService.GetTimezone(position)
	}()

	wg.Wait()

	if geocodeErr != nil {
		return nil, geocodeErr
	}

	// A missing time zone (open water, disputed areas) is not fatal
	if tzErr != nil {
		s.logger.Warn("failed to determine timezone",
			"latitude", position.Lat,
			"longitude", position.Lng,
			"error", tzErr,
		)
	}

	info, err := s.translateLocationInfo(geocodeResp)
	if err != nil {
		return nil, err
	}
	info.Timezone = tz

	return &info, nil
}

func (s *locationService) DraftCity(ctx context.Context, position types.Position, date time.Time, notes string) (*types.NewCity, error) {
	info, err := s.Lookup(ctx, position)
	if err != nil {
		// Nothing at all at the point (open sea) is the same as no city there
		if errors.Is(err, openstreetmap.ErrNoLocation) {
			return nil, ErrNotACity
		}
		return nil, err
	}

	if info.City == "" {
		return nil, ErrNotACity
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}

	s.logger.Debug("drafted city from position",
		"latitude", position.Lat,
		"longitude", position.Lng,
		"city", info.City,
		"country", info.Country,
	)

	return &types.NewCity{
		CityName: info.City,
		Country:  info.Country,
		Emoji:    types.FlagEmoji(info.CountryCode),
		Date:     date,
		Notes:    notes,
		Position: position,
	}, nil
}

// translateLocationInfo converts a Nominatim reverse lookup response to the domain LocationInfo type
func (s *locationService) translateLocationInfo(resp *openstreetmap.ReverseAPIResponse) (types.LocationInfo, error) {
	if resp == nil {
		return types.LocationInfo{}, fmt.Errorf("lookup response is nil")
	}

	return types.LocationInfo{
		City:        resp.Address.Locality(),
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: strings.ToUpper(resp.Address.CountryCode),
	}, nil
}
