package citiesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldwise/internal/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListCities_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `[{"id":1,"cityName":"Lisbon","country":"Portugal","emoji":"🇵🇹"},{"id":"b2","cityName":"Madrid","country":"Spain","emoji":"🇪🇸"}]`)
	})

	cities, err := client.ListCities(context.Background())

	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, types.CityID("1"), cities[0].ID)
	assert.Equal(t, "Lisbon", cities[0].CityName)
	assert.Equal(t, types.CityID("b2"), cities[1].ID)
}

func TestListCities_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `null`)
	})

	cities, err := client.ListCities(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, cities)
	assert.Empty(t, cities)
}

func TestGetCity_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cities/73930385", r.URL.Path)
		fmt.Fprintln(w, `{"id":73930385,"cityName":"Lisbon","country":"Portugal","position":{"lat":38.72,"lng":-9.14}}`)
	})

	city, err := client.GetCity(context.Background(), "73930385")

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", city.CityName)
	assert.Equal(t, types.NewPosition(38.72, -9.14), city.Position)
}

func TestGetCity_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintln(w, `{}`)
	})

	_, err := client.GetCity(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCity_PostsJSON(t *testing.T) {
	visited := time.Date(2027, time.October, 31, 15, 59, 59, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cities", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body types.NewCity
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Berlin", body.CityName)
		assert.True(t, visited.Equal(body.Date))

		w.WriteHeader(http.StatusCreated)
		assert.NoError(t, json.NewEncoder(w).Encode(body.WithID("99")))
	})

	city, err := client.CreateCity(context.Background(), types.NewCity{
		CityName: "Berlin",
		Country:  "Germany",
		Emoji:    "🇩🇪",
		Date:     visited,
		Position: types.NewPosition(52.52, 13.40),
	})

	require.NoError(t, err)
	assert.Equal(t, types.CityID("99"), city.ID)
	assert.Equal(t, "Germany", city.Country)
}

func TestDeleteCity(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		fmt.Fprintln(w, `{}`)
	})

	err := client.DeleteCity(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/cities/42", gotPath)
}

func TestClient_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "boom")
	})

	_, err := client.ListCities(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch returned status 500: boom")
}

func TestClient_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `[{"id":`)
	})

	_, err := client.ListCities(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_ContextTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		fmt.Fprintln(w, `[]`)
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.ListCities(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}
