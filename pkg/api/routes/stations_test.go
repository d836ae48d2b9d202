package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talosati/refundrebel-dev-challenge/pkg/raildata"
)

type stubStationSource struct {
	stations []raildata.Station
	err      error
}

func (s stubStationSource) Stations() ([]raildata.Station, error) {
	return s.stations, s.err
}

func stationsTestApp(source StationSource) *fiber.App {
	app := fiber.New()
	StationsRouter(app.Group("/api/stations"), source)
	return app
}

func TestGetAllStations(t *testing.T) {
	source := stubStationSource{
		stations: []raildata.Station{
			{ID: "8011160", Name: "Berlin Hbf", Address: "10557, Berlin, Europaplatz 1"},
		},
	}
	app := stationsTestApp(source)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stations/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)

	var stations []raildata.Station
	require.NoError(t, json.Unmarshal(env.Data, &stations))
	require.Len(t, stations, 1)
	assert.Equal(t, "10557, Berlin, Europaplatz 1", stations[0].Address)
}

func TestGetAllStationsFailure(t *testing.T) {
	app := stationsTestApp(stubStationSource{err: errors.New("dataset unavailable")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stations/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "dataset unavailable")
}

func TestHealth(t *testing.T) {
	app := fiber.New()
	app.Get("/api/health", Health)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
