package dbvendo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientJourneys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/journeys", r.URL.Path)
		assert.Equal(t, "8000105", r.URL.Query().Get("from"))
		assert.Equal(t, "8010330", r.URL.Query().Get("to"))
		assert.Equal(t, "2026-08-31T10:00:00Z", r.URL.Query().Get("departure"))
		assert.Equal(t, "http://localhost:4200", r.Header.Get("Origin"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Write([]byte(`{
			"journeys": [
				{"legs": [{"origin": {"id": "8000105", "name": "Frankfurt(Main)Hbf"}}]}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "http://localhost:4200")

	journeys, err := client.Journeys(context.Background(), "8000105", "8010330", "2026-08-31T10:00:00Z")

	require.NoError(t, err)
	require.Len(t, journeys, 1)
	require.Len(t, journeys[0].Legs, 1)
	assert.Equal(t, "Frankfurt(Main)Hbf", journeys[0].Legs[0].Origin.Name)
}

func TestClientJourneysOmitsEmptyDeparture(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["departure"]
		assert.False(t, present)

		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "http://localhost:4200")

	journeys, err := client.Journeys(context.Background(), "8000105", "8010330", "")

	require.NoError(t, err)
	assert.Empty(t, journeys)
	assert.NotNil(t, journeys)
}

func TestClientUpstreamErrorPassesStatusAndMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Validation failed"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "http://localhost:4200")

	_, err := client.Journeys(context.Background(), "8000105", "8010330", "")

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnprocessableEntity, upstreamErr.StatusCode)
	assert.Equal(t, "Validation failed", upstreamErr.Message)
	assert.Contains(t, upstreamErr.Error(), "Validation failed")
}

func TestClientNoResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "http://localhost:4200")

	_, err := client.Arrivals(context.Background(), "8010330")

	var noResponseErr *NoResponseError
	require.ErrorAs(t, err, &noResponseErr)
	assert.Equal(t, "No response received from DB Vendo API", noResponseErr.Error())
	assert.NotNil(t, errors.Unwrap(noResponseErr))
}

func TestClientArrivalsAndDepartures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stops/8010330/arrivals":
			w.Write([]byte(`{"arrivals": [{"stop": {"name": "Weimar"}, "line": {"name": "RE 17"}}]}`))
		case "/stops/8010330/departures":
			w.Write([]byte(`{"departures": [{"stop": {"name": "Weimar"}, "line": {"name": "ICE 1537"}}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "http://localhost:4200")

	arrivals, err := client.Arrivals(context.Background(), "8010330")
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	assert.Equal(t, "RE 17", arrivals[0].Line.Name)

	departures, err := client.Departures(context.Background(), "8010330")
	require.NoError(t, err)
	require.Len(t, departures, 1)
	assert.Equal(t, "ICE 1537", departures[0].Line.Name)
}

func TestClientArrivalsMissingListStaysNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "http://localhost:4200")

	arrivals, err := client.Arrivals(context.Background(), "8010330")

	require.NoError(t, err)
	assert.Nil(t, arrivals)
}

func TestClientMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"journeys": `))
	}))
	defer server.Close()

	client := NewClient(server.URL, "http://localhost:4200")

	_, err := client.Journeys(context.Background(), "8000105", "8010330", "")

	require.Error(t, err)
	var upstreamErr *UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}
