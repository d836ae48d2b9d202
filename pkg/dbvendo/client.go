package dbvendo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/talosati/refundrebel-dev-challenge/pkg/raildata"
)

// Client queries the db-vendo (HAFAS-style) REST API. Every request carries
// the configured front-end origin in the Origin header, which the provider
// expects for CORS bookkeeping.
type Client struct {
	baseURL        string
	frontendOrigin string
	httpClient     *http.Client
}

func NewClient(baseURL string, frontendOrigin string) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		frontendOrigin: frontendOrigin,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

type journeysResponse struct {
	Journeys []raildata.RawJourney `json:"journeys"`
}

type arrivalsResponse struct {
	Arrivals []raildata.RawStationEvent `json:"arrivals"`
}

type departuresResponse struct {
	Departures []raildata.RawStationEvent `json:"departures"`
}

// Journeys fetches raw journeys between two station ids. A missing journeys
// list in the payload is treated as an empty result.
func (c *Client) Journeys(ctx context.Context, from string, to string, departure string) ([]raildata.RawJourney, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	if departure != "" {
		query.Set("departure", departure)
	}

	var payload journeysResponse
	if err := c.get(ctx, "/journeys?"+query.Encode(), &payload); err != nil {
		return nil, err
	}

	if payload.Journeys == nil {
		return []raildata.RawJourney{}, nil
	}

	return payload.Journeys, nil
}

// Arrivals fetches the raw arrivals board of a station. The arrivals list is
// handed on as-is; a payload without one fails later in the transform.
func (c *Client) Arrivals(ctx context.Context, stationID string) ([]raildata.RawStationEvent, error) {
	var payload arrivalsResponse
	if err := c.get(ctx, "/stops/"+url.PathEscape(stationID)+"/arrivals", &payload); err != nil {
		return nil, err
	}

	return payload.Arrivals, nil
}

// Departures fetches the raw departures board of a station.
func (c *Client) Departures(ctx context.Context, stationID string) ([]raildata.RawStationEvent, error) {
	var payload departuresResponse
	if err := c.get(ctx, "/stops/"+url.PathEscape(stationID)+"/departures", &payload); err != nil {
		return nil, err
	}

	return payload.Departures, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building db-vendo request: %w", err)
	}

	req.Header.Set("Origin", c.frontendOrigin)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NoResponseError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NoResponseError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamErr := &UpstreamError{StatusCode: resp.StatusCode, Body: body}

		var errorBody struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &errorBody) == nil {
			upstreamErr.Message = errorBody.Message
		}

		return upstreamErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding db-vendo response: %w", err)
	}

	return nil
}
