// Package ors implements the route provider on top of the OpenRouteService directions API.
package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"saferoute/config"
	"saferoute/internal/domain/entity"
	domainerrors "saferoute/internal/domain/errors"
	"saferoute/internal/domain/service"
	"saferoute/internal/errors"

	"go.uber.org/fx"
)

const (
	shareFactor  = 0.6
	weightFactor = 1.4

	// Keep error bodies small in logs
	maxErrorBody = 4 << 10
)

type orsClient struct {
	endpoint     string
	apiKey       string
	language     string
	alternatives int
	httpClient   *http.Client
	logger       *slog.Logger
}

// ClientParams holds dependencies for the ORS client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a RouteProvider backed by OpenRouteService
func NewClient(params ClientParams) (service.RouteProvider, error) {
	cfg := params.Config.Routing
	if cfg == nil {
		return nil, errors.New("routing config is required")
	}

	endpoint, err := url.JoinPath(cfg.BaseURL, "v2", "directions", cfg.Profile, "geojson")
	if err != nil {
		return nil, errors.Wrap(err, "build directions endpoint")
	}

	if cfg.APIKey == "" {
		params.Logger.Warn("Routing API key is empty, requests will only work against self-hosted ORS")
	}

	return &orsClient{
		endpoint:     endpoint,
		apiKey:       cfg.APIKey,
		language:     cfg.Language,
		alternatives: cfg.Alternatives,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		logger:       params.Logger,
	}, nil
}

// Directions asks ORS for walking routes from one point to another
func (c *orsClient) Directions(ctx context.Context, from, to entity.RoutePoint) ([]entity.Route, error) {
	if !from.Valid() || !to.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("origin and destination must be valid coordinates")
	}

	reqBody := directionsRequest{
		Coordinates:  [][2]float64{{from.Lng, from.Lat}, {to.Lng, to.Lat}},
		Instructions: true,
		Units:        "m",
		Language:     c.language,
	}
	if c.alternatives > 1 {
		reqBody.AlternativeRoutes = &alternativeRoutesOpts{
			TargetCount:  c.alternatives,
			ShareFactor:  shareFactor,
			WeightFactor: weightFactor,
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/geo+json, application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.ErrRoutingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.mapError(resp)
	}

	routes, dropped, err := DecodeRoutes(resp.Body)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.ErrRoutingUnavailable, err)
	}
	if dropped > 0 {
		c.logger.Warn("Dropped malformed route alternatives",
			slog.Int("dropped", dropped),
			slog.Int("kept", len(routes)),
		)
	}
	if len(routes) == 0 {
		return nil, domainerrors.ErrNoRouteFound
	}

	return routes, nil
}

func (c *orsClient) mapError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var orsErr errorResponse
	_ = json.Unmarshal(body, &orsErr)

	c.logger.Warn("Routing request failed",
		slog.Int("status", resp.StatusCode),
		slog.Int("ors_code", orsErr.Error.Code),
		slog.String("message", strings.TrimSpace(orsErr.Error.Message)),
	)

	cause := errors.Errorf("ors status %d code %d: %s", resp.StatusCode, orsErr.Error.Code, orsErr.Error.Message)

	switch {
	case resp.StatusCode == http.StatusNotFound,
		orsErr.Error.Code == errorCodeRouteNotFound,
		orsErr.Error.Code == errorCodePointNotFound:
		return domainerrors.NewUpstreamError(domainerrors.ErrNoRouteFound, cause)
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode == http.StatusForbidden:
		return domainerrors.NewUpstreamError(domainerrors.ErrRoutingRateLimited, cause)
	default:
		return domainerrors.NewUpstreamError(domainerrors.ErrRoutingUnavailable, cause)
	}
}
