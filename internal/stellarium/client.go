// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stellarium talks to a running Stellarium instance over its
// RemoteControl HTTP API. The instance holds a single simulation clock,
// so it is global mutable state owned by a process we do not control:
// every caller goes through one serialized, rate-limited client.
package stellarium

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mwhitt/sky-engine/internal/httputil"
	"github.com/mwhitt/sky-engine/pkg/types"
)

const defaultBaseURL = "http://localhost:8090/api"

// Client is a serialized HTTP client for the RemoteControl API.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient builds a client from configuration. A zero timeout defaults
// to 10 seconds; requests beyond the timeout fail rather than blocking
// a scan indefinitely.
func NewClient(cfg types.StellariumConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Status holds the simulation clock state from main/status.
type Status struct {
	Time struct {
		JDay     float64 `json:"jday"`
		TimeRate float64 `json:"timerate"`
	} `json:"time"`
}

// GetStatus reads the current simulation time and rate.
func (c *Client) GetStatus(ctx context.Context) (Status, error) {
	var st Status
	if err := c.getJSON(ctx, "main/status", nil, &st); err != nil {
		return Status{}, err
	}
	return st, nil
}

// SetLocation moves the simulated observer.
func (c *Client) SetLocation(ctx context.Context, obs types.Observer) error {
	return c.postForm(ctx, "location/setlocationfields", url.Values{
		"latitude":  {formatFloat(obs.Latitude)},
		"longitude": {formatFloat(obs.Longitude)},
		"altitude":  {formatFloat(obs.Elevation)},
		"name":      {obs.Name},
		"planet":    {"Earth"},
	})
}

// SetTime sets the simulation clock to a Julian day and pauses time flow
// so subsequent queries observe a fixed instant.
func (c *Client) SetTime(ctx context.Context, jd types.JulianDay) error {
	return c.postForm(ctx, "main/time", url.Values{
		"time":     {strconv.FormatFloat(float64(jd), 'f', -1, 64)},
		"timerate": {"0"},
	})
}

// SetTimeRate sets the time flow multiplier (0 pauses, 1 is real time).
func (c *Client) SetTimeRate(ctx context.Context, mult float64) error {
	return c.postForm(ctx, "main/time", url.Values{
		"timerate": {formatFloat(mult)},
	})
}

// Focus centers the view on a named object. Mode is "center" or "zoom".
func (c *Client) Focus(ctx context.Context, target, mode string) error {
	return c.postForm(ctx, "main/focus", url.Values{
		"target": {target},
		"mode":   {mode},
	})
}

// SetFOV sets the field of view in degrees.
func (c *Client) SetFOV(ctx context.Context, fovDeg float64) error {
	return c.postForm(ctx, "main/fov", url.Values{
		"fov": {formatFloat(fovDeg)},
	})
}

// ObjectInfo is the subset of objects/info fields the engine consumes.
type ObjectInfo struct {
	RAJ2000       float64 `json:"raJ2000"`
	DecJ2000      float64 `json:"decJ2000"`
	Altitude      float64 `json:"altitude"`
	Azimuth       float64 `json:"azimuth"`
	Distance      float64 `json:"distance"`
	AngularSize   float64 `json:"size-deg"`
	Constellation string  `json:"constellation-short"`
	Magnitude     float64 `json:"vmag"`
}

// GetObjectInfo looks up one object by name at the current simulation
// time and location.
func (c *Client) GetObjectInfo(ctx context.Context, name string) (ObjectInfo, error) {
	var info ObjectInfo
	err := c.getJSON(ctx, "objects/info", url.Values{
		"name":   {name},
		"format": {"json"},
	}, &info)
	if err != nil {
		return ObjectInfo{}, err
	}
	return info, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: HTTP %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/"+endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: HTTP %d", endpoint, resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return httputil.DoWithRetry(ctx, c.http, req, 2)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
