// Package apex is a client for the mozambiquehe.re Apex Legends API.
//
// Every operation returns a Result whose Status tells the caller whether the
// call succeeded, hit an expected absence (player not found, no game data),
// failed upstream, or produced something uninterpretable. Operations never
// return a bare error.
package apex

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

const (
	DefaultBaseURL    = "https://api.mozambiquehe.re"
	DefaultAPIVersion = 1
)

const (
	endpointBridge   = "bridge"
	endpointCrafting = "crafting"
	endpointMaps     = "maprotation"
	endpointStore    = "store"
)

// Observer is notified once per upstream round-trip. status is 0 when no
// response was received.
type Observer interface {
	ObserveRequest(endpoint string, status int, elapsed time.Duration)
}

// Client holds immutable configuration only and is safe for concurrent use.
type Client struct {
	apiKey     string
	apiVersion int
	baseURL    string
	timeout    time.Duration
	client     *fasthttp.Client
	logger     zerolog.Logger
	observer   Observer
}

type Option func(*Client)

func WithAPIVersion(version int) Option {
	return func(c *Client) {
		if version > 0 {
			c.apiVersion = version
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the transport. The client must set Read/Write
// timeouts unless WithTimeout is used: a cancelled call returns at once, but
// its request keeps running until the transport gives up.
func WithHTTPClient(client *fasthttp.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout bounds each request. A sooner context deadline still wins.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		apiVersion: DefaultAPIVersion,
		baseURL:    DefaultBaseURL,
		logger:     zerolog.Nop(),
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) APIVersion() int { return c.apiVersion }

func (c *Client) PlayerStats(ctx context.Context, username string, platform Platform) Result[PlayerStats] {
	if platform == "" {
		platform = PlatformPC
	}
	if !platform.Valid() {
		return unexpected[PlayerStats](fmt.Errorf("%w: %q", ErrUnknownPlatform, platform))
	}
	query := url.Values{}
	query.Set("platform", string(platform))
	query.Set("player", username)

	resp, err := c.get(ctx, endpointBridge, query)
	if err != nil {
		return upstreamFailure[PlayerStats](err)
	}
	return normalizePlayerStats(resp)
}

func (c *Client) CraftingRotation(ctx context.Context) Result[CraftingRotation] {
	resp, err := c.get(ctx, endpointCrafting, nil)
	if err != nil {
		return upstreamFailure[CraftingRotation](err)
	}
	return normalizeCrafting(resp)
}

// MapRotation returns the full rotation for ModeAll and a rotation holding
// only the requested mode otherwise. version <= 0 uses the client default.
func (c *Client) MapRotation(ctx context.Context, mode Mode, version int) Result[MapRotation] {
	if !mode.Valid() {
		return unexpected[MapRotation](fmt.Errorf("%w: %q", ErrUnknownMode, mode))
	}
	if version <= 0 {
		version = c.apiVersion
	}
	query := url.Values{}
	query.Set("version", strconv.Itoa(version))

	resp, err := c.get(ctx, endpointMaps, query)
	if err != nil {
		return upstreamFailure[MapRotation](err)
	}
	return normalizeMapRotation(resp, mode)
}

func (c *Client) StoreListing(ctx context.Context) Result[StoreListing] {
	resp, err := c.get(ctx, endpointStore, nil)
	if err != nil {
		return upstreamFailure[StoreListing](err)
	}
	return normalizeStore(resp)
}

type roundTrip struct {
	resp response
	err  error
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (response, *UpstreamError) {
	uri := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	logger := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("endpoint", endpoint).
		Logger()

	if err := ctx.Err(); err != nil {
		return response{}, &UpstreamError{Text: err.Error(), Err: err}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", c.apiKey)

	deadline, hasDeadline := c.deadline(ctx)
	start := time.Now()

	// The goroutine owns req/resp so an abandoned call can still release them.
	done := make(chan roundTrip, 1)
	go func() {
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		var err error
		if hasDeadline {
			err = c.client.DoDeadline(req, resp, deadline)
		} else {
			err = c.client.Do(req, resp)
		}
		if err != nil {
			done <- roundTrip{err: err}
			return
		}
		done <- roundTrip{resp: response{
			status: resp.StatusCode(),
			body:   append([]byte(nil), resp.Body()...),
		}}
	}()

	var rt roundTrip
	select {
	case <-ctx.Done():
		rt.err = ctx.Err()
	case rt = <-done:
	}
	elapsed := time.Since(start)

	if c.observer != nil {
		c.observer.ObserveRequest(endpoint, rt.resp.status, elapsed)
	}

	if rt.err != nil {
		logger.Debug().Err(rt.err).Dur("elapsed", elapsed).Msg("upstream request failed")
		return response{}, &UpstreamError{Text: rt.err.Error(), Err: rt.err}
	}

	logger.Debug().
		Int("status", rt.resp.status).
		Int("bytes", len(rt.resp.body)).
		Dur("elapsed", elapsed).
		Msg("upstream request completed")
	return rt.resp, nil
}

func (c *Client) deadline(ctx context.Context) (time.Time, bool) {
	deadline, ok := ctx.Deadline()
	if c.timeout > 0 {
		byTimeout := time.Now().Add(c.timeout)
		if !ok || byTimeout.Before(deadline) {
			return byTimeout, true
		}
	}
	return deadline, ok
}
