// Package unraid provides a client for the Unraid GraphQL management API.
//
// The client resolves the correct endpoint URL for a server without prior
// knowledge of its TLS posture (plain HTTP, self-signed HTTPS, or a redirect
// through a public relay domain), caches the resolved URL across requests,
// and exposes the API's queries and mutations as typed methods.
package unraid

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	defaultHTTPPort  = 80
	defaultHTTPSPort = 443
	defaultTimeout   = 30 * time.Second

	// DefaultRedirectDomain is the public relay domain Unraid servers
	// redirect to when TLS is set to strict mode.
	DefaultRedirectDomain = "myunraid.net"
)

// Config holds the connection settings for a Client. Host and APIKey are
// required; every other field has a working zero value.
type Config struct {
	// Host is the server hostname or IP, with or without a scheme prefix.
	Host string

	// APIKey is sent as the x-api-key header on every request, including
	// the discovery probe.
	APIKey string

	// HTTPPort is the plaintext port used for redirect discovery (default 80).
	HTTPPort int

	// HTTPSPort is the TLS port (default 443).
	HTTPSPort int

	// InsecureTLS disables certificate verification. The channel remains
	// encrypted when TLS is used, but the server identity is not checked.
	InsecureTLS bool

	// Timeout is the per-request timeout in seconds (default 30).
	Timeout int

	// HTTPClient optionally supplies a pre-built client whose transport
	// (the pooled connection session) should be reused. Ownership stays
	// with the caller: Close never tears it down.
	HTTPClient *http.Client

	// RedirectDomain overrides the relay domain recognized during
	// discovery (default DefaultRedirectDomain).
	RedirectDomain string

	// Logger receives debug-level discovery and partial-failure logs.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Client talks to a single Unraid server. It is safe for concurrent use; the
// underlying HTTP client pools connections across requests.
type Client struct {
	host           string
	apiKey         string
	httpPort       int
	httpsPort      int
	insecureTLS    bool
	timeout        time.Duration
	redirectDomain string
	logger         *slog.Logger

	mu          sync.Mutex
	httpClient  *http.Client
	ownsSession bool
	resolvedURL string
}

// NewClient constructs a Client from cfg. It returns an error if cfg.Host is
// empty. No network activity happens until the first request.
func NewClient(cfg Config) (*Client, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, fmt.Errorf("unraid: host is required")
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = defaultTimeout
	}

	httpPort := cfg.HTTPPort
	if httpPort == 0 {
		httpPort = defaultHTTPPort
	}
	httpsPort := cfg.HTTPSPort
	if httpsPort == 0 {
		httpsPort = defaultHTTPSPort
	}

	redirectDomain := cfg.RedirectDomain
	if redirectDomain == "" {
		redirectDomain = DefaultRedirectDomain
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		host:           host,
		apiKey:         cfg.APIKey,
		httpPort:       httpPort,
		httpsPort:      httpsPort,
		insecureTLS:    cfg.InsecureTLS,
		timeout:        timeout,
		redirectDomain: redirectDomain,
		logger:         logger,
	}

	if cfg.HTTPClient != nil {
		// Reuse the caller's transport (the pooled session) but override
		// redirect handling: endpoint discovery and the one-hop redirect
		// contract both require seeing 3xx responses rather than having
		// them followed transparently.
		injected := *cfg.HTTPClient
		injected.CheckRedirect = noFollowRedirects
		if injected.Timeout == 0 {
			injected.Timeout = timeout
		}
		c.httpClient = &injected
		c.ownsSession = false
	}

	return c, nil
}

// Host returns the host string exactly as configured, scheme prefix and all.
func (c *Client) Host() string { return c.host }

// noFollowRedirects makes the HTTP client surface 3xx responses to the caller.
func noFollowRedirects(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

// ensureSession returns the HTTP client, lazily creating an owned one on
// first use. Calling it again while a session exists returns that same
// session.
func (c *Client) ensureSession() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient != nil {
		return c.httpClient
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}
	if c.insecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- explicit opt-in
		c.logger.Warn("TLS verification disabled; connection is encrypted but server identity is not verified",
			"host", c.host)
	}

	c.httpClient = &http.Client{
		Transport:     transport,
		Timeout:       c.timeout,
		CheckRedirect: noFollowRedirects,
	}
	c.ownsSession = true
	return c.httpClient
}

// Close releases the owned session's pooled connections. A session injected
// through Config.HTTPClient is left untouched. The client remains usable; the
// next request lazily creates a fresh session.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient == nil || !c.ownsSession {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
	c.httpClient = nil
	c.ownsSession = false
}

// ResolvedEndpoint returns the cached endpoint URL, or "" while unresolved.
func (c *Client) ResolvedEndpoint() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolvedURL
}

// InvalidateEndpoint clears the cached endpoint so the next request runs
// discovery again, e.g. after the server's TLS settings changed.
func (c *Client) InvalidateEndpoint() {
	c.setResolvedEndpoint("")
}

func (c *Client) setResolvedEndpoint(u string) {
	c.mu.Lock()
	c.resolvedURL = u
	c.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Request execution
// ---------------------------------------------------------------------------

// graphqlRequest is the JSON body shape for a GraphQL HTTP request.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// envelope is the JSON body shape for a GraphQL HTTP response.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// endpointURL returns the cached endpoint, running discovery first if needed.
// When discovery yields no explicit redirect target, the endpoint is
// synthesized from the host and the detected scheme, appending the configured
// port only when it differs from the scheme's default.
func (c *Client) endpointURL(ctx context.Context) string {
	if u := c.ResolvedEndpoint(); u != "" {
		return u
	}

	redirectURL, useTLS := c.discoverEndpoint(ctx)

	resolved := redirectURL
	if resolved == "" {
		clean := c.cleanHost()
		if useTLS {
			suffix := ""
			if c.httpsPort != defaultHTTPSPort {
				suffix = fmt.Sprintf(":%d", c.httpsPort)
			}
			resolved = fmt.Sprintf("https://%s%s/graphql", clean, suffix)
		} else {
			suffix := ""
			if c.httpPort != defaultHTTPPort {
				suffix = fmt.Sprintf(":%d", c.httpPort)
			}
			resolved = fmt.Sprintf("http://%s%s/graphql", clean, suffix)
		}
	}

	c.setResolvedEndpoint(resolved)
	c.logger.Debug("using endpoint", "url", resolved)
	return resolved
}

// post sends one JSON POST with the API key header. Redirects are not
// followed; the raw response is returned for the caller to classify.
func (c *Client) post(ctx context.Context, session *http.Client, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrConnection, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := session.Do(req)
	if err != nil {
		return nil, translateTransportError(err)
	}
	return resp, nil
}

// doRequest resolves the endpoint if necessary, POSTs the payload, honors at
// most one redirect hop (updating the cached endpoint), and maps the HTTP
// status to the error taxonomy before decoding the envelope.
func (c *Client) doRequest(ctx context.Context, payload graphqlRequest) (*envelope, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("unraid: API key is not configured")
	}

	session := c.ensureSession()
	url := c.endpointURL(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unraid: marshal request: %w", err)
	}

	resp, err := c.post(ctx, session, url, body)
	if err != nil {
		return nil, err
	}

	if isRedirectStatus(resp.StatusCode) {
		location := resp.Header.Get("Location")
		status := resp.StatusCode
		drainBody(resp)
		if location == "" {
			return nil, fmt.Errorf("%w: redirect %d without Location header", ErrConnection, status)
		}
		c.logger.Debug("following redirect", "status", status, "location", location)
		c.setResolvedEndpoint(location)

		// Exactly one hop: a further 3xx from the new location falls
		// through to the generic non-2xx handling below.
		resp, err = c.post(ctx, session, location, body)
		if err != nil {
			return nil, err
		}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w (HTTP %d)", ErrAuth, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: unexpected HTTP status %d", ErrConnection, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrConnection, err)
	}
	return &env, nil
}

// query runs one request and interprets the envelope. GraphQL errors
// accompanied by usable data are logged and tolerated: optional subsystems
// (a UPS that is not attached, Connect when not signed in) legitimately
// error during routine polling. Errors with no data become an *APIError.
func (c *Client) query(ctx context.Context, query string, variables map[string]any) (map[string]any, json.RawMessage, error) {
	env, err := c.doRequest(ctx, graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, nil, err
	}

	data := map[string]any{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, nil, fmt.Errorf("%w: decode data: %v", ErrConnection, err)
		}
	}

	if len(env.Errors) > 0 {
		if len(data) == 0 {
			return nil, nil, &APIError{Message: "GraphQL query failed", Errors: env.Errors}
		}
		c.logger.Debug("some optional features unavailable", "errors", joinGraphQLErrors(env.Errors))
	}

	return data, env.Data, nil
}

// Query executes a GraphQL query and returns the decoded "data" object.
// Variables may be nil, in which case the "variables" key is omitted from
// the request body.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	data, _, err := c.query(ctx, query, variables)
	return data, err
}

// Execute behaves like Query but returns the raw JSON bytes of the "data"
// field, for callers that decode into their own types.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	_, raw, err := c.query(ctx, query, variables)
	return raw, err
}

// Mutate executes a GraphQL mutation. Mutations share the query code path;
// there is no retry and no idempotency handling.
func (c *Client) Mutate(ctx context.Context, mutation string, variables map[string]any) (map[string]any, error) {
	return c.Query(ctx, mutation, variables)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// cleanHost returns the configured host without a scheme prefix or trailing
// slashes, for URL construction. The original string stays available via Host.
func (c *Client) cleanHost() string {
	h := c.host
	if i := strings.Index(h, "://"); i >= 0 {
		h = h[i+3:]
	}
	return strings.TrimRight(h, "/")
}

func isRedirectStatus(code int) bool {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// drainBody discards and closes a response body so the pooled connection can
// be reused.
func drainBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// translateTransportError maps a transport-level failure onto the sentinel
// taxonomy: timeouts to ErrTimeout, certificate problems to ErrTLS, and
// everything else to ErrConnection.
func translateTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case isCertificateError(err):
		return fmt.Errorf("%w: %v", ErrTLS, err)
	default:
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
}

func isCertificateError(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	if errors.As(err, &verifyErr) {
		return true
	}
	var authorityErr x509.UnknownAuthorityError
	if errors.As(err, &authorityErr) {
		return true
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return true
	}
	var invalidErr x509.CertificateInvalidError
	return errors.As(err, &invalidErr)
}
