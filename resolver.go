package unraid

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// httpsRequiredSentinel is the body nginx returns when a plaintext request
// hits a TLS-only port. The match is best-effort: differently configured
// reverse proxies may word it differently, in which case the generic
// "400 means HTTP is reachable" fallback applies.
const httpsRequiredSentinel = "the plain http request was sent to https port"

// probeBodyLimit bounds how much of the 400 body is read for the sentinel check.
const probeBodyLimit = 4096

// discoverEndpoint probes the server to determine its TLS posture.
//
// Unraid servers run in one of three SSL/TLS modes:
//   - No: plain HTTP, no redirect
//   - Yes: HTTP redirects to HTTPS with a self-signed certificate
//   - Strict: HTTP redirects to the public relay domain with a valid certificate
//
// The return value is (redirectURL, useTLS): a non-empty redirectURL is the
// exact endpoint to use (Strict or Yes mode); otherwise useTLS selects the
// scheme for a synthesized endpoint. A probe that cannot complete at all is
// treated conservatively as "TLS required".
//
// Discovery is idempotent and has no side effects beyond the single GET; it
// never writes the resolved-endpoint cache itself.
func (c *Client) discoverEndpoint(ctx context.Context) (redirectURL string, useTLS bool) {
	session := c.ensureSession()
	clean := c.cleanHost()

	// Equal ports mean the one port already serves TLS; probing it with
	// plaintext would only draw a confusing rejection from the proxy.
	if c.httpPort == c.httpsPort {
		c.logger.Debug("http and https ports are equal, assuming HTTPS",
			"port", c.httpPort, "host", clean)
		return "", true
	}

	suffix := ""
	if c.httpPort != defaultHTTPPort {
		suffix = fmt.Sprintf(":%d", c.httpPort)
	}
	probeURL := fmt.Sprintf("http://%s%s/graphql", clean, suffix)
	c.logger.Debug("checking for redirect", "url", probeURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		c.logger.Debug("HTTP probe failed, falling back to HTTPS", "error", err)
		return "", true
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := session.Do(req)
	if err != nil {
		c.logger.Debug("HTTP probe failed, falling back to HTTPS", "error", err)
		return "", true
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("HTTP probe response", "status", resp.StatusCode)

	if isRedirectStatus(resp.StatusCode) {
		if target, ok := c.classifyRedirect(resp.Header.Get("Location")); ok {
			return target, true
		}
	}

	if resp.StatusCode == http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, probeBodyLimit))
		if strings.Contains(strings.ToLower(string(body)), httpsRequiredSentinel) {
			c.logger.Info("HTTP probe rejected: plain HTTP sent to HTTPS port, server requires HTTPS",
				"host", clean)
			return "", true
		}
	}

	// Any response that arrived at all proves plaintext HTTP works at the
	// transport level, error statuses included.
	c.logger.Info("HTTP endpoint accessible, SSL/TLS mode is 'No'",
		"status", resp.StatusCode, "host", clean)
	return "", false
}

// classifyRedirect inspects a discovery redirect target. It reports the
// endpoint URL to use and true for relay-domain (Strict mode) and HTTPS
// (Yes mode) targets; anything else returns false so the caller falls
// through to the plain-HTTP outcome.
func (c *Client) classifyRedirect(location string) (string, bool) {
	if location == "" {
		return "", false
	}
	parsed, err := url.Parse(location)
	if err != nil {
		return "", false
	}
	hostname := parsed.Hostname()

	// Strict mode: the server forces traffic through the publicly
	// verifiable relay domain. Use the redirect target verbatim.
	if hostname != "" && (hostname == c.redirectDomain || strings.HasSuffix(hostname, "."+c.redirectDomain)) {
		c.logger.Info("discovered relay redirect (Strict mode)", "url", location)
		return location, true
	}

	// Yes mode: self-signed HTTPS. An explicit :443 is implied by the
	// scheme, so normalize it away.
	if parsed.Scheme == "https" {
		normalized := location
		if parsed.Port() == "443" {
			normalized = "https://" + hostname + parsed.Path
		}
		c.logger.Info("discovered HTTPS redirect (Yes mode)", "url", normalized)
		return normalized, true
	}

	return "", false
}
