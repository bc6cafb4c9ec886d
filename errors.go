package unraid

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by Client operations. Callers classify failures
// with errors.Is; every error produced by this package wraps exactly one of
// these (or is an *APIError).
var (
	// ErrConnection indicates a transport-level failure: connection refused,
	// DNS failure, a malformed redirect, or an unexpected HTTP status.
	ErrConnection = errors.New("unraid: connection failed")

	// ErrTLS indicates a certificate verification or TLS handshake failure.
	// It wraps ErrConnection, so errors.Is(err, ErrConnection) also holds
	// for callers that only distinguish the broader category.
	ErrTLS = fmt.Errorf("%w: certificate verification failed", ErrConnection)

	// ErrAuth indicates the server rejected the API key (HTTP 401 or 403).
	ErrAuth = errors.New("unraid: invalid API key or insufficient permissions")

	// ErrTimeout indicates the configured timeout elapsed before a response
	// arrived.
	ErrTimeout = errors.New("unraid: request timed out")
)

// GraphQLError is a single entry of the "errors" array in a GraphQL response
// envelope. Servers normally emit objects with a message and an optional
// path, but some emit bare strings; both forms decode into this type.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// UnmarshalJSON accepts either a JSON object or a bare string.
func (e *GraphQLError) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Message = s
		e.Path = nil
		return nil
	}

	type plain GraphQLError
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = GraphQLError(p)
	return nil
}

// String renders the error as "message (path: [a, b, 1])" when a path is
// present, or just the message otherwise.
func (e GraphQLError) String() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	parts := make([]string, len(e.Path))
	for i, p := range e.Path {
		parts[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("%s (path: [%s])", e.Message, strings.Join(parts, ", "))
}

// APIError is returned when the GraphQL envelope carries errors and no usable
// data. It retains the raw error list for programmatic inspection.
type APIError struct {
	Message string
	Errors  []GraphQLError
}

// Error renders the message followed by every GraphQL error joined with "; ".
func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	return e.Message + ": " + joinGraphQLErrors(e.Errors)
}

// joinGraphQLErrors renders a GraphQL error list as a single "; "-joined string.
func joinGraphQLErrors(errs []GraphQLError) string {
	msgs := make([]string, len(errs))
	for i, ge := range errs {
		msgs[i] = ge.String()
	}
	return strings.Join(msgs, "; ")
}
