package unraid

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func Test_SentinelHierarchy(t *testing.T) {
	// ErrTLS is a specialization of ErrConnection.
	if !errors.Is(ErrTLS, ErrConnection) {
		t.Error("errors.Is(ErrTLS, ErrConnection) = false, want true")
	}
	if errors.Is(ErrConnection, ErrTLS) {
		t.Error("errors.Is(ErrConnection, ErrTLS) = true, want false")
	}
	if errors.Is(ErrAuth, ErrConnection) {
		t.Error("ErrAuth must not match ErrConnection")
	}
	if errors.Is(ErrTimeout, ErrConnection) {
		t.Error("ErrTimeout must not match ErrConnection")
	}

	// Wrapping preserves the chain.
	wrapped := fmt.Errorf("%w: extra context", ErrTLS)
	if !errors.Is(wrapped, ErrTLS) || !errors.Is(wrapped, ErrConnection) {
		t.Errorf("wrapped TLS error lost its chain: %v", wrapped)
	}
}

func Test_GraphQLError_UnmarshalJSON_Cases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMsg  string
		wantPath []any
		wantErr  bool
	}{
		{
			name:    "object with message",
			input:   `{"message":"Cannot query field"}`,
			wantMsg: "Cannot query field",
		},
		{
			name:     "object with message and path",
			input:    `{"message":"UPS not available","path":["upsDevices",0]}`,
			wantMsg:  "UPS not available",
			wantPath: []any{"upsDevices", float64(0)},
		},
		{
			name:    "bare string",
			input:   `"something went wrong"`,
			wantMsg: "something went wrong",
		},
		{
			name:    "object with extra fields ignored",
			input:   `{"message":"boom","locations":[{"line":1}],"extensions":{"code":"X"}}`,
			wantMsg: "boom",
		},
		{
			name:    "invalid JSON",
			input:   `42x`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ge GraphQLError
			err := json.Unmarshal([]byte(tt.input), &ge)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if ge.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", ge.Message, tt.wantMsg)
			}
			if len(ge.Path) != len(tt.wantPath) {
				t.Errorf("Path = %v, want %v", ge.Path, tt.wantPath)
			}
		})
	}
}

func Test_GraphQLError_String(t *testing.T) {
	tests := []struct {
		name string
		ge   GraphQLError
		want string
	}{
		{
			name: "message only",
			ge:   GraphQLError{Message: "boom"},
			want: "boom",
		},
		{
			name: "message with path",
			ge:   GraphQLError{Message: "boom", Path: []any{"a", "b", 1}},
			want: "boom (path: [a, b, 1])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ge.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_APIError_Error(t *testing.T) {
	err := &APIError{
		Message: "GraphQL query failed",
		Errors: []GraphQLError{
			{Message: "first"},
			{Message: "second", Path: []any{"x"}},
		},
	}
	got := err.Error()
	if !strings.HasPrefix(got, "GraphQL query failed: ") {
		t.Errorf("Error() = %q, want message prefix", got)
	}
	if !strings.Contains(got, "first; second (path: [x])") {
		t.Errorf("Error() = %q, want joined error list", got)
	}

	empty := &APIError{Message: "GraphQL query failed"}
	if empty.Error() != "GraphQL query failed" {
		t.Errorf("Error() with no list = %q", empty.Error())
	}
}
