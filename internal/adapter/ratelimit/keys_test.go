package ratelimit_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taracare/askgate/internal/adapter/ratelimit"
)

func TestClientKey(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		remoteAddr string
		want       string
	}{
		{name: "forwarded single", xff: "203.0.113.7", remoteAddr: "10.0.0.1:55001", want: "203.0.113.7"},
		{name: "forwarded chain takes first", xff: "203.0.113.7, 10.0.0.2, 10.0.0.3", remoteAddr: "10.0.0.1:55001", want: "203.0.113.7"},
		{name: "no proxy header", remoteAddr: "192.0.2.10:44321", want: "192.0.2.10"},
		{name: "remote addr without port", remoteAddr: "192.0.2.10", want: "192.0.2.10"},
		{name: "nothing derivable", remoteAddr: "", want: ratelimit.PlaceholderKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/ai", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, ratelimit.ClientKey(r))
		})
	}
}
