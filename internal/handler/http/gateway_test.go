package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/krooster-proxy/internal/adapter"
	"github.com/MKhiriev/krooster-proxy/internal/service"
	"github.com/MKhiriev/krooster-proxy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayHandlers_ParamMapping(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantCall string
		wantArgs []string
	}{
		{
			name:     "accounts by username",
			target:   "/krooster_accounts?username=doctor",
			wantCall: service.RouteAccounts,
			wantArgs: []string{"doctor"},
		},
		{
			name:     "operators by user id",
			target:   "/krooster_operators?userId=42",
			wantCall: service.RouteOperators,
			wantArgs: []string{"42"},
		},
		{
			name:     "sheet by id and gid",
			target:   "/sheet?id=abc&gid=7",
			wantCall: service.RouteSheet,
			wantArgs: []string{"abc", "7"},
		},
		{
			name:     "missing username becomes empty",
			target:   "/krooster_accounts",
			wantCall: service.RouteAccounts,
			wantArgs: []string{""},
		},
		{
			name:     "missing userId becomes empty",
			target:   "/krooster_operators",
			wantCall: service.RouteOperators,
			wantArgs: []string{""},
		},
		{
			name:     "missing gid becomes empty",
			target:   "/sheet?id=abc",
			wantCall: service.RouteSheet,
			wantArgs: []string{"abc", ""},
		},
		{
			name:     "encoded value is decoded once",
			target:   "/krooster_accounts?username=a%20b",
			wantCall: service.RouteAccounts,
			wantArgs: []string{"a b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{reply: models.Forwarded{Status: http.StatusOK}}
			router := newTestHandler(gw).Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			require.Len(t, gw.calls, 1)
			assert.Equal(t, tt.wantCall, gw.calls[0])
			assert.Equal(t, tt.wantArgs, gw.args[0])
		})
	}
}

func TestRelay_PassesThroughUpstreamReply(t *testing.T) {
	tests := []struct {
		name  string
		reply models.Forwarded
	}{
		{
			name: "success json",
			reply: models.Forwarded{
				Status:      http.StatusOK,
				Body:        []byte(`[{"username":"doctor"}]`),
				ContentType: "application/json; charset=utf-8",
			},
		},
		{
			name: "not found",
			reply: models.Forwarded{
				Status:      http.StatusNotFound,
				Body:        []byte(`{"message":"no such table"}`),
				ContentType: "application/json",
			},
		},
		{
			name: "unauthorized",
			reply: models.Forwarded{
				Status:      http.StatusUnauthorized,
				Body:        []byte(`{"message":"Invalid API key"}`),
				ContentType: "application/json",
			},
		},
		{
			name: "javascript body from sheets",
			reply: models.Forwarded{
				Status:      http.StatusOK,
				Body:        []byte(`/*O_o*/ google.visualization.Query.setResponse({});`),
				ContentType: "text/javascript; charset=UTF-8",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(&stubGateway{reply: tt.reply}).Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sheet?id=x&gid=0", nil))

			assert.Equal(t, tt.reply.Status, rec.Code)
			assert.Equal(t, tt.reply.ContentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.reply.Body, rec.Body.Bytes())
		})
	}
}

func TestRelay_NoUpstreamContentType(t *testing.T) {
	gw := &stubGateway{reply: models.Forwarded{Status: http.StatusOK, Body: []byte("<html></html>")}}

	srv := httptest.NewServer(newTestHandler(gw).Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/krooster_accounts?username=doctor")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, ok := resp.Header["Content-Type"]
	assert.False(t, ok, "content type must not be sniffed")
}

func TestRelay_EmptyBody(t *testing.T) {
	gw := &stubGateway{reply: models.Forwarded{Status: http.StatusNoContent}}
	router := newTestHandler(gw).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/krooster_operators?userId=1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestRelay_TransportErrorBecomesInternalServerError(t *testing.T) {
	transportErr := &adapter.TransportError{
		Route: service.RouteAccounts,
		Err:   errors.New("dial tcp 127.0.0.1:1: connect: connection refused"),
	}
	router := newTestHandler(&stubGateway{err: transportErr}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/krooster_accounts?username=doctor", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"dial tcp 127.0.0.1:1: connect: connection refused"}`, rec.Body.String())
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(&adapter.TransportError{Err: errors.New("x")}))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("unexpected")))
}
