package erapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/adapters/fx/erapi"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
)

func TestClient_FetchRates_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","base_code":"USD","rates":{"USD":1,"UYU":40.5,"ARS":950}}`))
	}))
	defer srv.Close()

	client := erapi.NewClient(srv.URL, 2*time.Second)
	table, err := client.FetchRates(context.Background(), "usd")
	require.NoError(t, err)

	assert.Equal(t, "USD", table.Base)
	rate, ok := table.Rate("UYU")
	require.True(t, ok)
	assert.Equal(t, "40.5", rate.String())
	assert.WithinDuration(t, time.Now(), table.FetchedAt, 5*time.Second)
}

func TestClient_FetchRates_DropsNonPositiveRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","rates":{"UYU":40,"BAD":0,"WORSE":-1}}`))
	}))
	defer srv.Close()

	client := erapi.NewClient(srv.URL, 2*time.Second)
	table, err := client.FetchRates(context.Background(), "USD")
	require.NoError(t, err)

	_, ok := table.Rate("BAD")
	assert.False(t, ok)
	_, ok = table.Rate("WORSE")
	assert.False(t, ok)
}

func TestClient_FetchRates_EmptyPayloadIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","rates":{}}`))
	}))
	defer srv.Close()

	client := erapi.NewClient(srv.URL, 2*time.Second)
	_, err := client.FetchRates(context.Background(), "USD")
	require.ErrorIs(t, err, apperrors.ErrProvider)
}

func TestClient_FetchRates_HTTPErrorIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := erapi.NewClient(srv.URL, 2*time.Second)
	_, err := client.FetchRates(context.Background(), "USD")
	require.ErrorIs(t, err, apperrors.ErrProvider)
}

func TestClient_FetchRates_FailureResultIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	}))
	defer srv.Close()

	client := erapi.NewClient(srv.URL, 2*time.Second)
	_, err := client.FetchRates(context.Background(), "XXX")
	require.ErrorIs(t, err, apperrors.ErrProvider)
}

func TestClient_FetchRates_EmptyBaseDefaultsToUSD(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"result":"success","rates":{"UYU":40}}`))
	}))
	defer srv.Close()

	client := erapi.NewClient(srv.URL, 2*time.Second)
	table, err := client.FetchRates(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/USD", gotPath)
	assert.Equal(t, "USD", table.Base)
}
