package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-nft-market/internal/config"
	"github.com/MKhiriev/go-nft-market/internal/handler"
	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cleanups ...Cleanup) *server {
	t.Helper()

	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop(), cleanups...)
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesUntilCancelledThenCleansUp(t *testing.T) {
	var order []string
	srv := newTestServer(t,
		Cleanup{Name: "pool", Fn: func(context.Context) error {
			order = append(order, "pool")
			return nil
		}},
		Cleanup{Name: "storages", Fn: func(context.Context) error {
			order = append(order, "storages")
			return nil
		}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	var addr net.Addr
	select {
	case addr = <-srv.ready:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := resty.New().R().Get("http://" + addr.String() + "/health_check")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Empty(t, resp.Body())

	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, []string{"pool", "storages"}, order)
}

func TestServer_ShutdownRunsEveryCleanup(t *testing.T) {
	errPool := errors.New("pool busy")
	var storagesClosed bool
	srv := newTestServer(t,
		Cleanup{Name: "pool", Fn: func(context.Context) error { return errPool }},
		Cleanup{Name: "storages", Fn: func(context.Context) error {
			storagesClosed = true
			return nil
		}},
	)

	err := srv.Shutdown(context.Background())

	require.ErrorIs(t, err, errPool)
	assert.True(t, storagesClosed)
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := newTestServer(t)
	srv.httpServer.server.Addr = ln.Addr().String()

	err = srv.run(context.Background())
	require.Error(t, err)
}
