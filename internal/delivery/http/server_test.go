package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"notaspro/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_GracefulShutdownIsClean(t *testing.T) {
	echoServer := echo.New()
	echoServer.HideBanner = true

	cfg := &config.Config{}
	cfg.HTTP.Port = 0 // ephemeral port

	srv := &httpServer{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		server: echoServer,
	}

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(context.Background())
	}()

	require.Eventually(t, func() bool {
		return echoServer.ListenerAddr() != nil
	}, 2*time.Second, 10*time.Millisecond, "server never started listening")

	require.NoError(t, srv.stop(context.Background()))

	select {
	case err := <-served:
		// A shutdown triggered by the stop hook is not a serve failure;
		// reporting it as one would exit the process before the remaining
		// stop hooks run.
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after shutdown")
	}
}
