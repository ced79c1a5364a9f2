package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/workers"
)

type blockingWorker struct {
	stopped atomic.Bool
}

func (w *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	w.stopped.Store(true)
}

func TestNewServer_Validation(t *testing.T) {
	router := http.NewServeMux()

	_, err := NewServer(nil, nil, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlerIsProvided)

	_, err = NewServer(router, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAddressIsProvided)

	srv, err := NewServer(router, nil, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	router := http.NewServeMux()
	router.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	worker := &blockingWorker{}
	srv, err := NewServer(router, workers.NewWorkers(worker), config.Server{HTTPAddress: "localhost:0"}, logger.Nop())
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- srv.(*server).run(ctx, listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, worker.stopped.Load())
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv, err := NewServer(http.NewServeMux(), nil, config.Server{HTTPAddress: busy.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}
