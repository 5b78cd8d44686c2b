package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	main "github.com/fwojciec/wordfreq/cmd/wordfreq"
	"github.com/fwojciec/wordfreq/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      ctx,
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Logger:   slog.New(slog.DiscardHandler),
			Analyzer: &mock.Analyzer{},
			Charts:   &mock.ChartRenderer{},
			Sessions: &mock.SessionService{},
		}

		cmd := &main.ServeCmd{Addr: "127.0.0.1:0"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Serving on http://localhost:")
	})

	t.Run("returns error for invalid address", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Logger: slog.New(slog.DiscardHandler),
		}

		cmd := &main.ServeCmd{Addr: "127.0.0.1:-1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to listen")
	})
}
