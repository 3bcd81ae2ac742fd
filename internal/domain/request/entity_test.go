//go:build unit

package request_test

import (
	"testing"

	"sessionbook/internal/domain/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	guest := uuid.New()

	t.Run("opens addressed to any host", func(t *testing.T) {
		r, err := request.NewRequest(guest, uuid.Nil, 1000, 5000, 45, 5_000_000, 4000)
		require.NoError(t, err)
		assert.Equal(t, request.StatusOpen, r.Status())
		assert.True(t, r.IsOpen())
		assert.True(t, r.AnyHost())
	})

	t.Run("addressed to a specific host", func(t *testing.T) {
		host := uuid.New()
		r, err := request.NewRequest(guest, host, 1000, 5000, 45, 5_000_000, 4000)
		require.NoError(t, err)
		assert.False(t, r.AnyHost())
		assert.Equal(t, host, r.Host())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name                                                 string
			windowStart, windowEnd, durationMins, price, deadline int64
			wantErr                                              error
		}{
			{"inverted window", 5000, 1000, 45, 5_000_000, 4000, request.ErrInvalidWindow},
			{"empty window", 1000, 1000, 45, 5_000_000, 4000, request.ErrInvalidWindow},
			{"zero duration", 1000, 5000, 0, 5_000_000, 4000, request.ErrInvalidDuration},
			{"zero deadline", 1000, 5000, 45, 5_000_000, 0, request.ErrInvalidDeadline},
			{"negative price", 1000, 5000, 45, -1, 4000, request.ErrNegativePrice},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := request.NewRequest(guest, uuid.Nil, tt.windowStart, tt.windowEnd, tt.durationMins, tt.price, tt.deadline)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestRequestTransitions(t *testing.T) {
	open := func(t *testing.T) *request.Request {
		t.Helper()
		r, err := request.NewRequest(uuid.New(), uuid.Nil, 1000, 5000, 45, 5_000_000, 4000)
		require.NoError(t, err)
		return r
	}

	t.Run("accept closes the request", func(t *testing.T) {
		r := open(t)
		require.NoError(t, r.Accept())
		assert.Equal(t, request.StatusAccepted, r.Status())
		assert.ErrorIs(t, r.Cancel(), request.ErrAlreadyClosed)
		assert.ErrorIs(t, r.Accept(), request.ErrAlreadyClosed)
	})

	t.Run("cancel closes the request", func(t *testing.T) {
		r := open(t)
		require.NoError(t, r.Cancel())
		assert.Equal(t, request.StatusCancelled, r.Status())
		assert.ErrorIs(t, r.Accept(), request.ErrAlreadyClosed)
	})
}
