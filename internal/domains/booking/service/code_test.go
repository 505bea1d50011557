package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Generate(t *testing.T) {
	tests := []struct {
		name   string
		random []byte
		taken  []string
		want   string
	}{
		{
			name:   "first candidate is free",
			random: []byte{0, 1, 2, 35},
			want:   "SC-20261017-ABC9",
		},
		{
			name:   "bytes above the ceiling are redrawn",
			random: []byte{255, 252, 36, 37, 38, 39},
			want:   "SC-20261017-ABCD",
		},
		{
			name:   "taken code is retried",
			random: []byte{0, 0, 0, 0, 1, 1, 1, 1},
			taken:  []string{"SC-20261017-AAAA"},
			want:   "SC-20261017-BBBB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newStore()
			for _, code := range tt.taken {
				st.takenCode[code] = true
			}

			gen := &codeGenerator{
				store:  fakeBookings{st},
				random: bytes.NewReader(tt.random),
				now:    func() time.Time { return fixedNow },
			}

			code, err := gen.Generate(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
			assert.Regexp(t, `^SC-\d{8}-[A-Z0-9]{4}$`, code)
		})
	}
}

func TestCodeGenerator_StopsWhenContextIsDone(t *testing.T) {
	st := newStore()
	st.takenCode["SC-20261017-AAAA"] = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &codeGenerator{
		store:  fakeBookings{st},
		random: bytes.NewReader(make([]byte, 64)),
		now:    func() time.Time { return fixedNow },
	}

	_, err := gen.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCodeGenerator_RandomFailure(t *testing.T) {
	gen := &codeGenerator{
		store:  fakeBookings{newStore()},
		random: bytes.NewReader([]byte{1, 2}),
		now:    func() time.Time { return fixedNow },
	}

	_, err := gen.Generate(context.Background())
	require.Error(t, err)
}
