package ethermaker

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/io7m-com/ethermaker/pkg/util/xmac"
)

// constReader 每次读取都返回同一个字节
type constReader byte

func (c constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

func seeded(seed byte) *rand.ChaCha8 {
	var s [32]byte
	s[0] = seed
	return rand.NewChaCha8(s)
}

func TestGenerator_Distinct(t *testing.T) {
	addrs, err := NewGenerator(GenerateOptions{Count: 500, Unicast: true, Random: seeded(1)}, nil).
		Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, addrs, 500)

	seen := make(map[xmac.Addr]bool)
	for _, a := range addrs {
		assert.False(t, seen[a], "duplicate %s", a)
		seen[a] = true
		assert.True(t, a.IsUnicast())
	}
}

func TestGenerator_CountFive(t *testing.T) {
	for range 20 {
		addrs, err := NewGenerator(GenerateOptions{Count: 5, Unicast: true}, nil).Generate(context.Background())
		require.NoError(t, err)
		require.Len(t, addrs, 5)
		set := make(map[xmac.Addr]struct{})
		for _, a := range addrs {
			set[a] = struct{}{}
		}
		assert.Len(t, set, 5)
	}
}

func TestGenerator_ZeroCount(t *testing.T) {
	addrs, err := NewGenerator(GenerateOptions{Random: constReader(0)}, nil).Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, addrs)
}

type countingReader struct{ n int }

func (c *countingReader) Read(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

func TestGenerator_InvalidArgumentsBeforeDraw(t *testing.T) {
	r := &countingReader{}

	_, err := NewGenerator(GenerateOptions{Count: -1, Random: r}, nil).Generate(context.Background())
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = NewGenerator(GenerateOptions{Count: 1, MaxAttempts: -1, Random: r}, nil).Generate(context.Background())
	assert.ErrorIs(t, err, ErrNegativeAttempts)

	assert.Zero(t, r.n, "no draws on invalid arguments")
}

func TestGenerator_Forcing(t *testing.T) {
	tests := []struct {
		name      string
		opts      GenerateOptions
		multicast bool
		local     bool
	}{
		{"unicast", GenerateOptions{Unicast: true}, false, false},
		{"multicast", GenerateOptions{Multicast: true}, true, false},
		{"unicast wins over multicast", GenerateOptions{Multicast: true, Unicast: true}, false, false},
		{"local unicast", GenerateOptions{Unicast: true, Local: true}, false, true},
		{"local multicast", GenerateOptions{Multicast: true, Local: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Count = 200
			opts.Random = seeded(2)

			addrs, err := NewGenerator(opts, nil).Generate(context.Background())
			require.NoError(t, err)
			for _, a := range addrs {
				assert.Equal(t, tt.multicast, a.IsMulticast(), a.String())
				if tt.local {
					assert.True(t, a.IsLocallyAdministered(), a.String())
				}
				assert.False(t, a.IsBroadcast())
			}
		})
	}
}

func TestGenerator_Organization(t *testing.T) {
	org := xmac.MustParseOrganization("f497c2")

	addrs, err := NewGenerator(GenerateOptions{Organization: &org, Count: 50, Random: seeded(3)}, nil).
		Generate(context.Background())
	require.NoError(t, err)
	for _, a := range addrs {
		assert.Equal(t, "f497c2", a.Organization())
	}
}

func TestGenerator_DiscardsBroadcast(t *testing.T) {
	_, err := NewGenerator(GenerateOptions{Count: 1, MaxAttempts: 10, Random: constReader(0xff)}, nil).
		Generate(context.Background())

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr), "got %v", err)
	assert.Equal(t, GenerationError{Requested: 1, Generated: 0, Attempts: 10}, *genErr)
}

func TestGenerator_AttemptsExceeded(t *testing.T) {
	logger, logs := newTestLogger(t)

	_, err := NewGenerator(GenerateOptions{Count: 2, Unicast: true, MaxAttempts: 5, Random: constReader(0)}, logger).
		Generate(context.Background())
	assert.ErrorIs(t, err, ErrAttemptsExceeded)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, 1, genErr.Generated)
	assert.Equal(t, 5, genErr.Attempts)
	assert.Equal(t, "ethermaker: generated 1 of 2 distinct addresses in 5 attempts", genErr.Error())
	assert.Contains(t, logs.String(), "discarded duplicate address")
}

func TestGenerator_CancelUnbounded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(GenerateOptions{Count: 2, Random: constReader(0)}, nil).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerator_RandomSourceError(t *testing.T) {
	_, err := NewGenerator(GenerateOptions{Count: 1, Random: errReader{}}, nil).Generate(context.Background())
	assert.ErrorIs(t, err, xmac.ErrRandomSource)
}

func TestGenerator_Deterministic(t *testing.T) {
	gen := func() []xmac.Addr {
		addrs, err := NewGenerator(GenerateOptions{Count: 10, Unicast: true, Random: seeded(9)}, nil).
			Generate(context.Background())
		require.NoError(t, err)
		return addrs
	}
	assert.Equal(t, gen(), gen(), "same seed, same order")
}
