package ethermaker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/io7m-com/ethermaker/pkg/util/xmac"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{" JSON ", FormatJSON, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite(t *testing.T) {
	addrs := []xmac.Addr{
		xmac.MustParse("02:00:00:00:00:01"),
		xmac.MustParse("00:00:00:00:00:00"),
	}

	var text bytes.Buffer
	require.NoError(t, Write(&text, addrs, FormatText))
	assert.Equal(t, "02:00:00:00:00:01\n00:00:00:00:00:00\n", text.String())

	var js bytes.Buffer
	require.NoError(t, Write(&js, addrs, FormatJSON))
	assert.Equal(t, "\"02:00:00:00:00:01\"\n\"00:00:00:00:00:00\"\n", js.String())

	var empty bytes.Buffer
	require.NoError(t, Write(&empty, nil, FormatText))
	assert.Empty(t, empty.String())

	assert.ErrorIs(t, Write(&empty, addrs, Format("xml")), ErrUnknownFormat)
}
