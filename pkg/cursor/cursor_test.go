package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	c := Cursor{UpdatedAt: ts, ID: 42}

	decoded, err := Decode(c.Encode())
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.Equal(t, int64(42), decoded.ID)
	assert.True(t, decoded.UpdatedAt.Equal(ts))
}

func TestDecodeEmptyReturnsNil(t *testing.T) {
	c, err := Decode("")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, s := range []string{
		"not-base64!!!",
		"aGVsbG8",              // base64 但不是 JSON
		"eyJpZCI6MH0",          // id 为 0
		"eyJmb28iOiJiYXIifQ",   // 缺少排序键
	} {
		_, err := Decode(s)
		assert.ErrorIs(t, err, ErrInvalidCursor, "input %q", s)
	}
}
