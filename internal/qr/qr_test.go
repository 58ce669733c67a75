// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	data, err := PNG("https://example.com", Medium, DefaultSize)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
	assert.Equal(t, DefaultSize, img.Bounds().Dy())
}

func TestPNGLevels(t *testing.T) {
	for _, l := range []Level{Low, Medium, High, Highest, "h", ""} {
		_, err := PNG("calckit", l, MinSize)
		assert.NoError(t, err, "level %q", l)
	}
}

func TestTerminal(t *testing.T) {
	s, err := Terminal("calckit", Low, false)
	require.NoError(t, err)
	assert.Contains(t, s, "\n")

	inv, err := Terminal("calckit", Low, true)
	require.NoError(t, err)
	assert.NotEqual(t, s, inv)
}

func TestErrors(t *testing.T) {
	_, err := PNG("", Medium, DefaultSize)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Terminal("x", "Z", false)
	assert.ErrorIs(t, err, ErrUnknownLevel)

	_, err = PNG("x", Medium, MaxSize+1)
	assert.ErrorIs(t, err, ErrSize)
	_, err = PNG("x", Medium, 0)
	assert.ErrorIs(t, err, ErrSize)
}
