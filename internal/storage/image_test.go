package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, G: 80, B: 120, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestAvatarWebP_ScalesLongestSide(t *testing.T) {
	out, err := AvatarWebP(pngOf(t, 1024, 512), AvatarMaxSide)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "webp", format)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
}

func TestAvatarWebP_KeepsSmallImages(t *testing.T) {
	out, err := AvatarWebP(pngOf(t, 100, 300), AvatarMaxSide)
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}

func TestAvatarWebP_RejectsGarbage(t *testing.T) {
	_, err := AvatarWebP(strings.NewReader("not an image"), AvatarMaxSide)
	assert.ErrorIs(t, err, ErrInvalidImage)
}
