package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	AvatarMaxSide   = 512
	AvatarMaxBytes  = 5 << 20
	WebPContentType = "image/webp"
)

var ErrInvalidImage = errors.New("invalid image")

// AvatarWebP decodifica PNG/JPEG/WebP, reduz o lado maior para no máximo
// maxSide mantendo a proporção e reencoda em WebP.
func AvatarWebP(r io.Reader, maxSide int) ([]byte, error) {
	src, _, err := image.Decode(io.LimitReader(r, AvatarMaxBytes))
	if err != nil {
		return nil, ErrInvalidImage
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, ErrInvalidImage
	}

	var out image.Image = src
	if w > maxSide || h > maxSide {
		nw, nh := maxSide, maxSide
		if w >= h {
			nh = h * maxSide / w
		} else {
			nw = w * maxSide / h
		}
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, out, &webp.Options{Quality: 82}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
