package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/MobiPetApp/mobipet-server/internal/httperr"
)

const maxImageDim = 1024

// EncodeWebP decodes an uploaded JPEG/PNG, scales it down to fit the maximum
// dimension, and re-encodes it as WebP for storage.
func EncodeWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_image", "The uploaded file is not a supported image.")
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageDim || h > maxImageDim {
		if w >= h {
			h = h * maxImageDim / w
			w = maxImageDim
		} else {
			w = w * maxImageDim / h
			h = maxImageDim
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
