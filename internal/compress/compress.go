// Package compress shrinks transfer evidence photos to an uploadable size.
package compress

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"time"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// MaxBytes is the upload ceiling for an evidence photo.
	MaxBytes = 1 << 20
	// MaxDimension caps the longer side before quality stepping begins.
	MaxDimension = 1920

	qualityStart = 95
	qualityFloor = 50
	qualityStep  = 10
)

// Result is a compressed photo ready for the transfer_bank upload.
type Result struct {
	Data     []byte
	FileName string
	Width    int
	Height   int
}

// Compress re-encodes a camera photo as JPEG under MaxBytes. The source may
// be JPEG, PNG, GIF, or WebP. A JPEG already under the limits passes through
// unchanged apart from the generated file name.
func Compress(data []byte) (Result, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("decode evidence photo: %w", err)
	}

	b := img.Bounds()
	if format == "jpeg" && len(data) <= MaxBytes {
		return Result{Data: data, FileName: newFileName(), Width: b.Dx(), Height: b.Dy()}, nil
	}

	if b.Dx() > MaxDimension || b.Dy() > MaxDimension {
		img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	out, err := encodeUnder(img)
	if err != nil {
		return Result{}, err
	}
	fit := img.Bounds()
	return Result{Data: out, FileName: newFileName(), Width: fit.Dx(), Height: fit.Dy()}, nil
}

// encodeUnder steps JPEG quality down from 95 to 50; when even the floor is
// too big it shrinks the image by a quarter and starts over. Each shrink
// strictly reduces the pixel count, so the walk terminates.
func encodeUnder(img image.Image) ([]byte, error) {
	for {
		var last []byte
		for q := qualityStart; q >= qualityFloor; q -= qualityStep {
			var buf bytes.Buffer
			if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
				return nil, fmt.Errorf("encode jpeg: %w", err)
			}
			last = buf.Bytes()
			if len(last) <= MaxBytes {
				return last, nil
			}
		}

		w := img.Bounds().Dx() * 3 / 4
		if w < 1 {
			return last, nil
		}
		img = imaging.Resize(img, w, 0, imaging.Lanczos)
	}
}

func newFileName() string {
	return fmt.Sprintf("transfer_%d_%s.jpg", time.Now().Unix(), uuid.NewString()[:8])
}
