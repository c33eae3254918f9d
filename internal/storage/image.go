package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeWebP = "image/webp"
	MimeGIF  = "image/gif"
)

// MaxImagePixels caps width*height. The byte limit on uploads does not bound
// what a decoder allocates, so the header is checked before any full decode.
const MaxImagePixels = 40_000_000

var (
	ErrImageDimensions = errors.New("storage: image dimensions exceed limit")
	ErrImageHeader     = errors.New("storage: unreadable image header")
)

// SniffImage reports the content type from the leading bytes; the filename
// and client-supplied header are never trusted.
func SniffImage(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}

func IsAllowedImage(mime string) bool {
	switch mime {
	case MimeJPEG, MimePNG, MimeWebP, MimeGIF:
		return true
	}
	return false
}

func decode(data []byte, mime string) (image.Image, error) {
	r := bytes.NewReader(data)
	switch mime {
	case MimeJPEG:
		return jpeg.Decode(r)
	case MimePNG:
		return png.Decode(r)
	case MimeWebP:
		return webp.Decode(r)
	case MimeGIF:
		// first frame only
		return gif.Decode(r)
	}
	return nil, fmt.Errorf("storage: unsupported image type %q", mime)
}

func decodeConfig(data []byte, mime string) (image.Config, error) {
	r := bytes.NewReader(data)
	switch mime {
	case MimeJPEG:
		return jpeg.DecodeConfig(r)
	case MimePNG:
		return png.DecodeConfig(r)
	case MimeWebP:
		return webp.DecodeConfig(r)
	case MimeGIF:
		return gif.DecodeConfig(r)
	}
	return image.Config{}, fmt.Errorf("storage: unsupported image type %q", mime)
}

// CheckDimensions reads only the image header and rejects pictures larger
// than MaxImagePixels.
func CheckDimensions(data []byte, mime string) error {
	cfg, err := decodeConfig(data, mime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageHeader, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ErrImageHeader
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return ErrImageDimensions
	}
	return nil
}

// fit scales src down, keeping aspect, so it fits in maxW x maxH.
func fit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

var DefaultWebPOptions = WebPOptions{MaxW: 1024, MaxH: 1024, Quality: 80}

// ToWebP decodes data (of the sniffed mime) and re-encodes it as lossy WebP.
func ToWebP(data []byte, mime string, opt WebPOptions) ([]byte, error) {
	if err := CheckDimensions(data, mime); err != nil {
		return nil, err
	}
	img, err := decode(data, mime)
	if err != nil {
		return nil, fmt.Errorf("storage: decode: %w", err)
	}
	img = fit(img, opt.MaxW, opt.MaxH)

	q := opt.Quality
	if q <= 0 {
		q = DefaultWebPOptions.Quality
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: q}); err != nil {
		return nil, fmt.Errorf("storage: encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
