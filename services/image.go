package services

import (
	"bytes"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DownscaleImage decodes data and, when the image is wider than maxWidth,
// scales it proportionally to maxWidth and re-encodes it as JPEG at the
// given quality. The second return value reports whether a downscale
// happened; when false the caller should store the original bytes as-is.
func DownscaleImage(data []byte, maxWidth, quality int) ([]byte, bool, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	if width <= maxWidth {
		return nil, false, nil
	}

	height := bounds.Dy() * maxWidth / width
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}

// ImageDimensions reports the decoded width and height of data.
func ImageDimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
