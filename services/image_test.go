package services

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDownscaleImageAboveThreshold(t *testing.T) {
	data := testPNG(t, 400, 300)

	out, resized, err := DownscaleImage(data, 200, 85)
	if err != nil {
		t.Fatal(err)
	}
	if !resized {
		t.Fatal("expected a downscale")
	}

	w, h, err := ImageDimensions(out)
	if err != nil {
		t.Fatal(err)
	}
	if w != 200 {
		t.Errorf("expected width 200, got %d", w)
	}
	if h != 150 {
		t.Errorf("expected proportional height 150, got %d", h)
	}
}

func TestDownscaleImageBelowThreshold(t *testing.T) {
	data := testPNG(t, 120, 90)

	out, resized, err := DownscaleImage(data, 200, 85)
	if err != nil {
		t.Fatal(err)
	}
	if resized {
		t.Error("image below threshold should not be resized")
	}
	if out != nil {
		t.Error("expected nil output when no resize happens")
	}
}

func TestDownscaleImageExactWidth(t *testing.T) {
	data := testPNG(t, 200, 50)

	_, resized, err := DownscaleImage(data, 200, 85)
	if err != nil {
		t.Fatal(err)
	}
	if resized {
		t.Error("image at exactly the threshold should pass through")
	}
}

func TestDownscaleImageRejectsGarbage(t *testing.T) {
	if _, _, err := DownscaleImage([]byte("not an image"), 200, 85); err == nil {
		t.Error("expected an error for undecodable data")
	}
}
