package utils

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"product-photo.jpg", "product-photo"},
		{"../../etc/passwd", "passwd"},
		{"hello world (1).png", "hello_world_1"},
		{"显示屏.jpg", "file"},
		{"...", "file"},
		{"", "file"},
		{"UPPER_case-ok.webp", "UPPER_case-ok"},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeFilenameCapsLength(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("a", 200) + ".jpg")
	if len(got) != 80 {
		t.Errorf("expected 80-char stem, got %d chars", len(got))
	}
}

func TestFileExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.JPG", "jpg"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
		{"video.MP4", "mp4"},
	}
	for _, c := range cases {
		if got := FileExtension(c.in); got != c.want {
			t.Errorf("FileExtension(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
