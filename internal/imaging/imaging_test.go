package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

// decodeDataURI strips the data URI prefix and decodes the JPEG payload.
func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()

	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("expected data URI prefix, got %q", uri[:min(len(uri), 30)])
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decoding base64: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	return img
}

func TestProcessJPEG(t *testing.T) {
	uri, err := Process(bytes.NewReader(createTestJPEG(100, 100)), PhotoMaxDimension)
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	decodeDataURI(t, uri)
}

func TestProcessPNGOutputsJPEG(t *testing.T) {
	uri, err := Process(bytes.NewReader(createTestPNG(100, 100)), PhotoMaxDimension)
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	// PNG input is re-encoded as JPEG.
	decodeDataURI(t, uri)
}

func TestProcessDownscale(t *testing.T) {
	uri, err := Process(bytes.NewReader(createTestJPEG(2048, 2048)), PhotoMaxDimension)
	if err != nil {
		t.Fatalf("Process large image: %v", err)
	}

	bounds := decodeDataURI(t, uri).Bounds()
	if bounds.Dx() > PhotoMaxDimension || bounds.Dy() > PhotoMaxDimension {
		t.Errorf("expected max %d, got %dx%d", PhotoMaxDimension, bounds.Dx(), bounds.Dy())
	}
}

func TestProcessAvatarBounds(t *testing.T) {
	uri, err := Process(bytes.NewReader(createTestJPEG(800, 400)), AvatarMaxDimension)
	if err != nil {
		t.Fatalf("Process avatar: %v", err)
	}

	bounds := decodeDataURI(t, uri).Bounds()
	if bounds.Dx() != AvatarMaxDimension || bounds.Dy() != AvatarMaxDimension/2 {
		t.Errorf("expected %dx%d, got %dx%d",
			AvatarMaxDimension, AvatarMaxDimension/2, bounds.Dx(), bounds.Dy())
	}
}

func TestProcessSmallImageNotUpscaled(t *testing.T) {
	uri, err := Process(bytes.NewReader(createTestJPEG(50, 50)), PhotoMaxDimension)
	if err != nil {
		t.Fatalf("Process small image: %v", err)
	}

	bounds := decodeDataURI(t, uri).Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessInvalidFormat(t *testing.T) {
	if _, err := Process(bytes.NewReader([]byte("not an image")), PhotoMaxDimension); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestProcessGIFRejected(t *testing.T) {
	// GIF magic bytes.
	if _, err := Process(bytes.NewReader([]byte("GIF89a...")), PhotoMaxDimension); err == nil {
		t.Error("expected error for GIF")
	}
}
