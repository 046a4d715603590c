package spheres

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxNameAttempts bounds the "-N" suffixes tried when a file name is taken.
const maxNameAttempts = 1000

// SavePNG writes an RGBA pixel buffer of width*height pixels to dir as a
// PNG named "<timestamp>_f<frame>_<label>.png" and returns the file path.
// dir is created if missing. An existing file is never overwritten; a
// "-2", "-3", ... suffix is added instead.
func SavePNG(dir, label string, frame uint32, pix []byte, width, height int) (string, error) {
	return savePNGAt(time.Now(), dir, label, frame, pix, width, height)
}

func savePNGAt(now time.Time, dir, label string, frame uint32, pix []byte, width, height int) (string, error) {
	if len(pix) != width*height*4 {
		return "", fmt.Errorf("screenshot: buffer is %d bytes, want %d", len(pix), width*height*4)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}

	// Every pixel Draw writes is opaque, so the bytes are valid NRGBA as-is.
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)

	for n := 1; n <= maxNameAttempts; n++ {
		path := filepath.Join(dir, screenshotName(now, frame, label, n))
		err := writePNG(path, img)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		return path, nil
	}
	return "", fmt.Errorf("screenshot: no free name for %q in %s", label, dir)
}

// screenshotName builds "<timestamp>_f<frame>_<label>.png". Attempts after
// the first get a "-<n>" suffix before the extension.
func screenshotName(now time.Time, frame uint32, label string, n int) string {
	name := fmt.Sprintf("%s_f%d_%s", now.Format("20060102_150405"), frame, sanitizeLabel(label))
	if n > 1 {
		name = fmt.Sprintf("%s-%d", name, n)
	}
	return name + ".png"
}

// writePNG encodes img to a new file at path. It fails with an error
// matching fs.ErrExist if path already exists.
func writePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel maps a label onto [A-Za-z0-9.-], replacing anything else
// with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
