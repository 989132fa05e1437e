package snapshot

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
)

// Encode writes img to w in the format named by ext (".png", ".webp"
// or ".tga").
func Encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".webp":
		return nativewebp.Encode(w, img, nil)
	case ".tga":
		return tga.Encode(w, img)
	default:
		return errors.Errorf("unsupported snapshot format %q", ext)
	}
}

// Write encodes img into path, picking the format from its extension.
func Write(path string, img image.Image) error {
	if img == nil {
		return errors.Errorf("snapshot %s: no frame was presented", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}
	if err := Encode(f, filepath.Ext(path), img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode snapshot %s", path)
	}
	return errors.Wrap(f.Close(), "close snapshot")
}
