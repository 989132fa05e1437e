package render

import (
	"gradient/hal"

	"github.com/pkg/errors"
)

// Present stretches buf over the (0, 0, targetWidth, targetHeight)
// rectangle of dev. It never touches buf and does nothing when buf has
// no memory or the target is degenerate.
func Present(dev hal.Device, buf *PixelBuffer, targetWidth, targetHeight int) error {
	if dev == nil || buf == nil || buf.Empty() {
		return nil
	}
	if targetWidth <= 0 || targetHeight <= 0 {
		return nil
	}
	return errors.Wrap(dev.StretchBlit(buf.Bitmap(), targetWidth, targetHeight), "present")
}
