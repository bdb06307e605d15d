package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"lcoe-plot/internal/config"
)

// loadLogo decodes the logo PNG, downscales it by the configured divisor,
// and fades its alpha channel so the logo sits unobtrusively on the
// figure.
func loadLogo(cfg config.LogoConfig) (image.Image, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding logo %s: %w", cfg.Path, err)
	}

	b := src.Bounds()
	w := int(float64(b.Dx()) / cfg.Scale)
	h := int(float64(b.Dy()) / cfg.Scale)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("logo %s scales to nothing at 1/%g", cfg.Path, cfg.Scale)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)

	// NRGBA is non-premultiplied, so the alpha bytes can be scaled
	// directly.
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = uint8(float64(dst.Pix[i]) * cfg.Opacity)
	}
	return dst, nil
}
