package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"valnoise/internal/core"
	"valnoise/internal/fields"
	"valnoise/internal/render"
	"valnoise/internal/session"
)

// ScaleFrequency multiplies the view's "freq" parameter by factor. It reports
// false when the view does not expose a settable frequency.
func ScaleFrequency(v fields.View, factor float64) bool {
	provider, ok := v.(core.ParameterProvider)
	if !ok {
		return false
	}
	setter, ok := v.(core.FloatParameterSetter)
	if !ok {
		return false
	}
	p, ok := provider.Parameters().Lookup("freq")
	if !ok {
		return false
	}
	current, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return false
	}
	return setter.SetFloatParameter("freq", current*factor)
}

// Export writes the view's raster as a PNG into dir and returns its path.
func Export(sess *session.Session, v fields.View, palette render.Palette, dir string) (string, error) {
	path := filepath.Join(dir, sess.Filename(v.Name(), "png"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	if err := render.WritePNG(f, render.ToImage(v.Raster(), palette)); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	return path, nil
}
