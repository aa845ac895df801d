package ui

import (
	"strconv"

	"valnoise/internal/core"
)

// formatValue renders a parameter value for the HUD. Floats are shortened to
// four significant digits; anything unparsable is shown as "--".
func formatValue(p core.Parameter) string {
	switch p.Type {
	case core.ParamTypeInt:
		if _, err := strconv.ParseInt(p.Value, 10, 64); err != nil {
			return "--"
		}
		return p.Value
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return "--"
		}
		return strconv.FormatFloat(v, 'g', 4, 64)
	default:
		return "--"
	}
}
