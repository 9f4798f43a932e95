package render

import (
	"encoding/json"
	"fmt"
	"io"

	"weather-dashboard/models"
)

// JSONRenderer writes the dashboard as JSON (currentTemp, maxTemp, feelsLikeTemp, ...)
type JSONRenderer struct {
	Indent string
}

// Format returns "json"
func (r *JSONRenderer) Format() string {
	return FormatJSON
}

// Render encodes d to w
func (r *JSONRenderer) Render(w io.Writer, d models.Dashboard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", r.Indent)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}
	return nil
}

var (
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = (*HTMLRenderer)(nil)
	_ Renderer = (*JSONRenderer)(nil)
)
