// Package render paints a normalized dashboard as text, HTML or JSON.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"weather-dashboard/icons"
	"weather-dashboard/models"
)

// Supported output formats
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

// Renderer writes one dashboard to w
type Renderer interface {
	Render(w io.Writer, d models.Dashboard) error
	Format() string
}

// New returns the renderer for format. iconDir is the directory icon assets
// are referenced from.
func New(format, iconDir string, logger *slog.Logger) (Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	set := newIconSet(iconDir, logger)

	switch format {
	case FormatText:
		return &TextRenderer{icons: set}, nil
	case FormatHTML:
		return newHTMLRenderer(set), nil
	case FormatJSON:
		return &JSONRenderer{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unsupported render format %q", format)
	}
}

// iconSet resolves icons for renderers and warns once per unknown code
type iconSet struct {
	dir    string
	logger *slog.Logger

	mu     sync.Mutex
	warned map[models.ConditionCode]bool
}

func newIconSet(dir string, logger *slog.Logger) *iconSet {
	return &iconSet{
		dir:    dir,
		logger: logger,
		warned: make(map[models.ConditionCode]bool),
	}
}

func (s *iconSet) category(code models.ConditionCode) models.IconCategory {
	if !icons.Known(code) {
		s.warnUnknown(code)
	}
	return icons.Lookup(code)
}

func (s *iconSet) asset(code models.ConditionCode) string {
	s.category(code)
	return icons.AssetPath(s.dir, code)
}

func (s *iconSet) warnUnknown(code models.ConditionCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.warned[code] {
		return
	}
	s.warned[code] = true
	s.logger.Warn("unknown weather condition code, rendering fallback icon",
		"code", int(code),
		"icon", models.IconUnknown.String(),
	)
}

// dayLabel formats an instant as a short weekday, e.g. "Mon"
func dayLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Mon")
}

// hourLabel formats an instant as a numeric hour, e.g. "3 PM"
func hourLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3 PM")
}

// formatPrecip prints precipitation with as few decimals as needed: 0, 0.2, 1.23
func formatPrecip(mm float64) string {
	return strconv.FormatFloat(mm, 'f', -1, 64)
}
