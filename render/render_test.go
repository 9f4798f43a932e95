package render

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/models"
)

const (
	tuesdayMidnight   = int64(1699920000) * 1000 // 2023-11-14T00:00:00Z
	wednesdayMidnight = int64(1700006400) * 1000 // 2023-11-15T00:00:00Z
)

// sampleDashboard is displayed one hour east of UTC
func sampleDashboard() models.Dashboard {
	return models.Dashboard{
		Current: models.CurrentConditions{
			CurrentTempC:       15,
			HighTempC:          20,
			LowTempC:           10,
			HighFeelsLikeTempC: 19,
			LowFeelsLikeTempC:  9,
			WindSpeedKmh:       11,
			PrecipMm:           0.46,
			IconCode:           3,
		},
		Daily: []models.DaySummary{
			{TimestampMs: tuesdayMidnight, IconCode: 3, MaxTempC: 20},
			{TimestampMs: wednesdayMidnight, IconCode: 61, MaxTempC: 12},
		},
		Hourly: []models.HourSummary{
			{TimestampMs: wednesdayMidnight, IconCode: 95, TempC: 8, FeelsLikeTempC: 5, WindSpeedKmh: 22, PrecipMm: 1.2},
			{TimestampMs: wednesdayMidnight + 3600_000, IconCode: 0, TempC: 7, FeelsLikeTempC: 4, WindSpeedKmh: 20, PrecipMm: 0},
		},
		UTCOffsetSeconds: 3600,
	}
}

func newRenderer(t *testing.T, format string, logs *bytes.Buffer) Renderer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(logs, nil))
	r, err := New(format, "icons", logger)
	require.NoError(t, err)
	assert.Equal(t, format, r.Format())
	return r
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := New("pdf", "icons", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestLabels(t *testing.T) {
	d := sampleDashboard()
	loc := d.Location()

	hour := d.Hourly[0].Time()
	assert.Equal(t, "Wed", dayLabel(hour, loc))
	assert.Equal(t, "1 AM", hourLabel(hour, loc))

	utc := models.Dashboard{}.Location()
	assert.Equal(t, "12 AM", hourLabel(hour, utc))
	assert.Equal(t, "3 PM", hourLabel(hour.Add(15*time.Hour), utc))
}

func TestFormatPrecip(t *testing.T) {
	assert.Equal(t, "0", formatPrecip(0))
	assert.Equal(t, "0.2", formatPrecip(0.2))
	assert.Equal(t, "1.23", formatPrecip(1.23))
}

func TestTextRenderer(t *testing.T) {
	var logs, out bytes.Buffer
	require.NoError(t, newRenderer(t, FormatText, &logs).Render(&out, sampleDashboard()))

	text := out.String()
	for _, want := range []string{
		"NOW", "cloud", "15°C",
		"FL High", "19°", "11 km/h", "0.46 mm",
		"DAILY", "Tue", "cloud-showers-heavy", "12°",
		"HOURLY", "Wed", "1 AM", "2 AM", "cloud-bolt", "22 km/h", "1.2 mm", "sun",
	} {
		assert.Contains(t, text, want)
	}
	assert.Less(t, strings.Index(text, "DAILY"), strings.Index(text, "HOURLY"))
	assert.Empty(t, logs.String())
}

func TestHTMLRenderer(t *testing.T) {
	var logs, out bytes.Buffer
	require.NoError(t, newRenderer(t, FormatHTML, &logs).Render(&out, sampleDashboard()))

	page := out.String()
	for _, want := range []string{
		`data-current-icon src="icons/cloud.svg"`,
		`<span data-current-temp>15</span>`,
		`<span data-current-high>20</span>`,
		`<span data-current-low>10</span>`,
		`<span data-current-fl-high>19</span>`,
		`<span data-current-fl-low>9</span>`,
		`<span data-current-wind>11</span>`,
		`<span data-current-precip>0.46</span>`,
		`<div class="day-card-day" data-day>Tue</div>`,
		`src="icons/cloud-showers-heavy.svg"`,
		`<div data-time>1 AM</div>`,
		`src="icons/cloud-bolt.svg"`,
		`<span data-precip>1.2</span>`,
		`<span data-fl-temp>4</span>`,
	} {
		assert.Contains(t, page, want)
	}
	assert.Equal(t, 2, strings.Count(page, `class="day-card"`))
	assert.Equal(t, 2, strings.Count(page, `class="hour-row"`))
}

func TestHTMLRenderer_EmptyViews(t *testing.T) {
	var logs, out bytes.Buffer
	d := models.Dashboard{Daily: []models.DaySummary{}, Hourly: []models.HourSummary{}}
	require.NoError(t, newRenderer(t, FormatHTML, &logs).Render(&out, d))

	assert.Contains(t, out.String(), `src="icons/sun.svg"`)
	assert.NotContains(t, out.String(), `class="hour-row"`)
}

func TestUnknownCodeWarnsOnce(t *testing.T) {
	d := sampleDashboard()
	d.Current.IconCode = 42
	d.Hourly[0].IconCode = 42
	d.Hourly[1].IconCode = 7

	var logs, out bytes.Buffer
	r := newRenderer(t, FormatHTML, &logs)
	require.NoError(t, r.Render(&out, d))
	require.NoError(t, r.Render(&out, d))

	assert.Contains(t, out.String(), `src="icons/unknown.svg"`)
	assert.Equal(t, 1, strings.Count(logs.String(), "code=42"))
	assert.Equal(t, 1, strings.Count(logs.String(), "code=7"))
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestJSONRenderer(t *testing.T) {
	var logs, out bytes.Buffer
	require.NoError(t, newRenderer(t, FormatJSON, &logs).Render(&out, sampleDashboard()))

	var decoded struct {
		Current map[string]any   `json:"current"`
		Daily   []map[string]any `json:"daily"`
		Hourly  []map[string]any `json:"hourly"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, 15.0, decoded.Current["currentTemp"])
	assert.Equal(t, 0.46, decoded.Current["precip"])
	assert.Equal(t, 3.0, decoded.Current["iconCode"])
	require.Len(t, decoded.Daily, 2)
	assert.Equal(t, float64(tuesdayMidnight), decoded.Daily[0]["timestamp"])
	assert.Equal(t, 20.0, decoded.Daily[0]["maxTemp"])
	require.Len(t, decoded.Hourly, 2)
	assert.Equal(t, 5.0, decoded.Hourly[0]["feelsLikeTemp"])
}
