package render

import (
	"fmt"
	"html/template"
	"io"

	"weather-dashboard/models"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Weather</title>
</head>
<body>
<header class="header">
  <div class="header-left">
    <img class="weather-icon large" data-current-icon src="{{.Current.Icon}}" alt="{{.Current.Category}}">
    <div class="header-current-temp"><span data-current-temp>{{.Current.Temp}}</span>&deg;</div>
  </div>
  <div class="header-right">
    <div class="info-group"><div class="label">High</div><div><span data-current-high>{{.Current.High}}</span>&deg;</div></div>
    <div class="info-group"><div class="label">FL High</div><div><span data-current-fl-high>{{.Current.FeelsLikeHigh}}</span>&deg;</div></div>
    <div class="info-group"><div class="label">Wind</div><div><span data-current-wind>{{.Current.Wind}}</span><span class="value-sub-info">km/h</span></div></div>
    <div class="info-group"><div class="label">Low</div><div><span data-current-low>{{.Current.Low}}</span>&deg;</div></div>
    <div class="info-group"><div class="label">FL Low</div><div><span data-current-fl-low>{{.Current.FeelsLikeLow}}</span>&deg;</div></div>
    <div class="info-group"><div class="label">Precip</div><div><span data-current-precip>{{.Current.Precip}}</span><span class="value-sub-info">mm</span></div></div>
  </div>
</header>
<section class="day-section" data-day-section>
{{- range .Days}}
  <div class="day-card">
    <img class="weather-icon" data-icon src="{{.Icon}}" alt="{{.Category}}">
    <div class="day-card-day" data-day>{{.Day}}</div>
    <div><span data-temp>{{.Temp}}</span>&deg;</div>
  </div>
{{- end}}
</section>
<table class="hour-section">
  <tbody data-hour-section>
{{- range .Hours}}
    <tr class="hour-row">
      <td><div class="info-group"><div class="label" data-day>{{.Day}}</div><div data-time>{{.Time}}</div></div></td>
      <td><img class="weather-icon" data-icon src="{{.Icon}}" alt="{{.Category}}"></td>
      <td><div class="info-group"><div class="label">Temp</div><div><span data-temp>{{.Temp}}</span>&deg;</div></div></td>
      <td><div class="info-group"><div class="label">FL Temp</div><div><span data-fl-temp>{{.FeelsLike}}</span>&deg;</div></div></td>
      <td><div class="info-group"><div class="label">Wind</div><div><span data-wind>{{.Wind}}</span><span class="value-sub-info">km/h</span></div></div></td>
      <td><div class="info-group"><div class="label">Precip</div><div><span data-precip>{{.Precip}}</span><span class="value-sub-info">mm</span></div></div></td>
    </tr>
{{- end}}
  </tbody>
</table>
</body>
</html>
`

// HTMLRenderer writes a standalone page using the dashboard's data-* hooks
type HTMLRenderer struct {
	icons *iconSet
	tmpl  *template.Template
}

func newHTMLRenderer(set *iconSet) *HTMLRenderer {
	return &HTMLRenderer{
		icons: set,
		tmpl:  template.Must(template.New("dashboard").Parse(pageTemplate)),
	}
}

// Format returns "html"
func (r *HTMLRenderer) Format() string {
	return FormatHTML
}

type currentView struct {
	Icon          string
	Category      models.IconCategory
	Temp          int
	High          int
	Low           int
	FeelsLikeHigh int
	FeelsLikeLow  int
	Wind          int
	Precip        string
}

type dayView struct {
	Icon     string
	Category models.IconCategory
	Day      string
	Temp     int
}

type hourView struct {
	Icon      string
	Category  models.IconCategory
	Day       string
	Time      string
	Temp      int
	FeelsLike int
	Wind      int
	Precip    string
}

type pageView struct {
	Current currentView
	Days    []dayView
	Hours   []hourView
}

// Render executes the page template for d
func (r *HTMLRenderer) Render(w io.Writer, d models.Dashboard) error {
	if err := r.tmpl.Execute(w, r.view(d)); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

func (r *HTMLRenderer) view(d models.Dashboard) pageView {
	loc := d.Location()
	c := d.Current

	page := pageView{
		Current: currentView{
			Icon:          r.icons.asset(c.IconCode),
			Category:      r.icons.category(c.IconCode),
			Temp:          c.CurrentTempC,
			High:          c.HighTempC,
			Low:           c.LowTempC,
			FeelsLikeHigh: c.HighFeelsLikeTempC,
			FeelsLikeLow:  c.LowFeelsLikeTempC,
			Wind:          c.WindSpeedKmh,
			Precip:        formatPrecip(c.PrecipMm),
		},
		Days:  make([]dayView, 0, len(d.Daily)),
		Hours: make([]hourView, 0, len(d.Hourly)),
	}

	for _, day := range d.Daily {
		page.Days = append(page.Days, dayView{
			Icon:     r.icons.asset(day.IconCode),
			Category: r.icons.category(day.IconCode),
			Day:      dayLabel(day.Time(), loc),
			Temp:     day.MaxTempC,
		})
	}

	for _, hour := range d.Hourly {
		t := hour.Time()
		page.Hours = append(page.Hours, hourView{
			Icon:      r.icons.asset(hour.IconCode),
			Category:  r.icons.category(hour.IconCode),
			Day:       dayLabel(t, loc),
			Time:      hourLabel(t, loc),
			Temp:      hour.TempC,
			FeelsLike: hour.FeelsLikeTempC,
			Wind:      hour.WindSpeedKmh,
			Precip:    formatPrecip(hour.PrecipMm),
		})
	}

	return page
}
