package render

import (
	"bufio"
	"fmt"
	"io"
	"text/tabwriter"

	"weather-dashboard/models"
)

// TextRenderer writes tab-aligned terminal output
type TextRenderer struct {
	icons *iconSet
}

// Format returns "text"
func (r *TextRenderer) Format() string {
	return FormatText
}

// Render writes the current, daily and hourly views
func (r *TextRenderer) Render(w io.Writer, d models.Dashboard) error {
	loc := d.Location()
	bw := bufio.NewWriter(w)
	tw := tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)

	c := d.Current
	fmt.Fprintf(tw, "NOW\t%s\t%d°C\n", r.icons.category(c.IconCode), c.CurrentTempC)
	fmt.Fprintf(tw, "High\t%d°\tFL High\t%d°\n", c.HighTempC, c.HighFeelsLikeTempC)
	fmt.Fprintf(tw, "Low\t%d°\tFL Low\t%d°\n", c.LowTempC, c.LowFeelsLikeTempC)
	fmt.Fprintf(tw, "Wind\t%d km/h\tPrecip\t%s mm\n", c.WindSpeedKmh, formatPrecip(c.PrecipMm))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write current conditions: %w", err)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "DAILY")
	tw = tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	for _, day := range d.Daily {
		fmt.Fprintf(tw, "%s\t%s\t%d°\n", dayLabel(day.Time(), loc), r.icons.category(day.IconCode), day.MaxTempC)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write daily forecast: %w", err)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "HOURLY")
	tw = tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tTIME\tICON\tTEMP\tFL TEMP\tWIND\tPRECIP")
	for _, hour := range d.Hourly {
		t := hour.Time()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d°\t%d°\t%d km/h\t%s mm\n",
			dayLabel(t, loc),
			hourLabel(t, loc),
			r.icons.category(hour.IconCode),
			hour.TempC,
			hour.FeelsLikeTempC,
			hour.WindSpeedKmh,
			formatPrecip(hour.PrecipMm),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write hourly forecast: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write dashboard: %w", err)
	}
	return nil
}
