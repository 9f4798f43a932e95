// Package normalize turns the provider's forecast payload into the flat,
// rounded records the renderers consume. Every function is pure: the same
// payload always yields the same output and nothing is retained between calls.
//
// Callers are expected to pass a payload that satisfies
// models.RawForecastPayload.Validate; the datasource package checks this at
// the network boundary.
package normalize

import (
	"math"

	"weather-dashboard/models"
)

// Dashboard builds all three views from one payload.
func Dashboard(p models.RawForecastPayload) models.Dashboard {
	return models.Dashboard{
		Current:          Current(p),
		Daily:            Daily(p),
		Hourly:           Hourly(p),
		Timezone:         p.Timezone,
		UTCOffsetSeconds: p.UTCOffsetSeconds,
	}
}

// Current combines the current-instant block with today's (index 0) daily
// aggregates. The today fields stay zero when the daily block is empty.
func Current(p models.RawForecastPayload) models.CurrentConditions {
	cw := p.CurrentWeather
	d := p.Daily
	return models.CurrentConditions{
		CurrentTempC:       roundWhole(cw.Temperature),
		HighTempC:          roundWhole(first(d.Temperature2mMax)),
		LowTempC:           roundWhole(first(d.Temperature2mMin)),
		HighFeelsLikeTempC: roundWhole(first(d.ApparentTemperatureMax)),
		LowFeelsLikeTempC:  roundWhole(first(d.ApparentTemperatureMin)),
		WindSpeedKmh:       roundWhole(cw.WindSpeed),
		PrecipMm:           roundPrecip(first(d.PrecipitationSum)),
		IconCode:           cw.WeatherCode,
	}
}

// Daily returns one summary per day, in provider order.
func Daily(p models.RawForecastPayload) []models.DaySummary {
	d := p.Daily
	days := make([]models.DaySummary, 0, len(d.Time))
	for i, ts := range d.Time {
		days = append(days, models.DaySummary{
			TimestampMs: toMillis(ts),
			IconCode:    d.WeatherCode[i],
			MaxTempC:    roundWhole(d.Temperature2mMax[i]),
		})
	}
	return days
}

// Hourly returns one summary per hour at or after the current instant, in
// provider order.
func Hourly(p models.RawForecastPayload) []models.HourSummary {
	h := p.Hourly
	hours := make([]models.HourSummary, 0, len(h.Time))
	for i, ts := range h.Time {
		hours = append(hours, models.HourSummary{
			TimestampMs:    toMillis(ts),
			IconCode:       h.WeatherCode[i],
			TempC:          roundWhole(h.Temperature2m[i]),
			FeelsLikeTempC: roundWhole(h.ApparentTemperature[i]),
			WindSpeedKmh:   roundWhole(h.WindSpeed10m[i]),
			PrecipMm:       roundPrecip(h.Precipitation[i]),
		})
	}

	now := toMillis(p.CurrentWeather.Time)
	upcoming := hours[:0]
	for _, hour := range hours {
		if hour.TimestampMs >= now {
			upcoming = append(upcoming, hour)
		}
	}
	return upcoming
}

// toMillis converts provider seconds to milliseconds since epoch.
func toMillis(seconds int64) int64 {
	return seconds * 1000
}

// roundWhole rounds half up (toward positive infinity), so -2.5 becomes -2.
func roundWhole(v float64) int {
	return int(math.Floor(v + 0.5))
}

// roundPrecip rounds to two decimals with the same half-up rule.
func roundPrecip(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func first(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[0]
}
