package models

import (
	"fmt"
)

// RawForecastPayload is the forecast provider's response. The daily and hourly
// blocks are structure-of-arrays: every array in a block is aligned by index to
// that block's Time array
type RawForecastPayload struct {
	Latitude         float64           `json:"latitude"`
	Longitude        float64           `json:"longitude"`
	Timezone         string            `json:"timezone"`
	UTCOffsetSeconds int               `json:"utc_offset_seconds"`
	CurrentWeather   CurrentWeather    `json:"current_weather"`
	Daily            DailyBlock        `json:"daily"`
	DailyUnits       map[string]string `json:"daily_units,omitempty"`
	Hourly           HourlyBlock       `json:"hourly"`
	HourlyUnits      map[string]string `json:"hourly_units,omitempty"`
}

// CurrentWeather is the current-instant block
type CurrentWeather struct {
	Time          int64         `json:"time"`          // seconds since epoch
	Temperature   float64       `json:"temperature"`   // in Celsius
	WindSpeed     float64       `json:"windspeed"`     // in km/h
	WindDirection float64       `json:"winddirection"` // in degrees
	WeatherCode   ConditionCode `json:"weathercode"`
	IsDay         int           `json:"is_day"`
}

// DailyBlock is the daily-aggregate block
type DailyBlock struct {
	Time                   []int64         `json:"time"` // seconds since epoch
	WeatherCode            []ConditionCode `json:"weathercode"`
	Temperature2mMax       []float64       `json:"temperature_2m_max"`       // in Celsius
	Temperature2mMin       []float64       `json:"temperature_2m_min"`       // in Celsius
	ApparentTemperatureMax []float64       `json:"apparent_temperature_max"` // in Celsius
	ApparentTemperatureMin []float64       `json:"apparent_temperature_min"` // in Celsius
	PrecipitationSum       []float64       `json:"precipitation_sum"`        // in mm
}

// HourlyBlock is the hourly-aggregate block
type HourlyBlock struct {
	Time                []int64         `json:"time"`                 // seconds since epoch
	Temperature2m       []float64       `json:"temperature_2m"`       // in Celsius
	ApparentTemperature []float64       `json:"apparent_temperature"` // in Celsius
	Precipitation       []float64       `json:"precipitation"`        // in mm
	WeatherCode         []ConditionCode `json:"weathercode"`
	WindSpeed10m        []float64       `json:"windspeed_10m"` // in km/h
}

// Validate checks that every array of each block has the length of the block's time array
func (p RawForecastPayload) Validate() error {
	d := p.Daily
	if err := checkAligned("daily", len(d.Time), map[string]int{
		"weathercode":              len(d.WeatherCode),
		"temperature_2m_max":       len(d.Temperature2mMax),
		"temperature_2m_min":       len(d.Temperature2mMin),
		"apparent_temperature_max": len(d.ApparentTemperatureMax),
		"apparent_temperature_min": len(d.ApparentTemperatureMin),
		"precipitation_sum":        len(d.PrecipitationSum),
	}); err != nil {
		return err
	}

	h := p.Hourly
	return checkAligned("hourly", len(h.Time), map[string]int{
		"temperature_2m":       len(h.Temperature2m),
		"apparent_temperature": len(h.ApparentTemperature),
		"precipitation":        len(h.Precipitation),
		"weathercode":          len(h.WeatherCode),
		"windspeed_10m":        len(h.WindSpeed10m),
	})
}

func checkAligned(block string, want int, lengths map[string]int) error {
	for field, n := range lengths {
		if n != want {
			return fmt.Errorf("%s.%s has %d entries, %s.time has %d", block, field, n, block, want)
		}
	}
	return nil
}
