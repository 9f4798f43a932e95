package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/models"
)

// samplePayload mirrors a trimmed Open-Meteo response: two days, four hours,
// with the current instant on the third hour.
func samplePayload() models.RawForecastPayload {
	const t0 = int64(1_700_000_000)
	return models.RawForecastPayload{
		Timezone:         "Europe/Berlin",
		UTCOffsetSeconds: 3600,
		CurrentWeather: models.CurrentWeather{
			Time:        t0 + 2*3600,
			Temperature: 15.4,
			WindSpeed:   10.6,
			WeatherCode: 3,
		},
		Daily: models.DailyBlock{
			Time:                   []int64{t0, t0 + 86400},
			WeatherCode:            []models.ConditionCode{3, 61},
			Temperature2mMax:       []float64{20.2, 17.5},
			Temperature2mMin:       []float64{10.1, 8.4},
			ApparentTemperatureMax: []float64{19.8, 16.2},
			ApparentTemperatureMin: []float64{9.6, 6.9},
			PrecipitationSum:       []float64{0.456, 3.1},
		},
		Hourly: models.HourlyBlock{
			Time:                []int64{t0, t0 + 3600, t0 + 2*3600, t0 + 3*3600},
			Temperature2m:       []float64{13.2, 14.5, 15.4, 16.6},
			ApparentTemperature: []float64{12.0, 13.49, 14.5, 15.51},
			Precipitation:       []float64{0, 0.1, 1.2345, 0.006},
			WeatherCode:         []models.ConditionCode{2, 3, 3, 80},
			WindSpeed10m:        []float64{8.4, 9.5, 10.6, 12.2},
		},
	}
}

func TestCurrentEndToEndScenario(t *testing.T) {
	got := Current(samplePayload())

	assert.Equal(t, models.CurrentConditions{
		CurrentTempC:       15,
		HighTempC:          20,
		LowTempC:           10,
		HighFeelsLikeTempC: 20,
		LowFeelsLikeTempC:  10,
		WindSpeedKmh:       11,
		PrecipMm:           0.46,
		IconCode:           3,
	}, got)
}

func TestCurrentRounding(t *testing.T) {
	p := samplePayload()
	p.CurrentWeather.Temperature = 15.6
	p.Daily.PrecipitationSum[0] = 1.2345

	got := Current(p)
	assert.Equal(t, 16, got.CurrentTempC)
	assert.Equal(t, 1.23, got.PrecipMm)
}

func TestCurrentWithEmptyDaily(t *testing.T) {
	p := samplePayload()
	p.Daily = models.DailyBlock{}

	got := Current(p)
	assert.Equal(t, 15, got.CurrentTempC)
	assert.Zero(t, got.HighTempC)
	assert.Zero(t, got.PrecipMm)
}

func TestDaily(t *testing.T) {
	p := samplePayload()
	days := Daily(p)

	require.Len(t, days, len(p.Daily.Time))
	for i, day := range days {
		assert.Equal(t, p.Daily.Time[i]*1000, day.TimestampMs)
		assert.Equal(t, p.Daily.WeatherCode[i], day.IconCode)
	}
	assert.Equal(t, 20, days[0].MaxTempC)
	assert.Equal(t, 18, days[1].MaxTempC)
}

func TestHourlyDropsPastHours(t *testing.T) {
	p := samplePayload()
	hours := Hourly(p)

	require.Len(t, hours, 2)
	assert.Equal(t, p.Hourly.Time[2]*1000, hours[0].TimestampMs)
	assert.Equal(t, p.Hourly.Time[3]*1000, hours[1].TimestampMs)

	assert.Equal(t, models.HourSummary{
		TimestampMs:    p.Hourly.Time[2] * 1000,
		IconCode:       3,
		TempC:          15,
		FeelsLikeTempC: 15,
		WindSpeedKmh:   11,
		PrecipMm:       1.23,
	}, hours[0])
	assert.Equal(t, 0.01, hours[1].PrecipMm)
	assert.Equal(t, 16, hours[1].FeelsLikeTempC)
}

func TestHourlyCurrentBetweenHours(t *testing.T) {
	p := samplePayload()
	// current instant falls strictly between t1 and t2
	p.CurrentWeather.Time = p.Hourly.Time[1] + 1800

	hours := Hourly(p)
	require.Len(t, hours, 2)
	assert.Equal(t, p.Hourly.Time[2]*1000, hours[0].TimestampMs)
	assert.Equal(t, p.Hourly.Time[3]*1000, hours[1].TimestampMs)
}

func TestEmptyBlocksYieldEmptySequences(t *testing.T) {
	p := models.RawForecastPayload{}

	days := Daily(p)
	hours := Hourly(p)
	require.NotNil(t, days)
	require.NotNil(t, hours)
	assert.Empty(t, days)
	assert.Empty(t, hours)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	p := samplePayload()

	first := Dashboard(p)
	second := Dashboard(p)
	assert.Equal(t, first, second)
	assert.Equal(t, samplePayload(), p, "input must not be mutated")
}

func TestDashboardCarriesTimezone(t *testing.T) {
	d := Dashboard(samplePayload())
	assert.Equal(t, "Europe/Berlin", d.Timezone)
	assert.Equal(t, 3600, d.UTCOffsetSeconds)
	assert.Len(t, d.Daily, 2)
	assert.Len(t, d.Hourly, 2)
}

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{15.4, 15},
		{15.5, 16},
		{15.6, 16},
		{-0.4, 0},
		{-2.5, -2},
		{-2.6, -3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundWhole(tt.in), "roundWhole(%v)", tt.in)
	}
}
