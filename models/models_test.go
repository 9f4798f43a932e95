package models

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorUnwrap(t *testing.T) {
	underlying := errors.New("connection refused")
	appErr := NewAppError(ErrCodeUpstreamForecast, "forecast request failed", underlying)

	assert.Same(t, underlying, appErr.Unwrap())
	assert.ErrorIs(t, fmt.Errorf("cycle failed: %w", appErr), underlying)
	assert.Equal(t, "upstream_forecast_unavailable: forecast request failed: connection refused", appErr.Error())
}

func TestAppErrorUserMessage(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeLocationUnavailable, msgLocation},
		{ErrCodeInvalidCoordinates, msgLocation},
		{ErrCodeUpstreamForecast, msgWeather},
		{ErrCodeUpstreamMalformed, msgWeather},
		{ErrCodeUpstreamLimited, msgWeather},
		{ErrCodeUnknownCondition, msgGeneric},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, NewAppError(tt.code, "x", nil).UserMessage())
		})
	}
}

func TestUserMessageAndCodeOfWrapped(t *testing.T) {
	err := fmt.Errorf("load: %w", NewAppError(ErrCodeLocationUnavailable, "denied", nil))
	assert.Equal(t, msgLocation, UserMessage(err))
	assert.Equal(t, ErrCodeLocationUnavailable, CodeOf(err))

	plain := errors.New("boom")
	assert.Equal(t, msgGeneric, UserMessage(plain))
	assert.Equal(t, ErrorCode(""), CodeOf(plain))
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Equal(t, "cycle-1", GetRequestID(WithRequestID(ctx, "cycle-1")))
}

func TestPayloadValidate(t *testing.T) {
	p := RawForecastPayload{
		Daily: DailyBlock{
			Time:                   []int64{1, 2},
			WeatherCode:            []ConditionCode{0, 3},
			Temperature2mMax:       []float64{1, 2},
			Temperature2mMin:       []float64{1, 2},
			ApparentTemperatureMax: []float64{1, 2},
			ApparentTemperatureMin: []float64{1, 2},
			PrecipitationSum:       []float64{0, 0},
		},
	}
	require.NoError(t, p.Validate())

	p.Hourly.Time = []int64{1}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hourly.")

	p.Hourly = HourlyBlock{}
	p.Daily.PrecipitationSum = []float64{0}
	err = p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily.precipitation_sum")
}

func TestEmptyPayloadIsValid(t *testing.T) {
	assert.NoError(t, RawForecastPayload{}.Validate())
}

func TestDashboardLocation(t *testing.T) {
	d := Dashboard{Timezone: "Europe/Berlin"}
	assert.Equal(t, "Europe/Berlin", d.Location().String())

	d = Dashboard{Timezone: "Not/AZone", UTCOffsetSeconds: 3600}
	_, offset := time.Unix(0, 0).In(d.Location()).Zone()
	assert.Equal(t, 3600, offset)

	assert.Equal(t, time.UTC, Dashboard{}.Location())
}

func TestSummaryTime(t *testing.T) {
	day := DaySummary{TimestampMs: 1_700_000_000_000}
	assert.Equal(t, int64(1_700_000_000), day.Time().Unix())

	hour := HourSummary{TimestampMs: 1_700_003_600_000}
	assert.Equal(t, int64(1_700_003_600), hour.Time().Unix())
}
