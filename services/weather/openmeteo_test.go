package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeatherForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "52.5200", r.URL.Query().Get("latitude"))
		assert.Equal(t, "13.4050", r.URL.Query().Get("longitude"))
		assert.Equal(t, "3", r.URL.Query().Get("forecast_days"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["2026-03-11", "2026-03-12", "2026-03-13"],
				"temperature_2m_max": [20.5, 14.0, 8.0],
				"temperature_2m_min": [9.1, 6.0, 1.0],
				"precipitation_probability_max": [5, 80, 30],
				"weather_code": [0, 61, 2]
			}
		}`))
	}))
	defer srv.Close()

	svc := NewOpenMeteoService(nil, time.Minute)
	svc.BaseURL = srv.URL

	bundle, err := svc.GetWeatherForecast(context.Background(), 52.52, 13.405, 3)
	require.NoError(t, err)
	require.Len(t, bundle.Forecasts, 3)
	assert.Equal(t, "open-meteo", bundle.Source)

	first := bundle.Forecasts[0]
	assert.Equal(t, "2026-03-11", first.Date)
	assert.InDelta(t, 20.5, first.TemperatureMax, 1e-9)
	assert.InDelta(t, 9.1, first.TemperatureMin, 1e-9)
	assert.Equal(t, 5, first.PrecipitationProbability)
	assert.Equal(t, "clear", first.WeatherDescription)

	assert.Equal(t, "light rain", bundle.Forecasts[1].WeatherDescription)
	assert.Equal(t, "partly cloudy", bundle.Forecasts[2].WeatherDescription)

	daily, ok := bundle.ForDate("2026-03-12")
	require.True(t, ok)
	assert.Equal(t, 80, daily.PrecipitationProbability)

	_, ok = bundle.ForDate("2030-01-01")
	assert.False(t, ok)
}

func TestGetWeatherForecastUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewOpenMeteoService(nil, time.Minute)
	svc.BaseURL = srv.URL

	_, err := svc.GetWeatherForecast(context.Background(), 1, 1, 3)
	assert.Error(t, err)
}

func TestDescribeWeatherCode(t *testing.T) {
	assert.Equal(t, "clear", describeWeatherCode(0))
	assert.Equal(t, "partly cloudy", describeWeatherCode(1))
	assert.Equal(t, "overcast", describeWeatherCode(3))
	assert.Equal(t, "drizzle", describeWeatherCode(53))
	assert.Equal(t, "light rain", describeWeatherCode(61))
	assert.Equal(t, "rain", describeWeatherCode(65))
	assert.Equal(t, "snow", describeWeatherCode(73))
	assert.Equal(t, "thunderstorm", describeWeatherCode(95))
	assert.Equal(t, "cloudy", describeWeatherCode(40))
}
