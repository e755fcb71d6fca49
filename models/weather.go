package models

// DailyForecast is one day of weather data from the weather collaborator.
type DailyForecast struct {
	Date                     string  `json:"date"` // "2006-01-02"
	TemperatureMax           float64 `json:"temperature_max"`
	TemperatureMin           float64 `json:"temperature_min"`
	PrecipitationProbability int     `json:"precipitation_probability"` // 0-100
	WeatherDescription       string  `json:"weather_description"`
}

// ForecastBundle is an ordered multi-day forecast.
type ForecastBundle struct {
	Forecasts []DailyForecast `json:"forecasts"`
	Source    string          `json:"source"`
}

// ForDate returns the forecast for the given "2006-01-02" date, if present.
func (fb *ForecastBundle) ForDate(date string) (DailyForecast, bool) {
	if fb == nil {
		return DailyForecast{}, false
	}
	for _, f := range fb.Forecasts {
		if f.Date == date {
			return f, true
		}
	}
	return DailyForecast{}, false
}
