package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"gatherly/models"
	"gatherly/services/scheduling"
	"gatherly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const openMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoService implements the scheduler's weather collaborator against
// the Open-Meteo forecast API, with a cache-aside redis layer so repeated
// lookups for the same spot do not refetch.
type OpenMeteoService struct {
	HTTPClient *http.Client
	Cache      *redis.Client
	CacheTTL   time.Duration
	BaseURL    string
}

var _ scheduling.WeatherService = (*OpenMeteoService)(nil)

func NewOpenMeteoService(cache *redis.Client, cacheTTL time.Duration) *OpenMeteoService {
	return &OpenMeteoService{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Cache:      cache,
		CacheTTL:   cacheTTL,
		BaseURL:    openMeteoBaseURL,
	}
}

type openMeteoResponse struct {
	Daily struct {
		Time                        []string  `json:"time"`
		TemperatureMax              []float64 `json:"temperature_2m_max"`
		TemperatureMin              []float64 `json:"temperature_2m_min"`
		PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
		WeatherCode                 []int     `json:"weather_code"`
	} `json:"daily"`
}

// GetWeatherForecast returns up to days daily forecasts for the coordinates.
func (s *OpenMeteoService) GetWeatherForecast(ctx context.Context, lat, lon float64, days int) (*models.ForecastBundle, error) {
	logger := utils.GetLogger()
	if days <= 0 {
		days = 7
	}
	if days > 16 {
		days = 16 // Open-Meteo forecast horizon
	}

	cacheKey := fmt.Sprintf("weather:%.3f:%.3f:%d", lat, lon, days)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var bundle models.ForecastBundle
			if err := json.Unmarshal([]byte(cached), &bundle); err == nil {
				return &bundle, nil
			}
			// Fall through to a fresh fetch on a corrupt cache entry.
		}
	}

	bundle, err := s.fetch(ctx, lat, lon, days)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		data, err := json.Marshal(bundle)
		if err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, s.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache forecast", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return bundle, nil
}

func (s *OpenMeteoService) fetch(ctx context.Context, lat, lon float64, days int) (*models.ForecastBundle, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weather_code")
	params.Set("forecast_days", fmt.Sprintf("%d", days))
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast request returned status %d", resp.StatusCode)
	}

	var decoded openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	bundle := &models.ForecastBundle{Source: "open-meteo"}
	for i, date := range decoded.Daily.Time {
		daily := models.DailyForecast{Date: date}
		if i < len(decoded.Daily.TemperatureMax) {
			daily.TemperatureMax = decoded.Daily.TemperatureMax[i]
		}
		if i < len(decoded.Daily.TemperatureMin) {
			daily.TemperatureMin = decoded.Daily.TemperatureMin[i]
		}
		if i < len(decoded.Daily.PrecipitationProbabilityMax) {
			daily.PrecipitationProbability = decoded.Daily.PrecipitationProbabilityMax[i]
		}
		if i < len(decoded.Daily.WeatherCode) {
			daily.WeatherDescription = describeWeatherCode(decoded.Daily.WeatherCode[i])
		}
		bundle.Forecasts = append(bundle.Forecasts, daily)
	}

	return bundle, nil
}

// describeWeatherCode maps WMO weather codes to the descriptions the slot
// scorer understands.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code == 1 || code == 2:
		return "partly cloudy"
	case code == 3:
		return "overcast"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 55:
		return "drizzle"
	case code == 61:
		return "light rain"
	case code >= 63 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rain showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "cloudy"
	}
}
