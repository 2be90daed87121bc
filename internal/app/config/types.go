package config

import "time"

type (
	InternalConfig struct {
		App App
		HMS HMS
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env                      string `validate:"oneof=development production"`
		Port                     string `validate:"required"`
		Version                  string
		EndpointPrefix           string `validate:"required"`
		MaxRequests              int    `validate:"gte=1"`
		ShutdownTimeoutInSeconds int    `validate:"gte=0"`
		NotificationFeedSize     int    `validate:"gte=1"`
		CorsAllowedOrigins       []string
		MetricsPath              string `validate:"required"`
	}

	HMS struct {
		BaseUrl                 string `validate:"required,url"`
		RequestTimeoutInSeconds int    `validate:"gte=0"`
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

// RequestTimeout is zero when outbound calls may wait indefinitely.
func (h HMS) RequestTimeout() time.Duration {
	return time.Duration(h.RequestTimeoutInSeconds) * time.Second
}
