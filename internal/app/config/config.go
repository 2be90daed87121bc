package config

import (
	"hms-console/internal/pkg/constvars"
	"hms-console/internal/pkg/exceptions"
	"hms-console/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "hms-console.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "hms-console_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			NotificationFeedSize:     utils.GetEnvInt("APP_NOTIFICATION_FEED_SIZE", 100),
			CorsAllowedOrigins:       utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MetricsPath:              utils.GetEnvString("APP_METRICS_PATH", "/metrics"),
		},
		HMS: HMS{
			BaseUrl:                 strings.TrimRight(utils.GetEnvString("HMS_BASE_URL", "http://127.0.0.1:5000"), "/"),
			RequestTimeoutInSeconds: utils.GetEnvInt("HMS_REQUEST_TIMEOUT_IN_SECONDS", 0),
		},
	}
}

// Validate reports the first invalid setting in the same wording the
// console API uses for bad input.
func (c *InternalConfig) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
