package tokenwatch

import (
	"os"
	"strconv"

	"github.com/raykavin/tokenwatch/pkg/logger"
	"github.com/raykavin/tokenwatch/pkg/logger/zerolog"
)

// DefaultLog is the process-wide logger, configured from the environment.
var DefaultLog logger.Logger

// Default configuration values
const (
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variable names
const (
	envLogLevel      = "TOKENWATCH_LOG_LEVEL"
	envLogTimeFormat = "TOKENWATCH_LOG_TIME_FORMAT"
	envLogColor      = "TOKENWATCH_LOG_COLOR"
	envLogJSON       = "TOKENWATCH_LOG_JSON"
)

func init() {
	log, err := initLogger()
	if err != nil {
		panic(err)
	}

	DefaultLog = log
}

// initLogger creates the logger instance configured from environment variables
func initLogger() (logger.Logger, error) {
	logLevel := getEnvWithDefault(envLogLevel, defaultLogLevel)
	logTimeFormat := getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat)

	logColored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return nil, err
	}

	logJSON, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return nil, err
	}

	log, err := zerolog.New(logLevel, logTimeFormat, logColored, logJSON)
	if err != nil {
		return nil, err
	}

	return zerolog.NewAdapter(log), nil
}

// getEnvWithDefault returns the value of the environment variable or the default if not set
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseBoolEnv gets a boolean environment variable with a default value
func parseBoolEnv(key, defaultValue string) (bool, error) {
	return strconv.ParseBool(getEnvWithDefault(key, defaultValue))
}
