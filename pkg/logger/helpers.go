package logger

import (
	"fmt"
	"runtime"
	"strings"
)

// LoggerWithCaller adds caller information to the logger
func LoggerWithCaller(skip int) Logger {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return GetLogger()
	}

	parts := strings.Split(file, "/")
	filename := parts[len(parts)-1]

	return GetLogger().WithField("caller", fmt.Sprintf("%s:%d", filename, line))
}

// LogRequest logs API request information at a level matching the outcome
func LogRequest(method string, statusCode int, durationMS float64) {
	fields := map[string]interface{}{
		"method":      method,
		"status_code": statusCode,
		"duration_ms": durationMS,
	}

	switch {
	case statusCode >= 200 && statusCode < 300:
		GetLogger().InfoWithFields("API request completed", fields)
	case statusCode >= 400 && statusCode < 500:
		GetLogger().WarnWithFields("API request client error", fields)
	case statusCode >= 500:
		GetLogger().ErrorWithFields("API request server error", fields)
	}
}

// MustGetLogger gets the logger or panics if it fails
func MustGetLogger() Logger {
	logger := GetLogger()
	if logger == nil {
		panic("logger not initialized")
	}
	return logger
}
