package middleware

import "time"

// HTTPMetrics метрики HTTP запросов
type HTTPMetrics interface {
	RecordHTTPRequest(method, path string, status int, elapsed time.Duration)
}

// RateLimitMetrics счетчик отклоненных лимитером запросов
type RateLimitMetrics interface {
	IncRateLimited(path string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
