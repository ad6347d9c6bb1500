package middleware

// HTTPMetrics интерфейс метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(route, method string, status int, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
