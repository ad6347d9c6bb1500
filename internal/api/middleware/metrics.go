package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware учитывает запросы по шаблону маршрута mux, а не по фактическому пути
func MetricsMiddleware(m HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snoop := httpsnoop.CaptureMetrics(next, w, r)
			m.ObserveHTTPRequest(routeTemplate(r), r.Method, snoop.Code, snoop.Duration.Seconds())
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
