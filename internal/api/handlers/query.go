package handlers

import (
	"net/http"
	"strings"
)

// QueryList читает список из query параметра.
// Поддерживаются повторы (?id=a&id=b) и значения через запятую (?id=a,b).
func QueryList(r *http.Request, key string) []string {
	var out []string
	for _, raw := range r.URL.Query()[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
