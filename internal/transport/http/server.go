package http

import (
	"log/slog"
	"net/http"
)

// NewServer создает и настраивает HTTP-сервер с роутингом и middleware.
// Корневой эндпоинт отдает отфильтрованную ленту, /api/health - состояние сервиса.
// Добавляет middleware для логирования, ограничения частоты запросов и CORS.
func NewServer(log *slog.Logger, h *Handler, rateLimit, rateBurst int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", h.healthCheck)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		h.getFeed(w, r)
	})
	var handler http.Handler = mux
	handler = rateLimitMiddleware(log, rateLimit, rateBurst)(handler)
	handler = loggingMiddleware(log)(handler)
	handler = corsMiddleware()(handler)
	return handler
}

// corsMiddleware создает middleware для обработки CORS (Cross-Origin Resource Sharing).
// Лента публичная и только для чтения, поэтому разрешаются GET-запросы с любого origin.
func corsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
