package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/domain"
)

type feedBuilder interface {
	BuildFeed(ctx context.Context) ([]byte, error)
}

type Handler struct {
	log     *slog.Logger
	builder feedBuilder
}

func NewHandler(log *slog.Logger, builder feedBuilder) *Handler {
	return &Handler{
		log:     log,
		builder: builder,
	}
}

// getFeed - хендлер для эндпоинта GET /
// Отдает отфильтрованную RSS-ленту. Сбои загрузки и парсинга вышестоящей
// ленты транслируются в 502, остальные ошибки конвейера - в 500.
func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/getFeed"
	log := h.log.With(
		slog.String("op", op),
	)
	if r.Method != http.MethodGet {
		log.Warn("method not allowed", slog.String("method", r.Method))
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	body, err := h.builder.BuildFeed(r.Context())
	if err != nil {
		var fetchErr *domain.FetchError
		var parseErr *domain.ParseError
		if errors.As(err, &fetchErr) || errors.As(err, &parseErr) {
			log.Error("Upstream feed unavailable", slog.Any("error", err))
			respondWithError(w, http.StatusBadGateway, "Bad Gateway")
			return
		}
		log.Error("Failed to build feed", slog.Any("error", err))
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// healthCheck - хендлер для проверки состояния сервиса
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Вспомогательные функции для ответов
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
