package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ProxyFeedUseCase реализует бизнес-логику прокси RSS-ленты.
// Координирует полный цикл обработки запроса: загрузку вышестоящей ленты,
// парсинг, фильтрацию по префиксу ссылки и сериализацию обратно в RSS.
// Состояние между запросами не сохраняется.
type ProxyFeedUseCase struct {
	fetcher     FeedFetcher
	parser      FeedParser
	renderer    FeedRenderer
	log         *slog.Logger
	upstreamURL string
	prefix      string
}

// NewProxyFeedUseCase создает новый экземпляр UseCase для проксирования ленты.
// Принимает зависимости: загрузчик, парсер, рендерер, логгер,
// URL источника и префикс фильтрации.
func NewProxyFeedUseCase(
	fetcher FeedFetcher,
	parser FeedParser,
	renderer FeedRenderer,
	log *slog.Logger,
	upstreamURL string,
	prefix string,
) *ProxyFeedUseCase {
	return &ProxyFeedUseCase{
		fetcher:     fetcher,
		parser:      parser,
		renderer:    renderer,
		log:         log,
		upstreamURL: upstreamURL,
		prefix:      prefix,
	}
}

// BuildFeed выполняет полный цикл обработки: получение, парсинг, фильтрация и рендеринг.
// Измеряет время выполнения, логирует этапы процесса и обрабатывает ошибки на каждом этапе.
// Ошибки загрузки и парсинга возвращаются обернутыми, сохраняя доменный тип
// для маппинга в HTTP-статус на транспортном уровне.
func (uc *ProxyFeedUseCase) BuildFeed(ctx context.Context) ([]byte, error) {
	start := time.Now()
	log := uc.log.With(
		slog.String("component", "feed-proxy"),
		slog.String("upstream", uc.upstreamURL),
	)

	log.Info("Building filtered feed")

	reader, err := uc.fetcher.Fetch(ctx, uc.upstreamURL)
	if err != nil {
		log.Error("Feed fetch failed",
			slog.String("stage", "fetch"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer reader.Close()

	log.Debug("Feed fetched successfully", slog.String("stage", "fetch"))

	feed, err := uc.parser.Parse(ctx, reader)
	if err != nil {
		log.Error("Feed parsing failed",
			slog.String("stage", "parse"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("parse failed: %w", err)
	}

	log.Debug("Feed parsed successfully",
		slog.String("stage", "parse"),
		slog.Int("items_parsed", len(feed.Items)),
	)

	filtered := FilterByPrefix(feed, uc.prefix)

	log.Debug("Feed filtered",
		slog.String("stage", "filter"),
		slog.String("prefix", uc.prefix),
		slog.Int("items_kept", len(filtered.Items)),
	)

	body, err := uc.renderer.Render(filtered)
	if err != nil {
		log.Error("Feed rendering failed",
			slog.String("stage", "render"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("render failed: %w", err)
	}

	duration := time.Since(start)
	log.Info("Feed proxy completed successfully",
		slog.Int("items_total", len(feed.Items)),
		slog.Int("items_kept", len(filtered.Items)),
		slog.Duration("duration", duration),
	)

	return body, nil
}
