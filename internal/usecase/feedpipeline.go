package usecase

import (
	"context"
	"io"

	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/domain"
)

// FeedFetcher определяет интерфейс для загрузки данных RSS-ленты из внешнего источника.
// Возвращает io.ReadCloser который должен быть закрыт после использования.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// FeedParser определяет интерфейс для парсинга RSS-данных в доменную модель.
// Преобразует сырые данные в структурированные объекты Feed.
type FeedParser interface {
	Parse(ctx context.Context, reader io.Reader) (*domain.Feed, error)
}

// FeedRenderer определяет интерфейс для сериализации ленты обратно в документ RSS 2.0.
type FeedRenderer interface {
	Render(feed *domain.Feed) ([]byte, error)
}
