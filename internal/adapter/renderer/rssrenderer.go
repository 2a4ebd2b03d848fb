package renderer

import (
	"fmt"
	"log/slog"

	"github.com/gorilla/feeds"

	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/domain"
)

// RSSRenderer реализует интерфейс FeedRenderer поверх библиотеки gorilla/feeds.
type RSSRenderer struct {
	log *slog.Logger
}

func NewRSSRenderer(log *slog.Logger) *RSSRenderer {
	return &RSSRenderer{
		log: log,
	}
}

// Render сериализует ленту в документ RSS 2.0, сохраняя метаданные канала
// и порядок новостей. Метка времени генерации не добавляется, поэтому
// одинаковый вход дает байт-в-байт одинаковый выход.
func (r *RSSRenderer) Render(feed *domain.Feed) ([]byte, error) {
	out := feeds.Feed{
		Title:       feed.Title,
		Link:        &feeds.Link{Href: feed.Link},
		Description: feed.Description,
		Items:       make([]*feeds.Item, 0, len(feed.Items)),
	}
	for _, item := range feed.Items {
		out.Items = append(out.Items, &feeds.Item{
			Title:       item.Title,
			Link:        &feeds.Link{Href: item.Link},
			Description: item.Description,
			Id:          item.GUID,
			Created:     item.PubDate,
		})
	}
	rss, err := out.ToRss()
	if err != nil {
		r.log.Error(
			"Failed to render RSS",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to render RSS: %w", err)
	}
	return []byte(rss), nil
}
