package parser

import (
	"context"
	"io"
	"log/slog"

	"github.com/mmcdole/gofeed"

	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/domain"
)

// RSSParser реализует интерфейс FeedParser поверх библиотеки gofeed.
type RSSParser struct {
	log *slog.Logger
}

func NewRSSParser(log *slog.Logger) *RSSParser {
	return &RSSParser{
		log: log,
	}
}

// Parse реализует метод интерфейса FeedParser.
// Необязательные поля не приводят к ошибке: отсутствующая дата публикации
// дает нулевое время, отсутствующий guid заменяется ссылкой, новость без
// ссылки сохраняется с пустой ссылкой и позже отсеивается фильтром.
// Некорректный XML возвращается как *domain.ParseError.
func (p *RSSParser) Parse(ctx context.Context, reader io.Reader) (*domain.Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// gofeed.Parser не обещает потокобезопасность, поэтому экземпляр
	// создается на каждый вызов.
	parsed, err := gofeed.NewParser().Parse(reader)
	if err != nil {
		p.log.Error(
			"Error decoding feed",
			slog.Any("error", err),
		)
		return nil, &domain.ParseError{Err: err}
	}
	feed := domain.Feed{
		Title:       parsed.Title,
		Link:        parsed.Link,
		Description: parsed.Description,
		Items:       make([]domain.Item, 0, len(parsed.Items)),
	}
	for _, entry := range parsed.Items {
		item := domain.Item{
			Title:       entry.Title,
			Link:        entry.Link,
			Description: entry.Description,
			GUID:        entry.GUID,
		}
		if entry.PublishedParsed != nil {
			item.PubDate = *entry.PublishedParsed
		}
		if item.GUID == "" {
			item.GUID = entry.Link
		}
		feed.Items = append(feed.Items, item)
	}
	return &feed, nil
}
