package usecase

import (
	"strings"

	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/domain"
)

// FilterByPrefix возвращает новую ленту, в которой остались только новости
// со ссылками, начинающимися с prefix. Сравнение точное, с учетом регистра.
// Порядок новостей сохраняется, исходная лента не изменяется.
// Пустой prefix оставляет список новостей без изменений.
func FilterByPrefix(feed *domain.Feed, prefix string) *domain.Feed {
	filtered := domain.Feed{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
		Items:       make([]domain.Item, 0, len(feed.Items)),
	}
	for _, item := range feed.Items {
		if strings.HasPrefix(item.Link, prefix) {
			filtered.Items = append(filtered.Items, item)
		}
	}
	return &filtered
}
