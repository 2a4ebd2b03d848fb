package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/domain"
)

func sampleFeed() *domain.Feed {
	return &domain.Feed{
		Title:       "Iraqi News",
		Link:        "https://www.iraqinews.com",
		Description: "Latest news",
		Items: []domain.Item{
			{Title: "Iraq story", Link: "https://www.iraqinews.com/iraq/a", GUID: "a"},
			{Title: "World story", Link: "https://www.iraqinews.com/world/b", GUID: "b"},
			{Title: "Another Iraq story", Link: "https://www.iraqinews.com/iraq/c", GUID: "c"},
		},
	}
}

func TestFilterByPrefix_KeepsOnlyMatchingItems(t *testing.T) {
	feed := sampleFeed()

	filtered := FilterByPrefix(feed, "https://www.iraqinews.com/iraq/")

	require.Len(t, filtered.Items, 2)
	assert.Equal(t, "https://www.iraqinews.com/iraq/a", filtered.Items[0].Link)
	assert.Equal(t, "https://www.iraqinews.com/iraq/c", filtered.Items[1].Link)
	assert.Equal(t, feed.Title, filtered.Title)
	assert.Equal(t, feed.Link, filtered.Link)
	assert.Equal(t, feed.Description, filtered.Description)
}
func TestFilterByPrefix_EmptyPrefixReturnsAllItems(t *testing.T) {
	feed := sampleFeed()

	filtered := FilterByPrefix(feed, "")

	assert.Equal(t, feed.Items, filtered.Items)
}
func TestFilterByPrefix_CaseSensitive(t *testing.T) {
	feed := &domain.Feed{
		Items: []domain.Item{
			{Link: "https://www.iraqinews.com/Iraq/a"},
		},
	}

	filtered := FilterByPrefix(feed, "https://www.iraqinews.com/iraq/")

	assert.Empty(t, filtered.Items)
}
func TestFilterByPrefix_ExcludesItemsWithoutLink(t *testing.T) {
	feed := &domain.Feed{
		Items: []domain.Item{
			{Title: "Linkless"},
			{Title: "Linked", Link: "https://www.iraqinews.com/iraq/a"},
		},
	}

	filtered := FilterByPrefix(feed, "https://www.iraqinews.com/iraq/")

	require.Len(t, filtered.Items, 1)
	assert.Equal(t, "Linked", filtered.Items[0].Title)
}
func TestFilterByPrefix_DoesNotMutateInput(t *testing.T) {
	feed := sampleFeed()
	original := make([]domain.Item, len(feed.Items))
	copy(original, feed.Items)

	_ = FilterByPrefix(feed, "https://www.iraqinews.com/iraq/")

	assert.Equal(t, original, feed.Items)
}
func TestFilterByPrefix_NoMatches(t *testing.T) {
	feed := sampleFeed()

	filtered := FilterByPrefix(feed, "https://other.example.com/")

	assert.Empty(t, filtered.Items)
	assert.Equal(t, feed.Title, filtered.Title)
}
func TestFilterByPrefix_PreservesItemFields(t *testing.T) {
	pubDate := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	feed := &domain.Feed{
		Items: []domain.Item{
			{
				Title:       "Iraq story",
				Link:        "https://www.iraqinews.com/iraq/a",
				Description: "Details",
				PubDate:     pubDate,
				GUID:        "guid-a",
			},
		},
	}

	filtered := FilterByPrefix(feed, "https://www.iraqinews.com/iraq/")

	require.Len(t, filtered.Items, 1)
	assert.Equal(t, feed.Items[0], filtered.Items[0])
}
