package rss

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/passiondaily/pkg/domain"
)

func TestGenerator_Favorites(t *testing.T) {
	added := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	items := []domain.FavoriteQuote{
		{
			Favorite: domain.Favorite{UserID: "u1", QuoteID: "quote_007", CategoryID: "love", DocID: "quote_001", AddedAt: added},
			Quote: domain.Quote{ID: "quote_007", Text: "Love & kindness", Author: "Rumi",
				ImageURL: "https://example.com/rumi.jpg", Category: domain.CategoryLove},
		},
		{
			Favorite: domain.Favorite{UserID: "u1", QuoteID: "quote_002", CategoryID: "success", DocID: "quote_001", AddedAt: added},
			Quote:    domain.Quote{ID: "quote_002", Text: "Keep going", Category: domain.CategorySuccess},
		},
	}

	out, err := NewGenerator("https://quotes.example.com/").Favorites(items)
	require.NoError(t, err)

	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, out, `<title>Passion Daily - Favorites</title>`)
	assert.Contains(t, out, `<link xmlns="http://www.w3.org/2005/Atom" href="https://quotes.example.com/rss/favorites" rel="self" type="application/rss+xml"></link>`)

	var parsed struct {
		Channel struct {
			Items []struct {
				Title       string `xml:"title"`
				Link        string `xml:"link"`
				GUID        string `xml:"guid"`
				Description string `xml:"description"`
				PubDate     string `xml:"pubDate"`
				Category    string `xml:"category"`
				Enclosure   struct {
					URL string `xml:"url,attr"`
				} `xml:"enclosure"`
			} `xml:"item"`
		} `xml:"channel"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed.Channel.Items, 2)

	first := parsed.Channel.Items[0]
	assert.Equal(t, "Rumi", first.Title)
	assert.Equal(t, "https://quotes.example.com/api/v1/link/love/quote_007", first.Link)
	assert.Equal(t, "love/quote_007", first.GUID)
	assert.Equal(t, "Love & kindness", first.Description)
	assert.Equal(t, added.Format(time.RFC1123Z), first.PubDate)
	assert.Equal(t, "love", first.Category)
	assert.Equal(t, "https://example.com/rumi.jpg", first.Enclosure.URL)

	second := parsed.Channel.Items[1]
	assert.Equal(t, "Unknown", second.Title)
	assert.Equal(t, "success", second.Category)
	assert.Empty(t, second.Enclosure.URL)
}

func TestGenerator_FavoritesEmpty(t *testing.T) {
	out, err := NewGenerator("http://localhost:8080").Favorites(nil)
	require.NoError(t, err)
	assert.Contains(t, out, "<description>0 favorite quotes</description>")
	assert.NotContains(t, out, "<item>")
}

func TestQuoteNumber(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"quote_001", 1},
		{"quote_120", 120},
		{"quote_1000", 1000},
		{"", 0},
		{"quote_abc", 0},
		{"q_005", 0},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, quoteNumber(tt.id))
		})
	}
	assert.Equal(t, "quote_042", QuoteID(42))
}
