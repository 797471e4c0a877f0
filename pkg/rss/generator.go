// Package rss imports quote feeds into the document store and renders favorites as an RSS feed
package rss

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/passiondaily/pkg/domain"
)

type rssFeed struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *atomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        rssGUID  `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Category    string   `xml:"category"`
	Enclosure   *rssEncl `xml:"enclosure,omitempty"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

type rssEncl struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// Generator renders favorites as RSS 2.0
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator, links of items point to deep links under baseURL
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/")}
}

// Favorites renders the favorites list, items keep the order they are passed in
func (g *Generator) Favorites(items []domain.FavoriteQuote) (string, error) {
	rssItems := make([]*rssItem, 0, len(items))
	for _, fq := range items {
		rssItems = append(rssItems, g.item(fq))
	}

	feed := &rssFeed{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &rssChannel{
			Title:         "Passion Daily - Favorites",
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("%d favorite quotes", len(items)),
			AtomLink:      &atomLink{Href: g.baseURL + "/rss/favorites", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) item(fq domain.FavoriteQuote) *rssItem {
	category := fq.CategoryID
	title := fq.Quote.Author
	if title == "" {
		title = "Unknown"
	}
	res := &rssItem{
		Title:       title,
		Link:        fmt.Sprintf("%s/api/v1/link/%s/%s", g.baseURL, url.PathEscape(category), url.PathEscape(fq.QuoteID)),
		GUID:        rssGUID{Value: category + "/" + fq.QuoteID},
		Description: fq.Quote.Text,
		PubDate:     fq.AddedAt.Format(time.RFC1123Z),
		Category:    category,
	}
	if fq.Quote.ImageURL != "" {
		res.Enclosure = &rssEncl{URL: fq.Quote.ImageURL, Type: "image/jpeg"}
	}
	return res
}
