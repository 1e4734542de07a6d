package feed

import (
	"fmt"

	"github.com/sells-group/zorah/internal/model"
)

// Status line messages set by the renderer.
const (
	MsgNoResults = "Crawl finished. No pages found or all pages failed to load."
	msgSummary   = "Crawl finished. Processed %d URLs."
)

// SummaryMessage reports how many URLs a finished crawl returned.
func SummaryMessage(n int) string {
	return fmt.Sprintf(msgSummary, n)
}

// BadgeKind identifies which fingerprint a badge shows.
type BadgeKind string

const (
	BadgeCDN      BadgeKind = "cdn"
	BadgeSecurity BadgeKind = "security"
)

// Badge is one detected-service marker on a card.
type Badge struct {
	Kind    BadgeKind
	Text    string
	Classes string
}

const (
	cdnBadgeClasses      = "text-xs bg-blue-700 text-blue-100 px-2 py-0.5 rounded-full"
	securityBadgeClasses = "text-xs bg-red-700 text-red-100 px-2 py-0.5 rounded-full"
)

// Card is the display model of one crawl result item.
type Card struct {
	Item   model.CrawlResultItem
	Style  Style
	Label  string
	Title  string
	URL    string
	Note   string
	Badges []Badge
}

// NoteLine returns the rendered note text, or "" when the card has no note.
func (c Card) NoteLine() string {
	if c.Note == "" {
		return ""
	}
	return "Note: " + c.Note
}

// BuildCard maps one item to its card. It is pure.
func BuildCard(item model.CrawlResultItem) Card {
	style := StyleFor(item.Type)
	return Card{
		Item:   item,
		Style:  style,
		Label:  style.Label(item.Status),
		Title:  item.Title,
		URL:    item.URL,
		Note:   item.Note,
		Badges: badges(item.Services),
	}
}

// BuildCards maps items to cards, preserving order.
func BuildCards(items []model.CrawlResultItem) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, BuildCard(item))
	}
	return cards
}

func badges(s *model.Services) []Badge {
	if !s.HasAny() {
		return nil
	}
	var out []Badge
	if s.CDN != "" {
		out = append(out, Badge{Kind: BadgeCDN, Text: "CDN: " + s.CDN, Classes: cdnBadgeClasses})
	}
	if s.WAF != "" {
		out = append(out, Badge{Kind: BadgeSecurity, Text: "Security: " + s.WAF, Classes: securityBadgeClasses})
	}
	return out
}
