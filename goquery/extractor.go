// Package goquery extracts company records from rusprofile.ru search result
// pages using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/firmlist"
	"golang.org/x/net/html"
)

// Selectors for the search result markup.
const (
	listingSelector     = "div.list-element"
	titleSelector       = "a.list-element__title"
	rowInfoSelector     = "div.list-element__row-info"
	infoBoxSelector     = "div.list-element__info-box"
	infoBoxItemSelector = "div.list-element__info-box-item"
	addressSelector     = "div.list-element__address"
	textSelector        = "span.list-element__text"
	labelSelector       = "span"
)

// Labels preceding values inside the row-info and info-box containers.
// Matching is a case-sensitive substring test.
const (
	LabelINN     = "ИНН:"
	LabelRegDate = "Дата регистрации:"
	LabelRevenue = "Выручка:"
)

// Ensure Extractor implements firmlist.Extractor at compile time.
var _ firmlist.Extractor = (*Extractor)(nil)

// Extractor parses search result pages into companies.
type Extractor struct {
	sourceURL   string
	revenueYear string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSourceURL sets the value stored in every company's Source field.
func WithSourceURL(url string) Option {
	return func(e *Extractor) {
		e.sourceURL = url
	}
}

// WithRevenueYear sets the value stored in every company's RevenueYear field.
func WithRevenueYear(year string) Option {
	return func(e *Extractor) {
		e.revenueYear = year
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		sourceURL:   firmlist.DefaultSourceURL,
		revenueYear: firmlist.DefaultRevenueYear,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns one company per listing item in document order.
func (e *Extractor) Extract(html string) ([]*firmlist.Company, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, firmlist.Errorf(firmlist.EINVALID, "failed to parse HTML: %v", err)
	}

	items := doc.Find(listingSelector)
	companies := make([]*firmlist.Company, 0, items.Length())
	items.Each(func(_ int, item *goquery.Selection) {
		companies = append(companies, e.extractCompany(item))
	})

	return companies, nil
}

// extractCompany probes every field independently. A missing element only
// affects its own field.
func (e *Extractor) extractCompany(item *goquery.Selection) *firmlist.Company {
	c := &firmlist.Company{
		Source:      e.sourceURL,
		RevenueYear: e.revenueYear,
	}

	if title := item.Find(titleSelector).First(); title.Length() > 0 {
		c.Name = ptr(strippedText(title.Get(0)))
	}

	if rowInfo := item.Find(rowInfoSelector).First(); rowInfo.Length() > 0 {
		if label := findLabel(rowInfo, LabelINN); label.Length() > 0 {
			c.INN = ptr(afterColon(strippedText(label.Get(0))))
		}
		if label := findLabel(rowInfo, LabelRegDate); label.Length() > 0 {
			c.RegDate = afterColon(strippedText(label.Get(0)))
		}
	}

	c.Revenue = extractRevenue(item)

	if address := item.Find(addressSelector).First(); address.Length() > 0 {
		c.Region = ptr(strippedText(address.Get(0)))
	}

	if text := item.Find(textSelector).First(); text.Length() > 0 {
		c.OKVEDMain = ptr(strippedText(text.Get(0)))
	}

	return c
}

// extractRevenue returns the text of the element following the revenue
// label in the first info-box item, or "" if any step is missing.
func extractRevenue(item *goquery.Selection) string {
	boxItem := item.Find(infoBoxSelector).First().Find(infoBoxItemSelector).First()
	if boxItem.Length() == 0 {
		return ""
	}

	label := findLabel(boxItem, LabelRevenue)
	if label.Length() == 0 {
		return ""
	}

	value := label.Next()
	if value.Length() == 0 {
		return ""
	}

	text := strings.ReplaceAll(strippedText(value.Get(0)), "\u00a0", " ")
	return strings.TrimSpace(text)
}

// findLabel returns the first label leaf under container whose own string
// contains label.
func findLabel(container *goquery.Selection, label string) *goquery.Selection {
	return container.Find(labelSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		text, ok := ownString(s.Get(0))
		return ok && strings.Contains(text, label)
	}).First()
}

// ownString returns the single string an element directly wraps. An element
// has one only when it has exactly one child and that child is either a text
// node or an element that itself has one. Elements with mixed content have
// none.
func ownString(n *html.Node) (string, bool) {
	if n == nil || n.FirstChild == nil || n.FirstChild != n.LastChild {
		return "", false
	}

	child := n.FirstChild
	switch child.Type {
	case html.TextNode:
		return child.Data, true
	case html.ElementNode:
		return ownString(child)
	default:
		return "", false
	}
}

// strippedText concatenates every descendant text node of n, each trimmed
// of surrounding whitespace, without separators. Whitespace-only nodes are
// dropped.
func strippedText(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return b.String()
}

// afterColon returns everything after the first colon, trimmed. Further
// colons are kept.
func afterColon(s string) string {
	_, value, _ := strings.Cut(s, ":")
	return strings.TrimSpace(value)
}

func ptr(s string) *string {
	return &s
}
