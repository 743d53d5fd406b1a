package syllabus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// URL is the syllabus page. Week links are relative to it.
const URL = "https://cs50.harvard.edu/python/2022/weeks/"

// ErrUnavailable means the document was absent or did not have the expected shape.
var ErrUnavailable = errors.New("syllabus unavailable")

// Week is one entry of the syllabus list.
type Week struct {
	Index int
	Title string
	Link  string
}

// URL joins base and the week's link the same way the course site renders them.
func (w Week) URL(base string) string {
	return base + w.Link
}

// Extract parses the syllabus HTML into weeks in document order.
//
// The document must contain main.col-lg > ol > li > a[href]. A single
// malformed item fails the whole document; no partial list is returned.
// A list with no items yields an empty slice and a nil error.
func Extract(html string) ([]Week, error) {
	if html == "" {
		return nil, ErrUnavailable
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", ErrUnavailable, err)
	}

	content := doc.Find("main.col-lg").First()
	if content.Length() == 0 {
		return nil, fmt.Errorf("%w: no main content region", ErrUnavailable)
	}

	list := content.Find("ol").First()
	if list.Length() == 0 {
		return nil, fmt.Errorf("%w: no ordered list", ErrUnavailable)
	}

	items := list.Find("li")
	weeks := make([]Week, 0, items.Length())
	var itemErr error
	items.EachWithBreak(func(i int, li *goquery.Selection) bool {
		a := li.Find("a").First()
		if a.Length() == 0 {
			itemErr = fmt.Errorf("%w: item %d has no link", ErrUnavailable, i)
			return false
		}
		href, ok := a.Attr("href")
		if !ok {
			itemErr = fmt.Errorf("%w: item %d link has no href", ErrUnavailable, i)
			return false
		}
		title := strings.TrimSpace(a.Text())
		if title == "" {
			itemErr = fmt.Errorf("%w: item %d has an empty title", ErrUnavailable, i)
			return false
		}
		weeks = append(weeks, Week{Index: i, Title: title, Link: href})
		return true
	})
	if itemErr != nil {
		return nil, itemErr
	}

	return weeks, nil
}
