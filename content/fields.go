package content

import (
	"time"

	"github.com/clubstack/contentful-mcp/contentful"
)

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func intField(fields map[string]any, key string) int {
	switch v := fields[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// imageField converts a resolved asset field into an Image. Anything
// that is not a resolved asset (including a dangling link the client
// dropped) yields nil.
func imageField(fields map[string]any, key string) *Image {
	a, ok := fields[key].(*contentful.Asset)
	if !ok {
		return nil
	}
	return &Image{URL: a.URL, Title: a.Title, Width: a.Width, Height: a.Height}
}

// assetURLField returns the file URL of a resolved asset field, for
// fields that carry documents rather than images.
func assetURLField(fields map[string]any, key string) string {
	a, ok := fields[key].(*contentful.Asset)
	if !ok {
		return ""
	}
	return a.URL
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses the date formats Contentful date fields come in.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
