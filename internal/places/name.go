package places

import (
	"strconv"
	"strings"
)

// AnnotationSeparator joins the present annotation parts.
const AnnotationSeparator = " | "

// FallbackNamePrefix is followed by the 1-based ordinal when no name resolves.
const FallbackNamePrefix = "Saved Place "

// Notes are the optional annotation parts of a feature, each already
// checked for presence. Empty fields are absent.
type Notes struct {
	Date    string
	Address string
	Comment string
}

// ResolveName picks the display name of a feature at the given 1-based ordinal.
func ResolveName(f Feature, ordinal int) string {
	if name, ok := present(field(f.Location(), "name")); ok {
		return name
	}

	if raw, ok := f.URL(); ok {
		if name, ok := ParseURLName(raw); ok {
			return name
		}
	}

	if name, ok := firstPresent(f.Properties(), nameKeys...); ok {
		return name
	}

	return FallbackNamePrefix + strconv.Itoa(ordinal)
}

// ResolveNotes collects the date, address and comment of a feature.
func ResolveNotes(f Feature) Notes {
	props := f.Properties()

	var n Notes
	n.Date, _ = present(field(props, "date"))
	n.Address, _ = present(field(f.Location(), "address"))
	n.Comment, _ = firstPresent(props, commentKeys...)

	return n
}

// Annotation composes the notes without a source URL.
func (n Notes) Annotation() string {
	return n.compose("")
}

// AnnotationWithURL composes the notes with a "Google Maps:" part between
// the address and the comment. An empty url is skipped.
func (n Notes) AnnotationWithURL(url string) string {
	return n.compose(url)
}

func (n Notes) compose(url string) string {
	var date, address, link string
	if n.Date != "" {
		date = "Saved: " + n.Date
	}
	if n.Address != "" {
		address = "Address: " + n.Address
	}
	if url != "" {
		link = "Google Maps: " + url
	}

	return ComposeAnnotation(date, address, link, n.Comment)
}

// ComposeAnnotation joins the non-empty parts with AnnotationSeparator.
func ComposeAnnotation(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, AnnotationSeparator)
}
