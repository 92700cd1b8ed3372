package ingest

import (
	"fmt"
	"strings"
)

// Upload captions carry exactly six pipe-separated fields:
//
//	grade|category|subject|chapter|title|premium
//
// Anything else is rejected outright; a malformed caption never creates a
// record. The arity check also guarantees that no stored field contains
// the pipe, which the callback token grammar relies on.
const captionFields = 6

type Caption struct {
	Grade    string
	Category string
	Subject  string
	Chapter  string
	Title    string
	Premium  bool
}

var ErrMalformedCaption = fmt.Errorf("caption must have %d pipe-separated fields", captionFields)

func ParseCaption(caption string) (*Caption, error) {
	parts := strings.Split(caption, "|")
	if len(parts) != captionFields {
		return nil, ErrMalformedCaption
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return &Caption{
		Grade:    parts[0],
		Category: parts[1],
		Subject:  parts[2],
		Chapter:  parts[3],
		Title:    parts[4],
		Premium:  Truthy(parts[5]),
	}, nil
}

// Truthy matches the original upload convention: 1/true/yes/y in any case
// mean premium, everything else means free.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
