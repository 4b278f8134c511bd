package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cursor identifies the position after the last seen feed item.
// CreatedAt alone does not give a total order (two tweets can share an
// instant), so the tweet id acts as a secondary sort key. A cursor without
// a tweet id (the legacy bare-timestamp wire form) compares on time only.
type Cursor struct {
	CreatedAt  time.Time
	TweetID    uuid.UUID
	HasTweetID bool
}

// ErrInvalidCursor is returned when a cursor string cannot be parsed.
var ErrInvalidCursor = errors.New("invalid cursor")

// NewCursor builds a cursor pointing after the given tweet.
func NewCursor(createdAt time.Time, tweetID uuid.UUID) Cursor {
	return Cursor{CreatedAt: createdAt, TweetID: tweetID, HasTweetID: true}
}

// String serializes a cursor as "<RFC3339Nano>_<tweet uuid>".
func (c Cursor) String() string {
	ts := c.CreatedAt.UTC().Format(time.RFC3339Nano)
	if !c.HasTweetID {
		return ts
	}
	return ts + "_" + c.TweetID.String()
}

// ParseCursor parses both cursor wire forms: the composite
// "<timestamp>_<uuid>" token and a bare ISO-8601 timestamp.
func ParseCursor(s string) (*Cursor, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	tsPart := s
	idPart := ""
	if i := strings.LastIndex(s, "_"); i > 0 {
		tsPart, idPart = s[:i], s[i+1:]
	}

	ts, err := time.Parse(time.RFC3339Nano, tsPart)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	c := Cursor{CreatedAt: ts}
	if idPart != "" {
		id, err := uuid.Parse(idPart)
		if err != nil {
			return nil, ErrInvalidCursor
		}
		c.TweetID = id
		c.HasTweetID = true
	}
	return &c, nil
}
