package models

import "github.com/google/uuid"

// FeedScopeKind tags the selection predicate of a feed request.
type FeedScopeKind int

const (
	// FeedAll selects every tweet (global timeline).
	FeedAll FeedScopeKind = iota
	// FeedByAuthor selects tweets authored by one user.
	FeedByAuthor
	// FeedRepliesOf selects direct replies of one tweet.
	FeedRepliesOf
	// FeedMatchingContent selects tweets whose content contains a query
	// substring, case-insensitively.
	FeedMatchingContent
)

// FeedScope is the tagged variant consumed by the shared feed routine.
// Only the field matching Kind is meaningful.
type FeedScope struct {
	Kind          FeedScopeKind
	AuthorID      uuid.UUID
	ParentTweetID uuid.UUID
	Query         string
}

// DefaultPageSize applies when a feed request names no page size.
const DefaultPageSize = 10

// AllScope selects the global timeline.
func AllScope() FeedScope {
	return FeedScope{Kind: FeedAll}
}

// ByAuthorScope selects one user's timeline.
func ByAuthorScope(authorID uuid.UUID) FeedScope {
	return FeedScope{Kind: FeedByAuthor, AuthorID: authorID}
}

// RepliesOfScope selects direct replies of a tweet.
func RepliesOfScope(parentTweetID uuid.UUID) FeedScope {
	return FeedScope{Kind: FeedRepliesOf, ParentTweetID: parentTweetID}
}

// MatchingContentScope selects tweets matching a substring query.
func MatchingContentScope(query string) FeedScope {
	return FeedScope{Kind: FeedMatchingContent, Query: query}
}
