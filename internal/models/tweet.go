package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxTweetContentLength is the upper bound on tweet text.
const MaxTweetContentLength = 280

// MaxTweetImages is the upper bound on images attached to one tweet.
const MaxTweetImages = 4

// TweetDB represents a tweet record in the database.
// A non-nil ParentTweetID marks the tweet as a reply.
type TweetDB struct {
	TweetID       uuid.UUID  `db:"tweet_id"`
	AuthorID      uuid.UUID  `db:"author_id"`
	Content       string     `db:"content"`
	ParentTweetID *uuid.UUID `db:"parent_tweet_id"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// ImgDB represents an image attachment record in the database.
type ImgDB struct {
	ImgID   uuid.UUID `db:"img_id"`
	TweetID uuid.UUID `db:"tweet_id"`
	URL     string    `db:"url"`
}

// FeedRowDB is one viewer-annotated row produced by the feed query:
// a tweet joined with its author, profile, counters and the viewer's like.
type FeedRowDB struct {
	TweetID       uuid.UUID  `db:"tweet_id"`
	Content       string     `db:"content"`
	ParentTweetID *uuid.UUID `db:"parent_tweet_id"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	AuthorID      uuid.UUID  `db:"author_id"`
	Username      string     `db:"username"`
	Email         string     `db:"email"`
	Bio           *string    `db:"bio"`
	AvatarURL     *string    `db:"avatar_url"`
	LikeCount     int        `db:"like_count"`
	RetweetCount  int        `db:"retweet_count"`
	ReplyCount    int        `db:"reply_count"`
	ViewerLiked   bool       `db:"viewer_liked"`
}

// Author is the tweet author view embedded in every returned tweet.
type Author struct {
	ID       uuid.UUID      `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Profile  ProfileSnippet `json:"profile"`
}

// Img is the image attachment view.
type Img struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// Tweet is the API view of a tweet: author, images, counters and the
// viewer-relative userLiked annotation. ParentTweet carries one level of
// reply context and is never populated recursively.
type Tweet struct {
	ID            uuid.UUID  `json:"id"`
	Content       string     `json:"content"`
	ParentTweetID *uuid.UUID `json:"parentTweetId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Author        Author     `json:"author"`
	Images        []Img      `json:"images"`
	LikeCount     int        `json:"likeCount"`
	RetweetCount  int        `json:"retweetCount"`
	ReplyCount    int        `json:"replyCount"`
	UserLiked     bool       `json:"userLiked"`
	ParentTweet   *Tweet     `json:"parentTweet,omitempty"`
}

// TweetPage is one page of a cursor-paginated feed.
// NextCursor is nil at the end of the stream.
type TweetPage struct {
	Items      []Tweet
	NextCursor *Cursor
}
