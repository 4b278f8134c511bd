package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-network/internal/events"
	"github.com/sbilibin2017/gw-social-network/internal/logger"
	"github.com/sbilibin2017/gw-social-network/internal/models"
)

// TweetChecker verifies a tweet exists before its membership is flipped.
type TweetChecker interface {
	GetByID(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error)
}

// InteractionToggler flips a (user, tweet) membership row and reports
// whether a row was created.
type InteractionToggler interface {
	Toggle(ctx context.Context, kind models.InteractionKind, userID, tweetID uuid.UUID) (bool, error)
}

// InteractionService implements the like/retweet toggle.
type InteractionService struct {
	tweets    TweetChecker
	toggler   InteractionToggler
	publisher EventPublisher
}

// NewInteractionService creates a new InteractionService instance.
func NewInteractionService(tweets TweetChecker, toggler InteractionToggler, publisher EventPublisher) *InteractionService {
	return &InteractionService{
		tweets:    tweets,
		toggler:   toggler,
		publisher: publisher,
	}
}

// Toggle flips the membership for (userID, tweetID) and returns the
// resulting action plus whether a row was created. An unknown tweet is
// rejected up front instead of surfacing as a foreign-key error.
func (svc *InteractionService) Toggle(ctx context.Context, kind models.InteractionKind, userID, tweetID uuid.UUID) (models.InteractionAction, bool, error) {
	tweet, err := svc.tweets.GetByID(ctx, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to check tweet", "err", err)
		return "", false, err
	}
	if tweet == nil {
		return "", false, ErrTweetNotFound
	}

	created, err := svc.toggler.Toggle(ctx, kind, userID, tweetID)
	if err != nil {
		logger.Log.Errorw("failed to toggle interaction", "kind", kind, "err", err)
		return "", false, err
	}

	action := kind.UndoAction()
	if created {
		action = kind.BaseAction()
	}

	svc.publisher.Publish(ctx, events.Event{
		Type:    events.TypeInteraction,
		UserID:  userID,
		TweetID: tweetID,
		Action:  string(action),
	})

	return action, created, nil
}
