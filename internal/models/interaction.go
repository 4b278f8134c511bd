package models

// InteractionKind selects which membership relation a toggle flips.
type InteractionKind string

const (
	InteractionLike    InteractionKind = "like"
	InteractionRetweet InteractionKind = "retweet"
)

// InteractionAction reports the outcome of a toggle.
type InteractionAction string

const (
	ActionLiked       InteractionAction = "liked"
	ActionUnliked     InteractionAction = "unliked"
	ActionRetweeted   InteractionAction = "retweeted"
	ActionUnretweeted InteractionAction = "unretweeted"
)

// BaseAction returns the action reported when a membership row is created.
func (k InteractionKind) BaseAction() InteractionAction {
	if k == InteractionRetweet {
		return ActionRetweeted
	}
	return ActionLiked
}

// UndoAction returns the action reported when a membership row is removed.
func (k InteractionKind) UndoAction() InteractionAction {
	if k == InteractionRetweet {
		return ActionUnretweeted
	}
	return ActionUnliked
}
