package confirmwatch

import "context"

// NotificationLevel selects which confirmation-count transitions produce an
// outbound notification.
type NotificationLevel string

const (
	// LevelNone never notifies.
	LevelNone NotificationLevel = "none"

	// LevelFirst notifies only on the transition into one confirmation.
	LevelFirst NotificationLevel = "first"

	// LevelFirstTwo notifies on the transitions into one and two confirmations.
	LevelFirstTwo NotificationLevel = "first_two"

	// LevelAll notifies on every strict confirmation increase. When the tip
	// jumps several blocks in one pass, a single notification is emitted for
	// the whole jump, not one per skipped level.
	LevelAll NotificationLevel = "all"
)

// PolicySource supplies the notification level configured for an owner.
// The engine reads it fresh on every reconciliation pass, since the level may
// change between passes.
type PolicySource interface {
	NotificationLevel(ctx context.Context, owner string) (NotificationLevel, error)
}

// staticPolicySource always reports the same level. It backs the engine's
// default policy when no source is configured.
type staticPolicySource NotificationLevel

func (p staticPolicySource) NotificationLevel(ctx context.Context, owner string) (NotificationLevel, error) {
	return NotificationLevel(p), nil
}

// normalize maps an unset or unknown level onto the default, LevelFirst.
func (l NotificationLevel) normalize() NotificationLevel {
	switch l {
	case LevelNone, LevelFirst, LevelFirstTwo, LevelAll:
		return l
	default:
		return LevelFirst
	}
}

// shouldNotify reports whether the transition from previous to current
// confirmations crosses the given level's notification threshold.
//
// Callers only invoke it on strict increases; a non-increasing transition
// never notifies.
func shouldNotify(level NotificationLevel, previous, current int64) bool {
	if current <= previous {
		return false
	}

	switch level.normalize() {
	case LevelNone:
		return false
	case LevelFirst:
		return current == 1
	case LevelFirstTwo:
		return current == 1 || current == 2
	case LevelAll:
		return true
	}

	return false
}
