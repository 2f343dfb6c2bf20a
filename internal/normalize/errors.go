package normalize

import "fmt"

// MalformedEventError signals an upstream event that cannot be normalized
// because a required competitor (home or away) is missing. Callers decide
// whether to skip the event or abort the batch.
type MalformedEventError struct {
	EventID string
	Reason  string
}

func (e *MalformedEventError) Error() string {
	if e.EventID == "" {
		return fmt.Sprintf("malformed event: %s", e.Reason)
	}
	return fmt.Sprintf("malformed event %s: %s", e.EventID, e.Reason)
}
