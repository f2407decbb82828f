package collision

import (
	"fmt"

	"github.com/arloliu/bincodec/errs"
	"github.com/arloliu/bincodec/internal/hash"
)

// Tracker tracks field tags while a schema is being built and rejects empty
// or repeated tags. Tags are bucketed by their xxHash64 id; distinct tags that
// share an id are still told apart by name, and the collision is recorded.
type Tracker struct {
	tags         map[uint64][]string // id → tags with that id
	hasCollision bool                // whether two distinct tags share an id
}

// NewTracker creates a new tag tracker sized for n tags.
func NewTracker(n int) *Tracker {
	return &Tracker{
		tags: make(map[uint64][]string, n),
	}
}

// Track records tag.
//
// Returns errs.ErrEmptyTag for an empty tag and errs.ErrDuplicateTag when the
// same tag was already tracked.
func (t *Tracker) Track(tag string) error {
	if tag == "" {
		return errs.ErrEmptyTag
	}

	id := hash.ID(tag)
	bucket := t.tags[id]
	for _, existing := range bucket {
		if existing == tag {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateTag, tag)
		}
	}

	if len(bucket) > 0 {
		t.hasCollision = true
	}

	t.tags[id] = append(bucket, tag)

	return nil
}

// HasCollision returns true if two distinct tags share an id.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}
