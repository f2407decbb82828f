package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bincodec/errs"
	"github.com/arloliu/bincodec/internal/hash"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(4)

	require.NotNil(t, tracker)
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker(0)

	require.NoError(t, tracker.Track("id"))
	require.NoError(t, tracker.Track("name"))
	require.NoError(t, tracker.Track("age"))

	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_EmptyTag(t *testing.T) {
	tracker := NewTracker(0)

	err := tracker.Track("")

	require.ErrorIs(t, err, errs.ErrEmptyTag)
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker(0)

	require.NoError(t, tracker.Track("id"))
	err := tracker.Track("id")

	require.ErrorIs(t, err, errs.ErrDuplicateTag)
	require.Contains(t, err.Error(), `"id"`)
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker(2)

	// Seed the bucket of "b" with a different tag to simulate two tags sharing an id.
	tracker.tags[hash.ID("b")] = []string{"a"}

	require.NoError(t, tracker.Track("b"))
	require.True(t, tracker.HasCollision())

	err := tracker.Track("b")
	require.ErrorIs(t, err, errs.ErrDuplicateTag)
}
