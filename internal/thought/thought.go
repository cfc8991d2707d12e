package thought

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("thought not found")
	ErrEmptyContent = errors.New("thought content is required")
)

// Thought is a single note in the reply forest. Storage is flat: only the
// parent pointer is persisted, and SubThoughts is populated when the forest
// is rebuilt on read.
type Thought struct {
	ID          uuid.UUID
	Content     string
	ParentID    *uuid.UUID // nil for root thoughts
	CreatedAt   time.Time
	SubThoughts []*Thought
}
