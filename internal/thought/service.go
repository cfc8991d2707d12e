package thought

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=thought
type Repository interface {
	CreateThought(ctx context.Context, t *Thought) error
	GetThought(ctx context.Context, id uuid.UUID) (*Thought, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*Thought, error)

	// ListThoughts returns every thought ordered by creation time ascending.
	ListThoughts(ctx context.Context) ([]*Thought, error)

	// DeleteThoughts removes all given ids as one atomic operation.
	DeleteThoughts(ctx context.Context, ids []uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create appends a new leaf to the forest: a root thought when parentID is
// nil, otherwise a reply to an existing thought.
func (s *Service) Create(ctx context.Context, content string, parentID *uuid.UUID) (*Thought, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	if parentID != nil {
		if _, err := s.repo.GetThought(ctx, *parentID); err != nil {
			return nil, fmt.Errorf("resolving parent: %w", err)
		}
	}

	t := &Thought{
		Content:  content,
		ParentID: parentID,
	}
	if err := s.repo.CreateThought(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Update changes only the content; creation time and tree position stay fixed.
func (s *Service) Update(ctx context.Context, id uuid.UUID, content string) (*Thought, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	return s.repo.UpdateContent(ctx, id, content)
}

// Delete removes a thought and its entire reply subtree. The descendant set
// is collected breadth-first over the flat parent pointers, then deleted in
// one batch so readers never observe a partially removed subtree.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetThought(ctx, id); err != nil {
		return err
	}

	all, err := s.repo.ListThoughts(ctx)
	if err != nil {
		return fmt.Errorf("listing thoughts: %w", err)
	}

	doomed := collectSubtree(all, id)

	if err := s.repo.DeleteThoughts(ctx, doomed); err != nil {
		return fmt.Errorf("deleting subtree: %w", err)
	}

	return nil
}

// ListForest rebuilds the nested forest from flat storage. Each node's
// children keep creation order; root thoughts are returned newest-first.
func (s *Service) ListForest(ctx context.Context) ([]*Thought, error) {
	all, err := s.repo.ListThoughts(ctx)
	if err != nil {
		return nil, err
	}

	return BuildForest(all), nil
}

// BuildForest links flat thoughts into trees without recursion, so arbitrarily
// deep reply chains cannot exhaust the stack. The input order (creation time
// ascending) becomes the child order; roots come out newest-first.
func BuildForest(all []*Thought) []*Thought {
	children := make(map[uuid.UUID][]*Thought)

	var roots []*Thought

	for _, t := range all {
		if t.ParentID == nil {
			roots = append(roots, t)
			continue
		}

		children[*t.ParentID] = append(children[*t.ParentID], t)
	}

	for _, t := range all {
		sub := children[t.ID]
		if sub == nil {
			sub = []*Thought{}
		}

		t.SubThoughts = sub
	}

	// Newest root first.
	for i, j := 0, len(roots)-1; i < j; i, j = i+1, j-1 {
		roots[i], roots[j] = roots[j], roots[i]
	}

	if roots == nil {
		roots = []*Thought{}
	}

	return roots
}

// collectSubtree computes the transitive closure of descendants of root:
// passes over the parent pointers keep widening the collected set until a
// pass adds nothing new.
func collectSubtree(all []*Thought, root uuid.UUID) []uuid.UUID {
	byParent := make(map[uuid.UUID][]uuid.UUID)

	for _, t := range all {
		if t.ParentID != nil {
			byParent[*t.ParentID] = append(byParent[*t.ParentID], t.ID)
		}
	}

	collected := []uuid.UUID{root}

	for frontier := []uuid.UUID{root}; len(frontier) > 0; {
		var next []uuid.UUID

		for _, id := range frontier {
			next = append(next, byParent[id]...)
		}

		collected = append(collected, next...)
		frontier = next
	}

	return collected
}
