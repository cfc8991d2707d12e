package thought_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jihopark/moneydash/internal/thought"
)

// chain builds a flat list of thoughts where each entry is a reply to the
// previous one, oldest first.
func chain(contents ...string) []*thought.Thought {
	var (
		all    []*thought.Thought
		parent *uuid.UUID
	)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, content := range contents {
		t := &thought.Thought{
			ID:        uuid.New(),
			Content:   content,
			ParentID:  parent,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		all = append(all, t)
		parent = &t.ID
	}

	return all
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		content   string
		parentID  *uuid.UUID
		setupMock func(m *thought.MockRepository, parentID *uuid.UUID)
		wantErr   error
	}

	parentID := uuid.New()

	tests := []testCase{
		{
			name:    "Root",
			content: "first thought",
			setupMock: func(m *thought.MockRepository, _ *uuid.UUID) {
				m.EXPECT().
					CreateThought(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, th *thought.Thought) error {
						th.ID = uuid.New()
						th.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:     "Reply",
			content:  "a reply",
			parentID: &parentID,
			setupMock: func(m *thought.MockRepository, pid *uuid.UUID) {
				m.EXPECT().
					GetThought(gomock.Any(), *pid).
					Return(&thought.Thought{ID: *pid}, nil)
				m.EXPECT().
					CreateThought(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, th *thought.Thought) error {
						assert.Equal(t, pid, th.ParentID)
						th.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:     "ParentMissing",
			content:  "orphan",
			parentID: &parentID,
			setupMock: func(m *thought.MockRepository, pid *uuid.UUID) {
				m.EXPECT().
					GetThought(gomock.Any(), *pid).
					Return(nil, thought.ErrNotFound)
			},
			wantErr: thought.ErrNotFound,
		},
		{
			name:    "BlankContent",
			content: "   \n\t",
			wantErr: thought.ErrEmptyContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := thought.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, tt.parentID)
			}

			svc := thought.NewService(repo)
			got, err := svc.Create(context.Background(), tt.content, tt.parentID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.content, got.Content)
		})
	}
}

func TestService_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := uuid.New()
		want := &thought.Thought{ID: id, Content: "edited"}

		repo := thought.NewMockRepository(ctrl)
		repo.EXPECT().UpdateContent(gomock.Any(), id, "edited").Return(want, nil)

		svc := thought.NewService(repo)
		got, err := svc.Update(context.Background(), id, "edited")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("BlankContent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := thought.NewService(thought.NewMockRepository(ctrl))
		_, err := svc.Update(context.Background(), uuid.New(), "  ")

		assert.ErrorIs(t, err, thought.ErrEmptyContent)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := thought.NewMockRepository(ctrl)
		repo.EXPECT().
			UpdateContent(gomock.Any(), gomock.Any(), "x").
			Return(nil, thought.ErrNotFound)

		svc := thought.NewService(repo)
		_, err := svc.Update(context.Background(), uuid.New(), "x")

		assert.ErrorIs(t, err, thought.ErrNotFound)
	})
}

func TestService_Delete_Cascades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A <- B <- C plus an unrelated root D.
	all := chain("A", "B", "C")
	d := &thought.Thought{ID: uuid.New(), Content: "D"}
	all = append(all, d)

	root := all[0]

	repo := thought.NewMockRepository(ctrl)
	repo.EXPECT().GetThought(gomock.Any(), root.ID).Return(root, nil)
	repo.EXPECT().ListThoughts(gomock.Any()).Return(all, nil)
	repo.EXPECT().
		DeleteThoughts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []uuid.UUID) error {
			// Exactly N+1 records: the root and its two descendants.
			assert.Len(t, ids, 3)
			assert.Contains(t, ids, all[0].ID)
			assert.Contains(t, ids, all[1].ID)
			assert.Contains(t, ids, all[2].ID)
			assert.NotContains(t, ids, d.ID)
			return nil
		})

	svc := thought.NewService(repo)
	require.NoError(t, svc.Delete(context.Background(), root.ID))
}

func TestService_Delete_Leaf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	all := chain("A", "B")
	leaf := all[1]

	repo := thought.NewMockRepository(ctrl)
	repo.EXPECT().GetThought(gomock.Any(), leaf.ID).Return(leaf, nil)
	repo.EXPECT().ListThoughts(gomock.Any()).Return(all, nil)
	repo.EXPECT().DeleteThoughts(gomock.Any(), []uuid.UUID{leaf.ID}).Return(nil)

	svc := thought.NewService(repo)
	require.NoError(t, svc.Delete(context.Background(), leaf.ID))
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := thought.NewMockRepository(ctrl)
	repo.EXPECT().GetThought(gomock.Any(), gomock.Any()).Return(nil, thought.ErrNotFound)

	svc := thought.NewService(repo)
	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, thought.ErrNotFound)
}

func TestBuildForest(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	rootA := &thought.Thought{ID: uuid.New(), Content: "A", CreatedAt: base}
	childB := &thought.Thought{ID: uuid.New(), Content: "B", ParentID: &rootA.ID, CreatedAt: base.Add(time.Minute)}
	childC := &thought.Thought{ID: uuid.New(), Content: "C", ParentID: &rootA.ID, CreatedAt: base.Add(2 * time.Minute)}
	grandD := &thought.Thought{ID: uuid.New(), Content: "D", ParentID: &childB.ID, CreatedAt: base.Add(3 * time.Minute)}
	rootE := &thought.Thought{ID: uuid.New(), Content: "E", CreatedAt: base.Add(4 * time.Minute)}

	forest := thought.BuildForest([]*thought.Thought{rootA, childB, childC, grandD, rootE})

	require.Len(t, forest, 2)

	// Roots newest-first.
	assert.Equal(t, "E", forest[0].Content)
	assert.Equal(t, "A", forest[1].Content)

	// Children keep creation order.
	require.Len(t, forest[1].SubThoughts, 2)
	assert.Equal(t, "B", forest[1].SubThoughts[0].Content)
	assert.Equal(t, "C", forest[1].SubThoughts[1].Content)

	require.Len(t, forest[1].SubThoughts[0].SubThoughts, 1)
	assert.Equal(t, "D", forest[1].SubThoughts[0].SubThoughts[0].Content)

	// Leaves carry an empty (non-nil) child list.
	assert.NotNil(t, forest[0].SubThoughts)
	assert.Empty(t, forest[0].SubThoughts)
}

func TestBuildForest_RoundTrip(t *testing.T) {
	all := chain("A", "B", "C")
	sibling := &thought.Thought{ID: uuid.New(), Content: "A2", ParentID: &all[0].ID, CreatedAt: all[2].CreatedAt.Add(time.Minute)}
	all = append(all, sibling)

	wantIDs := make(map[uuid.UUID]*uuid.UUID, len(all))
	for _, th := range all {
		wantIDs[th.ID] = th.ParentID
	}

	forest := thought.BuildForest(all)

	// Flatten with an explicit stack and check the id set and parent links survive.
	gotIDs := make(map[uuid.UUID]*uuid.UUID)
	stack := append([]*thought.Thought{}, forest...)

	for len(stack) > 0 {
		th := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		gotIDs[th.ID] = th.ParentID
		stack = append(stack, th.SubThoughts...)
	}

	assert.Equal(t, wantIDs, gotIDs)
}

func TestBuildForest_DeepChain(t *testing.T) {
	contents := make([]string, 20000)
	for i := range contents {
		contents[i] = "n"
	}

	forest := thought.BuildForest(chain(contents...))

	require.Len(t, forest, 1)

	depth := 0
	for node := forest[0]; node != nil; {
		depth++
		if len(node.SubThoughts) == 0 {
			break
		}
		node = node.SubThoughts[0]
	}

	assert.Equal(t, len(contents), depth)
}

func TestBuildForest_Empty(t *testing.T) {
	forest := thought.BuildForest(nil)
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
}

func TestService_ListForest_AfterCascade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := thought.NewMockRepository(ctrl)
	repo.EXPECT().ListThoughts(gomock.Any()).Return(nil, nil)

	svc := thought.NewService(repo)
	forest, err := svc.ListForest(context.Background())

	require.NoError(t, err)
	assert.Empty(t, forest)
}
