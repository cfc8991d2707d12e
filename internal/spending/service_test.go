package spending_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jihopark/moneydash/internal/spending"
)

func TestService_Create(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    spending.Params
		setupMock func(m *spending.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: spending.Params{
				Title:   "Car insurance",
				Amount:  450_000,
				DueDate: due,
			},
			setupMock: func(m *spending.MockRepository) {
				m.EXPECT().
					CreatePlan(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *spending.Plan) error {
						p.ID = uuid.New()
						p.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:    "MissingTitle",
			params:  spending.Params{Title: " ", Amount: 100, DueDate: due},
			wantErr: spending.ErrTitleRequired,
		},
		{
			name:    "MissingDueDate",
			params:  spending.Params{Title: "Rent", Amount: 100},
			wantErr: spending.ErrDueDateRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := spending.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := spending.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Update(t *testing.T) {
	t.Run("TogglePaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := uuid.New()
		due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		stored := &spending.Plan{ID: id, Title: "Rent", Amount: 800_000, DueDate: due}

		repo := spending.NewMockRepository(ctrl)
		repo.EXPECT().GetPlan(gomock.Any(), id).Return(stored, nil)
		repo.EXPECT().UpdatePlan(gomock.Any(), gomock.Any()).Return(nil)

		svc := spending.NewService(repo)
		got, err := svc.Update(context.Background(), id, spending.Params{
			Title:   "Rent",
			Amount:  800_000,
			DueDate: due,
			Paid:    true,
		})

		require.NoError(t, err)
		assert.True(t, got.Paid)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := spending.NewMockRepository(ctrl)
		repo.EXPECT().GetPlan(gomock.Any(), gomock.Any()).Return(nil, spending.ErrNotFound)

		svc := spending.NewService(repo)
		_, err := svc.Update(context.Background(), uuid.New(), spending.Params{
			Title:   "Rent",
			DueDate: time.Now(),
		})

		assert.ErrorIs(t, err, spending.ErrNotFound)
	})
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := spending.NewMockRepository(ctrl)
	repo.EXPECT().GetPlan(gomock.Any(), gomock.Any()).Return(nil, spending.ErrNotFound)

	svc := spending.NewService(repo)
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), spending.ErrNotFound)
}

func TestPlan_DaysRemaining(t *testing.T) {
	now := time.Date(2026, 9, 1, 13, 45, 0, 0, time.UTC)

	type testCase struct {
		name string
		due  time.Time
		want int
	}

	tests := []testCase{
		{name: "Future", due: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), want: 14},
		{name: "Today", due: time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC), want: 0},
		{name: "Overdue", due: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), want: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &spending.Plan{DueDate: tt.due}
			assert.Equal(t, tt.want, p.DaysRemaining(now))
		})
	}
}
