package asset_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jihopark/moneydash/internal/asset"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    asset.CreateParams
		setupMock func(m *asset.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: asset.CreateParams{
				Name:     "Emergency fund",
				Amount:   5_000_000,
				Category: asset.CategorySavings,
				Platform: "Kakao Bank",
			},
			setupMock: func(m *asset.MockRepository) {
				m.EXPECT().
					CreateAsset(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *asset.Asset) error {
						a.ID = uuid.New()
						a.CreatedAt = time.Now()
						return nil
					})
				m.EXPECT().
					ListAssets(gomock.Any()).
					Return([]*asset.Asset{{Amount: 5_000_000}}, nil)
				m.EXPECT().
					UpsertHistory(gomock.Any(), gomock.Any(), int64(5_000_000)).
					Return(nil)
				m.EXPECT().
					CreateItemHistory(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "BlankPlatformDefaultsToOther",
			params: asset.CreateParams{
				Name:     "BTC",
				Amount:   300_000,
				Category: asset.CategoryCrypto,
				Platform: "  ",
			},
			setupMock: func(m *asset.MockRepository) {
				m.EXPECT().
					CreateAsset(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *asset.Asset) error {
						assert.Equal(t, asset.DefaultPlatform, a.Platform)
						a.ID = uuid.New()
						return nil
					})
				m.EXPECT().ListAssets(gomock.Any()).Return(nil, nil)
				m.EXPECT().UpsertHistory(gomock.Any(), gomock.Any(), int64(0)).Return(nil)
				m.EXPECT().CreateItemHistory(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "EmptyName",
			params: asset.CreateParams{
				Name:     "   ",
				Amount:   1000,
				Category: asset.CategorySavings,
			},
			wantErr: asset.ErrNameRequired,
		},
		{
			name: "UnknownCategory",
			params: asset.CreateParams{
				Name:     "Car",
				Amount:   1000,
				Category: asset.Category("VEHICLE"),
			},
			wantErr: asset.ErrInvalidCategory,
		},
		{
			name: "RepoError",
			params: asset.CreateParams{
				Name:     "Fund",
				Amount:   1000,
				Category: asset.CategoryStock,
			},
			setupMock: func(m *asset.MockRepository) {
				m.EXPECT().
					CreateAsset(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := asset.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := asset.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Update_PreviousAmount(t *testing.T) {
	type testCase struct {
		name         string
		stored       asset.Asset
		params       asset.UpdateParams
		wantPrevious int64
	}

	tests := []testCase{
		{
			name:   "AmountChanged",
			stored: asset.Asset{Amount: 1000, PreviousAmount: 0},
			params: asset.UpdateParams{
				Name:     "Fund",
				Amount:   1500,
				Category: asset.CategorySavings,
			},
			wantPrevious: 1000,
		},
		{
			name:   "AmountUnchanged",
			stored: asset.Asset{Amount: 1000, PreviousAmount: 700},
			params: asset.UpdateParams{
				Name:     "Fund",
				Amount:   1000,
				Category: asset.CategorySavings,
			},
			wantPrevious: 700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			id := uuid.New()
			stored := tt.stored
			stored.ID = id

			repo := asset.NewMockRepository(ctrl)
			repo.EXPECT().GetAsset(gomock.Any(), id).Return(&stored, nil)
			repo.EXPECT().UpdateAsset(gomock.Any(), gomock.Any()).Return(nil)
			repo.EXPECT().ListAssets(gomock.Any()).Return(nil, nil)
			repo.EXPECT().UpsertHistory(gomock.Any(), gomock.Any(), int64(0)).Return(nil)
			repo.EXPECT().CreateItemHistory(gomock.Any(), gomock.Any()).Return(nil)

			svc := asset.NewService(repo)
			got, err := svc.Update(context.Background(), id, tt.params)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrevious, got.PreviousAmount)
			assert.Equal(t, tt.params.Amount, got.Amount)
		})
	}
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := asset.NewMockRepository(ctrl)
	repo.EXPECT().GetAsset(gomock.Any(), gomock.Any()).Return(nil, asset.ErrNotFound)

	svc := asset.NewService(repo)
	_, err := svc.Update(context.Background(), uuid.New(), asset.UpdateParams{
		Name:     "Fund",
		Amount:   100,
		Category: asset.CategorySavings,
	})

	assert.ErrorIs(t, err, asset.ErrNotFound)
}

func TestService_Delete_RefreshesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := asset.NewMockRepository(ctrl)
	repo.EXPECT().GetAsset(gomock.Any(), id).Return(&asset.Asset{ID: id}, nil)
	repo.EXPECT().DeleteAsset(gomock.Any(), id).Return(nil)
	repo.EXPECT().ListAssets(gomock.Any()).Return([]*asset.Asset{
		{Amount: 1000},
		{Amount: -300},
	}, nil)
	repo.EXPECT().UpsertHistory(gomock.Any(), gomock.Any(), int64(700)).Return(nil)

	svc := asset.NewService(repo)
	require.NoError(t, svc.Delete(context.Background(), id))
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := asset.NewMockRepository(ctrl)
	repo.EXPECT().GetAsset(gomock.Any(), gomock.Any()).Return(nil, asset.ErrNotFound)

	svc := asset.NewService(repo)
	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, asset.ErrNotFound)
}

func TestService_CreateBatch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		params := []asset.CreateParams{
			{Name: "Deposit", Amount: 1000, Category: asset.CategorySavings},
			{Name: "ETF", Amount: 2000, Category: asset.CategoryStock},
		}

		repo := asset.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateAsset(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *asset.Asset) error {
				a.ID = uuid.New()
				return nil
			}).
			Times(2)
		repo.EXPECT().CreateItemHistory(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		repo.EXPECT().ListAssets(gomock.Any()).Return(nil, nil)
		repo.EXPECT().UpsertHistory(gomock.Any(), gomock.Any(), int64(0)).Return(nil)

		svc := asset.NewService(repo)
		got, err := svc.CreateBatch(context.Background(), params)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("ValidationFailsBeforeAnyWrite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := asset.NewMockRepository(ctrl)

		svc := asset.NewService(repo)
		_, err := svc.CreateBatch(context.Background(), []asset.CreateParams{
			{Name: "ok", Amount: 10, Category: asset.CategorySavings},
			{Name: "", Amount: 10, Category: asset.CategorySavings},
		})

		assert.ErrorIs(t, err, asset.ErrNameRequired)
	})

	t.Run("Empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := asset.NewService(asset.NewMockRepository(ctrl))
		got, err := svc.CreateBatch(context.Background(), nil)

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestService_UpdateHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	want := &asset.History{ID: id, TotalAmount: 900}

	repo := asset.NewMockRepository(ctrl)
	repo.EXPECT().UpdateHistoryAmount(gomock.Any(), id, int64(900)).Return(want, nil)

	svc := asset.NewService(repo)
	got, err := svc.UpdateHistory(context.Background(), id, 900)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
