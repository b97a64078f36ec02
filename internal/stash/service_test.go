package stash_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trenthp/raiderCompanion/internal/stash"
)

func TestService_ConfirmBatch(t *testing.T) {
	type testCase struct {
		name      string
		params    []stash.ConfirmParams
		setupMock func(m *stash.MockRepository)
		wantLen   int
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: []stash.ConfirmParams{
				{ItemID: "item_bandage", Quantity: 5, Source: stash.SourceOCRImport},
				{ItemID: "item_wires", Quantity: 2, Source: stash.SourceOCRImport},
			},
			setupMock: func(m *stash.MockRepository) {
				m.EXPECT().
					AddEntries(gomock.Any(), gomock.Len(2)).
					Return(nil)
			},
			wantLen: 2,
		},
		{
			name:   "EmptyBatchIsNoop",
			params: nil,
		},
		{
			name: "MissingItemID",
			params: []stash.ConfirmParams{
				{ItemID: "", Quantity: 1},
			},
			wantErr: stash.ErrInvalidEntry,
		},
		{
			name: "ZeroQuantity",
			params: []stash.ConfirmParams{
				{ItemID: "item_bandage", Quantity: 0},
			},
			wantErr: stash.ErrInvalidEntry,
		},
		{
			name: "InvalidRejectsWholeBatch",
			params: []stash.ConfirmParams{
				{ItemID: "item_bandage", Quantity: 5},
				{ItemID: "", Quantity: 1},
			},
			wantErr: stash.ErrInvalidEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := stash.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := stash.NewService(repo)
			got, err := svc.ConfirmBatch(context.Background(), "uid-1", tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)

			for _, e := range got {
				assert.Equal(t, "uid-1", e.UserID)
			}
		})
	}
}

func TestService_ConfirmBatch_DefaultsSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stash.NewMockRepository(ctrl)
	repo.EXPECT().
		AddEntries(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := stash.NewService(repo)
	got, err := svc.ConfirmBatch(context.Background(), "uid-1", []stash.ConfirmParams{
		{ItemID: "item_bandage", Quantity: 1},
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stash.SourceManual, got[0].Source)
}

func TestService_ConfirmBatch_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := stash.NewMockRepository(ctrl)
	repo.EXPECT().
		AddEntries(gomock.Any(), gomock.Any()).
		Return(errors.New("db error"))

	svc := stash.NewService(repo)
	got, err := svc.ConfirmBatch(context.Background(), "uid-1", []stash.ConfirmParams{
		{ItemID: "item_bandage", Quantity: 1},
	})

	assert.Error(t, err)
	assert.Nil(t, got)
}
