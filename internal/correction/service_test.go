package correction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trenthp/raiderCompanion/internal/correction"
)

func TestService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := correction.NewMockRepository(ctrl)

	var appended *correction.Correction

	repo.EXPECT().
		AppendCorrection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *correction.Correction) error {
			appended = c
			return nil
		}).
		Times(1)

	svc := correction.NewService(repo)
	got, err := svc.Record(context.Background(), "uid-1", "Bandaid", "item_bandage")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "uid-1", got.UserID)
	assert.Equal(t, "Bandaid", got.OriginalText)
	assert.Equal(t, "item_bandage", got.CorrectedItemID)
	assert.Equal(t, correction.ManualConfidence, got.Confidence)
	assert.False(t, got.Approved)

	// The timestamp is a valid, sortable RFC 3339 string.
	_, err = time.Parse(time.RFC3339, got.Timestamp)
	assert.NoError(t, err)

	// Exactly one append, and it carried the returned record.
	assert.Same(t, got, appended)
}

func TestService_Record_AppendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := correction.NewMockRepository(ctrl)
	repo.EXPECT().
		AppendCorrection(gomock.Any(), gomock.Any()).
		Return(errors.New("store unreachable"))

	svc := correction.NewService(repo)
	got, err := svc.Record(context.Background(), "uid-1", "Bandaid", "item_bandage")

	// The persistence failure is propagated, not swallowed.
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestService_Suggest(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *correction.MockRepository)
		want      string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "PriorCorrectionFound",
			setupMock: func(m *correction.MockRepository) {
				m.EXPECT().
					FindByOriginalText(gomock.Any(), "uid-1", "Bandaid").
					Return("item_bandage", nil)
			},
			want: "item_bandage",
		},
		{
			name: "NoPriorCorrection",
			setupMock: func(m *correction.MockRepository) {
				m.EXPECT().
					FindByOriginalText(gomock.Any(), "uid-1", "Bandaid").
					Return("", nil)
			},
			want: "",
		},
		{
			name: "RepoError",
			setupMock: func(m *correction.MockRepository) {
				m.EXPECT().
					FindByOriginalText(gomock.Any(), "uid-1", "Bandaid").
					Return("", errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := correction.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := correction.NewService(repo)
			got, err := svc.Suggest(context.Background(), "uid-1", "Bandaid")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
