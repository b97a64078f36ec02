package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/trenthp/raiderCompanion/internal/catalog"
)

func TestEntry_Validate(t *testing.T) {
	type testCase struct {
		name    string
		entry   catalog.Entry
		wantErr bool
	}

	tests := []testCase{
		{
			name:    "Valid",
			entry:   catalog.Entry{ID: "item_bandage", Name: "Bandage"},
			wantErr: false,
		},
		{
			name:    "MissingID",
			entry:   catalog.Entry{Name: "Bandage"},
			wantErr: true,
		},
		{
			name:    "MissingName",
			entry:   catalog.Entry{ID: "item_bandage"},
			wantErr: true,
		},
		{
			name:    "Empty",
			entry:   catalog.Entry{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, catalog.ErrInvalidEntry)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Import(t *testing.T) {
	type testCase struct {
		name      string
		entries   []catalog.Entry
		setupMock func(m *catalog.MockRepository)
		want      int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "AllValid",
			entries: []catalog.Entry{
				{ID: "item_bandage", Name: "Bandage"},
				{ID: "item_rifle_ammo", Name: "Rifle Ammunition"},
			},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					UpsertEntries(gomock.Any(), gomock.Len(2)).
					Return(nil)
			},
			want: 2,
		},
		{
			name: "InvalidDropped",
			entries: []catalog.Entry{
				{ID: "item_bandage", Name: "Bandage"},
				{ID: "", Name: "Nameless"},
				{ID: "item_orphan", Name: ""},
			},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					UpsertEntries(gomock.Any(), gomock.Len(1)).
					Return(nil)
			},
			want: 1,
		},
		{
			name:    "NothingValid",
			entries: []catalog.Entry{{ID: "", Name: ""}},
			want:    0,
		},
		{
			name:    "RepoError",
			entries: []catalog.Entry{{ID: "item_bandage", Name: "Bandage"}},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					UpsertEntries(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := catalog.NewService(repo)
			got, err := svc.Import(context.Background(), tt.entries)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)
	repo.EXPECT().
		ListEntries(gomock.Any()).
		Return([]catalog.Entry{
			{ID: "item_bandage", Name: "Bandage"},
			{ID: "item_medkit", Name: "Medical Kit"},
		}, nil)

	svc := catalog.NewService(repo)
	entries, err := svc.Snapshot(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
