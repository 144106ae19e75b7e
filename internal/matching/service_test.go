package matching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/pocketbook/internal/matching"
)

func TestService_Learn(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		category  string
		setupMock func(m *matching.MockRepository)
	}{
		{
			name:     "Normalized",
			pattern:  "  Uber   Eats ",
			category: "food",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().CreateMapping(gomock.Any(), "uber eats", "food").Return(nil)
			},
		},
		{name: "BlankPattern", pattern: "   ", category: "food"},
		{name: "NoCategory", pattern: "uber"},
		{name: "Sentinel", pattern: "uber", category: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := matching.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			require.NoError(t, matching.NewService(repo).Learn(context.Background(), tt.pattern, tt.category))
		})
	}
}

func TestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := matching.NewMockRepository(ctrl)
	repo.EXPECT().FindMatch(gomock.Any(), "metro card top-up").Return("transport", nil)

	svc := matching.NewService(repo)

	got, err := svc.Suggest(context.Background(), "Metro Card  Top-up")
	require.NoError(t, err)
	assert.Equal(t, "transport", got)

	got, err = svc.Suggest(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
