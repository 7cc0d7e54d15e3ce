package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/courtside/internal/domain/rivalry"
	"github.com/courtsidehq/courtside/internal/domain/snapshot"
	"github.com/courtsidehq/courtside/internal/domain/team"
	"github.com/courtsidehq/courtside/internal/platform/logging"
)

type mockSnapshotStore struct {
	mock.Mock
}

func (m *mockSnapshotStore) Save(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

func (m *mockSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Bool(1), args.Error(2)
}

func TestSnapshotServiceSaveWritesAllKeys(t *testing.T) {
	t.Parallel()

	store := &mockSnapshotStore{}
	for _, key := range snapshot.Keys {
		store.On("Save", mock.Anything, key, mock.Anything).Return(nil).Once()
	}

	service := NewSnapshotService(store, logging.NewNop())
	err := service.Save(context.Background(), snapshot.Bundle{
		Teams: []team.Record{{ID: "1", Abbreviation: "BOS"}},
	})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestSnapshotServiceSaveEncodesEmptyCollectionsAsArrays(t *testing.T) {
	t.Parallel()

	store := &mockSnapshotStore{}
	for _, key := range snapshot.Keys {
		store.On("Save", mock.Anything, key, []byte("[]")).Return(nil).Once()
	}

	service := NewSnapshotService(store, logging.NewNop())
	require.NoError(t, service.Save(context.Background(), snapshot.Bundle{}))
	store.AssertExpectations(t)
}

func TestSnapshotServiceLoadReportsMissingKeys(t *testing.T) {
	t.Parallel()

	store := &mockSnapshotStore{}
	store.On("Load", mock.Anything, snapshot.KeyTeamSummary).
		Return([]byte(`[{"team_id":"1","abbreviation":"BOS"}]`), true, nil).Once()
	store.On("Load", mock.Anything, snapshot.KeyPlayerSummary).Return([]byte(nil), false, nil).Once()
	store.On("Load", mock.Anything, snapshot.KeyRivalrySummary).
		Return([]byte(`[{"team1":"BOS","team2":"LAL","total_meetings":18,"team1_wins":10,"team2_wins":8}]`), true, nil).Once()
	store.On("Load", mock.Anything, snapshot.KeyStateSummary).Return([]byte(nil), false, nil).Once()

	service := NewSnapshotService(store, logging.NewNop())
	bundle, missing, err := service.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{snapshot.KeyPlayerSummary, snapshot.KeyStateSummary}, missing)

	require.Len(t, bundle.Teams, 1)
	require.Equal(t, "BOS", bundle.Teams[0].Abbreviation)
	require.Equal(t, []rivalry.Record{{TeamA: "BOS", TeamB: "LAL", TotalMeetings: 18, TeamAWins: 10, TeamBWins: 8}}, bundle.Rivalries)
	require.Empty(t, bundle.Players)
	require.Empty(t, bundle.States)
}
