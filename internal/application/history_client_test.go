package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyFixture() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), WellbeingScore: 60},
		{Timestamp: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC), WellbeingScore: 75},
	}
}

func TestHistoryClientLoadReplacesEntries(t *testing.T) {
	service := mocks.NewMockAnalysisService(t)
	client := NewHistoryClient(service, zerolog.Nop())

	service.EXPECT().History(mockAnyContext(), "alex").Return(historyFixture(), nil).Once()
	service.EXPECT().History(mockAnyContext(), "alex").Return(historyFixture()[:1], nil).Once()

	entries, err := client.Load(context.Background(), "alex")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.True(t, client.Loaded())

	entries, err = client.Load(context.Background(), "alex")
	require.NoError(t, err)
	assert.Equal(t, historyFixture()[:1], entries)
	assert.Equal(t, historyFixture()[:1], client.Entries())
}

func TestHistoryClientFailureKeepsPreviousEntries(t *testing.T) {
	service := mocks.NewMockAnalysisService(t)
	client := NewHistoryClient(service, zerolog.Nop())

	service.EXPECT().History(mockAnyContext(), "alex").Return(historyFixture(), nil).Once()
	service.EXPECT().History(mockAnyContext(), "alex").Return(nil, domain.ErrTransportFailure).Once()

	_, err := client.Load(context.Background(), "alex")
	require.NoError(t, err)

	entries, err := client.Load(context.Background(), "alex")
	require.ErrorIs(t, err, domain.ErrTransportFailure)
	assert.Equal(t, historyFixture(), entries)
	assert.Equal(t, historyFixture(), client.Entries())
}

func TestTimelineSeriesPreservesOrder(t *testing.T) {
	history := historyFixture()
	history[0], history[1] = history[1], history[0]

	series := TimelineSeries(history, time.UTC)

	assert.Equal(t, []TimelinePoint{
		{Time: "11:00:00", Score: 75},
		{Time: "10:00:00", Score: 60},
	}, series)
}

func TestTimelineSeriesUsesLocation(t *testing.T) {
	loc := time.FixedZone("CET", 3600)

	series := TimelineSeries(historyFixture(), loc)

	require.Len(t, series, 2)
	assert.Equal(t, "11:00:00", series[0].Time)
	assert.Equal(t, 60.0, series[0].Score)
	assert.Equal(t, 75.0, series[1].Score)
	assert.Empty(t, TimelineSeries(nil, nil))
}
