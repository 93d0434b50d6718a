// End-to-end habit tracking scenario: account creation, habit logging over
// several days, aggregation, completion, and removal.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitkeep/habitkeep/internal/report"
	"github.com/habitkeep/habitkeep/pkg/types"
)

func TestLifecycle_TrackAndAggregate(t *testing.T) {
	b, _ := newOpenBackend(t)
	aliceID := createAccount(t, b, "alice", "secret")

	habits, err := b.Habits()
	require.NoError(t, err)
	logs, err := b.Logs()
	require.NoError(t, err)

	// Alice starts two habits.
	runID, err := habits.Create(aliceID, "Run", "5k before work", "2025-03-01", "Fitness")
	require.NoError(t, err)
	readID, err := habits.Create(aliceID, "Read", "30 pages", "2025-03-01", "Personal Growth")
	require.NoError(t, err)

	// Three days of logging. Day two's Run entry is corrected later the
	// same day; the last write must win.
	require.NoError(t, logs.Upsert(runID, "2025-03-01", types.LogStatusCompleted))
	require.NoError(t, logs.Upsert(readID, "2025-03-01", types.LogStatusCompleted))

	require.NoError(t, logs.Upsert(runID, "2025-03-02", types.LogStatusIncomplete))
	require.NoError(t, logs.Upsert(runID, "2025-03-02", types.LogStatusPartial))
	require.NoError(t, logs.Upsert(readID, "2025-03-02", types.LogStatusCompleted))

	require.NoError(t, logs.Upsert(runID, "2025-03-03", types.LogStatusIncomplete))

	// Per-day aggregation.
	all, err := logs.AllForUser(aliceID)
	require.NoError(t, err)
	byDate := report.PercentageByDate(all)

	assert.InDelta(t, 100, byDate["2025-03-01"], 0.001)
	assert.InDelta(t, 75, byDate["2025-03-02"], 0.001, "corrected log must count, not the original")
	assert.InDelta(t, 0, byDate["2025-03-03"], 0.001)

	_, hasData := byDate["2025-03-04"]
	assert.False(t, hasData, "unlogged day must be absent, not zero")

	assert.Equal(t, report.TierGreen, report.TierFor(byDate["2025-03-01"]))
	assert.Equal(t, report.TierLightGreen, report.TierFor(byDate["2025-03-02"]))
	assert.Equal(t, report.TierRed, report.TierFor(byDate["2025-03-03"]))

	// Alice finishes the reading habit. Its logs stay for history.
	require.NoError(t, habits.MarkComplete(readID))
	active, err := habits.ListActive(aliceID, types.HabitFilter{})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Run", active[0].Title)

	entries, err := logs.ForUserAndDate(aliceID, "2025-03-01")
	require.NoError(t, err)
	assert.Len(t, entries, 2, "done habit's logs remain queryable")

	// Removing the running habit erases its logs.
	require.NoError(t, habits.Remove(runID))
	all, err = logs.AllForUser(aliceID)
	require.NoError(t, err)
	for _, l := range all {
		assert.NotEqual(t, runID, l.HabitID, "removed habit left a log behind")
	}
}

func TestLifecycle_UsersAreIsolated(t *testing.T) {
	b, _ := newOpenBackend(t)
	aliceID := createAccount(t, b, "alice", "secret")
	bobID := createAccount(t, b, "bob", "hunter2")

	habits, err := b.Habits()
	require.NoError(t, err)
	logs, err := b.Logs()
	require.NoError(t, err)

	// Both users track a habit with the same title.
	aliceRun, err := habits.Create(aliceID, "Run", "", "2025-03-01", "")
	require.NoError(t, err)
	bobRun, err := habits.Create(bobID, "Run", "", "2025-03-01", "")
	require.NoError(t, err)
	require.NotEqual(t, aliceRun, bobRun)

	require.NoError(t, logs.Upsert(aliceRun, "2025-03-01", types.LogStatusCompleted))
	require.NoError(t, logs.Upsert(bobRun, "2025-03-01", types.LogStatusIncomplete))

	// Title resolution and queries stay inside each user's data.
	id, err := logs.FindHabitIDByTitle(bobID, "Run")
	require.NoError(t, err)
	assert.Equal(t, bobRun, id)

	aliceEntries, err := logs.ForUserAndDate(aliceID, "2025-03-01")
	require.NoError(t, err)
	require.Len(t, aliceEntries, 1)
	assert.Equal(t, types.LogStatusCompleted, aliceEntries[0].Status)

	bobLogs, err := logs.AllForUser(bobID)
	require.NoError(t, err)
	require.Len(t, bobLogs, 1)
	assert.Equal(t, types.LogStatusIncomplete, bobLogs[0].Status)
}

func TestLifecycle_SurvivesRestart(t *testing.T) {
	b, config := newOpenBackend(t)
	aliceID := createAccount(t, b, "alice", "secret")

	habits, err := b.Habits()
	require.NoError(t, err)
	runID, err := habits.Create(aliceID, "Run", "", "2025-03-01", "Fitness")
	require.NoError(t, err)

	logs, err := b.Logs()
	require.NoError(t, err)
	require.NoError(t, logs.Upsert(runID, "2025-03-01", types.LogStatusCompleted))

	require.NoError(t, b.Close())

	// A new process opens the same data directory.
	b2 := newBackendOn(t, config)

	users2, err := b2.Users()
	require.NoError(t, err)
	id, err := users2.Authenticate("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, aliceID, id)

	logs2, err := b2.Logs()
	require.NoError(t, err)
	l, err := logs2.Get(runID, "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, types.LogStatusCompleted, l.Status)
}
