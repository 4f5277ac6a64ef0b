package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date fixture %q: %v", s, err)
	}
	return d
}

func closedSession(checkIn, checkOut time.Time, hours float64) Session {
	return Session{
		CheckInAt:  checkIn,
		CheckOutAt: &checkOut,
		WorkHours:  &hours,
	}
}

func TestSummarize_Empty(t *testing.T) {
	date := day(t, "2026-03-02")

	summary := Summarize(date, nil)

	assert.Equal(t, date, summary.Date)
	assert.Equal(t, 0, summary.TotalSessions)
	assert.Equal(t, 0, summary.CompletedSessions)
	assert.Equal(t, 0, summary.OngoingSessions)
	assert.Zero(t, summary.TotalHours)
	assert.Nil(t, summary.FirstCheckInAt)
	assert.Nil(t, summary.LastCheckOutAt)
}

func TestSummarize_MixedSessions(t *testing.T) {
	date := day(t, "2026-03-02")
	morningIn := date.Add(9 * time.Hour)
	morningOut := date.Add(12 * time.Hour)
	afternoonIn := date.Add(13 * time.Hour)
	afternoonOut := date.Add(17*time.Hour + 30*time.Minute)
	eveningIn := date.Add(19 * time.Hour)

	sessions := []Session{
		closedSession(afternoonIn, afternoonOut, 4.5),
		closedSession(morningIn, morningOut, 3),
		{CheckInAt: eveningIn}, // still open
	}

	summary := Summarize(date, sessions)

	assert.Equal(t, 3, summary.TotalSessions)
	assert.Equal(t, 2, summary.CompletedSessions)
	assert.Equal(t, 1, summary.OngoingSessions)
	assert.InDelta(t, 7.5, summary.TotalHours, 0.001)
	assert.Equal(t, morningIn, *summary.FirstCheckInAt)
	assert.Equal(t, afternoonOut, *summary.LastCheckOutAt)
}

func TestSummarize_OpenSessionsContributeNoHours(t *testing.T) {
	date := day(t, "2026-03-02")

	sessions := []Session{
		{CheckInAt: date.Add(8 * time.Hour)},
		{CheckInAt: date.Add(14 * time.Hour)},
	}

	summary := Summarize(date, sessions)

	assert.Equal(t, 2, summary.OngoingSessions)
	assert.Zero(t, summary.TotalHours)
	assert.Nil(t, summary.LastCheckOutAt)
	assert.Equal(t, date.Add(8*time.Hour), *summary.FirstCheckInAt)
}

func TestSessionIsOpen(t *testing.T) {
	now := time.Now()

	open := Session{CheckInAt: now}
	assert.True(t, open.IsOpen())

	closed := closedSession(now, now.Add(8*time.Hour), 8)
	assert.False(t, closed.IsOpen())
}
