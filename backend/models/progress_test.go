package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnlockListOnlyFirstOpen(t *testing.T) {
	u := NewUnlockList([]string{"Variables", "Condicionales", "Bucles"})

	assert.True(t, u.Unlocked("Variables"))
	assert.False(t, u.Unlocked("Condicionales"))
	assert.False(t, u.Unlocked("Bucles"))
	assert.Equal(t, 1, u.CountUnlocked())
}

func TestUnlockIsMonotonic(t *testing.T) {
	u := NewUnlockList([]string{"Variables", "Condicionales"})

	assert.True(t, u.Unlock("Condicionales"))
	assert.True(t, u.Unlocked("Condicionales"))

	// A second unlock changes nothing and never re-locks.
	assert.False(t, u.Unlock("Condicionales"))
	assert.True(t, u.Unlocked("Condicionales"))
}

func TestUnlockUnknownLevel(t *testing.T) {
	u := NewUnlockList([]string{"Variables"})
	assert.False(t, u.Unlock("Fantasma"))
	assert.False(t, u.Unlocked("Fantasma"))
}

func TestSuccessor(t *testing.T) {
	u := NewUnlockList([]string{"Variables", "Condicionales", "Bucles"})

	assert.Equal(t, "Condicionales", u.Successor("Variables"))
	assert.Equal(t, "Bucles", u.Successor("Condicionales"))
	assert.Equal(t, "", u.Successor("Bucles"))
	assert.Equal(t, "", u.Successor("Fantasma"))
}

func TestAppendKeepsExistingEntries(t *testing.T) {
	u := NewUnlockList([]string{"Variables"})
	u.Unlock("Variables")

	u = u.Append("Condicionales")
	require.Len(t, u, 2)
	assert.True(t, u.Unlocked("Variables"))
	assert.False(t, u.Unlocked("Condicionales"))

	// Appending a name already present never overwrites its state.
	u = u.Append("Variables")
	require.Len(t, u, 2)
	assert.True(t, u.Unlocked("Variables"))
}

func TestUnlockListJSONKeepsOrder(t *testing.T) {
	u := NewUnlockList([]string{"Zeta", "Alfa", "Media"})

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":true,"Alfa":false,"Media":false}`, string(raw))

	var decoded UnlockList
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "Zeta", decoded[0].Key)
	assert.Equal(t, "Alfa", decoded[1].Key)
	assert.Equal(t, "Media", decoded[2].Key)
}

func TestUnlockListDatabaseRoundTrip(t *testing.T) {
	u := NewUnlockList([]string{"Variables", "Bucles"})

	value, err := u.Value()
	require.NoError(t, err)

	var scanned UnlockList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, u, scanned)
}

func TestNewStreakAllDaysUnset(t *testing.T) {
	s := NewStreak()
	require.Len(t, s, 7)
	for _, day := range WeekdayNames {
		assert.False(t, s.Done(day), day)
	}
}

func TestStreakMarkDay(t *testing.T) {
	s := NewStreak()

	// 2024-01-01 was a Monday.
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.MarkDay(monday)
	assert.True(t, s.Done("Lunes"))
	assert.False(t, s.Done("Martes"))

	s.MarkDay(monday.AddDate(0, 0, 6))
	assert.True(t, s.Done("Domingo"))
}

func TestStreakJSONOrder(t *testing.T) {
	s := NewStreak()
	s.MarkDay(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)) // Wednesday

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"Lunes":false,"Martes":false,"Miércoles":true,"Jueves":false,"Viernes":false,"Sábado":false,"Domingo":false}`, string(raw))
}
