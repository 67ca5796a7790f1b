package models

import (
	"database/sql/driver"
	"time"
)

// WeekdayNames lists the days of the week in Monday-first order, matching the
// key order clients receive in the streak object.
var WeekdayNames = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

// Streak tracks on which days of the current week the user answered a level.
// Serialized as a JSON object keyed by weekday name, Monday first.
type Streak []boolPair

// NewStreak returns a streak with all seven days unset.
func NewStreak() Streak {
	s := make(Streak, 0, len(WeekdayNames))
	for _, day := range WeekdayNames {
		s = append(s, boolPair{Key: day})
	}
	return s
}

// MarkDay sets the weekday of t as done. time.Weekday starts on Sunday, the
// streak starts on Monday.
func (s Streak) MarkDay(t time.Time) {
	idx := (int(t.Weekday()) + 6) % 7
	if idx < len(s) {
		s[idx].Value = true
	}
}

// Done reports whether the named day is marked.
func (s Streak) Done(day string) bool {
	for _, p := range s {
		if p.Key == day {
			return p.Value
		}
	}
	return false
}

func (s Streak) MarshalJSON() ([]byte, error) {
	return marshalBoolPairs(s)
}

func (s *Streak) UnmarshalJSON(data []byte) error {
	pairs, err := unmarshalBoolPairs(data)
	if err != nil {
		return err
	}
	*s = pairs
	return nil
}

func (s Streak) Value() (driver.Value, error) {
	return pairsValue(s)
}

func (s *Streak) Scan(src interface{}) error {
	pairs, err := pairsScan(src)
	if err != nil {
		return err
	}
	*s = pairs
	return nil
}

func (Streak) GormDataType() string {
	return "json"
}
