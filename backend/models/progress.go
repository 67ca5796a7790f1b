package models

import (
	"database/sql/driver"

	"gorm.io/gorm"
)

// UnlockList records which levels of a language the user may enter. Entries
// are kept in level creation order; that order decides which level is "next"
// when one is completed. Serialized as a JSON object so clients see
// {"Variables": true, "Loops": false, ...}.
type UnlockList []boolPair

// NewUnlockList builds the initial unlock state for a list of level names in
// creation order: the first level open, the rest closed.
func NewUnlockList(levelNames []string) UnlockList {
	u := make(UnlockList, 0, len(levelNames))
	for i, name := range levelNames {
		u = append(u, boolPair{Key: name, Value: i == 0})
	}
	return u
}

// Unlocked reports whether the named level is open.
func (u UnlockList) Unlocked(name string) bool {
	for _, p := range u {
		if p.Key == name {
			return p.Value
		}
	}
	return false
}

// CountUnlocked returns how many levels are open.
func (u UnlockList) CountUnlocked() int {
	n := 0
	for _, p := range u {
		if p.Value {
			n++
		}
	}
	return n
}

// Successor returns the name of the level that follows the named one in
// creation order, or "" when it is the last level or unknown.
func (u UnlockList) Successor(name string) string {
	for i, p := range u {
		if p.Key == name {
			if i+1 < len(u) {
				return u[i+1].Key
			}
			return ""
		}
	}
	return ""
}

// Unlock opens the named level. Levels never re-lock; unlocking an already
// open level is a no-op. Reports whether the state changed.
func (u UnlockList) Unlock(name string) bool {
	for i, p := range u {
		if p.Key == name {
			if p.Value {
				return false
			}
			u[i].Value = true
			return true
		}
	}
	return false
}

// Append adds a newly created level as locked, unless the name is already
// present. Existing entries are never overwritten.
func (u UnlockList) Append(name string) UnlockList {
	for _, p := range u {
		if p.Key == name {
			return u
		}
	}
	return append(u, boolPair{Key: name})
}

func (u UnlockList) MarshalJSON() ([]byte, error) {
	return marshalBoolPairs(u)
}

func (u *UnlockList) UnmarshalJSON(data []byte) error {
	pairs, err := unmarshalBoolPairs(data)
	if err != nil {
		return err
	}
	*u = pairs
	return nil
}

func (u UnlockList) Value() (driver.Value, error) {
	return pairsValue(u)
}

func (u *UnlockList) Scan(src interface{}) error {
	pairs, err := pairsScan(src)
	if err != nil {
		return err
	}
	*u = pairs
	return nil
}

func (UnlockList) GormDataType() string {
	return "json"
}

// Progress is the per-user-per-language state: percentage of the language
// completed, accumulated points and the unlock map. One row per pair,
// created lazily at login.
type Progress struct {
	gorm.Model
	UserID     uint       `gorm:"not null;uniqueIndex:idx_user_language" json:"-"`
	LanguageID uint       `gorm:"not null;uniqueIndex:idx_user_language" json:"-"`
	User       User       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Language   Language   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Percent    float64    `gorm:"default:0" json:"progresoLenguaje"`
	Points     uint       `gorm:"default:0" json:"puntos"`
	Unlocks    UnlockList `gorm:"type:jsonb" json:"nivelesPermitidos"`
}
