package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Language is a learning track. Only active languages are visible to end
// users; inactive ones exist for admins preparing content.
type Language struct {
	gorm.Model
	Logo    string  `json:"logo"`
	DocsURL string  `json:"urlDocumentation"`
	Color   string  `json:"color"`
	Name    string  `gorm:"unique;not null" json:"nombre"`
	Active  bool    `gorm:"default:false" json:"estado"`
	Levels  []Level `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Level is one stage of a language. Levels unlock in creation order, so the
// primary key doubles as the unlock sequence.
type Level struct {
	gorm.Model
	LanguageID     uint       `gorm:"not null;index" json:"-"`
	Name           string     `gorm:"unique;not null" json:"nombre"`
	Explanation    string     `json:"explanation"`
	TotalQuestions uint       `gorm:"default:0" json:"totalPreguntas"`
	Active         bool       `gorm:"default:false" json:"estado"`
	Questions      []Question `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Question struct {
	gorm.Model
	LevelID     uint           `gorm:"not null;index" json:"-"`
	Explanation string         `json:"explanation"`
	Prompt      string         `json:"pregunta"`
	Answer      datatypes.JSON `json:"respuesta"`
	Active      bool           `gorm:"default:false" json:"estado"`
}
