package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Photo        string `json:"foto"`
	Name         string `gorm:"not null" json:"nombre"`
	Email        string `gorm:"unique;not null" json:"correo"`
	PasswordHash string `gorm:"not null" json:"-"`
	Streak       Streak `gorm:"type:jsonb" json:"racha"`
	Active       bool   `gorm:"default:false" json:"estado"`
	Admin        bool   `gorm:"default:false" json:"administrador"`
}

// DefaultPhoto is a stock avatar handed out at registration when the user
// does not upload one of their own.
type DefaultPhoto struct {
	gorm.Model
	Photo string `gorm:"not null" json:"foto"`
}

type ContactMessage struct {
	gorm.Model
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Email   string `json:"correo"`
	Message string `json:"mensaje"`
}
