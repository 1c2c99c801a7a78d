package models

import (
	"time"

	"gorm.io/gorm"
)

// Base holds the identity and bookkeeping columns shared by every table.
// It mirrors gorm.Model but keeps JSON keys snake_case so API payloads
// stay consistent.
type Base struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
