package models

import "time"

// BaseModel tüm modellerin ortak alanları.
// Kayıtlar uygulama tarafından hiç silinmediği için soft delete alanı yok.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
