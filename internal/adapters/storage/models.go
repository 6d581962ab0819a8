package storage

import "time"

// PreferencesModel is the GORM model for the preferences table.
// Numeric columns carry no GORM default so that a stored zero stays zero.
type PreferencesModel struct {
	Backend        string    `gorm:"not null;default:'disabled'"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	Port           string    `gorm:"not null;default:''"`
	Profile        string    `gorm:"primaryKey"`
	RandomEnabled  bool      `gorm:"not null"`
	RandomHi       uint16    `gorm:"not null"`
	RandomLo       uint16    `gorm:"not null"`
	RandomMaxDelay uint32    `gorm:"not null"`
	RandomMinDelay uint32    `gorm:"not null"`
	RandomMode     string    `gorm:"not null;default:'range';check:random_mode IN ('range','banks')"`
	StartupTrack   int       `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"index:idx_updated_at"`
	Volume         float64   `gorm:"not null;check:volume >= 0 AND volume <= 1"`
}

// TableName specifies the table name for GORM
func (PreferencesModel) TableName() string { return "preferences" }
