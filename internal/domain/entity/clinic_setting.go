package entity

import "time"

// ClinicSetting holds the clinic operating hours and lunch break.
// A single row exists; the scheduling engine reads it, only an
// administrative update mutates it.
//
// Times are stored as HH:mm strings, no date component.
type ClinicSetting struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	OpenTime       string     `gorm:"type:time;not null" json:"open_time"`
	CloseTime      string     `gorm:"type:time;not null" json:"close_time"`
	LunchStartTime string     `gorm:"type:time;not null" json:"lunch_start_time"`
	LunchEndTime   string     `gorm:"type:time;not null" json:"lunch_end_time"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func (ClinicSetting) TableName() string {
	return "clinic_settings"
}
