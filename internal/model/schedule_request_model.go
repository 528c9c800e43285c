package model

import "time"

// ScheduleRequest keeps preferred_date as free text on purpose; the form
// does no calendar validation and neither does the schema.
type ScheduleRequest struct {
	Id            int64     `gorm:"primaryKey;autoIncrement"`
	ClientName    string    `gorm:"type:varchar(120);not null"`
	Email         string    `gorm:"type:varchar(180);not null"`
	PreferredDate string    `gorm:"type:varchar(50)"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (ScheduleRequest) TableName() string {
	return "schedule_requests"
}
