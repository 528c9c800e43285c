package model

import "time"

// Shot references an image asset by filename only; the file itself lives
// outside the database and is never validated here.
type Shot struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(150)"`
	Filename  string    `gorm:"type:varchar(255);not null"`
	Caption   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Shot) TableName() string {
	return "shots"
}
