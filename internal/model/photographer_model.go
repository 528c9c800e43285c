package model

import "time"

type Photographer struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Bio       string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Photographer) TableName() string {
	return "photographers"
}
