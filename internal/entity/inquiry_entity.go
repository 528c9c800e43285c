package entity

import "time"

type ContactMessage struct {
	Id        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

type ScheduleRequest struct {
	Id            int64
	ClientName    string
	Email         string
	PreferredDate string
	Notes         string
	CreatedAt     time.Time
}
