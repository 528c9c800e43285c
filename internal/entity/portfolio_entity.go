package entity

import "time"

type Photographer struct {
	Id        int64
	Name      string
	Bio       string
	CreatedAt time.Time
}

type Shot struct {
	Id        int64
	Title     string
	Filename  string
	Caption   string
	CreatedAt time.Time
}
