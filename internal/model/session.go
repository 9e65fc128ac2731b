package model

import "time"

type Session struct {
	UserID    int
	Username  string
	CreatedAt time.Time
}
