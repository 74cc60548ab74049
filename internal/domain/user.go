package domain

import "time"

type User struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

type TeamMember struct {
	UserID int64
	Name   string
	Email  string
	Role   string
}
