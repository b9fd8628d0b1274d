package model

import "time"

type Task struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Changes is a partial update. Nil fields are left untouched.
type Changes struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (c Changes) Empty() bool {
	return c.Title == nil && c.Completed == nil
}

type DeleteResult struct {
	Success bool `json:"success"`
}
