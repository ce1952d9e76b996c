package models

import (
	"time"
)

// Task statuses. At most one task in the store is "doing" at a time.
const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"
)

// Task is a unit of tracked work.
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Status    string    `gorm:"type:varchar(20);default:todo" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Subtasks []Subtask `gorm:"foreignKey:TaskID" json:"subtasks"`
}
