package models

import "time"

// Subtask belongs to exactly one Task. Position is its display order
// within the task.
type Subtask struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Status    string    `gorm:"type:varchar(20);default:todo" json:"status"`
	TaskID    uint      `gorm:"index" json:"taskId"`
	Position  int       `gorm:"default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
