package models

import "time"

// Note is a freeform document with an independent board placement
// (position, size, stacking index) for the stickies layout. TaskID and
// SubtaskID are weak links: deleting the task or subtask leaves the
// note untouched.
type Note struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Color     string    `gorm:"type:varchar(20)" json:"color"`
	IsPinned  bool      `json:"isPinned"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	ZIndex    int       `json:"zIndex"`
	TaskID    *uint     `json:"taskId"`
	SubtaskID *uint     `json:"subtaskId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
