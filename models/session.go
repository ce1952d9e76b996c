package models

import (
	"time"
)

// Session kinds.
const (
	SessionTypeFocus    = "focus"    // pomodoro countdown
	SessionTypeTrack    = "track"    // stopwatch
	SessionTypeComplete = "complete" // zero-duration "marked done" marker
)

// Session is one interval of tracked or focused time. EndedAt is nil
// while the session is running; DurationSec is set on stop and is the
// client-reported elapsed time, not a server measurement. Task and
// Subtask references are nullable and unvalidated on write; deleting
// the referenced task or subtask deletes its sessions (controllers
// cascade this, notes do not).
type Session struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Type        string     `gorm:"type:varchar(20)" json:"type"`
	StartedAt   time.Time  `gorm:"index" json:"startedAt"`
	EndedAt     *time.Time `json:"endedAt"`
	DurationSec int        `gorm:"default:0" json:"durationSec"`
	TaskID      *uint      `gorm:"index" json:"taskId"`
	SubtaskID   *uint      `gorm:"index" json:"subtaskId"`
	CreatedAt   time.Time  `json:"createdAt"`

	Task    *Task    `gorm:"foreignKey:TaskID" json:"-"`
	Subtask *Subtask `gorm:"foreignKey:SubtaskID" json:"-"`
}
