package models

import "time"

// StartSessionResponse is returned by the start action.
type StartSessionResponse struct {
	ID        uint      `json:"id"`
	StartedAt time.Time `json:"startedAt"`
}

// TodayResponse is the daily aggregate: minutes per kind plus the
// number of sessions started today.
type TodayResponse struct {
	FocusMin int `json:"focusMin"`
	TrackMin int `json:"trackMin"`
	Sessions int `json:"sessions"`
}

// MonthBucket is one entry of the 12-month focus summary.
type MonthBucket struct {
	Month   string `json:"month"`
	Minutes int    `json:"minutes"`
}

// RecentSessionResponse is one row of the recent-sessions list, with
// linked titles resolved.
type RecentSessionResponse struct {
	ID           uint    `json:"id"`
	Type         string  `json:"type"`
	Minutes      int     `json:"minutes"`
	Date         string  `json:"date"`
	TaskTitle    *string `json:"taskTitle"`
	SubtaskTitle *string `json:"subtaskTitle"`
}
