package models

// CreateTaskRequest is the POST /tasks body.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// CreateSubtaskRequest is the POST /tasks/:id/subtasks body.
type CreateSubtaskRequest struct {
	Title string `json:"title"`
}

// SessionActionRequest is the POST /sessions body, discriminated on
// Action: start, stop or complete.
type SessionActionRequest struct {
	Action    string `json:"action"`
	Type      string `json:"type"`
	TaskID    *uint  `json:"taskId"`
	SubtaskID *uint  `json:"subtaskId"`
	ID        uint   `json:"id"`
	Elapsed   int    `json:"elapsed"`
}

// CreateNoteRequest is the POST /notes body. Pointer fields distinguish
// "omitted" from zero values so creation defaults apply correctly.
type CreateNoteRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Color     *string `json:"color"`
	IsPinned  bool    `json:"isPinned"`
	X         *int    `json:"x"`
	Y         *int    `json:"y"`
	Width     *int    `json:"width"`
	Height    *int    `json:"height"`
	ZIndex    *int    `json:"zIndex"`
	TaskID    *uint   `json:"taskId"`
	SubtaskID *uint   `json:"subtaskId"`
}
