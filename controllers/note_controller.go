package controllers

import (
	"net/http"
	"strconv"

	"lifeos/config"
	"lifeos/models"

	"github.com/gin-gonic/gin"
)

type NoteController struct{}

// ListNotes returns all notes, pinned first, then most recently
// updated.
func (nc *NoteController) ListNotes(c *gin.Context) {
	var notes []models.Note
	if err := config.DB.
		Order("is_pinned DESC").
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		config.Logger.Errorw("failed to list notes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notes"})
		return
	}

	c.JSON(http.StatusOK, notes)
}

// CreateNote fills board defaults for every omitted field: an untitled
// white 320x220 sticky at (60,60) on layer 1.
func (nc *NoteController) CreateNote(c *gin.Context) {
	var body models.CreateNoteRequest
	_ = c.ShouldBindJSON(&body)

	note := models.Note{
		Title:     "Untitled",
		Content:   "",
		Color:     "#ffffff",
		IsPinned:  body.IsPinned,
		X:         60,
		Y:         60,
		Width:     320,
		Height:    220,
		ZIndex:    1,
		TaskID:    body.TaskID,
		SubtaskID: body.SubtaskID,
	}
	if body.Title != nil {
		note.Title = *body.Title
	}
	if body.Content != nil {
		note.Content = *body.Content
	}
	if body.Color != nil {
		note.Color = *body.Color
	}
	if body.X != nil {
		note.X = *body.X
	}
	if body.Y != nil {
		note.Y = *body.Y
	}
	if body.Width != nil {
		note.Width = *body.Width
	}
	if body.Height != nil {
		note.Height = *body.Height
	}
	if body.ZIndex != nil {
		note.ZIndex = *body.ZIndex
	}

	if err := config.DB.Create(&note).Error; err != nil {
		config.Logger.Errorw("failed to create note", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
		return
	}

	c.JSON(http.StatusOK, note)
}

func (nc *NoteController) GetNote(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var note models.Note
	if err := config.DB.First(&note, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// UpdateNote patches only the fields present in the body, so layout
// writes (drag/resize) and content writes stay independent.
func (nc *NoteController) UpdateNote(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	body := bindPatch(c)

	updates := map[string]any{}
	if v, ok := body["title"]; ok {
		updates["title"] = patchString(v, "")
	}
	if v, ok := body["content"]; ok {
		updates["content"] = patchString(v, "")
	}
	if v, ok := body["color"]; ok {
		updates["color"] = patchString(v, "#ffffff")
	}
	if v, ok := body["isPinned"]; ok {
		updates["is_pinned"] = patchBool(v)
	}
	if v, ok := body["x"]; ok {
		updates["x"] = patchInt(v)
	}
	if v, ok := body["y"]; ok {
		updates["y"] = patchInt(v)
	}
	if v, ok := body["width"]; ok {
		updates["width"] = patchInt(v)
	}
	if v, ok := body["height"]; ok {
		updates["height"] = patchInt(v)
	}
	if v, ok := body["zIndex"]; ok {
		updates["z_index"] = patchInt(v)
	}
	if v, ok := body["taskId"]; ok {
		updates["task_id"] = patchRef(v)
	}
	if v, ok := body["subtaskId"]; ok {
		updates["subtask_id"] = patchRef(v)
	}

	var note models.Note
	if err := config.DB.First(&note, id).Error; err != nil {
		config.Logger.Errorw("failed to update note", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
		return
	}
	if len(updates) > 0 {
		if err := config.DB.Model(&note).Updates(updates).Error; err != nil {
			config.Logger.Errorw("failed to update note", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
			return
		}
	}
	if err := config.DB.First(&note, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote is unconditional; notes never cascade in either direction.
func (nc *NoteController) DeleteNote(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var note models.Note
	if err := config.DB.First(&note, id).Error; err != nil {
		config.Logger.Errorw("failed to delete note", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete note"})
		return
	}
	if err := config.DB.Delete(&note).Error; err != nil {
		config.Logger.Errorw("failed to delete note", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
