package controllers

import (
	"net/http"
	"strconv"

	"lifeos/config"
	"lifeos/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubtaskController struct{}

func (sc *SubtaskController) CreateSubtask(c *gin.Context) {
	taskID, _ := strconv.Atoi(c.Param("id"))

	var body models.CreateSubtaskRequest
	_ = c.ShouldBindJSON(&body)

	title := body.Title
	if title == "" {
		title = "Untitled subtask"
	}

	subtask := models.Subtask{Title: title, Status: models.TaskStatusTodo, TaskID: uint(taskID)}
	if err := config.DB.Create(&subtask).Error; err != nil {
		config.Logger.Errorw("failed to create subtask", "error", err, "taskId", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subtask"})
		return
	}

	c.JSON(http.StatusOK, subtask)
}

func (sc *SubtaskController) UpdateSubtask(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	body := bindPatch(c)

	updates := map[string]any{}
	if v, ok := body["title"]; ok {
		updates["title"] = patchString(v, "")
	}
	if v, ok := body["status"]; ok {
		updates["status"] = patchString(v, models.TaskStatusTodo)
	}
	if v, ok := body["order"]; ok {
		updates["position"] = patchInt(v)
	}
	if v, ok := body["taskId"]; ok {
		updates["task_id"] = patchInt(v)
	}

	var subtask models.Subtask
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&subtask, id).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&subtask).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(&subtask, id).Error
	})
	if err != nil {
		config.Logger.Errorw("failed to update subtask", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update subtask"})
		return
	}

	c.JSON(http.StatusOK, subtask)
}

// DeleteSubtask cascades to sessions referencing the subtask.
func (sc *SubtaskController) DeleteSubtask(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var subtask models.Subtask
		if err := tx.First(&subtask, id).Error; err != nil {
			return err
		}
		if err := tx.Where("subtask_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Delete(&subtask).Error
	})
	if err != nil {
		config.Logger.Errorw("failed to delete subtask", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subtask"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
