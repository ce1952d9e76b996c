package controllers

import (
	"net/http"
	"strconv"

	"lifeos/config"
	"lifeos/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskController struct{}

// First-run starter board.
var defaultTasks = []struct {
	Title string
	Subs  []string
}{
	{Title: "Workout", Subs: []string{"Warm-up", "Strength x3", "Cool down"}},
	{Title: "Project 1 — (edit name)", Subs: []string{"Literature review", "Design experiment", "Data collection", "Analysis", "Write draft"}},
	{Title: "Read papers", Subs: []string{"Pick 2 papers", "Skim & highlight", "Write 5 bullets each"}},
	{Title: "Advisor meeting prep", Subs: []string{"Agenda", "Updates", "Questions", "Next steps"}},
	{Title: "Coursework / TA", Subs: []string{"Prepare section", "Grade batch", "Office hours"}},
	{Title: "Writing", Subs: []string{"Outline", "Write 300 words", "Revise 300 words"}},
	{Title: "Coding experiments", Subs: []string{"Implement baseline", "Run ablation", "Plot results"}},
}

// seedIfEmpty inserts the starter tasks on a fresh database. Acts only
// when the task count is exactly zero, so it is idempotent.
func seedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Task{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, d := range defaultTasks {
			task := models.Task{Title: d.Title, Status: models.TaskStatusTodo}
			if err := tx.Create(&task).Error; err != nil {
				return err
			}
			for i, title := range d.Subs {
				st := models.Subtask{Title: title, Status: models.TaskStatusTodo, TaskID: task.ID, Position: i}
				if err := tx.Create(&st).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ListTasks returns all tasks with their subtasks, newest task first,
// seeding the starter board on a fresh database.
func (tc *TaskController) ListTasks(c *gin.Context) {
	if err := seedIfEmpty(config.DB); err != nil {
		config.Logger.Errorw("failed to seed tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	var tasks []models.Task
	if err := config.DB.
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Order("id DESC").
		Find(&tasks).Error; err != nil {
		config.Logger.Errorw("failed to list tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	var body models.CreateTaskRequest
	_ = c.ShouldBindJSON(&body)

	title := body.Title
	if title == "" {
		title = "Untitled"
	}

	task := models.Task{Title: title, Status: models.TaskStatusTodo}
	if err := config.DB.Create(&task).Error; err != nil {
		config.Logger.Errorw("failed to create task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial patch. Setting status to doing first
// demotes every other doing task back to todo; demotion and patch run
// in one transaction so no reader observes two doing tasks.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	body := bindPatch(c)

	updates := map[string]any{}
	if v, ok := body["title"]; ok {
		updates["title"] = patchString(v, "")
	}
	if v, ok := body["status"]; ok {
		updates["status"] = patchString(v, models.TaskStatusTodo)
	}

	var task models.Task
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if updates["status"] == models.TaskStatusDoing {
			if err := tx.Model(&models.Task{}).
				Where("status = ?", models.TaskStatusDoing).
				Update("status", models.TaskStatusTodo).Error; err != nil {
				return err
			}
		}
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&task).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(&task, id).Error
	})
	if err != nil {
		config.Logger.Errorw("failed to update task", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask cascades: sessions referencing the task or any of its
// subtasks, then the subtasks, then the task, all in one transaction.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}

		var subtaskIDs []uint
		if err := tx.Model(&models.Subtask{}).
			Where("task_id = ?", id).
			Pluck("id", &subtaskIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("task_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if len(subtaskIDs) > 0 {
			if err := tx.Where("subtask_id IN ?", subtaskIDs).Delete(&models.Session{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error; err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})
	if err != nil {
		config.Logger.Errorw("failed to delete task", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
