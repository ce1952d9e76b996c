package routes

import (
	"lifeos/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	taskController := controllers.TaskController{}
	subtaskController := controllers.SubtaskController{}
	sessionController := controllers.SessionController{}
	noteController := controllers.NoteController{}

	// Tasks and subtasks
	r.GET("/tasks", taskController.ListTasks)
	r.POST("/tasks", taskController.CreateTask)
	r.PATCH("/tasks/:id", taskController.UpdateTask)
	r.DELETE("/tasks/:id", taskController.DeleteTask)
	r.POST("/tasks/:id/subtasks", subtaskController.CreateSubtask)
	r.PATCH("/subtasks/:id", subtaskController.UpdateSubtask)
	r.DELETE("/subtasks/:id", subtaskController.DeleteSubtask)

	// Time tracking and history
	r.POST("/sessions", sessionController.HandleAction)
	r.GET("/sessions/today", sessionController.Today)
	r.GET("/sessions/summary", sessionController.Summary)
	r.GET("/sessions/recent", sessionController.Recent)

	// Notes board
	r.GET("/notes", noteController.ListNotes)
	r.POST("/notes", noteController.CreateNote)
	r.GET("/notes/:id", noteController.GetNote)
	r.PATCH("/notes/:id", noteController.UpdateNote)
	r.DELETE("/notes/:id", noteController.DeleteNote)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
