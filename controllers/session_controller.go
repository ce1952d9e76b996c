package controllers

import (
	"math"
	"net/http"
	"time"

	"lifeos/config"
	"lifeos/models"
	"lifeos/services"

	"github.com/gin-gonic/gin"
)

type SessionController struct{}

// HandleAction dispatches POST /sessions on the action discriminator.
func (sc *SessionController) HandleAction(c *gin.Context) {
	var body models.SessionActionRequest
	_ = c.ShouldBindJSON(&body)

	switch body.Action {
	case "start":
		sc.start(c, body)
	case "stop":
		sc.stop(c, body)
	case "complete":
		sc.complete(c, body)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
	}
}

// start opens a session with no end or duration. Task/subtask
// references are stored as given, without existence checks.
func (sc *SessionController) start(c *gin.Context, body models.SessionActionRequest) {
	sessType := body.Type
	if sessType == "" {
		sessType = models.SessionTypeTrack
	}

	session := models.Session{
		Type:      sessType,
		StartedAt: time.Now(),
		TaskID:    body.TaskID,
		SubtaskID: body.SubtaskID,
	}
	if err := config.DB.Create(&session).Error; err != nil {
		config.Logger.Errorw("failed to start session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	services.InvalidateHistoryCache()
	c.JSON(http.StatusOK, models.StartSessionResponse{ID: session.ID, StartedAt: session.StartedAt})
}

// stop finalizes a session. Duration is the client-reported elapsed
// time clamped at zero; the server does not measure against StartedAt.
func (sc *SessionController) stop(c *gin.Context, body models.SessionActionRequest) {
	var session models.Session
	if err := config.DB.First(&session, body.ID).Error; err != nil {
		config.Logger.Errorw("failed to stop session", "error", err, "id", body.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stop session"})
		return
	}

	duration := body.Elapsed
	if duration < 0 {
		duration = 0
	}
	now := time.Now()

	if err := config.DB.Model(&session).
		Updates(map[string]any{"ended_at": now, "duration_sec": duration}).Error; err != nil {
		config.Logger.Errorw("failed to stop session", "error", err, "id", body.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stop session"})
		return
	}

	services.InvalidateHistoryCache()
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": session.ID})
}

// complete records a zero-duration marker session, independent of any
// running timer.
func (sc *SessionController) complete(c *gin.Context, body models.SessionActionRequest) {
	now := time.Now()
	session := models.Session{
		Type:        models.SessionTypeComplete,
		StartedAt:   now,
		EndedAt:     &now,
		DurationSec: 0,
		TaskID:      body.TaskID,
		SubtaskID:   body.SubtaskID,
	}
	if err := config.DB.Create(&session).Error; err != nil {
		config.Logger.Errorw("failed to record completion", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record completion"})
		return
	}

	services.InvalidateHistoryCache()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Today sums today's sessions per kind. An in-progress session has no
// duration yet and contributes zero.
func (sc *SessionController) Today(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Millisecond)

	cacheKey := services.TodayCacheKey(now)
	var cached models.TodayResponse
	if services.HistoryCacheGet(cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	var sessions []models.Session
	if err := config.DB.
		Where("started_at >= ? AND started_at <= ?", start, end).
		Find(&sessions).Error; err != nil {
		config.Logger.Errorw("failed to load today's sessions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load today's sessions"})
		return
	}

	var focusSec, trackSec int
	for _, s := range sessions {
		switch s.Type {
		case models.SessionTypeFocus:
			focusSec += s.DurationSec
		case models.SessionTypeTrack:
			trackSec += s.DurationSec
		}
	}

	resp := models.TodayResponse{
		FocusMin: roundMinutes(focusSec),
		TrackMin: roundMinutes(trackSec),
		Sessions: len(sessions),
	}
	services.HistoryCacheSet(cacheKey, resp)
	c.JSON(http.StatusOK, resp)
}

// Summary returns focus minutes for each of the trailing 12 calendar
// months including the current one, oldest first — always 12 entries.
func (sc *SessionController) Summary(c *gin.Context) {
	var cached []models.MonthBucket
	if services.HistoryCacheGet(services.SummaryCacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	now := time.Now()
	out := make([]models.MonthBucket, 0, 12)
	for i := 11; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

		var totalSec int64
		if err := config.DB.Model(&models.Session{}).
			Where("type = ? AND started_at >= ? AND started_at <= ?", models.SessionTypeFocus, start, end).
			Select("COALESCE(SUM(duration_sec), 0)").
			Scan(&totalSec).Error; err != nil {
			config.Logger.Errorw("failed to build monthly summary", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build monthly summary"})
			return
		}

		out = append(out, models.MonthBucket{
			Month:   start.Format("Jan"),
			Minutes: roundMinutes(int(totalSec)),
		})
	}

	services.HistoryCacheSet(services.SummaryCacheKey, out)
	c.JSON(http.StatusOK, out)
}

// Recent lists the last 50 sessions, newest first, with linked task and
// subtask titles resolved.
func (sc *SessionController) Recent(c *gin.Context) {
	var sessions []models.Session
	if err := config.DB.
		Preload("Task").
		Preload("Subtask").
		Order("id DESC").
		Limit(50).
		Find(&sessions).Error; err != nil {
		config.Logger.Errorw("failed to list recent sessions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recent sessions"})
		return
	}

	rows := make([]models.RecentSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		row := models.RecentSessionResponse{
			ID:      s.ID,
			Type:    s.Type,
			Minutes: roundMinutes(s.DurationSec),
			Date:    s.StartedAt.Format("2006-01-02 15:04:05"),
		}
		if s.Task != nil {
			row.TaskTitle = &s.Task.Title
		}
		if s.Subtask != nil {
			row.SubtaskTitle = &s.Subtask.Title
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, rows)
}

func roundMinutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60.0))
}
