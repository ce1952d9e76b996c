package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"lifeos/config"
	"lifeos/models"
)

func TestStartStopSession(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "start", "type": "focus"})
	requireStatus(t, w, http.StatusOK)
	var started models.StartSessionResponse
	decodeResponse(t, w, &started)
	if started.ID == 0 {
		t.Fatal("expected a session id")
	}

	var session models.Session
	if err := config.DB.First(&session, started.ID).Error; err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	if session.EndedAt != nil {
		t.Error("running session should have no end time")
	}
	if session.Type != models.SessionTypeFocus {
		t.Errorf("expected type focus, got %q", session.Type)
	}

	w = doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "stop", "id": started.ID, "elapsed": 1500})
	requireStatus(t, w, http.StatusOK)

	if err := config.DB.First(&session, started.ID).Error; err != nil {
		t.Fatalf("failed to reload session: %v", err)
	}
	if session.DurationSec != 1500 {
		t.Errorf("expected duration 1500, got %d", session.DurationSec)
	}
	if session.EndedAt == nil {
		t.Error("stopped session should have an end time")
	}
}

func TestStartDefaultsToTrack(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "start"})
	requireStatus(t, w, http.StatusOK)
	var started models.StartSessionResponse
	decodeResponse(t, w, &started)

	var session models.Session
	config.DB.First(&session, started.ID)
	if session.Type != models.SessionTypeTrack {
		t.Errorf("expected default type track, got %q", session.Type)
	}
}

func TestStopClampsNegativeElapsed(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "start"})
	var started models.StartSessionResponse
	decodeResponse(t, w, &started)

	w = doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "stop", "id": started.ID, "elapsed": -30})
	requireStatus(t, w, http.StatusOK)

	var session models.Session
	config.DB.First(&session, started.ID)
	if session.DurationSec != 0 {
		t.Errorf("expected negative elapsed clamped to 0, got %d", session.DurationSec)
	}
}

func TestStopMissingSessionFails(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "stop", "id": 424242, "elapsed": 10})
	requireStatus(t, w, http.StatusInternalServerError)
}

func TestUnknownActionRejected(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "pause"})
	requireStatus(t, w, http.StatusBadRequest)

	var resp map[string]string
	decodeResponse(t, w, &resp)
	if resp["error"] != "unknown action" {
		t.Errorf("expected unknown action error, got %q", resp["error"])
	}

	// A missing body degrades to an empty action, which is unknown too.
	w = doRequest(t, r, http.MethodPost, "/sessions", nil)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestCompleteMarker(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "complete", "taskId": 12})
	requireStatus(t, w, http.StatusOK)

	var session models.Session
	if err := config.DB.Order("id DESC").First(&session).Error; err != nil {
		t.Fatalf("failed to load marker session: %v", err)
	}
	if session.Type != models.SessionTypeComplete {
		t.Errorf("expected type complete, got %q", session.Type)
	}
	if session.DurationSec != 0 {
		t.Errorf("expected zero duration, got %d", session.DurationSec)
	}
	if session.EndedAt == nil {
		t.Error("marker session should be finalized")
	}
	if session.TaskID == nil || *session.TaskID != 12 {
		t.Errorf("expected dangling task reference 12 stored as given, got %v", session.TaskID)
	}
}

func TestTodayEmptyAggregate(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/sessions/today", nil)
	requireStatus(t, w, http.StatusOK)

	var resp models.TodayResponse
	decodeResponse(t, w, &resp)
	if resp.FocusMin != 0 || resp.TrackMin != 0 || resp.Sessions != 0 {
		t.Errorf("expected zero-filled aggregate, got %+v", resp)
	}
}

func TestTodayAggregatesByKind(t *testing.T) {
	r := setupRouter(t)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	seed := []models.Session{
		{Type: models.SessionTypeFocus, StartedAt: now, DurationSec: 300},
		{Type: models.SessionTypeTrack, StartedAt: now, DurationSec: 150},
		{Type: models.SessionTypeFocus, StartedAt: yesterday, DurationSec: 600},
	}
	for i := range seed {
		if err := config.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed session: %v", err)
		}
	}

	w := doRequest(t, r, http.MethodGet, "/sessions/today", nil)
	requireStatus(t, w, http.StatusOK)

	var resp models.TodayResponse
	decodeResponse(t, w, &resp)
	if resp.FocusMin != 5 {
		t.Errorf("expected 5 focus minutes, got %d", resp.FocusMin)
	}
	if resp.TrackMin != 3 { // 150s rounds up
		t.Errorf("expected 3 track minutes, got %d", resp.TrackMin)
	}
	if resp.Sessions != 2 {
		t.Errorf("expected 2 sessions today, got %d", resp.Sessions)
	}
}

func TestSummaryAlwaysTwelveBuckets(t *testing.T) {
	r := setupRouter(t)

	now := time.Now()
	seed := []models.Session{
		{Type: models.SessionTypeFocus, StartedAt: now, DurationSec: 600},
		{Type: models.SessionTypeTrack, StartedAt: now, DurationSec: 600}, // ignored by summary
	}
	for i := range seed {
		if err := config.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed session: %v", err)
		}
	}

	w := doRequest(t, r, http.MethodGet, "/sessions/summary", nil)
	requireStatus(t, w, http.StatusOK)

	var buckets []models.MonthBucket
	decodeResponse(t, w, &buckets)
	if len(buckets) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(buckets))
	}

	oldest := time.Date(now.Year(), now.Month()-11, 1, 0, 0, 0, 0, now.Location())
	if buckets[0].Month != oldest.Format("Jan") {
		t.Errorf("expected oldest bucket %q first, got %q", oldest.Format("Jan"), buckets[0].Month)
	}
	last := buckets[11]
	if last.Month != now.Format("Jan") {
		t.Errorf("expected current month last, got %q", last.Month)
	}
	if last.Minutes != 10 {
		t.Errorf("expected 10 focus minutes this month, got %d", last.Minutes)
	}
	for _, b := range buckets[:11] {
		if b.Minutes != 0 {
			t.Errorf("expected empty bucket %q, got %d minutes", b.Month, b.Minutes)
		}
	}
}

func TestRecentResolvesLinkedTitles(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/tasks", map[string]any{"title": "Deep work"})
	var task models.Task
	decodeResponse(t, w, &task)

	w = doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "start", "type": "focus", "taskId": task.ID})
	var started models.StartSessionResponse
	decodeResponse(t, w, &started)
	doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "stop", "id": started.ID, "elapsed": 90})

	// One unlinked marker on top.
	doRequest(t, r, http.MethodPost, "/sessions", map[string]any{"action": "complete"})

	w = doRequest(t, r, http.MethodGet, "/sessions/recent", nil)
	requireStatus(t, w, http.StatusOK)

	var rows []models.RecentSessionResponse
	decodeResponse(t, w, &rows)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Newest first: the marker, then the focus session.
	if rows[0].Type != models.SessionTypeComplete || rows[0].TaskTitle != nil {
		t.Errorf("expected unlinked marker first, got %+v", rows[0])
	}
	if rows[1].TaskTitle == nil || *rows[1].TaskTitle != "Deep work" {
		t.Errorf("expected task title resolved, got %+v", rows[1])
	}
	if rows[1].Minutes != 2 { // 90s rounds up
		t.Errorf("expected 2 minutes, got %d", rows[1].Minutes)
	}
}
