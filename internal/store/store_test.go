package store

import (
	"fmt"
	"testing"
	"time"

	"interviewsim/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	return New(db)
}

func createInterview(t *testing.T, s *Store) *models.Interview {
	t.Helper()
	interview, err := s.CreateInterview(&models.CreateInterviewRequest{
		Difficulty:      "junior",
		Type:            "algorithms",
		Language:        "en",
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("CreateInterview failed: %v", err)
	}
	return interview
}

func TestCreateInterviewStartsInProgress(t *testing.T) {
	s := newTestStore(t)
	interview := createInterview(t, s)

	if interview.ID == "" {
		t.Fatal("expected generated id")
	}
	if interview.Status != models.StatusInProgress {
		t.Fatalf("expected in_progress, got %s", interview.Status)
	}

	loaded, err := s.GetInterview(interview.ID)
	if err != nil {
		t.Fatalf("GetInterview failed: %v", err)
	}
	if loaded.EndTime != nil {
		t.Error("new interview must have no end time")
	}
}

func TestCreateInterviewEncodesSkills(t *testing.T) {
	s := newTestStore(t)
	interview, err := s.CreateInterview(&models.CreateInterviewRequest{
		Difficulty:      "senior",
		Type:            "job_based",
		Language:        "en",
		DurationMinutes: 60,
		JobOfferText:    "offer text",
		CompanyName:     "Acme",
		JobTitle:        "Engineer",
		ExtractedSkills: []string{"Go", "SQL"},
	})
	if err != nil {
		t.Fatalf("CreateInterview failed: %v", err)
	}

	loaded, err := s.GetInterview(interview.ID)
	if err != nil {
		t.Fatalf("GetInterview failed: %v", err)
	}
	skills := loaded.Skills()
	if len(skills) != 2 || skills[0] != "Go" {
		t.Fatalf("unexpected skills %v", skills)
	}
	if loaded.CompanyName == nil || *loaded.CompanyName != "Acme" {
		t.Error("expected company name to round-trip")
	}
}

func TestGetInterviewNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetInterview("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMessagesPreservedInOrder(t *testing.T) {
	s := newTestStore(t)
	interview := createInterview(t, s)

	for i := 0; i < 5; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		if _, err := s.AppendMessage(interview.ID, role, fmt.Sprintf("turn %d", i)); err != nil {
			t.Fatalf("AppendMessage failed: %v", err)
		}
	}

	loaded, err := s.GetInterview(interview.ID)
	if err != nil {
		t.Fatalf("GetInterview failed: %v", err)
	}
	if len(loaded.Messages) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(loaded.Messages))
	}
	for i, message := range loaded.Messages {
		if message.Content != fmt.Sprintf("turn %d", i) {
			t.Fatalf("messages out of order at %d: %s", i, message.Content)
		}
	}
}

func TestListInterviewsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	first := createInterview(t, s)
	// sqlite timestamps have second precision with some configurations;
	// force distinct created_at values directly.
	if err := s.db.Model(&models.Interview{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("failed to age interview: %v", err)
	}
	second := createInterview(t, s)

	list, err := s.ListInterviews()
	if err != nil {
		t.Fatalf("ListInterviews failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 interviews, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatal("expected newest-first ordering")
	}
}

func TestCompleteIsAtomicAndSingleShot(t *testing.T) {
	s := newTestStore(t)
	interview := createInterview(t, s)

	report := models.EvaluationReport{
		OverallScore:        80,
		CommunicationScore:  75,
		TechnicalScore:      85,
		ProblemSolvingScore: 78,
		Strengths:           []string{"clear reasoning"},
		Improvements:        []string{"practice DP"},
		TimeManagement:      "well paced",
		NextTopics:          []string{"graphs"},
	}
	if err := s.Complete(interview.ID, report); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	loaded, err := s.GetInterview(interview.ID)
	if err != nil {
		t.Fatalf("GetInterview failed: %v", err)
	}
	if loaded.Status != models.StatusCompleted {
		t.Fatalf("expected completed, got %s", loaded.Status)
	}
	if loaded.EndTime == nil {
		t.Error("expected end time to be set")
	}
	if loaded.Result == nil {
		t.Fatal("expected result to exist")
	}
	got := loaded.Result.Report()
	if got.OverallScore != 80 || len(got.Strengths) != 1 || got.Strengths[0] != "clear reasoning" {
		t.Fatalf("result did not round-trip: %+v", got)
	}

	// a second completion must fail on the unique result index and leave
	// the first report in place
	if err := s.Complete(interview.ID, report); err == nil {
		t.Fatal("expected second Complete to fail")
	}
}

func TestCompleteUnknownInterviewRollsBack(t *testing.T) {
	s := newTestStore(t)
	err := s.Complete("missing", models.EvaluationReport{})
	if err == nil {
		t.Fatal("expected error for unknown interview")
	}
	var count int64
	if err := s.db.Model(&models.InterviewResult{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatal("result row must not survive a rolled back completion")
	}
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)
	interview := createInterview(t, s)

	end := time.Now()
	if err := s.UpdateStatus(interview.ID, models.StatusCompleted, &end); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	loaded, _ := s.GetInterview(interview.ID)
	if loaded.Status != models.StatusCompleted || loaded.EndTime == nil {
		t.Fatal("status update did not apply")
	}

	if err := s.UpdateStatus("missing", models.StatusCompleted, nil); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAppendSubmission(t *testing.T) {
	s := newTestStore(t)
	interview := createInterview(t, s)

	err := s.AppendSubmission(&models.CodeSubmission{
		InterviewID:   interview.ID,
		Language:      "python",
		Code:          "print(1+1)",
		TestResults:   `{"success":true,"output":"2\n"}`,
		ExecutionTime: 120,
	})
	if err != nil {
		t.Fatalf("AppendSubmission failed: %v", err)
	}

	loaded, _ := s.GetInterview(interview.ID)
	if len(loaded.CodeSubmissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(loaded.CodeSubmissions))
	}
	if loaded.CodeSubmissions[0].Language != "python" {
		t.Error("submission language did not round-trip")
	}
}

func TestDeleteStaleOnlyTouchesOldInProgress(t *testing.T) {
	s := newTestStore(t)
	stale := createInterview(t, s)
	fresh := createInterview(t, s)
	done := createInterview(t, s)

	old := time.Now().Add(-48 * time.Hour)
	for _, id := range []string{stale.ID, done.ID} {
		if err := s.db.Model(&models.Interview{}).Where("id = ?", id).
			Update("created_at", old).Error; err != nil {
			t.Fatalf("failed to age interview: %v", err)
		}
	}
	if err := s.Complete(done.ID, models.EvaluationReport{OverallScore: 50}); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if _, err := s.AppendMessage(stale.ID, "user", "hello"); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	removed, err := s.DeleteStale(time.Now().Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("DeleteStale failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	if _, err := s.GetInterview(stale.ID); err != ErrNotFound {
		t.Error("stale interview should be gone")
	}
	if _, err := s.GetInterview(fresh.ID); err != nil {
		t.Error("fresh interview must survive")
	}
	if _, err := s.GetInterview(done.ID); err != nil {
		t.Error("completed interview must survive")
	}

	var orphans int64
	if err := s.db.Model(&models.Message{}).Where("interview_id = ?", stale.ID).Count(&orphans).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if orphans != 0 {
		t.Error("messages of deleted interview must be removed")
	}
}
