package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"interviewsim/internal/models"
)

var ErrNotFound = errors.New("interview not found")

// Store is the persistent record of interview sessions: configuration,
// ordered messages, code submissions and the final result.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to the configured database and migrates the schema.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Interview{},
		&models.Message{},
		&models.CodeSubmission{},
		&models.InterviewResult{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateInterview persists a new session in the in_progress state and
// returns its generated id.
func (s *Store) CreateInterview(req *models.CreateInterviewRequest) (*models.Interview, error) {
	interview := &models.Interview{
		ID:              uuid.New().String(),
		Difficulty:      req.Difficulty,
		Type:            req.Type,
		Language:        req.Language,
		DurationMinutes: req.DurationMinutes,
		Status:          models.StatusInProgress,
	}
	if req.JobOfferText != "" {
		interview.JobOfferText = &req.JobOfferText
	}
	if req.CompanyName != "" {
		interview.CompanyName = &req.CompanyName
	}
	if req.JobTitle != "" {
		interview.JobTitle = &req.JobTitle
	}
	if len(req.ExtractedSkills) > 0 {
		data, err := json.Marshal(req.ExtractedSkills)
		if err != nil {
			return nil, fmt.Errorf("failed to encode skills: %w", err)
		}
		encoded := string(data)
		interview.ExtractedSkills = &encoded
	}

	if err := s.db.Create(interview).Error; err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return interview, nil
}

// GetInterview loads a session with its messages in conversational
// order, the result and the code submissions.
func (s *Store) GetInterview(id string) (*models.Interview, error) {
	var interview models.Interview
	err := s.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, id ASC")
		}).
		Preload("Result").
		Preload("CodeSubmissions").
		First(&interview, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load interview: %w", err)
	}
	return &interview, nil
}

// ListInterviews returns all sessions newest first, with results.
func (s *Store) ListInterviews() ([]models.Interview, error) {
	var interviews []models.Interview
	err := s.db.
		Preload("Result").
		Order("created_at DESC").
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

// UpdateStatus mutates the session lifecycle fields.
func (s *Store) UpdateStatus(id, status string, endTime *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if endTime != nil {
		updates["end_time"] = endTime
	}
	result := s.db.Model(&models.Interview{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update interview: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendMessage records one conversational turn.
func (s *Store) AppendMessage(interviewID, role, content string) (*models.Message, error) {
	message := &models.Message{
		InterviewID: interviewID,
		Role:        role,
		Content:     content,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	return message, nil
}

// AppendSubmission records one code run.
func (s *Store) AppendSubmission(submission *models.CodeSubmission) error {
	if err := s.db.Create(submission).Error; err != nil {
		return fmt.Errorf("failed to save code submission: %w", err)
	}
	return nil
}

// Complete writes the evaluation result and advances the session to
// completed in one transaction, so a session is never closed without
// its report nor the other way around.
func (s *Store) Complete(interviewID string, report models.EvaluationReport) error {
	now := time.Now()
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.NewInterviewResult(interviewID, report)).Error; err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}
		result := tx.Model(&models.Interview{}).
			Where("id = ?", interviewID).
			Updates(map[string]interface{}{
				"status":   models.StatusCompleted,
				"end_time": now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to close interview: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// DeleteStale removes in_progress sessions created before the given
// cutoff, cascading their messages, submissions and results.
func (s *Store) DeleteStale(before time.Time) (int64, error) {
	var stale []models.Interview
	if err := s.db.
		Where("status = ? AND created_at < ?", models.StatusInProgress, before).
		Find(&stale).Error; err != nil {
		return 0, fmt.Errorf("failed to find stale interviews: %w", err)
	}

	var removed int64
	for _, interview := range stale {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("interview_id = ?", interview.ID).Delete(&models.Message{}).Error; err != nil {
				return err
			}
			if err := tx.Where("interview_id = ?", interview.ID).Delete(&models.CodeSubmission{}).Error; err != nil {
				return err
			}
			if err := tx.Where("interview_id = ?", interview.ID).Delete(&models.InterviewResult{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Interview{}, "id = ?", interview.ID).Error
		})
		if err != nil {
			return removed, fmt.Errorf("failed to delete stale interview %s: %w", interview.ID, err)
		}
		removed++
	}
	return removed, nil
}
