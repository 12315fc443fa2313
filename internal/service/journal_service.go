package service

import (
	"time"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/repository"
	"go-warehouse-ops/pkg/logger"

	"github.com/sirupsen/logrus"
)

const defaultJournalLimit = 50

type JournalService interface {
	// Record stores an entry. A journal failure never fails the operation
	// being journaled; it is only logged.
	Record(entry model.SubmissionLog)
	Recent(limit int) ([]model.SubmissionLog, error)
	Activity(days int) ([]repository.DailyActivity, error)
}

type journalService struct {
	repo repository.JournalRepository
	log  *logrus.Logger
	now  func() time.Time
}

func NewJournalService(repo repository.JournalRepository, log *logrus.Logger) JournalService {
	return &journalService{repo: repo, log: log, now: time.Now}
}

func (s *journalService) Record(entry model.SubmissionLog) {
	if err := s.repo.Create(&entry); err != nil {
		logger.LogError(s.log, "journal", "Record", entry.Kind, entry.DocumentNo, err)
	}
}

func (s *journalService) Recent(limit int) ([]model.SubmissionLog, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultJournalLimit
	}
	return s.repo.FindRecent(limit)
}

func (s *journalService) Activity(days int) ([]repository.DailyActivity, error) {
	if days <= 0 {
		days = 7
	}
	endDate := s.now()
	startDate := endDate.AddDate(0, 0, -days)
	return s.repo.GetDailyActivity(startDate, endDate)
}
