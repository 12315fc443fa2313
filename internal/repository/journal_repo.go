package repository

import (
	"sort"
	"sync"
	"time"

	"go-warehouse-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JournalRepository interface {
	Create(entry *model.SubmissionLog) error
	FindRecent(limit int) ([]model.SubmissionLog, error)
	GetDailyActivity(startDate, endDate time.Time) ([]DailyActivity, error)
}

// DailyActivity untuk ringkasan journal per hari
type DailyActivity struct {
	Date      string `json:"date"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

type journalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepository {
	return &journalRepo{db}
}

func (r *journalRepo) Create(entry *model.SubmissionLog) error {
	return r.db.Create(entry).Error
}

func (r *journalRepo) FindRecent(limit int) ([]model.SubmissionLog, error) {
	var entries []model.SubmissionLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *journalRepo) GetDailyActivity(startDate, endDate time.Time) ([]DailyActivity, error) {
	var results []DailyActivity

	rows, err := r.db.Model(&model.SubmissionLog{}).
		Select(`
			TO_CHAR(DATE(created_at), 'YYYY-MM-DD') as date,
			COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0) as succeeded,
			COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0) as failed
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data DailyActivity
		if err := rows.Scan(&data.Date, &data.Succeeded, &data.Failed); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

// memoryJournalRepo keeps the most recent entries when no database is configured.
type memoryJournalRepo struct {
	mu       sync.Mutex
	entries  []model.SubmissionLog
	capacity int
	now      func() time.Time
}

func NewMemoryJournalRepo(capacity int) JournalRepository {
	if capacity <= 0 {
		capacity = 500
	}
	return &memoryJournalRepo{capacity: capacity, now: time.Now}
}

func (r *memoryJournalRepo) Create(entry *model.SubmissionLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	r.entries = append(r.entries, *entry)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
	return nil
}

func (r *memoryJournalRepo) FindRecent(limit int) ([]model.SubmissionLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.SubmissionLog, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, r.entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memoryJournalRepo) GetDailyActivity(startDate, endDate time.Time) ([]DailyActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate := map[string]*DailyActivity{}
	for _, e := range r.entries {
		if e.CreatedAt.Before(startDate) || e.CreatedAt.After(endDate) {
			continue
		}
		day := e.CreatedAt.Format("2006-01-02")
		a, ok := byDate[day]
		if !ok {
			a = &DailyActivity{Date: day}
			byDate[day] = a
		}
		if e.Success {
			a.Succeeded++
		} else {
			a.Failed++
		}
	}

	results := make([]DailyActivity, 0, len(byDate))
	for _, a := range byDate {
		results = append(results, *a)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Date < results[j].Date })
	return results, nil
}
