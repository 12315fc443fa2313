package service

import (
	"errors"
	"testing"
	"time"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/repository"

	"github.com/stretchr/testify/require"
)

type failingJournalRepo struct {
	repository.JournalRepository
}

func (failingJournalRepo) Create(*model.SubmissionLog) error {
	return errors.New("db down")
}

func TestJournalRecentAndActivity(t *testing.T) {
	repo := repository.NewMemoryJournalRepo(10)
	svc := NewJournalService(repo, quietLogger()).(*journalService)
	svc.now = func() time.Time { return time.Now().Add(time.Minute) }

	for i := 0; i < 3; i++ {
		svc.Record(model.SubmissionLog{Kind: model.SubmissionCorrectionSave, Success: i != 1})
	}

	recent, err := svc.Recent(0)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	recent, err = svc.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	days, err := svc.Activity(-1)
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Equal(t, 2, days[0].Succeeded)
	require.Equal(t, 1, days[0].Failed)
}

func TestJournalRecordSwallowsStoreErrors(t *testing.T) {
	svc := NewJournalService(failingJournalRepo{}, quietLogger())
	require.NotPanics(t, func() {
		svc.Record(model.SubmissionLog{Kind: model.SubmissionCorrectionDelete, DocumentNo: "KS-1"})
	})
}
