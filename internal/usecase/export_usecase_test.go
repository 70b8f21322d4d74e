package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"testing"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/repository/memory"
	"go-ats-dashboard/internal/usecase"
	"go-ats-dashboard/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

func newExportUC(archive *MockArchive) domain.ExportUsecase {
	cu := usecase.NewCandidateUsecase(memory.NewCandidateRepository(memory.Latency{}, memory.SeedCandidates()), validation.New())
	ju := usecase.NewJobUsecase(memory.NewJobRepository(memory.Latency{}, memory.SeedJobs()), validation.New())
	if archive == nil {
		return usecase.NewExportUsecase(cu, ju, nil, usecase.WithClock(clock))
	}
	return usecase.NewExportUsecase(cu, ju, archive, usecase.WithClock(clock))
}

func TestExportCandidatesCSV(t *testing.T) {
	uc := newExportUC(nil)

	file, err := uc.ExportCandidates(context.Background(), domain.CandidateQuery{Status: "Hired"}, domain.ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "ats_candidates_20230320_093000.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "NAME", records[0][1])
	assert.Equal(t, "Mike Johnson", records[1][1])
	assert.Equal(t, "Vue.js, JavaScript, HTML, CSS", records[1][4])
}

func TestExportJobsXLSX(t *testing.T) {
	archive := new(MockArchive)
	archive.On("Put", mock.Anything, "exports/ats_jobs_20230320_093000.xlsx", mock.Anything, mock.Anything).
		Return("exports/ats_jobs_20230320_093000.xlsx", nil)

	file, err := newExportUC(archive).ExportJobs(context.Background(), domain.JobQuery{Department: "Engineering"}, "")
	require.NoError(t, err)
	assert.Equal(t, "exports/ats_jobs_20230320_093000.xlsx", file.ArchiveKey)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "TITLE", rows[0][1])
	assert.Equal(t, "Senior Frontend Developer", rows[1][1])
	archive.AssertExpectations(t)
}

func TestExportArchiveFailureStillReturnsFile(t *testing.T) {
	archive := new(MockArchive)
	archive.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("access denied"))

	file, err := newExportUC(archive).ExportCandidates(context.Background(), domain.CandidateQuery{}, domain.ExportXLSX)
	require.NoError(t, err)
	assert.Empty(t, file.ArchiveKey)
	assert.NotEmpty(t, file.Data)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := newExportUC(nil).ExportJobs(context.Background(), domain.JobQuery{}, "pdf")
	assert.Equal(t, http.StatusBadRequest, code(t, err))
}
