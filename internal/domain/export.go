package domain

import "context"

type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)

func (f ExportFormat) ContentType() string {
	if f == ExportCSV {
		return "text/csv"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ExportFile is a generated spreadsheet ready to be downloaded.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
	// ArchiveKey is the object key when the file was also archived to object storage.
	ArchiveKey string
}

type ExportUsecase interface {
	ExportCandidates(ctx context.Context, q CandidateQuery, format ExportFormat) (*ExportFile, error)
	ExportJobs(ctx context.Context, q JobQuery, format ExportFormat) (*ExportFile, error)
}
