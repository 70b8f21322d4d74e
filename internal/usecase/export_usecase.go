package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/query"
	"go-ats-dashboard/pkg/apperror"
	"go-ats-dashboard/pkg/audit"
	"go-ats-dashboard/pkg/logger"
	"go-ats-dashboard/pkg/storage"

	"github.com/xuri/excelize/v2"
)

var candidateColumns = []string{"ID", "NAME", "EMAIL", "PHONE", "SKILLS", "EXPERIENCE", "EDUCATION", "STATUS", "APPLIED DATE", "INTERVIEW DATE", "NOTES"}

var jobColumns = []string{"ID", "TITLE", "DEPARTMENT", "LEVEL", "TYPE", "STATUS", "LOCATION", "SALARY MIN", "SALARY MAX", "CURRENCY", "APPLICATIONS", "CREATED DATE", "CLOSED DATE", "REQUIREMENTS"}

type exportUsecase struct {
	candidates domain.CandidateUsecase
	jobs       domain.JobUsecase
	archive    storage.Archive
	opts       options
}

// NewExportUsecase renders the filtered lists as spreadsheets. archive may be nil.
func NewExportUsecase(candidates domain.CandidateUsecase, jobs domain.JobUsecase, archive storage.Archive, opts ...Option) domain.ExportUsecase {
	return &exportUsecase{
		candidates: candidates,
		jobs:       jobs,
		archive:    archive,
		opts:       buildOptions(opts),
	}
}

func (u *exportUsecase) ExportCandidates(ctx context.Context, q domain.CandidateQuery, format domain.ExportFormat) (*domain.ExportFile, error) {
	list, err := u.candidates.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	list = query.ApplyCandidateQuery(list, q)

	rows := make([][]any, 0, len(list))
	for _, c := range list {
		interview, notes := "", ""
		if c.InterviewDate != nil {
			interview = c.InterviewDate.String()
		}
		if c.Notes != nil {
			notes = *c.Notes
		}
		rows = append(rows, []any{
			c.ID, c.Name, c.Email, c.Phone, strings.Join(c.Skills, ", "), c.Experience, c.Education,
			string(c.Status), c.AppliedDate.String(), interview, notes,
		})
	}
	return u.render(ctx, "candidates", "Candidates", candidateColumns, rows, format)
}

func (u *exportUsecase) ExportJobs(ctx context.Context, q domain.JobQuery, format domain.ExportFormat) (*domain.ExportFile, error) {
	list, err := u.jobs.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	list = query.ApplyJobQuery(list, q)

	rows := make([][]any, 0, len(list))
	for _, j := range list {
		closed := ""
		if j.ClosedDate != nil {
			closed = j.ClosedDate.String()
		}
		rows = append(rows, []any{
			j.ID, j.Title, j.Department, string(j.Level), string(j.Type), string(j.Status), j.Location,
			j.SalaryRange.Min, j.SalaryRange.Max, j.SalaryRange.Currency, j.Applications,
			j.CreatedDate.String(), closed, strings.Join(j.Requirements, ", "),
		})
	}
	return u.render(ctx, "jobs", "Jobs", jobColumns, rows, format)
}

func (u *exportUsecase) render(ctx context.Context, name, sheet string, columns []string, rows [][]any, format domain.ExportFormat) (*domain.ExportFile, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case domain.ExportXLSX, "":
		format = domain.ExportXLSX
		data, err = writeExcel(sheet, columns, rows)
	case domain.ExportCSV:
		data, err = writeCSV(columns, rows)
	default:
		return nil, apperror.BadRequest(fmt.Sprintf("Unsupported export format: %s", format))
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	file := &domain.ExportFile{
		Filename:    fmt.Sprintf("ats_%s_%s.%s", name, u.opts.now().Format("20060102_150405"), format),
		ContentType: format.ContentType(),
		Data:        data,
	}

	if u.archive != nil {
		key, err := u.archive.Put(ctx, "exports/"+file.Filename, file.ContentType, data)
		if err != nil {
			// the download still succeeds without the archived copy
			logger.Log.Warn("export archive upload failed", "file", file.Filename, "error", err)
		} else {
			file.ArchiveKey = key
		}
	}

	u.opts.audit.Log(ctx, audit.Event{
		Event:        audit.EventExportGenerated,
		SubjectType:  "export",
		SubjectValue: file.Filename,
		Details:      map[string]any{"rows": len(rows), "archived": file.ArchiveKey != ""},
	})
	return file, nil
}

func writeExcel(sheet string, columns []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheet, "A1", endCell, headerStyle); err != nil {
		return nil, err
	}

	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeCSV(columns []string, rows [][]any) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, v := range row {
			record[i] = cellString(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func cellString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
