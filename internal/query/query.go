// Package query holds the pure list operations behind every list view:
// status and department filters, free-text search, typed sorting and paging.
// None of the functions mutate their input.
package query

import (
	"cmp"
	"slices"
	"strings"

	"go-ats-dashboard/internal/domain"
)

func FilterCandidatesByStatus(items []domain.Candidate, status string) []domain.Candidate {
	if status == "" || status == domain.StatusAll {
		return items
	}
	return filter(items, func(c domain.Candidate) bool { return string(c.Status) == status })
}

func FilterJobsByStatus(items []domain.Job, status string) []domain.Job {
	if status == "" || status == domain.StatusAll {
		return items
	}
	return filter(items, func(j domain.Job) bool { return string(j.Status) == status })
}

func FilterJobsByDepartment(items []domain.Job, department string) []domain.Job {
	if department == "" || department == domain.StatusAll {
		return items
	}
	return filter(items, func(j domain.Job) bool { return j.Department == department })
}

// SearchCandidates matches q case-insensitively against name, email and skills.
func SearchCandidates(items []domain.Candidate, q string) []domain.Candidate {
	if q == "" {
		return items
	}
	q = strings.ToLower(q)
	return filter(items, func(c domain.Candidate) bool {
		return contains(c.Name, q) || contains(c.Email, q) || anyContains(c.Skills, q)
	})
}

// SearchJobs matches q case-insensitively against title, department and requirements.
func SearchJobs(items []domain.Job, q string) []domain.Job {
	if q == "" {
		return items
	}
	q = strings.ToLower(q)
	return filter(items, func(j domain.Job) bool {
		return contains(j.Title, q) || contains(j.Department, q) || anyContains(j.Requirements, q)
	})
}

// SortCandidates returns a stably sorted copy. An empty key returns a plain copy.
func SortCandidates(items []domain.Candidate, key domain.CandidateSortKey, order domain.SortOrder) []domain.Candidate {
	out := slices.Clone(items)
	cmpFn := candidateComparator(key)
	if cmpFn == nil {
		return out
	}
	slices.SortStableFunc(out, directed(cmpFn, order))
	return out
}

func SortJobs(items []domain.Job, key domain.JobSortKey, order domain.SortOrder) []domain.Job {
	out := slices.Clone(items)
	cmpFn := jobComparator(key)
	if cmpFn == nil {
		return out
	}
	slices.SortStableFunc(out, directed(cmpFn, order))
	return out
}

// ApplyCandidateQuery runs status filter, search and sort in that order.
func ApplyCandidateQuery(items []domain.Candidate, q domain.CandidateQuery) []domain.Candidate {
	out := FilterCandidatesByStatus(items, q.Status)
	out = SearchCandidates(out, q.Search)
	return SortCandidates(out, q.SortBy, q.Order)
}

func ApplyJobQuery(items []domain.Job, q domain.JobQuery) []domain.Job {
	out := FilterJobsByStatus(items, q.Status)
	out = FilterJobsByDepartment(out, q.Department)
	out = SearchJobs(out, q.Search)
	return SortJobs(out, q.SortBy, q.Order)
}

// Departments returns the distinct departments of jobs, sorted.
func Departments(jobs []domain.Job) []string {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if j.Department == "" {
			continue
		}
		if _, ok := seen[j.Department]; ok {
			continue
		}
		seen[j.Department] = struct{}{}
		out = append(out, j.Department)
	}
	slices.Sort(out)
	return out
}

// Paginate slices items into a 1-based page. Non-positive page or pageSize
// return everything as a single page.
func Paginate[T any](items []T, page, pageSize int) domain.PaginatedResult[T] {
	total := len(items)
	if page < 1 || pageSize < 1 {
		data := append(make([]T, 0, total), items...)
		return domain.PaginatedResult[T]{Data: data, Total: int64(total), Page: 1, PageSize: total, TotalPages: 1}
	}

	totalPages := (total + pageSize - 1) / pageSize
	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	data := make([]T, 0, end-start)
	data = append(data, items[start:end]...)
	return domain.PaginatedResult[T]{
		Data:       data,
		Total:      int64(total),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func contains(s, lowerQ string) bool {
	return strings.Contains(strings.ToLower(s), lowerQ)
}

func anyContains(list []string, lowerQ string) bool {
	return slices.ContainsFunc(list, func(s string) bool { return contains(s, lowerQ) })
}

func directed[T any](cmpFn func(a, b T) int, order domain.SortOrder) func(a, b T) int {
	if order == domain.OrderDesc {
		return func(a, b T) int { return cmpFn(b, a) }
	}
	return cmpFn
}

func compareDate(a, b *domain.Date) int {
	return cmp.Compare(dateKey(a), dateKey(b))
}

// dateKey maps a missing date to the epoch so it sorts first ascending.
func dateKey(d *domain.Date) int64 {
	if d == nil {
		return 0
	}
	return d.Unix()
}

func candidateComparator(key domain.CandidateSortKey) func(a, b domain.Candidate) int {
	switch key {
	case domain.SortCandidateName:
		return func(a, b domain.Candidate) int { return cmp.Compare(a.Name, b.Name) }
	case domain.SortCandidateEmail:
		return func(a, b domain.Candidate) int { return cmp.Compare(a.Email, b.Email) }
	case domain.SortCandidatePhone:
		return func(a, b domain.Candidate) int { return cmp.Compare(a.Phone, b.Phone) }
	case domain.SortCandidateExperience:
		return func(a, b domain.Candidate) int { return cmp.Compare(a.Experience, b.Experience) }
	case domain.SortCandidateEducation:
		return func(a, b domain.Candidate) int { return cmp.Compare(a.Education, b.Education) }
	case domain.SortCandidateStatus:
		return func(a, b domain.Candidate) int { return cmp.Compare(a.Status, b.Status) }
	case domain.SortCandidateAppliedDate:
		return func(a, b domain.Candidate) int { return compareDate(&a.AppliedDate, &b.AppliedDate) }
	case domain.SortCandidateInterviewDate:
		return func(a, b domain.Candidate) int { return compareDate(a.InterviewDate, b.InterviewDate) }
	}
	return nil
}

func jobComparator(key domain.JobSortKey) func(a, b domain.Job) int {
	switch key {
	case domain.SortJobTitle:
		return func(a, b domain.Job) int { return cmp.Compare(a.Title, b.Title) }
	case domain.SortJobDepartment:
		return func(a, b domain.Job) int { return cmp.Compare(a.Department, b.Department) }
	case domain.SortJobLocation:
		return func(a, b domain.Job) int { return cmp.Compare(a.Location, b.Location) }
	case domain.SortJobLevel:
		return func(a, b domain.Job) int { return cmp.Compare(a.Level, b.Level) }
	case domain.SortJobType:
		return func(a, b domain.Job) int { return cmp.Compare(a.Type, b.Type) }
	case domain.SortJobStatus:
		return func(a, b domain.Job) int { return cmp.Compare(a.Status, b.Status) }
	case domain.SortJobApplications:
		return func(a, b domain.Job) int { return cmp.Compare(a.Applications, b.Applications) }
	case domain.SortJobSalaryRange:
		return func(a, b domain.Job) int { return cmp.Compare(a.SalaryRange.Min, b.SalaryRange.Min) }
	case domain.SortJobCreatedDate:
		return func(a, b domain.Job) int { return compareDate(&a.CreatedDate, &b.CreatedDate) }
	case domain.SortJobClosedDate:
		return func(a, b domain.Job) int { return compareDate(a.ClosedDate, b.ClosedDate) }
	}
	return nil
}
