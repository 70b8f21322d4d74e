package query_test

import (
	"testing"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/query"
	"go-ats-dashboard/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func candidateIDs(cs []domain.Candidate) []string {
	return ids(cs, func(c domain.Candidate) string { return c.ID })
}

func jobIDs(js []domain.Job) []string {
	return ids(js, func(j domain.Job) string { return j.ID })
}

func TestFilterCandidatesByStatus(t *testing.T) {
	seed := memory.SeedCandidates()

	t.Run("all is identity", func(t *testing.T) {
		assert.Equal(t, seed, query.FilterCandidatesByStatus(seed, domain.StatusAll))
		assert.Equal(t, seed, query.FilterCandidatesByStatus(seed, ""))
	})

	t.Run("Should keep only matching status in original order", func(t *testing.T) {
		in := append(seed, domain.Candidate{ID: "6", Status: domain.CandidateInterview})
		got := query.FilterCandidatesByStatus(in, string(domain.CandidateInterview))
		assert.Equal(t, []string{"1", "6"}, candidateIDs(got))
	})

	t.Run("Unknown status matches nothing", func(t *testing.T) {
		assert.Empty(t, query.FilterCandidatesByStatus(seed, "Ghosted"))
	})
}

func TestFilterJobs(t *testing.T) {
	seed := memory.SeedJobs()

	assert.Equal(t, []string{"1", "2", "4"}, jobIDs(query.FilterJobsByStatus(seed, "Open")))
	assert.Equal(t, []string{"1", "2"}, jobIDs(query.FilterJobsByDepartment(seed, "Engineering")))
	assert.Equal(t, seed, query.FilterJobsByDepartment(seed, domain.StatusAll))
}

func TestSearch(t *testing.T) {
	t.Run("Empty query is identity", func(t *testing.T) {
		seed := memory.SeedCandidates()
		assert.Equal(t, seed, query.SearchCandidates(seed, ""))
	})

	t.Run("Should match candidates by name, email or skill ignoring case", func(t *testing.T) {
		seed := memory.SeedCandidates()
		assert.Equal(t, []string{"2"}, candidateIDs(query.SearchCandidates(seed, "SMITH")))
		assert.Equal(t, []string{"4"}, candidateIDs(query.SearchCandidates(seed, "sarah.wilson@")))
		assert.Equal(t, []string{"1", "5"}, candidateIDs(query.SearchCandidates(seed, "react")))
	})

	t.Run("Should match jobs by title, department or requirement", func(t *testing.T) {
		seed := memory.SeedJobs()
		assert.Equal(t, []string{"3"}, jobIDs(query.SearchJobs(seed, "figma")))
		assert.Equal(t, []string{"1", "2", "4"}, jobIDs(query.SearchJobs(seed, "ENGINEER")))
		assert.Equal(t, []string{"5"}, jobIDs(query.SearchJobs(seed, "product")))
	})
}

func TestSortCandidates(t *testing.T) {
	seed := memory.SeedCandidates()

	t.Run("Should sort by name ascending and descending", func(t *testing.T) {
		asc := query.SortCandidates(seed, domain.SortCandidateName, domain.OrderAsc)
		assert.Equal(t, []string{"5", "2", "1", "3", "4"}, candidateIDs(asc))

		desc := query.SortCandidates(seed, domain.SortCandidateName, domain.OrderDesc)
		assert.Equal(t, []string{"4", "3", "1", "2", "5"}, candidateIDs(desc))
	})

	t.Run("Should not mutate the input", func(t *testing.T) {
		before := candidateIDs(seed)
		_ = query.SortCandidates(seed, domain.SortCandidateAppliedDate, domain.OrderDesc)
		assert.Equal(t, before, candidateIDs(seed))
	})

	t.Run("Missing interview dates sort first ascending", func(t *testing.T) {
		got := query.SortCandidates(seed, domain.SortCandidateInterviewDate, domain.OrderAsc)
		assert.Equal(t, []string{"2", "3", "5", "4", "1"}, candidateIDs(got))
	})

	t.Run("Sort is stable for equal keys", func(t *testing.T) {
		in := []domain.Candidate{
			{ID: "a", Experience: "x"},
			{ID: "b", Experience: "x"},
			{ID: "c", Experience: "a"},
			{ID: "d", Experience: "x"},
		}
		got := query.SortCandidates(in, domain.SortCandidateExperience, domain.OrderAsc)
		assert.Equal(t, []string{"c", "a", "b", "d"}, candidateIDs(got))
	})

	t.Run("Empty key keeps order", func(t *testing.T) {
		assert.Equal(t, candidateIDs(seed), candidateIDs(query.SortCandidates(seed, "", domain.OrderDesc)))
	})
}

func TestSortJobs(t *testing.T) {
	seed := memory.SeedJobs()

	t.Run("salaryRange compares the minimum", func(t *testing.T) {
		got := query.SortJobs(seed, domain.SortJobSalaryRange, domain.OrderAsc)
		assert.Equal(t, []string{"3", "2", "1", "4", "5"}, jobIDs(got))
	})

	t.Run("Should sort by applications descending", func(t *testing.T) {
		got := query.SortJobs(seed, domain.SortJobApplications, domain.OrderDesc)
		assert.Equal(t, []string{"5", "1", "2", "3", "4"}, jobIDs(got))
	})

	t.Run("Should sort by created date", func(t *testing.T) {
		got := query.SortJobs(seed, domain.SortJobCreatedDate, domain.OrderAsc)
		assert.Equal(t, []string{"5", "3", "1", "2", "4"}, jobIDs(got))
	})
}

func TestParseSortKey(t *testing.T) {
	k, err := domain.ParseCandidateSortKey("appliedDate")
	require.NoError(t, err)
	assert.Equal(t, domain.SortCandidateAppliedDate, k)

	_, err = domain.ParseCandidateSortKey("salary")
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)

	_, err = domain.ParseJobSortKey("name")
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)

	o, err := domain.ParseSortOrder("DESC")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDesc, o)
}

func TestApplyJobQuery(t *testing.T) {
	got := query.ApplyJobQuery(memory.SeedJobs(), domain.JobQuery{
		Status:     "Open",
		Department: "Engineering",
		Search:     "years",
		SortBy:     domain.SortJobTitle,
		Order:      domain.OrderAsc,
	})
	assert.Equal(t, []string{"2", "1"}, jobIDs(got))
}

func TestApplyCandidateQuery(t *testing.T) {
	got := query.ApplyCandidateQuery(memory.SeedCandidates(), domain.CandidateQuery{
		Status: domain.StatusAll,
		Search: "css",
		SortBy: domain.SortCandidateAppliedDate,
		Order:  domain.OrderDesc,
	})
	assert.Equal(t, []string{"1", "3"}, candidateIDs(got))
}

func TestDepartments(t *testing.T) {
	assert.Equal(t, []string{"Design", "Engineering", "Operations", "Product"}, query.Departments(memory.SeedJobs()))
	assert.Empty(t, query.Departments(nil))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := query.Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, p.Data)
	assert.Equal(t, int64(5), p.Total)
	assert.Equal(t, 3, p.TotalPages)

	last := query.Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, last.Data)

	beyond := query.Paginate(items, 9, 2)
	assert.Empty(t, beyond.Data)
	assert.NotNil(t, beyond.Data)

	all := query.Paginate(items, 0, 0)
	assert.Equal(t, items, all.Data)
	assert.Equal(t, 1, all.TotalPages)
}
