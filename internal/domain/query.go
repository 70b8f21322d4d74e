package domain

import (
	"errors"
	"fmt"
	"strings"
)

// StatusAll disables status and department filtering.
const StatusAll = "all"

var ErrInvalidSortKey = errors.New("invalid sort key")

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortOrder defaults to ascending for an empty value.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(s)) {
	case "", OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	default:
		return "", fmt.Errorf("invalid sort order %q: expected asc or desc", s)
	}
}

type CandidateSortKey string

const (
	SortCandidateName          CandidateSortKey = "name"
	SortCandidateEmail         CandidateSortKey = "email"
	SortCandidatePhone         CandidateSortKey = "phone"
	SortCandidateExperience    CandidateSortKey = "experience"
	SortCandidateEducation     CandidateSortKey = "education"
	SortCandidateStatus        CandidateSortKey = "status"
	SortCandidateAppliedDate   CandidateSortKey = "appliedDate"
	SortCandidateInterviewDate CandidateSortKey = "interviewDate"
)

var CandidateSortKeys = []CandidateSortKey{
	SortCandidateName,
	SortCandidateEmail,
	SortCandidatePhone,
	SortCandidateExperience,
	SortCandidateEducation,
	SortCandidateStatus,
	SortCandidateAppliedDate,
	SortCandidateInterviewDate,
}

// ParseCandidateSortKey accepts an empty string as "no sorting".
func ParseCandidateSortKey(s string) (CandidateSortKey, error) {
	if s == "" {
		return "", nil
	}
	for _, k := range CandidateSortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

type JobSortKey string

const (
	SortJobTitle        JobSortKey = "title"
	SortJobDepartment   JobSortKey = "department"
	SortJobLocation     JobSortKey = "location"
	SortJobLevel        JobSortKey = "level"
	SortJobType         JobSortKey = "type"
	SortJobStatus       JobSortKey = "status"
	SortJobApplications JobSortKey = "applications"
	SortJobSalaryRange  JobSortKey = "salaryRange"
	SortJobCreatedDate  JobSortKey = "createdDate"
	SortJobClosedDate   JobSortKey = "closedDate"
)

var JobSortKeys = []JobSortKey{
	SortJobTitle,
	SortJobDepartment,
	SortJobLocation,
	SortJobLevel,
	SortJobType,
	SortJobStatus,
	SortJobApplications,
	SortJobSalaryRange,
	SortJobCreatedDate,
	SortJobClosedDate,
}

func ParseJobSortKey(s string) (JobSortKey, error) {
	if s == "" {
		return "", nil
	}
	for _, k := range JobSortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// CandidateQuery describes the visible subset of a candidate list.
type CandidateQuery struct {
	Status string
	Search string
	SortBy CandidateSortKey
	Order  SortOrder
}

type JobQuery struct {
	Status     string
	Department string
	Search     string
	SortBy     JobSortKey
	Order      SortOrder
}

// PaginatedResult for list responses
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}
