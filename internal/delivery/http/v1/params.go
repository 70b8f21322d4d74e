package v1

import (
	"errors"
	"strconv"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// paging reads page and page_size. Absent values mean "everything".
func paging(c *gin.Context) (int, int, error) {
	page, err := intQuery(c, "page")
	if err != nil {
		return 0, 0, err
	}
	size, err := intQuery(c, "page_size")
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.BadRequest(name + " must be a non-negative integer")
	}
	return n, nil
}

func sortOrder(c *gin.Context) (domain.SortOrder, error) {
	order, err := domain.ParseSortOrder(c.Query("order"))
	if err != nil {
		return "", apperror.BadRequest(err.Error())
	}
	return order, nil
}

func candidateQuery(c *gin.Context) (domain.CandidateQuery, error) {
	key, err := domain.ParseCandidateSortKey(c.Query("sort_by"))
	if err != nil {
		return domain.CandidateQuery{}, apperror.BadRequest(err.Error())
	}
	order, err := sortOrder(c)
	if err != nil {
		return domain.CandidateQuery{}, err
	}
	return domain.CandidateQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
		SortBy: key,
		Order:  order,
	}, nil
}

func jobQuery(c *gin.Context) (domain.JobQuery, error) {
	key, err := domain.ParseJobSortKey(c.Query("sort_by"))
	if err != nil {
		return domain.JobQuery{}, apperror.BadRequest(err.Error())
	}
	order, err := sortOrder(c)
	if err != nil {
		return domain.JobQuery{}, err
	}
	return domain.JobQuery{
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Search:     c.Query("search"),
		SortBy:     key,
		Order:      order,
	}, nil
}

// bindJSON decodes the body. Binding tag failures go to the error middleware
// as validation errors; malformed JSON is a plain 400.
func bindJSON(c *gin.Context, dest any) bool {
	err := c.ShouldBindJSON(dest)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.Error(err)
	} else {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
	}
	return false
}
