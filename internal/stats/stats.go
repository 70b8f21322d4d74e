// Package stats computes the dashboard summary from candidate and job lists.
package stats

import (
	"time"

	"go-ats-dashboard/internal/domain"
)

// TrendMonths is the number of monthly buckets in ApplicationTrends.
const TrendMonths = 6

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Compute is pure: same inputs and now give the same result.
//
// Month matching ignores the year. A candidate who applied in March of any
// year counts towards "hired this month" in March and lands in the March
// trend bucket.
func Compute(candidates []domain.Candidate, jobs []domain.Job, now time.Time) domain.DashboardStats {
	month := now.Month()

	st := domain.DashboardStats{
		TotalCandidates:    len(candidates),
		ApplicationTrends:  make([]domain.Bucket, TrendMonths),
		StatusDistribution: make([]domain.Bucket, len(domain.CandidateStatuses)),
	}

	for _, j := range jobs {
		if j.Status == domain.JobOpen {
			st.OpenJobs++
		}
	}

	// month index 0..11 -> trend bucket, -1 when outside the window
	slot := [12]int{}
	for i := range slot {
		slot[i] = -1
	}
	cur := int(month) - 1
	for i := 0; i < TrendMonths; i++ {
		idx := (cur - (TrendMonths - 1) + i + 12) % 12
		slot[idx] = i
		st.ApplicationTrends[i] = domain.Bucket{Name: monthNames[idx]}
	}

	statusSlot := make(map[domain.CandidateStatus]int, len(domain.CandidateStatuses))
	for i, s := range domain.CandidateStatuses {
		statusSlot[s] = i
		st.StatusDistribution[i] = domain.Bucket{Name: string(s)}
	}

	for _, c := range candidates {
		if i, ok := statusSlot[c.Status]; ok {
			st.StatusDistribution[i].Value++
		}
		if c.Status == domain.CandidateInterview && c.HasInterview() {
			st.InterviewScheduled++
		}
		if c.AppliedDate.IsZero() {
			continue
		}
		applied := c.AppliedDate.Month()
		if c.Status == domain.CandidateHired && applied == month {
			st.HiredThisMonth++
		}
		if b := slot[int(applied)-1]; b >= 0 {
			st.ApplicationTrends[b].Value++
		}
	}

	return st
}
