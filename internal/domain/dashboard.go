package domain

import "context"

// Bucket is one aggregation cell, e.g. a month or a status, with its count.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardStats contains dashboard statistics
type DashboardStats struct {
	TotalCandidates    int      `json:"totalCandidates"`
	OpenJobs           int      `json:"openJobs"`
	HiredThisMonth     int      `json:"hiredThisMonth"`
	InterviewScheduled int      `json:"interviewScheduled"`
	ApplicationTrends  []Bucket `json:"applicationTrends"`
	StatusDistribution []Bucket `json:"statusDistribution"`
}

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}
