package memory

import "go-ats-dashboard/internal/domain"

func datePtr(s string) *domain.Date {
	d := domain.MustParseDate(s)
	return &d
}

func strPtr(s string) *string { return &s }

// SeedCandidates returns a fresh copy of the demo candidates.
func SeedCandidates() []domain.Candidate {
	return []domain.Candidate{
		{
			ID:            "1",
			Name:          "John Doe",
			Email:         "john.doe@example.com",
			Phone:         "+1 (555) 123-4567",
			Skills:        []string{"React", "TypeScript", "Node.js", "CSS"},
			Experience:    "5 years",
			Education:     "BS in Computer Science",
			Status:        domain.CandidateInterview,
			AppliedDate:   domain.MustParseDate("2023-03-15"),
			InterviewDate: datePtr("2023-03-20"),
			Notes:         strPtr("Strong React skills, good communication"),
		},
		{
			ID:          "2",
			Name:        "Jane Smith",
			Email:       "jane.smith@example.com",
			Phone:       "+1 (555) 987-6543",
			Skills:      []string{"Angular", "Java", "Spring Boot", "SQL"},
			Experience:  "7 years",
			Education:   "MS in Software Engineering",
			Status:      domain.CandidateApplied,
			AppliedDate: domain.MustParseDate("2023-03-18"),
			Notes:       strPtr("Extensive backend experience"),
		},
		{
			ID:            "3",
			Name:          "Mike Johnson",
			Email:         "mike.johnson@example.com",
			Phone:         "+1 (555) 456-7890",
			Skills:        []string{"Vue.js", "JavaScript", "HTML", "CSS"},
			Experience:    "3 years",
			Education:     "BS in Web Development",
			Status:        domain.CandidateHired,
			AppliedDate:   domain.MustParseDate("2023-02-10"),
			InterviewDate: datePtr("2023-02-15"),
			Notes:         strPtr("Great cultural fit, quick learner"),
		},
		{
			ID:            "4",
			Name:          "Sarah Wilson",
			Email:         "sarah.wilson@example.com",
			Phone:         "+1 (555) 234-5678",
			Skills:        []string{"Python", "Django", "PostgreSQL", "Docker"},
			Experience:    "4 years",
			Education:     "BS in Computer Engineering",
			Status:        domain.CandidateOffer,
			AppliedDate:   domain.MustParseDate("2023-03-12"),
			InterviewDate: datePtr("2023-03-17"),
			Notes:         strPtr("Strong problem-solving skills"),
		},
		{
			ID:            "5",
			Name:          "David Brown",
			Email:         "david.brown@example.com",
			Phone:         "+1 (555) 876-5432",
			Skills:        []string{"React Native", "Firebase", "Redux", "Jest"},
			Experience:    "2 years",
			Education:     "BS in Mobile Development",
			Status:        domain.CandidateRejected,
			AppliedDate:   domain.MustParseDate("2023-03-05"),
			InterviewDate: datePtr("2023-03-10"),
			Notes:         strPtr("Lacked required testing experience"),
		},
	}
}

// SeedJobs returns a fresh copy of the demo job postings.
func SeedJobs() []domain.Job {
	usd := func(lo, hi float64) domain.SalaryRange {
		return domain.SalaryRange{Min: lo, Max: hi, Currency: domain.DefaultCurrency}
	}
	return []domain.Job{
		{
			ID:           "1",
			Title:        "Senior Frontend Developer",
			Department:   "Engineering",
			Level:        domain.LevelSenior,
			Description:  "We are looking for a skilled Frontend Developer to join our team...",
			Requirements: []string{"React", "TypeScript", "5+ years experience", "CSS expertise"},
			Location:     "Remote",
			Type:         domain.TypeFullTime,
			Status:       domain.JobOpen,
			SalaryRange:  usd(90000, 130000),
			Applications: 24,
			CreatedDate:  domain.MustParseDate("2023-02-01"),
		},
		{
			ID:           "2",
			Title:        "Backend Engineer",
			Department:   "Engineering",
			Level:        domain.LevelMid,
			Description:  "Join our backend team to build scalable APIs and services...",
			Requirements: []string{"Node.js", "Python", "3+ years experience", "Database knowledge"},
			Location:     "San Francisco, CA",
			Type:         domain.TypeFullTime,
			Status:       domain.JobOpen,
			SalaryRange:  usd(85000, 120000),
			Applications: 18,
			CreatedDate:  domain.MustParseDate("2023-02-15"),
		},
		{
			ID:           "3",
			Title:        "UX Designer",
			Department:   "Design",
			Level:        domain.LevelSenior,
			Description:  "Create beautiful and intuitive user experiences for our products...",
			Requirements: []string{"Figma", "User research", "5+ years experience", "Prototyping"},
			Location:     "New York, NY",
			Type:         domain.TypeFullTime,
			Status:       domain.JobOnHold,
			SalaryRange:  usd(80000, 110000),
			Applications: 15,
			CreatedDate:  domain.MustParseDate("2023-01-20"),
		},
		{
			ID:           "4",
			Title:        "DevOps Engineer",
			Department:   "Operations",
			Level:        domain.LevelSenior,
			Description:  "Manage our cloud infrastructure and CI/CD pipelines...",
			Requirements: []string{"AWS", "Docker", "Kubernetes", "4+ years experience"},
			Location:     "Remote",
			Type:         domain.TypeFullTime,
			Status:       domain.JobOpen,
			SalaryRange:  usd(100000, 140000),
			Applications: 12,
			CreatedDate:  domain.MustParseDate("2023-03-01"),
		},
		{
			ID:           "5",
			Title:        "Product Manager",
			Department:   "Product",
			Level:        domain.LevelLead,
			Description:  "Lead product development and work with cross-functional teams...",
			Requirements: []string{"Product strategy", "Agile methodology", "6+ years experience"},
			Location:     "Austin, TX",
			Type:         domain.TypeFullTime,
			Status:       domain.JobClosed,
			SalaryRange:  usd(110000, 150000),
			Applications: 32,
			CreatedDate:  domain.MustParseDate("2023-01-10"),
			ClosedDate:   datePtr("2023-02-28"),
		},
	}
}
