package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"go-ats-dashboard/internal/domain"
)

type jobFlags struct {
	title, department, level, jobType, status, location, description, requirements, currency, closed string
	min, max                                                                                         float64
	applications                                                                                     int
}

func (f *jobFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "job title")
	fs.StringVar(&f.department, "department", "", "department")
	fs.StringVar(&f.level, "level", "", "Intern, Junior, Mid, Senior or Lead")
	fs.StringVar(&f.jobType, "type", "", "Full-time, Part-time, Contract or Remote")
	fs.StringVar(&f.status, "status", "", "Open, Closed or On-hold")
	fs.StringVar(&f.location, "location", "", "location")
	fs.StringVar(&f.description, "description", "", "description")
	fs.StringVar(&f.requirements, "requirements", "", "comma-separated requirements")
	fs.StringVar(&f.currency, "currency", "", "salary currency")
	fs.StringVar(&f.closed, "closed", "", "closed date (YYYY-MM-DD)")
	fs.Float64Var(&f.min, "min", 0, "minimum salary")
	fs.Float64Var(&f.max, "max", 0, "maximum salary")
	fs.IntVar(&f.applications, "applications", 0, "application count (update only)")
}

func (f *jobFlags) input() (domain.JobInput, error) {
	in := domain.JobInput{
		Title:        f.title,
		Department:   f.department,
		Level:        domain.JobLevel(f.level),
		Description:  f.description,
		Requirements: domain.SplitList(f.requirements),
		Location:     f.location,
		Type:         domain.JobType(f.jobType),
		Status:       domain.JobStatus(f.status),
		SalaryRange:  domain.SalaryRange{Min: f.min, Max: f.max, Currency: f.currency},
	}
	if f.closed != "" {
		d, err := domain.ParseDate(f.closed)
		if err != nil {
			return in, err
		}
		in.ClosedDate = &d
	}
	return in, nil
}

// patch builds a partial update. Salary flags replace the whole range, so
// unset parts are taken from current.
func (f *jobFlags) patch(set map[string]bool, current *domain.Job) (domain.JobPatch, error) {
	var p domain.JobPatch
	if set["title"] {
		p.Title = &f.title
	}
	if set["department"] {
		p.Department = &f.department
	}
	if set["level"] {
		l := domain.JobLevel(f.level)
		p.Level = &l
	}
	if set["type"] {
		t := domain.JobType(f.jobType)
		p.Type = &t
	}
	if set["status"] {
		s := domain.JobStatus(f.status)
		p.Status = &s
	}
	if set["location"] {
		p.Location = &f.location
	}
	if set["description"] {
		p.Description = &f.description
	}
	if set["requirements"] {
		reqs := domain.SplitList(f.requirements)
		p.Requirements = &reqs
	}
	if set["applications"] {
		p.Applications = &f.applications
	}
	if set["min"] || set["max"] || set["currency"] {
		sr := current.SalaryRange
		if set["min"] {
			sr.Min = f.min
		}
		if set["max"] {
			sr.Max = f.max
		}
		if set["currency"] {
			sr.Currency = f.currency
		}
		p.SalaryRange = &sr
	}
	if set["closed"] {
		d, err := domain.ParseDate(f.closed)
		if err != nil {
			return p, err
		}
		p.ClosedDate = &d
	}
	return p, nil
}

func (a *app) jobCmd(ctx context.Context, args []string) (bool, error) {
	if len(args) == 0 {
		return false, errors.New("jobs: missing action")
	}
	action, args := args[0], args[1:]

	switch action {
	case "list":
		var lf listFlags
		var department string
		fs := flag.NewFlagSet("jobs list", flag.ContinueOnError)
		lf.register(fs)
		fs.StringVar(&department, "department", domain.StatusAll, "department filter or all")
		if err := fs.Parse(args); err != nil {
			return false, err
		}
		key, err := domain.ParseJobSortKey(lf.sortBy)
		if err != nil {
			return false, err
		}
		order, err := domain.ParseSortOrder(lf.order)
		if err != nil {
			return false, err
		}
		if !a.jobs.Mount(ctx) {
			return false, nil
		}
		a.out.Jobs(a.jobs.Visible(domain.JobQuery{
			Status: lf.status, Department: department, Search: lf.search, SortBy: key, Order: order,
		}), a.mode)
		return true, nil

	case "departments":
		if !a.jobs.Mount(ctx) {
			return false, nil
		}
		a.out.Departments(a.jobs.Departments())
		return true, nil

	case "show":
		id, _, err := split(args)
		if err != nil {
			return false, err
		}
		j, ok := a.jobs.Load(ctx, id)
		if ok {
			a.out.Job(*j)
		}
		return ok, nil

	case "create":
		var jf jobFlags
		fs := flag.NewFlagSet("jobs create", flag.ContinueOnError)
		jf.register(fs)
		if err := fs.Parse(args); err != nil {
			return false, err
		}
		in, err := jf.input()
		if err != nil {
			return false, err
		}
		return a.jobs.Create(ctx, in), nil

	case "update":
		id, rest, err := split(args)
		if err != nil {
			return false, err
		}
		var jf jobFlags
		fs := flag.NewFlagSet("jobs update", flag.ContinueOnError)
		jf.register(fs)
		if err := fs.Parse(rest); err != nil {
			return false, err
		}
		set := setFlags(fs)
		current := &domain.Job{}
		if set["min"] || set["max"] || set["currency"] {
			var ok bool
			if current, ok = a.jobs.Load(ctx, id); !ok {
				return false, nil
			}
		}
		p, err := jf.patch(set, current)
		if err != nil {
			return false, err
		}
		return a.jobs.Update(ctx, id, p), nil

	case "delete":
		id, _, err := split(args)
		if err != nil {
			return false, err
		}
		return a.jobs.Delete(ctx, id), nil
	}
	return false, fmt.Errorf("jobs: unknown action %q", action)
}
