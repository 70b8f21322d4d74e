package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"go-ats-dashboard/internal/domain"
)

var errMissingID = errors.New("missing id")

type listFlags struct {
	status, search, sortBy, order string
}

func (l *listFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&l.status, "status", domain.StatusAll, "status filter or all")
	fs.StringVar(&l.search, "search", "", "search text")
	fs.StringVar(&l.sortBy, "sort", "", "sort key")
	fs.StringVar(&l.order, "order", "asc", "asc or desc")
}

// split takes the leading id off args for show, update and delete.
func split(args []string) (string, []string, error) {
	if len(args) == 0 || args[0] == "" || args[0][0] == '-' {
		return "", nil, errMissingID
	}
	return args[0], args[1:], nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

type candidateFlags struct {
	name, email, phone, skills, experience, education, status, applied, interview, notes string
}

func (f *candidateFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "full name")
	fs.StringVar(&f.email, "email", "", "email address")
	fs.StringVar(&f.phone, "phone", "", "phone number")
	fs.StringVar(&f.skills, "skills", "", "comma-separated skills")
	fs.StringVar(&f.experience, "experience", "", "experience summary")
	fs.StringVar(&f.education, "education", "", "education")
	fs.StringVar(&f.status, "status", "", "Applied, Interview, Offer, Hired or Rejected")
	fs.StringVar(&f.applied, "applied", "", "applied date (YYYY-MM-DD)")
	fs.StringVar(&f.interview, "interview", "", "interview date (YYYY-MM-DD)")
	fs.StringVar(&f.notes, "notes", "", "notes")
}

func (f *candidateFlags) input() (domain.CandidateInput, error) {
	in := domain.CandidateInput{
		Name:       f.name,
		Email:      f.email,
		Phone:      f.phone,
		Skills:     domain.SplitList(f.skills),
		Experience: f.experience,
		Education:  f.education,
		Status:     domain.CandidateStatus(f.status),
	}
	var err error
	if in.AppliedDate, err = domain.ParseDate(f.applied); err != nil {
		return in, err
	}
	if f.interview != "" {
		d, err := domain.ParseDate(f.interview)
		if err != nil {
			return in, err
		}
		in.InterviewDate = &d
	}
	if f.notes != "" {
		in.Notes = &f.notes
	}
	return in, nil
}

func (f *candidateFlags) patch(set map[string]bool) (domain.CandidatePatch, error) {
	var p domain.CandidatePatch
	if set["name"] {
		p.Name = &f.name
	}
	if set["email"] {
		p.Email = &f.email
	}
	if set["phone"] {
		p.Phone = &f.phone
	}
	if set["skills"] {
		skills := domain.SplitList(f.skills)
		p.Skills = &skills
	}
	if set["experience"] {
		p.Experience = &f.experience
	}
	if set["education"] {
		p.Education = &f.education
	}
	if set["status"] {
		s := domain.CandidateStatus(f.status)
		p.Status = &s
	}
	if set["applied"] {
		d, err := domain.ParseDate(f.applied)
		if err != nil {
			return p, err
		}
		p.AppliedDate = &d
	}
	if set["interview"] {
		d, err := domain.ParseDate(f.interview)
		if err != nil {
			return p, err
		}
		p.InterviewDate = &d
	}
	if set["notes"] {
		p.Notes = &f.notes
	}
	return p, nil
}

func (a *app) candidateCmd(ctx context.Context, args []string) (bool, error) {
	if len(args) == 0 {
		return false, errors.New("candidates: missing action")
	}
	action, args := args[0], args[1:]

	switch action {
	case "list":
		var lf listFlags
		fs := flag.NewFlagSet("candidates list", flag.ContinueOnError)
		lf.register(fs)
		if err := fs.Parse(args); err != nil {
			return false, err
		}
		key, err := domain.ParseCandidateSortKey(lf.sortBy)
		if err != nil {
			return false, err
		}
		order, err := domain.ParseSortOrder(lf.order)
		if err != nil {
			return false, err
		}
		if !a.candidates.Mount(ctx) {
			return false, nil
		}
		a.out.Candidates(a.candidates.Visible(domain.CandidateQuery{
			Status: lf.status, Search: lf.search, SortBy: key, Order: order,
		}), a.mode)
		return true, nil

	case "show":
		id, _, err := split(args)
		if err != nil {
			return false, err
		}
		c, ok := a.candidates.Load(ctx, id)
		if ok {
			a.out.Candidate(*c)
		}
		return ok, nil

	case "create":
		var cf candidateFlags
		fs := flag.NewFlagSet("candidates create", flag.ContinueOnError)
		cf.register(fs)
		if err := fs.Parse(args); err != nil {
			return false, err
		}
		in, err := cf.input()
		if err != nil {
			return false, err
		}
		return a.candidates.Create(ctx, in), nil

	case "update":
		id, rest, err := split(args)
		if err != nil {
			return false, err
		}
		var cf candidateFlags
		fs := flag.NewFlagSet("candidates update", flag.ContinueOnError)
		cf.register(fs)
		if err := fs.Parse(rest); err != nil {
			return false, err
		}
		p, err := cf.patch(setFlags(fs))
		if err != nil {
			return false, err
		}
		return a.candidates.Update(ctx, id, p), nil

	case "delete":
		id, _, err := split(args)
		if err != nil {
			return false, err
		}
		return a.candidates.Delete(ctx, id), nil
	}
	return false, fmt.Errorf("candidates: unknown action %q", action)
}
