// Package view renders controller state for the terminal: entity lists as a
// table or a card grid, detail pages, dashboard stats and toasts.
package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-ats-dashboard/internal/domain"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

type Mode string

const (
	ModeTable Mode = "table"
	ModeGrid  Mode = "grid"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case "", ModeTable:
		return ModeTable, nil
	case ModeGrid:
		return ModeGrid, nil
	}
	return "", fmt.Errorf("unknown view %q: expected table or grid", s)
}

var (
	heading = color.New(color.FgYellow, color.Bold)
	label   = color.New(color.FgCyan)
)

type Renderer struct {
	w io.Writer
}

func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) Candidates(items []domain.Candidate, mode Mode) {
	heading.Fprintf(r.w, "\nCandidates (%d)\n", len(items))
	if mode == ModeGrid {
		for _, c := range items {
			r.card(c.Name, [][2]string{
				{"ID", c.ID},
				{"Email", c.Email},
				{"Status", string(c.Status)},
				{"Skills", strings.Join(c.Skills, ", ")},
				{"Applied", c.AppliedDate.String()},
			})
		}
		return
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"ID", "Name", "Email", "Status", "Experience", "Applied", "Interview"})
	for _, c := range items {
		table.Append([]string{
			c.ID, c.Name, c.Email, string(c.Status), c.Experience,
			c.AppliedDate.String(), dateOrDash(c.InterviewDate),
		})
	}
	table.Render()
}

func (r *Renderer) Jobs(items []domain.Job, mode Mode) {
	heading.Fprintf(r.w, "\nJobs (%d)\n", len(items))
	if mode == ModeGrid {
		for _, j := range items {
			r.card(j.Title, [][2]string{
				{"ID", j.ID},
				{"Department", j.Department},
				{"Level", string(j.Level)},
				{"Type", string(j.Type)},
				{"Status", string(j.Status)},
				{"Salary", salary(j.SalaryRange)},
				{"Applications", strconv.Itoa(j.Applications)},
			})
		}
		return
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"ID", "Title", "Department", "Level", "Type", "Status", "Applications", "Created"})
	for _, j := range items {
		table.Append([]string{
			j.ID, j.Title, j.Department, string(j.Level), string(j.Type), string(j.Status),
			strconv.Itoa(j.Applications), j.CreatedDate.String(),
		})
	}
	table.Render()
}

func (r *Renderer) Candidate(c domain.Candidate) {
	notes := "-"
	if c.Notes != nil && *c.Notes != "" {
		notes = *c.Notes
	}
	r.card(c.Name, [][2]string{
		{"ID", c.ID},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Status", string(c.Status)},
		{"Skills", strings.Join(c.Skills, ", ")},
		{"Experience", c.Experience},
		{"Education", c.Education},
		{"Applied", c.AppliedDate.String()},
		{"Interview", dateOrDash(c.InterviewDate)},
		{"Notes", notes},
	})
}

func (r *Renderer) Job(j domain.Job) {
	r.card(j.Title, [][2]string{
		{"ID", j.ID},
		{"Department", j.Department},
		{"Level", string(j.Level)},
		{"Type", string(j.Type)},
		{"Location", j.Location},
		{"Status", string(j.Status)},
		{"Salary", salary(j.SalaryRange)},
		{"Applications", strconv.Itoa(j.Applications)},
		{"Created", j.CreatedDate.String()},
		{"Closed", dateOrDash(j.ClosedDate)},
		{"Requirements", strings.Join(j.Requirements, ", ")},
		{"Description", j.Description},
	})
}

func (r *Renderer) Departments(depts []string) {
	heading.Fprintln(r.w, "\nDepartments")
	for _, d := range depts {
		fmt.Fprintf(r.w, "  %s\n", d)
	}
}

func (r *Renderer) Dashboard(st domain.DashboardStats) {
	heading.Fprintln(r.w, "\nDashboard")
	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"Total Candidates", "Open Jobs", "Hired This Month", "Interviews Scheduled"})
	table.Append([]string{
		strconv.Itoa(st.TotalCandidates),
		strconv.Itoa(st.OpenJobs),
		strconv.Itoa(st.HiredThisMonth),
		strconv.Itoa(st.InterviewScheduled),
	})
	table.Render()

	r.buckets("Application Trends", "Month", st.ApplicationTrends)
	r.buckets("Status Distribution", "Status", st.StatusDistribution)
}

func (r *Renderer) buckets(title, column string, bs []domain.Bucket) {
	heading.Fprintf(r.w, "\n%s\n", title)
	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{column, "Count"})
	for _, b := range bs {
		table.Append([]string{b.Name, strconv.Itoa(b.Value)})
	}
	table.Render()
}

// Toast prints a notification in its type's colour.
func (r *Renderer) Toast(n domain.Notification) {
	var c *color.Color
	switch n.Type {
	case domain.NotifySuccess:
		c = color.New(color.FgGreen)
	case domain.NotifyError:
		c = color.New(color.FgRed)
	case domain.NotifyWarning:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgCyan)
	}
	c.Fprintln(r.w, n.Message)
}

func (r *Renderer) card(title string, fields [][2]string) {
	heading.Fprintf(r.w, "\n%s\n", title)
	for _, f := range fields {
		label.Fprintf(r.w, "  %-13s", f[0]+":")
		fmt.Fprintf(r.w, " %s\n", f[1])
	}
}

func dateOrDash(d *domain.Date) string {
	if d == nil || d.IsZero() {
		return "-"
	}
	return d.String()
}

func salary(s domain.SalaryRange) string {
	return fmt.Sprintf("%s %.0f - %.0f", s.Currency, s.Min, s.Max)
}
