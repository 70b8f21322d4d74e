// Command atsctl drives the ATS API from the terminal through the same
// controllers a UI would use.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go-ats-dashboard/internal/client"
	"go-ats-dashboard/internal/controller"
	"go-ats-dashboard/internal/view"
	"go-ats-dashboard/pkg/logger"
)

const usage = `usage: atsctl [flags] <command> [args]

commands:
  login -email E -password P
  candidates list|show|create|update|delete
  jobs list|show|create|update|delete|departments
  dashboard

flags:
`

type app struct {
	state      *controller.AppState
	api        *client.Client
	candidates *controller.CandidateController
	jobs       *controller.JobController
	dashboard  *controller.DashboardController
	auth       *controller.AuthController
	out        *view.Renderer
	stdout     io.Writer
	mode       view.Mode
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("atsctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	baseURL := fs.String("url", envOr("ATS_API_URL", client.DefaultBaseURL), "API base URL")
	token := fs.String("token", os.Getenv("ATS_TOKEN"), "bearer token")
	timeout := fs.Duration("timeout", envDuration("ATS_TIMEOUT", 30*time.Second), "request timeout")
	viewFlag := fs.String("view", "table", "list layout: table or grid")
	verbose := fs.Bool("v", false, "log façade failures to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	mode, err := view.ParseMode(*viewFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if *verbose {
		logger.InitWithWriter(stderr, "debug")
	}

	api := client.New(*baseURL, *timeout)
	api.SetToken(*token)

	state := controller.NewAppState(nil)
	defer state.Reset()

	candidateAPI := client.NewCandidateAPI(api)
	jobAPI := client.NewJobAPI(api)
	a := &app{
		state:      state,
		api:        api,
		candidates: controller.NewCandidateController(state, candidateAPI),
		jobs:       controller.NewJobController(state, jobAPI),
		dashboard:  controller.NewDashboardController(state, candidateAPI, jobAPI, nil),
		auth:       controller.NewAuthController(state, api),
		out:        view.New(stdout),
		stdout:     stdout,
		mode:       mode,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ok, err := a.dispatch(ctx, fs.Args())
	if n, shown := state.Toast(); shown {
		a.out.Toast(n)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if !ok {
		return 1
	}
	return 0
}

func (a *app) dispatch(ctx context.Context, args []string) (bool, error) {
	switch args[0] {
	case "login":
		return a.login(ctx, args[1:])
	case "candidates", "candidate":
		return a.candidateCmd(ctx, args[1:])
	case "jobs", "job":
		return a.jobCmd(ctx, args[1:])
	case "dashboard":
		if !a.dashboard.Fetch(ctx) {
			return false, nil
		}
		a.out.Dashboard(a.dashboard.Stats())
		return true, nil
	}
	return false, fmt.Errorf("unknown command %q", args[0])
}

func (a *app) login(ctx context.Context, args []string) (bool, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "admin@example.com", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return false, err
	}

	session, ok := a.auth.Login(ctx, *email, *password)
	if !ok {
		return false, nil
	}
	fmt.Fprintf(a.stdout, "export ATS_TOKEN=%s\n", session.Token)
	return true, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration accepts a Go duration or a number of seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	var secs int
	if _, err := fmt.Sscanf(v, "%d", &secs); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
