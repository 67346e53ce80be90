package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/cmlabs-hris/hrms-lite/internal/page"
	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

// errReported ends a command whose failure was already printed.
var errReported = errors.New("failure reported")

type app struct {
	in  *bufio.Reader
	out io.Writer

	logger     *slog.Logger
	notifier   *page.Notifier
	employees  *client.EmployeeService
	attendance *client.AttendanceService

	mu     sync.Mutex
	failed bool
}

func (a *app) printNotification(note page.Notification) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if note.Kind == page.KindError {
		a.failed = true
	}
	fmt.Fprintf(a.out, "[%s] %s\n", note.Kind, note.Message)
}

// result turns an error notification raised during the command into a
// non-zero exit.
func (a *app) result() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failed {
		return errReported
	}
	return nil
}

// confirm asks a yes/no question on the command's input, defaulting to no.
func (a *app) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", question)
	answer, err := a.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		apiURL  string
		timeout time.Duration
	)
	a := &app{in: bufio.NewReader(in), out: out}

	cmd := &cobra.Command{
		Use:           "hrms",
		Short:         "Manage employees and attendance through the HRMS API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.Client.APIBaseURL = apiURL
			}
			if timeout > 0 {
				cfg.Client.Timeout = timeout
			}

			a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))
			a.notifier = page.NewNotifier(cfg.Client.NotificationTTL)
			a.notifier.OnShow(a.printNotification)

			api := client.New(cfg.Client.APIBaseURL, cfg.Client.Timeout, a.logger)
			a.employees = client.NewEmployeeService(api)
			a.attendance = client.NewAttendanceService(api)
			return nil
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("hrms v{{.Version}}\n")
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (default $HRMS_API_URL or http://localhost:8080/api)")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (default $HRMS_API_TIMEOUT or 10s)")

	cmd.AddCommand(newEmployeesCmd(a), newAttendanceCmd(a))
	return cmd
}
