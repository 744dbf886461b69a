// Package regctl is the admin command line for the registration API. It performs the same
// operations as the dashboard, including the confirmation prompts.
package regctl

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	"github.com/sharath018/event-registration-backend/internal/apiclient"
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/internal/registration"
	"github.com/sharath018/event-registration-backend/internal/reports"
)

const usage = `usage: regctl [flags] <command> [args]

commands:
  login                          print an access token (export it as REGCTL_TOKEN)
  events                         list events
  registrations                  list registrations (-event, -status)
  show <id>                      show a registration and the actions it allows
  pay|unpay|confirm|cancel|restore <id>
                                 run a lifecycle operation on a registration
  export                         download a report (-format, -only-confirmed, -o)
  stats                          dashboard totals
`

// Config holds regctl configuration.
type Config struct {
	Addr          string        `env:"REGCTL_ADDR" envDefault:"http://localhost:3001"`
	Token         string        `env:"REGCTL_TOKEN"`
	Username      string        `env:"REGCTL_USERNAME" envDefault:"admin"`
	Password      string        `env:"REGCTL_PASSWORD"`
	Timeout       time.Duration `env:"REGCTL_TIMEOUT" envDefault:"30s"`
	Yes           bool
	JSONOutput    bool
	EventID       string
	Status        string
	Format        string
	OnlyConfirmed bool
	Output        string
	Command       string
	Args          []string
}

// ParseConfig reads REGCTL_* variables, then flags, then the command.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "API base URL")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "bearer token from `regctl login`")
	fs.StringVar(&cfg.Username, "username", cfg.Username, "admin username for login")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "admin password for login")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	fs.BoolVar(&cfg.Yes, "yes", false, "answer yes to confirmation prompts")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "print JSON instead of tables")
	fs.StringVar(&cfg.EventID, "event", "", "filter registrations or reports by event ID")
	fs.StringVar(&cfg.Status, "status", "", "filter registrations by status (pendente|confirmado|cancelado)")
	fs.StringVar(&cfg.Format, "format", reports.FormatExcel, "report format (excel|csv|pdf|json)")
	fs.BoolVar(&cfg.OnlyConfirmed, "only-confirmed", false, "report only confirmed registrations")
	fs.StringVar(&cfg.Output, "o", "", "report output path (default: server file name)")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage); fs.PrintDefaults() }
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, errors.New("missing command")
	}
	cfg.Command, cfg.Args = rest[0], rest[1:]
	return cfg, nil
}

var operationCommands = map[string]lifecycle.Operation{
	"pay":     lifecycle.OpMarkPaid,
	"unpay":   lifecycle.OpUnmarkPaid,
	"confirm": lifecycle.OpConfirm,
	"cancel":  lifecycle.OpCancel,
	"restore": lifecycle.OpRestore,
}

// Run executes one command. Prompts are read from in.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	client := apiclient.New(cfg.Addr, apiclient.WithToken(cfg.Token))

	switch cfg.Command {
	case "login":
		return runLogin(ctx, cfg, client, out)
	case "events":
		return runEvents(ctx, cfg, client, out)
	case "registrations":
		return runRegistrations(ctx, cfg, client, out)
	case "show":
		return runShow(ctx, cfg, client, out)
	case "export":
		return runExport(ctx, cfg, client, out)
	case "stats":
		return runStats(ctx, cfg, client, out)
	}

	if op, ok := operationCommands[cfg.Command]; ok {
		var confirm apiclient.Confirmer = apiclient.AlwaysConfirm
		if !cfg.Yes {
			confirm = NewPromptConfirmer(in, out)
		}
		return runOperation(ctx, cfg, apiclient.NewActions(client, confirm), op, out)
	}
	return fmt.Errorf("unknown command %q", cfg.Command)
}

func runLogin(ctx context.Context, cfg Config, client *apiclient.Client, out io.Writer) error {
	if cfg.Password == "" {
		return errors.New("-password or REGCTL_PASSWORD is required")
	}
	token, err := client.Login(ctx, cfg.Username, cfg.Password)
	if err != nil {
		return err
	}
	if cfg.JSONOutput {
		return writeJSON(out, token)
	}
	fmt.Fprintln(out, token.AccessToken)
	return nil
}

func runEvents(ctx context.Context, cfg Config, client *apiclient.Client, out io.Writer) error {
	events, err := client.ListEvents(ctx)
	if err != nil {
		return err
	}
	if cfg.JSONOutput {
		return writeJSON(out, events)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDATE\tPRICE\tCAPACITY")
	for _, ev := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%d\n", ev.ID, ev.Name, ev.Date.Format("2006-01-02"), ev.Price, ev.Capacity)
	}
	return tw.Flush()
}

func runRegistrations(ctx context.Context, cfg Config, client *apiclient.Client, out io.Writer) error {
	var f apiclient.RegistrationFilter
	if cfg.EventID != "" {
		id, err := uuid.Parse(cfg.EventID)
		if err != nil {
			return fmt.Errorf("-event: %w", err)
		}
		f.EventID = &id
	}
	f.Status = cfg.Status

	regs, err := client.ListRegistrations(ctx, f)
	if err != nil {
		return err
	}
	if cfg.JSONOutput {
		return writeJSON(out, regs)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEVENT\tSTATUS\tPAYMENT\tAMOUNT")
	for _, r := range regs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\n", r.ID, r.FullName, r.EventName, r.Status, r.PaymentStatus, r.Amount)
	}
	return tw.Flush()
}

func runShow(ctx context.Context, cfg Config, client *apiclient.Client, out io.Writer) error {
	reg, err := fetchRegistration(ctx, cfg, client)
	if err != nil {
		return err
	}
	if cfg.JSONOutput {
		return writeJSON(out, reg)
	}
	printRegistration(out, reg)
	return nil
}

func runOperation(ctx context.Context, cfg Config, actions *apiclient.Actions, op lifecycle.Operation, out io.Writer) error {
	reg, err := fetchRegistration(ctx, cfg, actions.Client)
	if err != nil {
		return err
	}

	updated, err := actions.Perform(ctx, reg, op)
	if errors.Is(err, apiclient.ErrDeclined) {
		fmt.Fprintln(out, "nothing changed")
		return nil
	}
	if err != nil {
		return err
	}
	if cfg.JSONOutput {
		return writeJSON(out, updated)
	}
	printRegistration(out, updated)
	return nil
}

func runExport(ctx context.Context, cfg Config, client *apiclient.Client, out io.Writer) error {
	opts := reports.DefaultOptions()
	opts.OnlyConfirmed = cfg.OnlyConfirmed
	params := apiclient.ExportParams{Format: cfg.Format, Options: opts}
	if cfg.EventID != "" {
		id, err := uuid.Parse(cfg.EventID)
		if err != nil {
			return fmt.Errorf("-event: %w", err)
		}
		params.EventID = &id
	}

	file, err := client.ExportReport(ctx, params)
	if err != nil {
		return err
	}

	path := cfg.Output
	if path == "" {
		path = file.Filename
	}
	if path == "" || path == "-" {
		_, err := out.Write(file.Data)
		return err
	}
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(out, "wrote %s (%d bytes)\n", path, len(file.Data))
	return nil
}

func runStats(ctx context.Context, cfg Config, client *apiclient.Client, out io.Writer) error {
	stats, err := client.Stats(ctx)
	if err != nil {
		return err
	}
	if cfg.JSONOutput {
		return writeJSON(out, stats)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "events\t%d\n", stats.TotalEvents)
	fmt.Fprintf(tw, "capacity\t%d\n", stats.TotalCapacity)
	fmt.Fprintf(tw, "registrations\t%d\n", stats.TotalRegistrations)
	fmt.Fprintf(tw, "pendente\t%d\n", stats.Pending)
	fmt.Fprintf(tw, "confirmado\t%d\n", stats.Confirmed)
	fmt.Fprintf(tw, "cancelado\t%d\n", stats.Canceled)
	fmt.Fprintf(tw, "pago\t%d\n", stats.Paid)
	fmt.Fprintf(tw, "revenue\t%.2f\n", stats.TotalRevenue)
	return tw.Flush()
}

func fetchRegistration(ctx context.Context, cfg Config, client *apiclient.Client) (*registration.Registration, error) {
	if len(cfg.Args) != 1 {
		return nil, fmt.Errorf("%s needs exactly one registration ID", cfg.Command)
	}
	id, err := uuid.Parse(cfg.Args[0])
	if err != nil {
		return nil, fmt.Errorf("registration ID: %w", err)
	}
	return client.GetRegistration(ctx, id)
}

func printRegistration(out io.Writer, reg *registration.Registration) {
	actions := make([]string, 0, len(lifecycle.Operations))
	for _, op := range lifecycle.Available(reg.State()) {
		actions = append(actions, string(op))
	}
	fmt.Fprintf(out, "%s  %s  %s\n", reg.ID, reg.FullName, reg.EventName)
	fmt.Fprintf(out, "  status: %s  payment: %s  amount: %.2f\n", reg.Status, reg.PaymentStatus, reg.Amount)
	fmt.Fprintf(out, "  actions: %s\n", strings.Join(actions, ", "))
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PromptConfirmer asks y/N questions on a terminal.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	if in == nil {
		in = strings.NewReader("")
	}
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

func (p *PromptConfirmer) Confirm(_ context.Context, c lifecycle.Confirmation) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N] ", c.Prompt())
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true, nil
	}
	return false, nil
}
