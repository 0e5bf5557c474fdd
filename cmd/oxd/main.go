package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/orangehrm/oxd/internal/config"
	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/internal/logging"
	"github.com/orangehrm/oxd/internal/objstore"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
   ___  __  ______
  / _ \ \ \/ /  _ \
 | (_) | >  <| |_) |
  \___/ /_/\_\____/
`

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// app carries the streams and lazily loaded settings shared by commands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	color  bool

	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger

	// newS3 builds the client for s3:// locations. Tests swap in an
	// in-memory bucket.
	newS3 func(context.Context, config.S3Config) (objstore.API, error)
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:     in,
		out:    out,
		errOut: errOut,
		color:  isTerminal(out),
		newS3: func(ctx context.Context, c config.S3Config) (objstore.API, error) {
			return objstore.NewClient(ctx, objstore.Options{
				Region:    c.Region,
				Endpoint:  c.Endpoint,
				PathStyle: c.PathStyle,
			})
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if !a.color {
		errors.DisableColors()
	}
	if err := newRootCmd(a).Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oxd",
		Short: "Variant-driven UI components",
		Long: `oxd resolves Button, Text and Textarea props into their CSS classes
and renders the components.

  • Render a component from the command line
  • Check rendered markup against snapshot baselines
  • Serve, export and publish the component docs
  • Browse the stories in the terminal`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to oxd.json (default: nearest oxd.json)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override the log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		renderCmd(a),
		variantsCmd(a),
		storiesCmd(a),
		snapshotCmd(a),
		serveCmd(a),
		exportCmd(a),
		publishCmd(a),
		browseCmd(a),
		versionCmd(a),
	)

	return rootCmd
}

// config loads oxd.json once, applies OXD_* overrides and builds the
// logger.
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, a.errOut)
	if err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	a.cfg = cfg
	a.logger = logger
	return cfg, nil
}

func (a *app) paint(s lipgloss.Style, text string) string {
	if !a.color {
		return text
	}
	return s.Render(text)
}

// printBanner prints the oxd ASCII art banner.
func (a *app) printBanner() {
	fmt.Fprint(a.out, a.paint(headStyle, banner))
}

// success prints a success message.
func (a *app) success(format string, args ...any) {
	fmt.Fprintf(a.out, "%s %s\n", a.paint(successStyle, "✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func (a *app) info(format string, args ...any) {
	fmt.Fprintf(a.out, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func (a *app) warn(format string, args ...any) {
	fmt.Fprintf(a.out, "%s %s\n", a.paint(warnStyle, "⚠"), fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func (a *app) errorMsg(format string, args ...any) {
	fmt.Fprintf(a.errOut, "%s %s\n", a.paint(failStyle, "✗"), fmt.Sprintf(format, args...))
}
