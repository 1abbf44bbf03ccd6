package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vango-dev/styled/internal/config"
	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/showcase"
	"github.com/vango-dev/styled/pkg/vdom"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{in: stdin, out: stdout, errOut: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.printError(err)
		return 1
	}
	return 0
}

// app holds the global flags and I/O shared by every command.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool
	logFormat  string
	noColor    bool

	logger *slog.Logger
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styled",
		Short: "Style-prop wrappers for primitive components",
		Long: `styled maps shorthand and style props on primitive components to a
single style object, and previews the result.

  • Inspect the allowed style props and alias tables
  • Map a props file to its style, CSS and mapping report
  • Render components to HTML
  • Serve a live gallery of the components in styled.yaml
  • Publish the gallery to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file or directory (default: nearest styled.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.logFormat, "log-format", "text", "Log format: text or json")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		propsCmd(a),
		aliasesCmd(a),
		mapCmd(a),
		renderCmd(a),
		serveCmd(a),
		publishCmd(a),
		versionCmd(a),
	)
	return cmd
}

// setup configures color output and the default logger.
func (a *app) setup() error {
	if a.noColor || !isTerminal(a.out) {
		errors.DisableColors()
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch a.logFormat {
	case "text", "":
		a.logger = slog.New(slog.NewTextHandler(a.errOut, opts))
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(a.errOut, opts))
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", a.logFormat)
	}
	slog.SetDefault(a.logger)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadConfig loads the config named by --config, or the nearest one above
// the working directory. When required is false a missing config yields
// the defaults.
func (a *app) loadConfig(required bool) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case a.configPath == "":
		cfg, err = config.LoadFromWorkingDir()
	case isDir(a.configPath):
		cfg, err = config.Load(a.configPath)
	default:
		cfg, err = config.LoadFile(a.configPath)
	}

	var se *errors.StyledError
	if err != nil && !required && stderrors.As(err, &se) && se.Code == "E100" {
		a.debug("no config found, using defaults")
		return config.New(), nil
	}
	return cfg, err
}

// registry builds the component registry from the config, if any.
func (a *app) registry() (*showcase.Registry, *config.Config, error) {
	cfg, err := a.loadConfig(false)
	if err != nil {
		return nil, nil, err
	}
	reg, err := showcase.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return reg, cfg, nil
}

// readProps reads a props object from a file, or from stdin for "-" or
// an empty path.
func (a *app) readProps(path string) (vdom.Props, error) {
	if path == "" || path == "-" {
		return showcase.ReadProps(a.in)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E120").WithDetail("Cannot read " + path).Wrap(err)
	}
	props, err := showcase.ParseProps(data)
	if err != nil {
		var se *errors.StyledError
		if stderrors.As(err, &se) && se.Location == nil {
			se.WithLocationFromYAML(path, se.Wrapped)
		}
		return nil, err
	}
	return props, nil
}

func isDir(path string) bool {
	info, err := os.Stat(filepath.Clean(path))
	return err == nil && info.IsDir()
}

func (a *app) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}

func (a *app) printError(err error) {
	var se *errors.StyledError
	if stderrors.As(err, &se) {
		if a.logFormat == "json" {
			fmt.Fprintln(a.errOut, se.FormatJSON())
			return
		}
		errors.Fprint(a.errOut, se)
		return
	}
	errors.Fprint(a.errOut, err)
}

// success prints a success message.
func (a *app) success(format string, args ...any) {
	fmt.Fprintf(a.out, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// info prints an indented info line.
func (a *app) info(format string, args ...any) {
	fmt.Fprintf(a.out, "  %s\n", fmt.Sprintf(format, args...))
}
