// Package cmd provides the root command and CLI setup for javasee.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/kmizu/JavaSee/internal/adapter"
	"github.com/kmizu/JavaSee/internal/controller"
	"github.com/kmizu/JavaSee/internal/domain"
	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "JAVASEE"

var javaFileAdapter adapter.JavaFileAdapter
var sourceFSAdapter adapter.SourceFSAdapter
var configAdapter adapter.ConfigAdapter

// workflow replaces the per-command workflow when set. Tests install mocks
// here.
var workflow domain.Workflow

// settings merges persistent flags with JAVASEE_* environment variables.
var settings *viper.Viper

func init() {
	javaFileAdapter = adapter.NewLocalJavaFileAdapter()
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	configAdapter = adapter.NewLocalConfigAdapter(sourceFSAdapter)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "javasee",
		Short: "Structural pattern linter for Java",
		Long: `JavaSee finds Java code matching structural patterns and reports it as
issues. Rules live in javasee.yml; each rule has an id, a message and one or
more patterns such as

  _.println("debug")          any println("debug") call with a receiver
  _ == null [conditional]     a null comparison used as a branch condition
  _.trim() [discarded]        a trim() whose result is thrown away

Exit statuses:
` + exitStatusHelp(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", domain.DefaultConfig, "path to the configuration file")
	flags.StringP("format", "f", string(controller.FormatText), "output format: text or json")
	flags.IntP("workers", "j", 0, "number of files analyzed in parallel (default: number of CPUs)")
	flags.BoolP("verbose", "v", false, "log debug details to stderr")

	settings = newSettings(flags)

	return cmd
}

func newSettings(flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, name := range []string{"config", "format", "workers", "verbose"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return v
}

func exitStatusHelp() string {
	var b strings.Builder

	for _, status := range m.ExitStatuses {
		fmt.Fprintf(&b, "  %d  %s\n", status.Code(), status)
	}

	return b.String()
}

func configFlag() m.Path {
	return m.Path(settings.GetString("config"))
}

func workersFlag() int {
	if n := settings.GetInt("workers"); n > 0 {
		return n
	}

	return runtime.NumCPU()
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if settings.GetBool("verbose") {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// workflowFor builds the workflow for one command run, honouring --format.
func workflowFor(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	format, err := controller.ParseFormat(settings.GetString("format"))
	if err != nil {
		return nil, err
	}

	ui := controller.NewUI(cmd, format, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(sourceFSAdapter, javaFileAdapter, configAdapter, ui, newLogger(cmd)), nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// ExitStatus maps the error a command returned to the process exit status.
func ExitStatus(err error) m.ExitStatus {
	if err == nil {
		return m.ExitOK
	}

	if errors.Is(err, domain.ErrIssuesFound) || errors.Is(err, domain.ErrTestsFailed) {
		return m.ExitFailure
	}

	var configErr *adapter.ConfigError
	if errors.As(err, &configErr) {
		switch configErr.Class {
		case adapter.ConfigNotFound:
			return m.ExitConfigNotFound
		case adapter.ConfigSyntax:
			return m.ExitConfigSyntaxError
		case adapter.ConfigSchema:
			return m.ExitConfigSchemaError
		default:
			return m.ExitConfigUnknownError
		}
	}

	return m.ExitError
}

// handledError marks errors the workflow already rendered through its UI.
type handledError struct {
	err error
}

func (e handledError) Error() string {
	return e.err.Error()
}

func (e handledError) Unwrap() error {
	return e.err
}

// run resolves the workflow for cmd and calls it with the command context.
func run(cmd *cobra.Command, call func(ctx context.Context, w domain.Workflow) error) error {
	w, err := workflowFor(cmd)
	if err != nil {
		return err
	}

	if err := call(cmd.Context(), w); err != nil {
		return handledError{err: err}
	}

	return nil
}

// Execute runs the root command and returns the process exit code.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)

	var handled handledError
	if err != nil && !errors.As(err, &handled) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "javasee: %v\n", err)
	}

	return ExitStatus(err).Code()
}
