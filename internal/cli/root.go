// Package cli implements the grades command-line interface. Every command
// loads the latest roster snapshot, runs one store operation, and saves a
// new snapshot when the operation changed the roster.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/grades/internal/paths"
	"github.com/mesh-intelligence/grades/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// env is the state shared by the commands of one root command.
type env struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	logger    *slog.Logger
	stderr    io.Writer
}

// NewRootCmd creates the top-level "grades" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	e := &env{stderr: os.Stderr}

	root := &cobra.Command{
		Use:   "grades",
		Short: "Track students, their courses, and their grades",
		Long: "grades keeps a roster of students and the grade each earned per course.\n" +
			"Every change is saved as a snapshot in the data directory.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return e.load()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	root.PersistentFlags().StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&e.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&e.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(e))
	root.AddCommand(newConfigCmd(e))
	root.AddCommand(newAddStudentCmd(e))
	root.AddCommand(newAddGradeCmd(e))
	root.AddCommand(newAverageCmd(e))
	root.AddCommand(newGradeCmd(e))
	root.AddCommand(newPrintCmd(e))
	root.AddCommand(newPrintAllCmd(e))
	root.AddCommand(newExportCmd(e))
	root.AddCommand(newImportCmd(e))
	root.AddCommand(newSnapshotsCmd(e))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		os.Exit(exitSuccess)
	}
	color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
	os.Exit(exitCode(err))
}

// exitCode maps caller mistakes to exitUserError and everything else to
// exitSysError.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if types.IsUserError(err) {
		return exitUserError
	}
	return exitSysError
}

// load resolves directories, reads configuration, and builds the logger.
func (e *env) load() error {
	configDir, err := paths.ResolveConfigDir(e.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	cfg, err := configFromViper(v)
	if err != nil {
		return err
	}
	e.configDir = configDir
	e.cfg = cfg
	e.logger = newLogger(cfg, e.stderr)
	return nil
}

// resolveDataDir returns the data directory: --data-dir flag > config
// data_dir > GRADES_DATA_DIR > platform default.
func (e *env) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(e.flags.dataDir, e.cfg.DataDir)
}

// usageError marks err as a caller mistake.
func usageError(err error) error {
	if err == nil || errors.Is(err, types.ErrInvalidArgument) {
		return err
	}
	return fmt.Errorf("%w: %w", types.ErrInvalidArgument, err)
}

// exactArgs wraps cobra.ExactArgs so a wrong argument count is a user error.
func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		return usageError(check(cmd, args))
	}
}
