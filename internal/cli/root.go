// Package cli implements the agility command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/agility/internal/logging"
	"github.com/mesh-intelligence/agility/internal/manifest"
	"github.com/mesh-intelligence/agility/internal/paths"
	"github.com/mesh-intelligence/agility/internal/registry"
	"github.com/mesh-intelligence/agility/pkg/agility"
	"github.com/mesh-intelligence/agility/pkg/types"
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
	manifest  string
	jsonMode  bool
}

var flags rootFlags

// session is the state PersistentPreRunE prepares for subcommands.
type session struct {
	configDir string
	config    types.Config
	logger    logging.Logger
}

var current session

// NewRootCmd creates the top-level "agility" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}
	current = session{}

	root := &cobra.Command{
		Use:   "agility",
		Short: "Inspect which object types may cross execution contexts",
		Long: `Agility reads a type manifest and reports, for each object type, whether
its instances are agile (usable from any execution context) or confined
to the context that created them.`,
		Version:           agility.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: prepareSession,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/agility)")
	root.PersistentFlags().StringVar(&flags.manifest, "manifest", "", "type manifest (default: <config-dir>/types.yaml)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newValidateCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "agility:", err)
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}

// userErrors are failures caused by input rather than the environment.
var userErrors = []error{
	types.ErrUnsupportedCapability,
	types.ErrTypeNotFound,
	types.ErrDuplicateType,
	types.ErrInvalidName,
	types.ErrInvalidTrait,
	types.ErrManifestInvalid,
	types.ErrLogLevelUnknown,
	types.ErrLogFormatUnknown,
	fs.ErrNotExist,
}

// codedError pins an exit code to an error.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &codedError{code: code, err: err}
}

func prepareSession(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return withCode(exitSysError, fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	current = session{
		configDir: configDir,
		config:    cfg,
		logger: logging.New(logging.Options{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			Output: cmd.ErrOrStderr(),
		}),
	}
	return nil
}

// manifestPath returns the manifest location for the current session.
func manifestPath() (string, error) {
	return paths.ResolveManifest(flags.manifest, current.config.Manifest, current.configDir)
}

// openRegistry builds a registry from the session's manifest.
func openRegistry() (*registry.Registry, error) {
	path, err := manifestPath()
	if err != nil {
		return nil, withCode(exitSysError, fmt.Errorf("resolve manifest: %w", err))
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}

	reg := registry.New(registry.WithLogger(current.logger))
	if err := manifest.Apply(reg, m); err != nil {
		return nil, fmt.Errorf("apply manifest %s: %w", path, err)
	}
	current.logger.Debug("manifest loaded", "path", path, "types", len(m.Types))
	return reg, nil
}
