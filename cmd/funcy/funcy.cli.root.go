package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/itsatony/go-funcy"
	"github.com/itsatony/go-funcy/config"
	"github.com/itsatony/go-funcy/storage"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, msg string, err error) error {
	return &exitError{code: code, err: fmt.Errorf(FmtErrorWithCause, msg, err)}
}

// app holds the state shared by one CLI invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	store  storage.TemplateStore

	// ask answers the prompt of the interactive handler.
	ask func(message string) (string, error)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
		ask:    surveyAsk,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               CLIName,
		Short:             CLIDescription,
		Long:              CLILongDescription,
		Version:           funcy.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVarP(&a.configPath, FlagConfig, FlagConfigShort, "", FlagUsageConfig)
	root.PersistentFlags().BoolVarP(&a.verbose, FlagVerbose, FlagVerboseShort, false, FlagUsageVerbose)

	root.AddCommand(
		a.renderCmd(),
		a.scanCmd(),
		a.watchCmd(),
		a.storeCmd(),
		a.schemaCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads the config and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath == "" {
		useUserStore(cfg)
	} else {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return withExitCode(ExitCodeInputError, ErrMsgLoadConfigFailed, err)
		}
		cfg = loaded
	}
	a.cfg = cfg

	logger, err := newLogger(a.stderr, a.verbose, cfg.LogLevel)
	if err != nil {
		return withExitCode(ExitCodeUsageError, ErrMsgBuildLoggerFailed, err)
	}
	a.logger = logger

	if a.configPath != "" {
		a.logger.Debug(LogMsgConfigLoaded, zap.String(LogFieldPath, a.configPath))
	}
	return nil
}

// useUserStore points the store at funcy/templates under the user config
// directory. The memory store stays when that directory is unknown.
func useUserStore(cfg *config.Config) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return
	}
	cfg.Store = config.StoreConfig{
		Driver: config.DriverFilesystem,
		DSN:    filepath.Join(dir, UserStoreDir, UserStoreTemplatesDir),
	}
}

// newLogger writes console logs at debug level when verbose and JSON logs
// at the configured level otherwise.
func newLogger(w io.Writer, verbose bool, level string) (*zap.Logger, error) {
	if verbose {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)
		return zap.New(core), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

// handlers builds the configured handler set.
func (a *app) handlers() (funcy.Handlers, error) {
	hs, err := a.cfg.Handlers()
	if err != nil {
		return nil, withExitCode(ExitCodeInputError, ErrMsgHandlersFailed, err)
	}
	return hs, nil
}

// openStore opens the configured store once per invocation.
func (a *app) openStore() (storage.TemplateStore, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := storage.Open(a.cfg.Store.Driver, a.cfg.Store.DSN)
	if err != nil {
		return nil, withExitCode(ExitCodeError, ErrMsgOpenStoreFailed, err)
	}
	if a.cfg.Store.Driver == config.DriverMemory {
		fmt.Fprintln(a.stderr, HintMemoryStore)
	}
	a.logger.Debug(LogMsgStoreOpened, zap.String(LogFieldDriver, a.cfg.Store.Driver))
	a.store = store
	return store, nil
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = a.logger.Sync()
}
