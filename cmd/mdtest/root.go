package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// rootFlags holds persistent flags shared by every command.
type rootFlags struct {
	config   string
	testsDir string
	timeout  string
	workers  int
	verbose  bool
	noColor  bool
}

// app carries state resolved once per invocation.
type app struct {
	env   *Environment
	flags rootFlags
	cfg   *config.Config
}

func newRootCmd(env *Environment) *cobra.Command {
	a := &app{env: env}

	root := &cobra.Command{
		Use:           "mdtest",
		Short:         "Compare Markdown engines against reference HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.config, "config", "c", "", "config file name or path (default config_local, if present)")
	pf.StringVar(&a.flags.testsDir, "tests-dir", "", "directory holding the .md/.out cases")
	pf.StringVar(&a.flags.timeout, "timeout", "", "per-case engine timeout, e.g. 10s")
	pf.IntVarP(&a.flags.workers, "workers", "w", 0, "cases rendered concurrently per engine, 0 = all CPUs (default from config)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log configuration and engine probing to stderr")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newRunCmd(a),
		newCatAllCmd(a),
		newCatInputCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads config and applies environment and flag overrides, in that order.
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.flags.config != "" {
		cfg, err = config.LoadConfig(a.flags.config)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if token := a.env.Getenv("MDTEST_GFM_TOKEN"); token != "" {
		cfg.GFMOAuthToken = token
	} else if cfg.GFMOAuthToken == "" {
		cfg.GFMOAuthToken = a.env.Getenv("GITHUB_TOKEN")
	}

	if a.flags.testsDir != "" {
		cfg.TestsDir = a.flags.testsDir
	}
	if a.flags.timeout != "" {
		cfg.Timeout = a.flags.timeout
	}
	if cmd.Flags().Changed("workers") {
		if a.flags.workers < 0 {
			return fmt.Errorf("%w: --workers must be >= 0, got %d", ErrInvalidFlag, a.flags.workers)
		}
		cfg.Workers = a.flags.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(a.logf))

	a.logf("tests dir: %s", cfg.TestsDir)
	a.logf("timeout: %s, workers: %d", cfg.TimeoutDuration(), cfg.Workers)
	return nil
}

// engines builds the registry from the resolved config.
func (a *app) engines() (*engine.Registry, error) {
	return a.env.Engines(a.cfg.GFMOAuthToken, a.cfg.TimeoutDuration())
}

// logf writes a line to stderr in verbose mode.
func (a *app) logf(format string, args ...interface{}) {
	if a.flags.verbose {
		fmt.Fprintf(a.env.Stderr, format+"\n", args...)
	}
}

// colorEnabled reports whether stdout gets ANSI decorations.
func (a *app) colorEnabled() bool {
	if a.flags.noColor || a.env.Getenv("NO_COLOR") != "" {
		return false
	}
	return a.env.IsTerminal(a.env.Stdout)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mdtest %s\n", Version)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration (token redacted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yamlutil.Marshal(a.cfg.Redacted())
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
