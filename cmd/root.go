package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/regdesk/internal/app"
	"github.com/zjrosen/regdesk/internal/config"
	"github.com/zjrosen/regdesk/internal/flags"
	"github.com/zjrosen/regdesk/internal/log"
	"github.com/zjrosen/regdesk/internal/pubsub"
	"github.com/zjrosen/regdesk/internal/store"
	"github.com/zjrosen/regdesk/internal/tracing"
	"github.com/zjrosen/regdesk/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".regdesk/config.yaml"

var (
	version = "dev"
	cfgFile string
	debug   bool
	logFile string
	noSeed  bool
)

var rootCmd = &cobra.Command{
	Use:     "regdesk",
	Short:   "A terminal admin console for student registrations",
	Long:    `A terminal user interface for managing course types, courses, course offerings and the students registered to them.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .regdesk/config.yaml or ~/.config/regdesk/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write logs and enable the log overlay (ctrl+x)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "debug.log",
		"log file used with --debug")
	rootCmd.Flags().BoolVar(&noSeed, "no-seed", false,
		"start with no records instead of the configured seed")
}

// resolveConfigPath picks the config file to read. An explicit path wins,
// then the project file in cwd, then the user file under home. When none
// exists the project path is returned with create set.
func resolveConfigPath(explicit, cwd, home string) (path string, create bool) {
	if explicit != "" {
		return explicit, false
	}
	local := filepath.Join(cwd, localConfigPath)
	if _, err := os.Stat(local); err == nil {
		return local, false
	}
	if home != "" {
		user := filepath.Join(home, ".config", "regdesk", "config.yaml")
		if _, err := os.Stat(user); err == nil {
			return user, false
		}
	}
	return local, true
}

// loadConfig reads path into a fresh viper instance. A missing default file
// is written from the template first; if that fails the defaults are used.
func loadConfig(explicit string) (*viper.Viper, config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("getting current directory: %w", err)
	}
	home, _ := os.UserHomeDir()
	path, create := resolveConfigPath(explicit, cwd, home)

	v := config.New()
	if create {
		if err := config.WriteDefaultConfig(path); err != nil {
			log.Warn(log.CatConfig, "Using built-in defaults", "error", err)
			cfg, err := config.Load(v)
			return v, cfg, err
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, config.Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	log.Info(log.CatConfig, "Loaded config", "path", path)
	return v, cfg, nil
}

// watchConfig publishes every valid edit of the config file on broker. An
// invalid edit is logged and the running configuration kept.
func watchConfig(v *viper.Viper, broker *pubsub.Broker[config.Config]) {
	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := config.Load(v)
		if err != nil {
			log.ErrorErr(log.CatConfig, "Ignoring invalid config change", err, "path", e.Name)
			return
		}
		log.Info(log.CatConfig, "Config changed", "path", e.Name, "op", e.Op.String())
		broker.Publish(pubsub.ReloadedEvent, cfg)
	})
	v.WatchConfig()
}

func initLogging() (func(), error) {
	if !debug && os.Getenv("REGDESK_DEBUG") == "" {
		log.SetEnabled(false)
		return func() {}, nil
	}
	debug = true
	cleanup, err := log.InitWithTeaLog(logFile, "regdesk", log.DefaultBufferSize)
	if err != nil {
		return nil, fmt.Errorf("initializing log: %w", err)
	}
	return cleanup, nil
}

// initialState builds the records shown at startup.
func initialState(cfg config.Config) (store.State, error) {
	if noSeed || !cfg.Seed.Enabled {
		return store.State{}, nil
	}
	return store.Seeded(cfg.Seed.Store())
}

func runApp(cmd *cobra.Command, args []string) error {
	closeLog, err := initLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	v, cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	registry := flags.New(cfg.Flags)
	for _, name := range registry.Unknown() {
		log.Warn(log.CatConfig, "Unknown feature flag", "flag", name)
	}

	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	sessionID := uuid.NewString()
	provider, err := tracing.NewProvider(cfg.Tracing, sessionID)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()
	log.Info(log.CatTrace, "Session started", "session", sessionID, "tracing", provider.Enabled())

	state, err := initialState(cfg)
	if err != nil {
		return fmt.Errorf("seeding records: %w", err)
	}

	var reloads *pubsub.Broker[config.Config]
	if registry.Enabled(flags.FlagLiveReload) && v.ConfigFileUsed() != "" {
		// Only the newest configuration matters to the app.
		reloads = pubsub.NewBroker[config.Config](pubsub.WithBuffer(1), pubsub.WithOverflow(pubsub.KeepLatest))
		defer reloads.Close()
		watchConfig(v, reloads)
	}

	model := app.New(app.Options{
		Config:  cfg,
		State:   state,
		Tracing: provider,
		Reloads: reloads,
		Debug:   debug,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if registry.Enabled(flags.FlagMouse) {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(&model, opts...)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
