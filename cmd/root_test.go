package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/regdesk/internal/config"
	"github.com/zjrosen/regdesk/internal/pubsub"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		cwd, home := t.TempDir(), t.TempDir()
		writeFile(t, filepath.Join(cwd, localConfigPath), "{}\n")

		path, create := resolveConfigPath("/etc/regdesk.yaml", cwd, home)
		require.Equal(t, "/etc/regdesk.yaml", path)
		require.False(t, create)
	})

	t.Run("project file before user file", func(t *testing.T) {
		cwd, home := t.TempDir(), t.TempDir()
		writeFile(t, filepath.Join(cwd, localConfigPath), "{}\n")
		writeFile(t, filepath.Join(home, ".config", "regdesk", "config.yaml"), "{}\n")

		path, create := resolveConfigPath("", cwd, home)
		require.Equal(t, filepath.Join(cwd, localConfigPath), path)
		require.False(t, create)
	})

	t.Run("user file", func(t *testing.T) {
		cwd, home := t.TempDir(), t.TempDir()
		user := filepath.Join(home, ".config", "regdesk", "config.yaml")
		writeFile(t, user, "{}\n")

		path, create := resolveConfigPath("", cwd, home)
		require.Equal(t, user, path)
		require.False(t, create)
	})

	t.Run("nothing found creates project file", func(t *testing.T) {
		cwd := t.TempDir()
		path, create := resolveConfigPath("", cwd, "")
		require.Equal(t, filepath.Join(cwd, localConfigPath), path)
		require.True(t, create)
	})
}

func TestLoadConfig_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "ui:\n  date_format: \"2006-01-02\"\nflags:\n  mouse: false\n")

	v, cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, path, v.ConfigFileUsed())
	require.Equal(t, "2006-01-02", cfg.UI.DateFormat)
	require.False(t, cfg.Flags["mouse"])
	require.True(t, cfg.Flags["live-reload"])
}

// A first run with no config anywhere writes the template and starts from
// it, so a template that fails validation stops regdesk here.
func TestLoadConfig_FirstRunWritesDefault(t *testing.T) {
	cwd := t.TempDir()
	t.Chdir(cwd)
	t.Setenv("HOME", t.TempDir())

	v, cfg, err := loadConfig("")
	require.NoError(t, err)

	path := filepath.Join(cwd, localConfigPath)
	require.FileExists(t, path)
	require.Equal(t, path, v.ConfigFileUsed())
	want := config.Defaults()
	want.Tracing.FilePath = config.DefaultTracePath()
	require.Equal(t, want, cfg)

	state, err := initialState(cfg)
	require.NoError(t, err)
	require.Len(t, state.CourseTypes, 3)

	// The second run reads the file the first one wrote.
	_, again, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "theme:\n  preset: solarized\n")

	_, _, err := loadConfig(path)
	require.ErrorContains(t, err, "invalid config")
	require.ErrorContains(t, err, "theme.preset")
}

func TestInitialState(t *testing.T) {
	t.Cleanup(func() { noSeed = false })

	cfg := config.Defaults()
	state, err := initialState(cfg)
	require.NoError(t, err)
	require.Len(t, state.CourseTypes, 3)
	require.Len(t, state.Offerings, 2)

	noSeed = true
	state, err = initialState(cfg)
	require.NoError(t, err)
	require.Empty(t, state.CourseTypes)

	noSeed = false
	cfg.Seed.Enabled = false
	state, err = initialState(cfg)
	require.NoError(t, err)
	require.Empty(t, state.Courses)
}

func TestWatchConfig_PublishesValidChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "ui:\n  show_counts: true\n")

	v, _, err := loadConfig(path)
	require.NoError(t, err)

	broker := pubsub.NewBroker[config.Config]()
	defer broker.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := broker.Subscribe(ctx)

	watchConfig(v, broker)
	writeFile(t, path, "ui:\n  show_counts: false\n")

	// The write may surface as several events; wait for the final content.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			require.Equal(t, pubsub.ReloadedEvent, ev.Type)
			if !ev.Payload.UI.ShowCounts {
				return
			}
		case <-deadline:
			t.Fatal("no reload published")
		}
	}
}

func TestConfigShow(t *testing.T) {
	t.Cleanup(func() { cfgFile = "" })

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "ui:\n  date_format: \"Jan 2, 2006\"\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "show", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	var shown config.Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &shown))
	require.Equal(t, "Jan 2, 2006", shown.UI.DateFormat)
	require.Equal(t, []string{"Individual", "Group", "Special"}, shown.Seed.CourseTypes)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"config", "init", path})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))

	rootCmd.SetArgs([]string{"config", "init", path})
	require.ErrorContains(t, rootCmd.Execute(), "already exists")
}
