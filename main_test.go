package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emojipick/internal/config"
	"emojipick/internal/domain"
)

func TestWriteMatches(t *testing.T) {
	descriptors := []domain.Descriptor{
		{Glyph: "😀", Name: "grinning face", Keywords: "grinning face grinning"},
		{Glyph: "🚀", Name: "rocket", Keywords: "rocket"},
	}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty query lists all", "", "😀\tgrinning face\tgrinning face grinning\n🚀\trocket\trocket\n"},
		{"case insensitive", "ROCK", "🚀\trocket\trocket\n"},
		{"shared substring", "in", "😀\tgrinning face\tgrinning face grinning\n"},
		{"no match", "xyz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeMatches(&buf, descriptors, tt.query))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestListCommand(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"emojipick", "list", "rocket"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "🚀\trocket\t"))
}

func TestConfigCommandWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"emojipick", "--config", path, "config"})
	require.NoError(t, err)
	assert.Equal(t, path+"\n", buf.String())

	cfg, err := config.NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestEnsureConfigKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntitle = \"Mine\"\n"), 0644))

	got, err := ensureConfig(config.NewConfigService(path))
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[ui]\ntitle = \"Mine\"\n", string(data))
}

func TestSetupLoggingCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "emojipick.log")

	closeLog, err := setupLogging(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		closeLog()
		log.SetOutput(os.Stderr)
	})

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadConfigAndLoggingRecordsConfigSource(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	logPath := filepath.Join(dir, "picker.log")
	require.NoError(t, os.WriteFile(configPath, []byte("[ui]\ntitle = \"Mine\"\n"), 0644))

	cfg, closeLog, err := loadConfigAndLogging(config.NewConfigService(configPath), logPath)
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	closeLog()

	assert.Equal(t, "Mine", cfg.UISettings.Title)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Loaded config from "+configPath)
}

func TestLoadConfigAndLoggingUsesConfigLogFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	logPath := filepath.Join(dir, "logs", "from-config.log")
	require.NoError(t, os.WriteFile(configPath, []byte("log_file = \""+logPath+"\"\n"), 0644))

	_, closeLog, err := loadConfigAndLogging(config.NewConfigService(configPath), "")
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	closeLog()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Loaded config from "+configPath)
}
