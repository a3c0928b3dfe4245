package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.log")
	cfg := &config.AppConfig{Settings: config.Settings{LogLevel: "debug", LogFile: path, Environment: "production"}}

	log, closeFn, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.WithField("from_date", 1000).Error("Homework endpoint is unreachable")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("last line is not JSON: %v", err)
	}
	if entry["level"] != "error" || entry["msg"] != "Homework endpoint is unreachable" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("entry has no timestamp: %v", entry)
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	cfg := &config.AppConfig{Settings: config.Settings{LogLevel: "loud", LogFile: "-"}}

	log, closeFn, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closeFn()

	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %s, want info", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("formatter = %T, want text formatter outside production", log.Formatter)
	}
}

func TestNew_UnwritableFile(t *testing.T) {
	cfg := &config.AppConfig{Settings: config.Settings{LogFile: filepath.Join(t.TempDir(), "missing", "program.log")}}

	if _, _, err := New(cfg); err == nil {
		t.Fatal("expected an error for a log file in a missing directory")
	}
}
