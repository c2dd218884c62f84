package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("./ffmpeg", "./out")

	if cfg.ExecutablePath != "./ffmpeg" {
		t.Errorf("ExecutablePath = %q, want ./ffmpeg", cfg.ExecutablePath)
	}
	if cfg.ScratchDir != "./out" {
		t.Errorf("ScratchDir = %q, want ./out", cfg.ScratchDir)
	}
	if cfg.LogDir != filepath.Join("./out", "logs") {
		t.Errorf("LogDir = %q, want out/logs", cfg.LogDir)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"missing executable", func(c *Config) { c.ExecutablePath = "" }, ErrMissingExecutable},
		{"missing scratch dir", func(c *Config) { c.ScratchDir = "" }, ErrMissingScratchDir},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, ErrInvalidTimeout},
		{"zero timeout is unbounded and valid", func(c *Config) { c.Timeout = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig("./ffmpeg", "./out")
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetLogDir(t *testing.T) {
	cfg := NewConfig("./ffmpeg", "./out")
	cfg.LogDir = ""
	if got := cfg.GetLogDir(); got != filepath.Join("./out", "logs") {
		t.Errorf("GetLogDir() = %q, want fallback under scratch dir", got)
	}

	cfg.LogDir = "/var/log/ffcheck"
	if got := cfg.GetLogDir(); got != "/var/log/ffcheck" {
		t.Errorf("GetLogDir() = %q, want explicit value", got)
	}
}
