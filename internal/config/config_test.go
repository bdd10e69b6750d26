package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfs.yaml")
	data := "block_size: 4\nreplication: 2\nheartbeat_interval: 1s\nliveness_threshold: 3s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BlockSize != 4 || cfg.Replication != 2 {
		t.Fatalf("Load() = %+v, want block_size 4 replication 2", cfg)
	}
	if cfg.HeartbeatInterval != time.Second || cfg.LivenessThreshold != 3*time.Second {
		t.Fatalf("durations = %s/%s, want 1s/3s", cfg.HeartbeatInterval, cfg.LivenessThreshold)
	}
	// Untouched fields keep their defaults.
	if cfg.NameNodeAddr != DefaultNameNodeAddr {
		t.Fatalf("NameNodeAddr = %q, want default", cfg.NameNodeAddr)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfs.yaml")
	if err := os.WriteFile(path, []byte("heartbeat_interval: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted an unparseable duration")
	}
}

func TestValidate(t *testing.T) {
	valid := Default()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero block size", func(c *Config) { c.BlockSize = 0 }, true},
		{"negative replication", func(c *Config) { c.Replication = -1 }, true},
		{"empty namenode addr", func(c *Config) { c.NameNodeAddr = "" }, true},
		{"zero heartbeat interval", func(c *Config) { c.HeartbeatInterval = 0 }, true},
		{"threshold below interval", func(c *Config) { c.LivenessThreshold = c.HeartbeatInterval / 2 }, true},
		{"threshold equal to interval", func(c *Config) { c.LivenessThreshold = c.HeartbeatInterval }, true},
		{"zero rpc timeout", func(c *Config) { c.RPCTimeout = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
