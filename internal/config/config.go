// Package config holds the runtime configuration shared by the namenode,
// the datanodes, and the client driver.
//
// A config file is optional; every field has a default and the CLI exposes
// flag overrides for the common ones. The file is YAML:
//
//	block_size: 4096
//	replication: 2
//	namenode_addr: 127.0.0.1:3000
//	heartbeat_interval: 5s
//	liveness_threshold: 15s
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBlockSize is the maximum payload per block, in bytes.
	DefaultBlockSize = 4096
	// DefaultReplication is the desired replica count per block.
	DefaultReplication = 2
	// DefaultNameNodeAddr is the single port serving both the client
	// protocol and the heartbeat protocol.
	DefaultNameNodeAddr = "127.0.0.1:3000"
	// DefaultHeartbeatInterval is the datanode emitter cadence.
	DefaultHeartbeatInterval = 5 * time.Second
	// DefaultLivenessThreshold marks a datanode dead once its last
	// heartbeat is older than this. Must exceed the emitter interval.
	DefaultLivenessThreshold = 3 * DefaultHeartbeatInterval
	// DefaultRPCTimeout bounds every RPC the client driver issues.
	DefaultRPCTimeout = 5 * time.Second
)

// Config is the full runtime configuration.
type Config struct {
	BlockSize         int64         `yaml:"block_size"`
	Replication       int           `yaml:"replication"`
	NameNodeAddr      string        `yaml:"namenode_addr"`
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	LivenessThreshold time.Duration `yaml:"liveness_threshold"`
	RPCTimeout        time.Duration `yaml:"rpc_timeout"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		BlockSize:         DefaultBlockSize,
		Replication:       DefaultReplication,
		NameNodeAddr:      DefaultNameNodeAddr,
		HeartbeatInterval: DefaultHeartbeatInterval,
		LivenessThreshold: DefaultLivenessThreshold,
		RPCTimeout:        DefaultRPCTimeout,
	}
}

// UnmarshalYAML overlays the file's fields onto the receiver, which Load
// pre-fills with defaults. Durations use time.ParseDuration syntax, which
// yaml.v3 does not handle natively.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BlockSize         int64  `yaml:"block_size"`
		Replication       int    `yaml:"replication"`
		NameNodeAddr      string `yaml:"namenode_addr"`
		HeartbeatInterval string `yaml:"heartbeat_interval"`
		LivenessThreshold string `yaml:"liveness_threshold"`
		RPCTimeout        string `yaml:"rpc_timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.BlockSize != 0 {
		c.BlockSize = raw.BlockSize
	}
	if raw.Replication != 0 {
		c.Replication = raw.Replication
	}
	if raw.NameNodeAddr != "" {
		c.NameNodeAddr = raw.NameNodeAddr
	}
	for _, f := range []struct {
		text string
		dst  *time.Duration
	}{
		{raw.HeartbeatInterval, &c.HeartbeatInterval},
		{raw.LivenessThreshold, &c.LivenessThreshold},
		{raw.RPCTimeout, &c.RPCTimeout},
	} {
		if f.text == "" {
			continue
		}
		parsed, err := time.ParseDuration(f.text)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", f.text, err)
		}
		*f.dst = parsed
	}
	return nil
}

// Load reads path and overlays it on the defaults. A missing file is not an
// error; an unreadable or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the placement and liveness machinery
// cannot honor.
func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("block_size must be positive, got %d", c.BlockSize)
	}
	if c.Replication <= 0 {
		return fmt.Errorf("replication must be positive, got %d", c.Replication)
	}
	if c.NameNodeAddr == "" {
		return errors.New("namenode_addr is required")
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat_interval must be positive, got %s", c.HeartbeatInterval)
	}
	if c.LivenessThreshold <= c.HeartbeatInterval {
		return fmt.Errorf("liveness_threshold %s must exceed heartbeat_interval %s",
			c.LivenessThreshold, c.HeartbeatInterval)
	}
	if c.RPCTimeout <= 0 {
		return fmt.Errorf("rpc_timeout must be positive, got %s", c.RPCTimeout)
	}
	return nil
}
