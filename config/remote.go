package config

import "time"

// Remote is the hosted relational backend.
type Remote struct {
	Driver       string        `json:"driver" yaml:"driver"` // mysql | postgres
	Dsn          string        `json:"dsn" yaml:"dsn"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	MaxOpenConns int           `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns int           `json:"max_idle_conns" yaml:"max_idle_conns"`
	Debug        bool          `json:"debug" yaml:"debug"`
}
