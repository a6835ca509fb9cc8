package config

import (
	"fmt"
	"time"
)

// Redis backs the slot store when slot.driver is "redis".
type Redis struct {
	Address     string `json:"address" yaml:"address"`
	Port        int    `json:"port" yaml:"port"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	Database    int    `json:"database" yaml:"database"`
	DialTimeout int    `json:"dial_timeout" yaml:"dial_timeout"` // seconds
}

func (r Redis) Addr() string {
	host := r.Address
	if host == "" {
		host = "127.0.0.1"
	}
	port := r.Port
	if port == 0 {
		port = 6379
	}
	return fmt.Sprintf("%s:%d", host, port)
}

func (r Redis) Dial() time.Duration {
	if r.DialTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(r.DialTimeout) * time.Second
}
