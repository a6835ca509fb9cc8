package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App    *App    `json:"app" yaml:"app"`
	Server *Server `json:"server" yaml:"server"`
	Remote *Remote `json:"remote" yaml:"remote"`
	Local  *Local  `json:"local" yaml:"local"`
	Slot   *Slot   `json:"slot" yaml:"slot"`
	Redis  *Redis  `json:"redis" yaml:"redis"`
	Jwt    *Jwt    `json:"jwt" yaml:"jwt"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}
	return conf
}

// Parse decodes YAML and fills every section left out with its defaults.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.setDefaults()
	return &conf, nil
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Remote == nil {
		c.Remote = &Remote{}
	}
	if c.Remote.Driver == "" {
		c.Remote.Driver = "mysql"
	}
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 10 * time.Second
	}
	if c.Local == nil {
		c.Local = &Local{}
	}
	if c.Local.Dir == "" {
		c.Local.Dir = "data/local"
	}
	if c.Local.Node == 0 {
		c.Local.Node = 1
	}
	if c.Slot == nil {
		c.Slot = &Slot{}
	}
	if c.Slot.Driver == "" {
		c.Slot.Driver = "file"
	}
	if c.Slot.Dir == "" {
		c.Slot.Dir = "data/slots"
	}
	if c.Redis == nil {
		c.Redis = &Redis{Address: "127.0.0.1", Port: 6379}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.Expire == 0 {
		c.Jwt.Expire = 12 * time.Hour
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
