package config

import "time"

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// Timezone is the IANA zone operating hours are written in.
	Timezone string `json:"timezone" yaml:"timezone"`
}

// Location resolves Timezone, falling back to the host zone when empty.
func (a *App) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(a.Timezone)
}
