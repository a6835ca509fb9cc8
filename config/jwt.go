package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// AdminPassword is a bcrypt hash.
	AdminPassword string        `json:"admin_password" yaml:"admin_password"`
	Expire        time.Duration `json:"expire" yaml:"expire"`
}
