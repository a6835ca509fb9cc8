package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse([]byte("app:\n  env: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.App.Env)
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, "mysql", conf.Remote.Driver)
	assert.Equal(t, 10*time.Second, conf.Remote.Timeout)
	assert.Equal(t, "file", conf.Slot.Driver)
	assert.Equal(t, int64(1), conf.Local.Node)
	assert.Equal(t, 12*time.Hour, conf.Jwt.Expire)
}

func TestNewReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	body := `
app:
  debug: true
remote:
  driver: postgres
  dsn: host=localhost
  timeout: 3s
local:
  in_memory: true
slot:
  driver: redis
  prefix: "shop:"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	conf := New(path)
	assert.True(t, conf.Debug())
	assert.Equal(t, "postgres", conf.Remote.Driver)
	assert.Equal(t, 3*time.Second, conf.Remote.Timeout)
	assert.True(t, conf.Local.InMemory)
	assert.Equal(t, "redis", conf.Slot.Driver)
	assert.Equal(t, "shop:", conf.Slot.Prefix)
}

func TestNewPanicsOnMissingFile(t *testing.T) {
	assert.Panics(t, func() { New(filepath.Join(t.TempDir(), "absent.yaml")) })
}

func TestAppLocation(t *testing.T) {
	loc, err := (&App{}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = (&App{Timezone: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = (&App{Timezone: "Nowhere/Atlantis"}).Location()
	assert.Error(t, err)
}

func TestRedisAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:6379", Redis{}.Addr())
	assert.Equal(t, "cache:6380", Redis{Address: "cache", Port: 6380}.Addr())
	assert.Equal(t, 5*time.Second, Redis{}.Dial())
	assert.Equal(t, 2*time.Second, Redis{DialTimeout: 2}.Dial())
}
