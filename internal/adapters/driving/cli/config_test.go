package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	commands := configCmd.Commands()
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "get")
	assert.Contains(t, names, "set")
	assert.Contains(t, names, "path")
}

func runConfigCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"config"}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConfigSetAndGet(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := runConfigCommand(t, "set", "github.token", "ghp_test123")
	assert.NoError(t, err)
	assert.Contains(t, out, "github.token set")

	out, err = runConfigCommand(t, "get", "github.token")
	assert.NoError(t, err)
	assert.Contains(t, out, "ghp_test123")
}

func TestConfigSet_NumericValueStoredAsInt(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := runConfigCommand(t, "set", "fetch.timeout_seconds", "30")
	assert.NoError(t, err)

	assert.Equal(t, 30, configStore.GetInt("fetch.timeout_seconds"))
}

func TestConfigGet_UnsetKey(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := runConfigCommand(t, "get", "no.such.key")
	assert.NoError(t, err)
	assert.Contains(t, out, "no.such.key is not set")
}

func TestConfigPath(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := runConfigCommand(t, "path")
	assert.NoError(t, err)
	assert.Contains(t, out, "config.toml")
}
