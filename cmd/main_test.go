package main

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	old := os.Stdout
	rPipe, wPipe, _ := os.Pipe()
	os.Stdout = wPipe

	printBuildInfo()

	wPipe.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(rPipe)
	assert.Contains(t, buf.String(), "Starting service version")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "development", appEnv)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "taskboard", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)
	assert.Equal(t, "my_super_secret_key", jwtSecret)
	assert.Equal(t, 604800, jwtExp)
}

func TestParseConfig_Overrides(t *testing.T) {
	resetEnv()
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("JWT_EXP_SECOND", "3600")

	_, _, appEnv, _,
		_, pgPort, _, _, _,
		_, _,
		_, jwtExp,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "production", appEnv)
	assert.Equal(t, 5433, pgPort)
	assert.Equal(t, 3600, jwtExp)
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _, _,
		_, _, _, _, _,
		_, _,
		_, _,
		err := parseConfig("nonexistent.env")

	assert.Error(t, err)
}
