package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "postgres://env")
		t.Setenv("USERADD_USERNAME", "env-user")
		t.Setenv("USERADD_PASSWORD", "env-pass")

		opts, err := parseOptions([]string{"-u", "alice"})

		require.NoError(t, err)
		assert.Equal(t, "postgres://env", opts.DSN)
		assert.Equal(t, "alice", opts.Username)
		assert.Equal(t, "env-pass", opts.Password)
	})

	t.Run("dsn is required", func(t *testing.T) {
		t.Setenv("DATABASE_URI", "")

		_, err := parseOptions([]string{"-u", "alice", "-p", "secret"})

		require.Error(t, err)
	})

	t.Run("password is required", func(t *testing.T) {
		t.Setenv("USERADD_PASSWORD", "")

		_, err := parseOptions([]string{"-d", "postgres://x", "-u", "alice"})

		require.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseOptions([]string{"-x"})

		require.Error(t, err)
	})
}
