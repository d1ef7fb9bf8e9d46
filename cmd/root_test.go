package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depmanager/internal/dependency"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", GetVersion())
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "depmanager", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["resolve"], "resolve subcommand registered")
	assert.True(t, names["version"], "version subcommand registered")

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log-level"))
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "depmanager version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "depmanager version 1.0.0\n", buf.String())
}

func TestGetExitCode(t *testing.T) {
	circular := &dependency.InvalidDependencyError{From: "A", To: "B", Reason: "circular dependency"}

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitCodeSuccess},
		{"generic", errors.New("boom"), ExitCodeError},
		{"invalid dependency", circular, ExitCodeInvalidDependency},
		{"wrapped invalid dependency", fmt.Errorf("building: %w", circular), ExitCodeInvalidDependency},
		{"unresolved", &UnresolvedError{Elements: []string{"A"}}, ExitCodeUnresolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getExitCode(tt.err))
		})
	}
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	defer func() { logLevel = "warn" }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--log-level", "chatty", "version"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "unknown log level")
}
