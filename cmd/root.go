package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"depmanager/internal/dependency"
	"depmanager/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeInvalidDependency indicates the specification contains a direct
	// circular dependency.
	ExitCodeInvalidDependency = 2
	// ExitCodeUnresolved indicates that --strict was set and some elements
	// could not be ordered.
	ExitCodeUnresolved = 3
)

var logLevel string

// rootCmd represents the base command for the depmanager application.
var rootCmd = &cobra.Command{
	Use:   "depmanager",
	Short: "Resolve dependency specifications into a processing order",
	Long: `depmanager reads a set of "X depends on Y" relations and prints an order
in which every element comes after everything it depends on.

Direct mutual dependencies (A depends on B and B depends on A) are rejected.
Elements caught in longer cycles cannot be ordered and are reported as
unresolved.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logging.InitForCLI(level, cmd.ErrOrStderr())
		return nil
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "depmanager version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	if errors.Is(err, dependency.ErrInvalidDependency) {
		return ExitCodeInvalidDependency
	}
	var unresolved *UnresolvedError
	if errors.As(err, &unresolved) {
		return ExitCodeUnresolved
	}
	return ExitCodeError
}

// UnresolvedError is returned in strict mode when some elements sit on a
// dependency cycle and cannot be ordered.
type UnresolvedError struct {
	Elements []string
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%d element(s) could not be ordered because of a dependency cycle: %v", len(e.Elements), e.Elements)
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newResolveCmd())

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
