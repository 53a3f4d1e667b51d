// Package main is the entry point for the textbook-rsa-cli application.
// It initializes the root command and registers key and message sub-commands,
// then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "textbook_rsa_service/cmd/textbook-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA operations CLI tool",
		Long: `textbook-rsa-cli is a command-line tool for classroom RSA arithmetic.
It generates keypairs from digit-sized prime ranges, encrypts messages as
byte-packed integer blocks and decrypts them again.

The keys it produces are far too small for real use. Do not protect
anything with them.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitMessageCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize message commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
