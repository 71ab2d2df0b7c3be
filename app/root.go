// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "passforge",
	Short: "passforge generates passwords with exact entropy accounting",
	Long: `passforge generates passwords that satisfy character-class composition
rules using a cryptographically secure random source, and reports the exact
information-theoretic strength (in bits) of each password as sampled.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
