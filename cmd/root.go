package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/pawcare-vn/pawcare_backend/cmd/http"
	systemcmd "github.com/pawcare-vn/pawcare_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "pawcare",
	Short: "PawCare veterinary clinic platform.",
	Long: `PawCare is a booking platform for veterinary clinics in Vietnam.
It connects pet owners with partner clinics through appointments, shared schedules and chat.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
