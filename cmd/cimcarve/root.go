package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	csvPath string
)

var rootCmd = &cobra.Command{
	Use:   "cimcarve <input>",
	Short: "Carve CCM_RecentlyUsedApps records from WMI repository captures",
	Long: `cimcarve scans a raw WMI repository capture (OBJECTS.DATA, INDEX.BTR, or any
binary extract of one) for CCM_RecentlyUsedApps instances and writes them to a
tab-delimited file. Records are located purely by their embedded class hash,
so deleted, missing, or corrupted repository indices do not matter.

Example:
  cimcarve OBJECTS.DATA --csv recently_used_apps.tsv`,
	Version: "0.1.0",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCarve(args[0], csvPath)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Path to tab-delimited output file (required)")
	_ = rootCmd.MarkFlagRequired("csv")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
