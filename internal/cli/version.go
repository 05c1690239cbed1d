package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jokarl/owbrules/internal/rulesdata"
)

var shortVersionFlag bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the owbrules version, commit and build date, the Go runtime it was
built with, and the size of the built-in rule tables.

With --short, print only the version.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&shortVersionFlag, "short", false, "Print only the version")
}

func runVersion(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if shortVersionFlag {
		fmt.Fprintln(w, versionStr)
		return nil
	}

	fmt.Fprintf(w, "owbrules version %s\n", versionStr)
	if commitStr != "none" && commitStr != "" {
		fmt.Fprintf(w, "  commit: %s\n", commitStr)
	}
	if dateStr != "unknown" && dateStr != "" {
		fmt.Fprintf(w, "  built:  %s\n", dateStr)
	}
	fmt.Fprintf(w, "  go:     %s\n", runtime.Version())

	index, err := rulesdata.Index(nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  tables: %d indexed, %d overlay, %d synonyms\n",
		len(index), len(rulesdata.Overlay()), len(rulesdata.Synonyms()))
	return nil
}
