package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"fqlint/internal/version"
)

func newVersionCmd(e *env) *cobra.Command {
	var showHash bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the fqlint version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line := "fqlint version " + version.Colored()
			if showHash && version.GitCommit != "" {
				line += " (" + version.GitCommit + ")"
			}
			_, err := fmt.Fprintln(e.stdout, line)
			return err
		},
	}
	cmd.Flags().BoolVar(&showHash, "hash", false, "include git commit hash")
	return cmd
}
