// Package cli provides the command-line interface for triad.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/triad/internal/version"
)

// NewRootCmd builds the triad command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "triad",
		Short: "Check an image's palette against the 60/30/10 rule",
		Long: `triad extracts the three dominant colours of an image and checks whether
they follow the 60/30/10 design rule: a primary colour covering about 60% of
the picture, a secondary colour covering about 30% and an accent covering
about 10%, each within five percentage points.

Similar colours are grouped before ranking, so gradients and noise count
towards the colour they are close to.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	registerLogFlags(rootCmd.PersistentFlags())
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newAnalyseCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			data, err := version.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
