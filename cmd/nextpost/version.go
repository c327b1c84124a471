package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DavidRaab/website-sub000/version"
)

func newVersionCmd() *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show nextpost version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			switch {
			case short:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Short())
				return err
			case asJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			default:
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "nextpost %s\n", info)
				return err
			}
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version and commit")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
