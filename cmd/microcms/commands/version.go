package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the microCMS CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := microcms.ObjectValue(
				microcms.Field{Key: "version", Value: microcms.StringValue(version)},
				microcms.Field{Key: "commit", Value: microcms.StringValue(commit)},
				microcms.Field{Key: "built", Value: microcms.StringValue(date)},
			)

			return renderValue(cmd.OutOrStdout(), versionInfo, outputFormat())
		},
	}
}
