package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	var (
		draftKey   string
		fields     []string
		depth      int
		richFormat string
	)

	cmd := &cobra.Command{
		Use:   "get ENDPOINT [CONTENT_ID]",
		Short: "Get an object or a single content item",
		Long: `Fetch an object-type endpoint, or one item of a list-type endpoint when
CONTENT_ID is given. The response is printed as returned by the API.`,
		Example: `  microcms get main
  microcms get posts abc123 --fields id,title --depth 2`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseRichEditorFormat(richFormat)
			if err != nil {
				return err
			}

			params := microcms.NewGetParams().
				WithDraftKey(draftKey).
				WithFields(fields...).
				WithRichEditorFormat(format)

			if len(args) > 1 {
				params.WithContentID(args[1])
			}

			if cmd.Flags().Changed("depth") {
				params.WithDepth(depth)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			value, err := client.Get(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", args[0], err)
			}

			return renderValue(cmd.OutOrStdout(), value, outputFormat())
		},
	}

	cmd.Flags().StringVar(&draftKey, "draft-key", "", "draft key for unpublished content")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (comma separated)")
	cmd.Flags().IntVar(&depth, "depth", 1, "depth of expanded references")
	cmd.Flags().StringVar(&richFormat, "rich-editor-format", "", "rich editor format (html, object)")

	return cmd
}
