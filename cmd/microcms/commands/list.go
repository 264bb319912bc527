package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/microcms-go/internal/constants"
	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var (
		draftKey   string
		limit      int
		offset     int
		orders     []string
		query      string
		fields     []string
		ids        []string
		filters    string
		where      []string
		depth      int
		richFormat string
	)

	cmd := &cobra.Command{
		Use:   "list ENDPOINT",
		Short: "List content of a list endpoint",
		Long: `Fetch a list-type endpoint. Numeric options are only sent when given, so
the API defaults apply otherwise.

Conditions can be passed either as a raw --filters expression or as
repeated --where flags, which are joined with [and].`,
		Example: `  microcms list posts --limit 10 --orders -publishedAt
  microcms list posts --where category[equals]news --where title[contains]go
  microcms list posts --filters 'category[equals]news[or]category[equals]blog'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseRichEditorFormat(richFormat)
			if err != nil {
				return err
			}

			if len(where) > 0 {
				filters, err = buildWhereFilters(where)
				if err != nil {
					return err
				}
			}

			params := microcms.NewListParams().
				WithDraftKey(draftKey).
				WithOrders(orders...).
				WithQ(query).
				WithFields(fields...).
				WithIDs(ids...).
				WithFilters(filters).
				WithRichEditorFormat(format)

			if cmd.Flags().Changed("limit") {
				params.WithLimit(limit)
			}

			if cmd.Flags().Changed("offset") {
				params.WithOffset(offset)
			}

			if cmd.Flags().Changed("depth") {
				params.WithDepth(depth)
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			value, err := client.List(cmd.Context(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", args[0], err)
			}

			return renderValue(cmd.OutOrStdout(), value, outputFormat())
		},
	}

	cmd.Flags().StringVar(&draftKey, "draft-key", "", "draft key for unpublished content")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of items to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of items to skip")
	cmd.Flags().StringSliceVar(&orders, "orders", nil, "sort fields, prefix with - for descending")
	cmd.Flags().StringVar(&query, "q", "", "full-text search query")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (comma separated)")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "content IDs to return (comma separated)")
	cmd.Flags().StringVar(&filters, "filters", "", "raw filters expression")
	cmd.Flags().StringArrayVar(&where, "where", nil, "condition as field[operator]value, repeatable")
	cmd.Flags().IntVar(&depth, "depth", 1, "depth of expanded references")
	cmd.Flags().StringVar(&richFormat, "rich-editor-format", "", "rich editor format (html, object)")

	cmd.MarkFlagsMutuallyExclusive("filters", "where")

	return cmd
}

// buildWhereFilters joins field[operator]value conditions with [and].
func buildWhereFilters(conditions []string) (string, error) {
	builder := microcms.NewFilterBuilder()

	for _, condition := range conditions {
		field, op, value, err := parseCondition(condition)
		if err != nil {
			return "", err
		}

		builder.Where(field, op, value)
	}

	return builder.Build(), nil
}

func parseCondition(condition string) (string, microcms.FilterOperator, string, error) {
	open := strings.Index(condition, "[")
	end := strings.Index(condition, "]")

	if open <= 0 || end < open+2 {
		return "", "", "", fmt.Errorf("%w: %q", constants.ErrInvalidWhere, condition)
	}

	field := condition[:open]
	op := microcms.FilterOperator(condition[open+1 : end])
	value := condition[end+1:]

	if value == "" && op != microcms.OpExists && op != microcms.OpNotExists {
		return "", "", "", fmt.Errorf("%w: %q has no value", constants.ErrInvalidWhere, condition)
	}

	return field, op, value, nil
}
