package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/microcms-go/internal/constants"
	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
)

// renderValue writes value in the given output format.
func renderValue(out io.Writer, value microcms.Value, format string) error {
	switch format {
	case constants.FormatJSON:
		return renderJSON(out, value)
	case constants.FormatYAML:
		return renderYAML(out, value)
	case constants.FormatTable:
		return renderTable(out, value)
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, format)
	}
}

func renderJSON(out io.Writer, value microcms.Value) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func renderYAML(out io.Writer, value microcms.Value) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	err := encoder.Encode(yamlNode(value))
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// yamlNode converts value to a YAML node, keeping the key order of objects.
func yamlNode(value microcms.Value) *yaml.Node {
	switch value.Kind() {
	case microcms.KindBool:
		b, _ := value.Bool()

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case microcms.KindNumber:
		number, _ := value.Number()

		tag := "!!int"
		if strings.ContainsAny(number.String(), ".eE") {
			tag = "!!float"
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: number.String()}
	case microcms.KindString:
		text, _ := value.Text()

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: text}
	case microcms.KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range value.Items() {
			node.Content = append(node.Content, yamlNode(item))
		}

		return node
	case microcms.KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, field := range value.Fields() {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key},
				yamlNode(field.Value),
			)
		}

		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// renderTable prints a list response as one row per content item, anything
// else as a Property/Value table.
func renderTable(out io.Writer, value microcms.Value) error {
	if contents, ok := value.Get("contents"); ok && contents.Kind() == microcms.KindArray {
		return renderContentsTable(out, value, contents)
	}

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	switch value.Kind() {
	case microcms.KindObject:
		for _, field := range value.Fields() {
			err := table.Append([]string{field.Key, cellText(field.Value)})
			if err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}
	default:
		err := table.Append([]string{"value", cellText(value)})
		if err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderContentsTable(out io.Writer, envelope, contents microcms.Value) error {
	columns := contentColumns(contents)

	table := tablewriter.NewWriter(out)

	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column
	}

	table.Header(header...)

	for _, item := range contents.Items() {
		row := make([]string, len(columns))

		for i, column := range columns {
			if cell, ok := item.Get(column); ok {
				row[i] = cellText(cell)
			}
		}

		err := table.Append(row)
		if err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if len(columns) > 0 {
		footer := make([]any, len(columns))
		for i := range footer {
			footer[i] = ""
		}

		footer[0] = fmt.Sprintf("Total: %s", totalCount(envelope, contents))
		table.Footer(footer...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// contentColumns returns the keys of all items in first-seen order.
func contentColumns(contents microcms.Value) []string {
	var columns []string

	seen := make(map[string]bool)

	for _, item := range contents.Items() {
		for _, key := range item.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}

	return columns
}

func totalCount(envelope, contents microcms.Value) string {
	if total, ok := envelope.Get("totalCount"); ok {
		if number, ok := total.Number(); ok {
			return number.String()
		}
	}

	return strconv.Itoa(contents.Len())
}

// cellText renders strings without quotes and nested values as compact JSON.
func cellText(value microcms.Value) string {
	switch value.Kind() {
	case microcms.KindNull:
		return ""
	case microcms.KindString:
		text, _ := value.Text()

		return text
	default:
		return value.String()
	}
}
