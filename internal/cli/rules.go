package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/delonchen2011/SwiftLint/internal/ui/pretty"
	"github.com/delonchen2011/SwiftLint/pkg/lint"
	_ "github.com/delonchen2011/SwiftLint/pkg/lint/rules" // Register built-in rules
)

type rulesFlags struct {
	format string
}

const (
	formatJSON = "json"

	rulesTermFallbackWidth = 100
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Kind        string   `json:"kind"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, names, descriptions,
and default severity.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			if flags.format == formatJSON {
				return outputRulesJSON(rules)
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
			width := pretty.TerminalWidth(out, rulesTermFallbackWidth)

			for _, rule := range rules {
				line := fmt.Sprintf("%s  %-24s %s  %s",
					styles.Bold.Render(rule.ID()),
					rule.Name(),
					styles.Dim.Render(rule.DefaultSeverity().String()),
					rule.Description(),
				)
				fmt.Fprintln(out, pretty.Truncate(line, width))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Kind:        rule.Kind().String(),
			Severity:    rule.DefaultSeverity().String(),
			Enabled:     rule.DefaultEnabled(),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}

	return nil
}
