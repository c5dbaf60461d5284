package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/01wneo/RollingText/pkg/charorder"
	"github.com/01wneo/RollingText/pkg/config"
	"github.com/01wneo/RollingText/pkg/errors"
)

// emptyCell stands in for the Empty character in tables.
const emptyCell = "·"

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableStaticStyle = tableCellStyle.Foreground(colorDim)
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "resolve FROM TO",
		Short: "Show the character path of every column",
		Long: `Resolve the transition from FROM to TO and print, for every column, the
ordered characters it rolls through and the direction it scrolls in.`,
		Example: `  rollingtext resolve 19 23
  rollingtext resolve --strategy carry-bit 0995 1005`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			from, to := args[0], args[1]
			transitions, err := resolveTexts(cfg, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, transitionTable(transitions))
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}

// resolveTexts validates both texts and resolves one transition per column.
func resolveTexts(cfg config.Config, from, to string) ([]charorder.Transition, error) {
	for _, text := range []string{from, to} {
		if err := errors.ValidateText(text); err != nil {
			return nil, err
		}
	}
	orders, err := cfg.Manager()
	if err != nil {
		return nil, err
	}
	return orders.ResolveAll([]rune(from), []rune(to))
}

// transitionTable renders transitions as a table, one row per column.
func transitionTable(transitions []charorder.Transition) string {
	static := make(map[int]bool, len(transitions))
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "From", "To", "Dir", "Steps", "Path").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case static[row]:
				return tableStaticStyle
			default:
				return tableCellStyle
			}
		})

	for i, tr := range transitions {
		static[i] = !tr.Animated()
		src := tr.Source()
		if static[i] {
			src = tr.Target()
		}
		t.Row(
			strconv.Itoa(i),
			cell(src),
			cell(tr.Target()),
			tr.Direction.String(),
			strconv.Itoa(max(0, len(tr.Chars)-1)),
			charPath(tr.Chars),
		)
	}
	return t.Render()
}

func cell(r rune) string {
	if r == charorder.Empty {
		return emptyCell
	}
	return string(r)
}

// charPath joins chars into a compact sequence such as "1 2 3".
func charPath(chars []rune) string {
	parts := make([]string, len(chars))
	for i, r := range chars {
		parts[i] = cell(r)
	}
	return strings.Join(parts, " ")
}
