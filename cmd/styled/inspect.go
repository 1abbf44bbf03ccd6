package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vango-dev/styled/internal/config"
	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/styled"
	"github.com/vango-dev/styled/pkg/vdom"
)

func propsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "props",
		Short: "List the allowed style props",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range styled.AllowedProps() {
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	}
}

func aliasesCmd(a *app) *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Print an alias table",
		Long: `Print the default alias table, or the text table with --text.

Examples:
  styled aliases
  styled aliases --text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := styled.DefaultAliases()
			if text {
				table = styled.TextAliases()
			}

			keys := make([]string, 0, len(table))
			for k := range table {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(a.out, "%-8s %s\n", k, table[k])
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&text, "text", "t", false, "Print the text alias table")
	return cmd
}

// mapOutput is printed by map when --explain or --css is set.
type mapOutput struct {
	Style  styled.Style   `json:"style"`
	Report *styled.Report `json:"report,omitempty"`
	CSS    *string        `json:"css,omitempty"`
}

func mapCmd(a *app) *cobra.Command {
	var (
		component string
		preset    string
		explain   bool
		withCSS   bool
	)

	cmd := &cobra.Command{
		Use:   "map [props-file|-]",
		Short: "Map a props object to its style",
		Long: `Map a props object, written as JSON or YAML, to the style it produces.

Without --component the props go through the mapper alone, using the alias
table named by --aliases. With --component they go through that
component's options, including its default styles and custom props.

Examples:
  echo '{"p": 4, "bg": "red"}' | styled map
  styled map --aliases text --explain props.yaml
  styled map --component Heading --css props.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			props, err := a.readProps(path)
			if err != nil {
				return err
			}

			style, report, err := a.explain(component, preset, props)
			if err != nil {
				return err
			}

			var v any = style
			if explain || withCSS {
				out := mapOutput{Style: style}
				if explain {
					out.Report = &report
				}
				if withCSS {
					css := style.CSS()
					out.CSS = &css
				}
				v = out
			}
			return a.printJSON(v)
		},
	}

	cmd.Flags().StringVar(&component, "component", "", "Map through a registered component")
	cmd.Flags().StringVar(&preset, "aliases", config.PresetDefault, "Alias table without --component: default, text or none")
	cmd.Flags().BoolVar(&explain, "explain", false, "Include the mapping report")
	cmd.Flags().BoolVar(&withCSS, "css", false, "Include the inline CSS")
	return cmd
}

func (a *app) explain(component, preset string, props vdom.Props) (styled.Style, styled.Report, error) {
	if component != "" {
		reg, _, err := a.registry()
		if err != nil {
			return nil, styled.Report{}, err
		}
		e, err := reg.Lookup(component)
		if err != nil {
			return nil, styled.Report{}, err
		}
		style, report := e.Component.Explain(props)
		return style, report, nil
	}

	var table styled.AliasTable
	switch preset {
	case config.PresetDefault:
		table = styled.DefaultAliases()
	case config.PresetText:
		table = styled.TextAliases()
	case config.PresetNone:
	default:
		return nil, styled.Report{}, errors.New("E104").WithDetail("--aliases " + preset)
	}
	style, report := styled.Explain(props, table, nil)
	return style, report, nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
