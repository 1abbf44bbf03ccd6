package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/render"
	"github.com/vango-dev/styled/pkg/vdom"
)

func renderCmd(a *app) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render <component> [props-file|-]",
		Short: "Render a component to HTML",
		Long: `Render a primitive or a component from styled.yaml to HTML.

Props are read from the file, or from stdin for "-". Without a file the
component renders with no props.

Examples:
  styled render View
  echo 'text: Hi' | styled render Heading -
  styled render Card card.json --pretty`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := a.registry()
			if err != nil {
				return err
			}

			props := vdom.Props{}
			if len(args) == 2 {
				if props, err = a.readProps(args[1]); err != nil {
					return err
				}
			}

			res, err := reg.Render(args[0], props)
			if err != nil {
				return err
			}
			if len(res.Report.Collisions) > 0 {
				a.debug("style collision", "component", args[0], "properties", res.Report.Collisions)
			}

			html, err := render.NewRenderer(render.RendererConfig{Pretty: pretty}).RenderToString(res.Node)
			if err != nil {
				return errors.New("E140").Wrap(err)
			}
			fmt.Fprintln(a.out, html)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML")
	return cmd
}
