package process

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssp/css"
	"cssp/state"
)

type namedColor struct {
	Name string    `yaml:"name"`
	Hex  string    `yaml:"hex"`
	RGBA []float64 `yaml:"rgba,flow"`
}

// Colors is the action of "colors" subcommand.
func Colors(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	format := cmd.String("format")
	env.Log.Debug("Listing named colors", zap.String("format", format))
	return listColors(os.Stdout, format)
}

// listColors writes named color table sorted by name.
func listColors(out io.Writer, format string) error {
	names := css.NamedColors()

	switch format {
	case "", "text":
		for _, name := range names {
			c, _ := css.NamedColor(name)
			if _, err := fmt.Fprintf(out, "%-20s %s\n", name, c.Hex()); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		list := make([]namedColor, 0, len(names))
		for _, name := range names {
			c, _ := css.NamedColor(name)
			list = append(list, namedColor{
				Name: name,
				Hex:  c.Hex(),
				RGBA: []float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)},
			})
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("unable to write colors: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported colors format: %q", format)
	}
}
