package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// starterConfig is the config.toml written by the init command. It spells
// out every knob with its default value so users can edit instead of
// consulting docs.
const starterConfig = `# goban configuration

grid_size = 19          # 9, 13, or 19
line_thickness = 1.0
star_diameter = 2.2
grid_color = "black"
background_color = "white"

[sgf]
enabled = false
path = ""               # path to the SGF file to overlay

[sgf.render]
mode = "position"       # "position" = final position, "moves" = first N moves
moves_limit = 0         # 0 = all moves (only used with mode = "moves")
numbering = "none"      # "none", "moves", or "all"
number_color = "#ffffff"
outline_color = "#000000"
stone_radius_scale = 0.42
move_number_font_scale = 0.44

[export]
variants = ["both"]     # any of "board", "stones", "both"
board_background = "use_config_background"
stones_background = "transparent"
both_background = "use_config_background"
name_suffix = ""        # optional suffix for output file names
`

// initCommand creates the init command that writes a starter config.toml.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}
			if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
				return err
			}
			c.Logger.Infof("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
