package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jauhararifin/puzzle"
	"github.com/jauhararifin/puzzle/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, loseColor.Sprint("Error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "playpuzzle",
		Short:         "Stack falling blocks against an opponent",
		Long:          "Clear " + fmt.Sprint(puzzle.DefaultWinLines) + " lines before the stack reaches the top. Arrows move and rotate, space drops.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return play(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String(config.ConfigPathKey, "", "directory holding puzzle.yaml")
	flags.String("ui", config.UITermloop, "terminal front-end: termloop or tcell")
	flags.String("opponent", "", "opponent id from the roster")
	flags.String("opponents-file", "", "YAML roster of opponents")
	flags.Int64("seed", 0, "piece generator seed, 0 picks one from the clock")
	flags.Int("win-lines", puzzle.DefaultWinLines, "lines needed to win")
	flags.String("log-file", ".puzzle.log", "file that receives session logs")
	bindFlags(v, flags)

	return cmd
}

// bindFlags binds every flag to the config key of the same name with dashes
// turned into underscores. The config path keeps its dashed name.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if key != config.ConfigPathKey {
			key = underscore(key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			panic(fmt.Errorf("binding flag %s: %w", f.Name, err))
		}
	})
}

func underscore(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '-' {
			b[i] = '_'
		}
	}
	return string(b)
}
