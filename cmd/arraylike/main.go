// Command arraylike prints the array-like structures walkthrough: fixed-size
// arrays, lists, tuples, maps, grids and strings, followed by the min/max
// reducers.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"arraylike/internal/config"
	"arraylike/internal/demo"
	"arraylike/internal/log"
)

func newRootCmd() *cobra.Command {
	var (
		v       = viper.New()
		cfgFile string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "arraylike",
		Short: "Walk through array-like structures and min/max reducers",
		Long: `arraylike prints, section by section, how array-like structures
behave with respect to indexing, mutation, iteration and size.

Run without flags to print every section. Use --section to pick some.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			}

			logger, err := log.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return demo.NewRunner(cfg, cmd.OutOrStdout(), logger).Run(cfg.Sections...)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.Int("size", 5, "length of the one-dimensional arrays")
	flags.Int("rows", 3, "rows of the grid")
	flags.Int("cols", 4, "columns of the grid")
	flags.Uint64("seed", 0, "seed for the random input, 0 seeds from the clock")
	flags.StringSlice("section", nil, "section to run, may be repeated")

	if err := bindFlags(v, flags, flagKeys); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "sections",
		Short: "List the walkthrough sections in order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range demo.Sections() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})

	return rootCmd
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	config.KeySize:     "size",
	config.KeyRows:     "rows",
	config.KeyCols:     "cols",
	config.KeySeed:     "seed",
	config.KeySections: "section",
}

// bindFlags binds each flag named in keys to its config key on v.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			return errors.Newf("flag --%s for config key %s is not defined", name, key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind flag --%s", name)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
