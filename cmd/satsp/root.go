package main

import (
	"context"
	goflag "flag"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every flag when read from the environment,
// e.g. SATSP_COOLING_RATE.
const envPrefix = "SATSP"

// subCommand pairs a cobra command with the viper instance its flags are bound to.
type subCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "satsp",
	Short: "satsp: simulated annealing for the travelling salesman problem",
	Long: `
satsp reads a set of sites (GeoJSON features or a YAML point list), builds the
pairwise Euclidean distance matrix and searches for a short closed tour with
2-opt simulated annealing under a geometric cooling schedule.
`,
	SilenceUsage: true,
}

var (
	rootConf    = viper.New()
	subcommands = []*subCommand{&Solve, &Version}
)

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	if err := goflag.CommandLine.Parse(nil); err != nil {
		return err
	}

	return RootCmd.ExecuteContext(context.Background())
}

func init() {
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file (YAML). Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	_ = rootConf.BindPFlags(RootCmd.PersistentFlags())

	// glog registers its flags (-v, -logtostderr, ...) on the standard flag set.
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		_ = sc.Conf.BindPFlags(sc.Cmd.Flags())
		_ = sc.Conf.BindPFlags(RootCmd.PersistentFlags())
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
		sc.Conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		sc.Conf.AutomaticEnv()
	}
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return nil
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "reading config %s", cfg)
			}
		}

		return nil
	}
}
