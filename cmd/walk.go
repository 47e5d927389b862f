package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fenum.dev/pkg/fenum/internal/domain"
	m "fenum.dev/pkg/fenum/internal/model"
)

var walkQuietFlag bool

const walkLongDescription = `Walk a directory tree (default: /bin) and collect the base name of every
file in it. Each visited file is reported as it is found, then all names are
printed with their index.`

// walkCmd represents the walk command.
var walkCmd = newWalkCmd()

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk [path]",
		Short: "Collect file names from a directory tree",
		Long:  walkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflowFor(cmd).Walk(cmd.Context(), domain.WalkArgs{
				Root:    walkRoot(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Quiet:   viper.GetBool(quietConfigKey),
			})
		},
	}

	cmd.Flags().BoolVarP(&walkQuietFlag, quietFlagName, "q", viper.GetBool(quietConfigKey), "do not report files while walking")
	bindFlagToConfig(cmd.Flags().Lookup(quietFlagName), quietConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(walkCmd)
}

func walkRoot(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(walkRootConfigKey))
}
