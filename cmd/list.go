package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fenum.dev/pkg/fenum/internal/controller"
	"fenum.dev/pkg/fenum/internal/domain"
)

var listRecursiveFlag bool
var listFormatFlag string
var listHashFlag bool
var listNamesFlag bool
var listParallelFlag int

const listLongDescription = `List the regular files directly inside each path (default: current
directory). With --recursive every file of the directory tree is listed.

Several paths are listed concurrently; output keeps the order they were given.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [paths...]",
		Aliases: []string{"ls"},
		Short:   "List files in directories",
		Long:    listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			return workflowFor(cmd).List(cmd.Context(), domain.ListArgs{
				Paths:     parsePaths(args),
				Recursive: viper.GetBool(recursiveConfigKey),
				Exclude:   viper.GetStringSlice(excludeConfigKey),
				Hash:      viper.GetBool(hashConfigKey),
				Parallel:  viper.GetInt(parallelConfigKey),
				Format:    format,
				Names:     viper.GetBool(namesConfigKey),
			})
		},
	}

	configureListFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func configureListFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&listRecursiveFlag, recursiveFlagName, "r", viper.GetBool(recursiveConfigKey), "descend into subdirectories")
	bindFlagToConfig(cmd.Flags().Lookup(recursiveFlagName), recursiveConfigKey)

	cmd.Flags().StringVarP(&listFormatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: text, table, yaml or json")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().BoolVar(&listHashFlag, hashFlagName, viper.GetBool(hashConfigKey), "compute the SHA-256 of every file")
	bindFlagToConfig(cmd.Flags().Lookup(hashFlagName), hashConfigKey)

	cmd.Flags().BoolVarP(&listNamesFlag, namesFlagName, "n", viper.GetBool(namesConfigKey), "print base names instead of full paths (text format)")
	bindFlagToConfig(cmd.Flags().Lookup(namesFlagName), namesConfigKey)

	cmd.Flags().IntVarP(&listParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of paths listed concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
