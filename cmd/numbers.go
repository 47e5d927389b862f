package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fenum.dev/pkg/fenum/internal/domain"
)

var numbersLiteralsFlag bool

// numbersCmd represents the numbers command.
var numbersCmd = newNumbersCmd()

func newNumbersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numbers",
		Short: "Print the number formatting examples",
		Long:  "Prints a fixed banner and the series (i+i)^i for i in 0..9 as decimal floats.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Numbers(cmd.Context(), domain.NumbersArgs{
				Literals: viper.GetBool(literalsConfigKey),
			})
		},
	}

	cmd.Flags().BoolVar(&numbersLiteralsFlag, literalsFlagName, viper.GetBool(literalsConfigKey), "also print the numeric literal fixture")
	bindFlagToConfig(cmd.Flags().Lookup(literalsFlagName), literalsConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(numbersCmd)
}
