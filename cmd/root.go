// Package cmd provides the root command and CLI setup for fenum.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"fenum.dev/pkg/fenum/internal/adapter"
	"fenum.dev/pkg/fenum/internal/controller"
	"fenum.dev/pkg/fenum/internal/domain"
	m "fenum.dev/pkg/fenum/internal/model"
)

var fsAdapter adapter.FSAdapter
var enumerator domain.Enumerator

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

var logFileFlag string
var verboseFlag bool

// logWriter is the rotating log file opened for the current invocation.
var logWriter *lumberjack.Logger

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalFSAdapter()
	enumerator = domain.NewEnumerator(fsAdapter)
}

const rootLongDescription = `fenum enumerates files in directories.

It lists the regular files directly inside a directory, or every file of a
directory tree with --recursive. Output can be plain text, a table, YAML or
JSON.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "fenum",
		Short:        "List files in directories",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logWriter = configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return closeLogWriter()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files whose path relative to the root matches regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := executeRoot(ctx, rootCmd)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// executeRoot runs cmd and closes the log file afterwards. Cobra skips
// post-run hooks when a command fails.
func executeRoot(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if closeErr := closeLogWriter(); closeErr != nil && err == nil {
		err = closeErr
	}

	return err
}

func closeLogWriter() error {
	if logWriter == nil {
		return nil
	}

	err := logWriter.Close()
	logWriter = nil

	return err
}

// workflowFor builds a workflow whose UI writes to the command's output.
func workflowFor(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, isTerminal(cmd.OutOrStdout()))

	return domain.NewWorkflow(enumerator, ui)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return controller.IsTTY(f)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
