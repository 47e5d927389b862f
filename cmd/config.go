package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"fenum.dev/pkg/fenum/internal/controller"
	"fenum.dev/pkg/fenum/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "fenum"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	excludeFlagName   = "exclude"
	recursiveFlagName = "recursive"
	formatFlagName    = "format"
	hashFlagName      = "hash"
	namesFlagName     = "names"
	parallelFlagName  = "parallel"
	quietFlagName     = "quiet"
	literalsFlagName  = "literals"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"

	excludeConfigKey   = "paths.exclude"
	recursiveConfigKey = "list.recursive"
	formatConfigKey    = "list.format"
	hashConfigKey      = "list.hash"
	namesConfigKey     = "list.names"
	parallelConfigKey  = "list.parallel"
	walkRootConfigKey  = "walk.root"
	quietConfigKey     = "walk.quiet"
	literalsConfigKey  = "numbers.literals"

	defaultRecursive = false
	defaultFormat    = string(controller.FormatText)
	defaultHash      = false
	defaultNames     = false
	defaultParallel  = domain.DefaultParallel
	defaultWalkRoot  = "/bin"
	defaultQuiet     = false
	defaultLiterals  = false

	envPrefix = "FENUM"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".fenum.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(recursiveConfigKey, defaultRecursive)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(hashConfigKey, defaultHash)
	viper.SetDefault(namesConfigKey, defaultNames)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(walkRootConfigKey, defaultWalkRoot)
	viper.SetDefault(quietConfigKey, defaultQuiet)
	viper.SetDefault(literalsConfigKey, defaultLiterals)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) *lumberjack.Logger {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	return logWriter
}
