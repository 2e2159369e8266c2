package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"EnvFileGenerator/cmd"
	"EnvFileGenerator/internal/config"
	"EnvFileGenerator/internal/console"
	"EnvFileGenerator/internal/logger"
	"EnvFileGenerator/internal/paths"
	"EnvFileGenerator/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	ctx := context.Background()

	conf, confErr := config.LoadAppConfig()

	logFile := ""
	if conf.Log.File {
		logFile = paths.GetLogFilePath()
	}
	slog.SetDefault(logger.NewLogger(logFile))
	defer logger.Cleanup()

	defer func() {
		if exitCode != 0 {
			fmt.Fprintln(os.Stderr, console.Parse(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName)))
		}
	}()

	if confErr != nil {
		logger.Warn(ctx, confErr)
	}
	level, err := logger.ParseLevel(conf.Log.Level)
	if err != nil {
		logger.Warn(ctx, "%v, using '{{_Var_}}notice{{|-|}}'.", err)
	}
	logger.SetLevel(level)

	groups, err := cmd.Parse(os.Args[1:])
	if err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}

	return cmd.Execute(ctx, conf, groups)
}
