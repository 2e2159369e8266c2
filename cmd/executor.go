package cmd

import (
	"EnvFileGenerator/internal/config"
	"EnvFileGenerator/internal/env"
	"EnvFileGenerator/internal/logger"
	"EnvFileGenerator/internal/paths"
	"EnvFileGenerator/internal/version"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// CmdState holds the state of flags for a single command group.
type CmdState struct {
	Force  bool
	DryRun bool
}

// Execute runs the logic for a sequence of command groups.
// It handles flag application, command switching, and state resetting.
// Execution stops at the first failing command; the return value is the
// process exit code.
func Execute(ctx context.Context, conf config.AppConfig, groups []CommandGroup) int {
	if len(groups) == 0 {
		// No arguments at all builds with the configured paths
		groups = []CommandGroup{{}}
	}
	baseLevel := logger.LevelVar.Level()
	defer logger.SetLevel(baseLevel)

	for _, group := range groups {
		state := CmdState{}

		for _, flag := range group.Flags {
			switch flag {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
			case "-x", "--debug":
				logger.SetLevel(logger.LevelDebug)
			case "-f", "--force":
				state.Force = true
			case "-n", "--dry-run":
				state.DryRun = true
			}
		}

		cmdStr := version.CommandName
		for _, part := range group.FullSlice() {
			cmdStr += " " + part
		}
		logger.Info(ctx, "%s command: '{{_UserCommand_}}%s{{|-|}}'", version.ApplicationName, cmdStr)
		logger.Debug(ctx, "Execution Args -> State: %+v, Command: %v", state, group.CommandSlice())

		var err error
		switch group.Command {
		case "", "-b", "--build":
			err = handleBuild(ctx, &group, &state, conf)
		case "-d", "--diff":
			err = handleDiff(ctx, &group, conf)
		case "-E", "--example":
			err = handleExample(ctx, &group, &state, conf)
		case "-c", "--check":
			err = handleCheck(ctx, &group, conf)
		case "--config-show", "--show-config":
			handleConfigShow(ctx, conf)
		case "-V", "--version":
			handleVersion(ctx)
		case "-h", "--help":
			handleHelp(ctx, &group)
		}

		// Reset flags before the next group
		logger.SetLevel(baseLevel)

		if err != nil {
			logger.Error(ctx, err)
			return 1
		}
	}

	return 0
}

// buildOptions resolves the paths for a build or diff. Positional arguments
// override the configuration; giving an env file without an output file
// writes back to that env file.
func buildOptions(group *CommandGroup, state *CmdState, conf config.AppConfig) env.BuildOptions {
	opts := env.BuildOptions{
		YAMLFile:   conf.Paths.YAMLFile,
		EnvFile:    conf.Paths.EnvFile,
		OutputFile: conf.Paths.OutputFile,
		DryRun:     state.DryRun,
	}
	if len(group.Args) > 0 {
		opts.YAMLFile = group.Args[0]
	}
	if len(group.Args) > 1 {
		opts.EnvFile = group.Args[1]
		opts.OutputFile = ""
	}
	if len(group.Args) > 2 {
		opts.OutputFile = group.Args[2]
	}
	return opts
}

func handleBuild(ctx context.Context, group *CommandGroup, state *CmdState, conf config.AppConfig) error {
	content, err := env.Build(ctx, buildOptions(group, state, conf))
	if err != nil {
		return err
	}
	if state.DryRun {
		fmt.Fprint(logger.Output, content)
	}
	return nil
}

func handleDiff(ctx context.Context, group *CommandGroup, conf config.AppConfig) error {
	plan, err := env.Prepare(ctx, buildOptions(group, &CmdState{DryRun: true}, conf))
	if err != nil {
		return err
	}

	current := ""
	data, err := os.ReadFile(plan.OutputFile)
	switch {
	case err == nil:
		current = string(data)
	case errors.Is(err, fs.ErrNotExist):
		logger.Info(ctx, "'{{_File_}}%s{{|-|}}' does not exist yet.", plan.OutputFile)
	default:
		return &env.ReadError{Path: plan.OutputFile, Err: err}
	}

	diff := env.Diff(current, plan.Content)
	if diff == "" {
		logger.Notice(ctx, "'{{_File_}}%s{{|-|}}' is up to date.", plan.OutputFile)
		return nil
	}

	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+ "):
			sb.WriteString("{{_DiffAdd_}}" + line + "{{|-|}}\n")
		case strings.HasPrefix(line, "- "):
			sb.WriteString("{{_DiffRemove_}}" + line + "{{|-|}}\n")
		default:
			sb.WriteString(line + "\n")
		}
	}
	logger.Display(ctx, strings.TrimSuffix(sb.String(), "\n"))
	return nil
}

func handleExample(ctx context.Context, group *CommandGroup, state *CmdState, conf config.AppConfig) error {
	path := conf.Paths.YAMLFile
	if len(group.Args) > 0 {
		path = group.Args[0]
	}
	if err := env.WriteExample(ctx, path, state.Force); err != nil {
		if errors.Is(err, env.ErrExampleExists) {
			return fmt.Errorf("%w (use '{{_UserCommand_}}-f{{|-|}}' to replace it)", err)
		}
		return err
	}
	logger.Notice(ctx, "Wrote example placeholders to '{{_File_}}%s{{|-|}}'.", paths.Normalise(path))
	return nil
}

func handleCheck(ctx context.Context, group *CommandGroup, conf config.AppConfig) error {
	path := conf.OutputPath()
	if len(group.Args) > 0 {
		path = group.Args[0]
	}
	report, err := env.CheckFile(path)
	if err != nil {
		return err
	}

	for _, name := range report.Unresolved {
		key, _ := env.EnvKeyFor(name)
		logger.Error(ctx, "Placeholder '{{_Placeholder_}}$%s{{|-|}}' for '{{_Var_}}%s{{|-|}}' has no value.", name, key)
	}
	for _, key := range report.Sentinels {
		logger.Error(ctx, "Variable '{{_Var_}}%s{{|-|}}' is still set to '{{_Var_}}RANDOM{{|-|}}'.", key)
	}
	if report.LoaderError != "" {
		logger.Error(ctx, "Standard dotenv loaders cannot read this file: %s", report.LoaderError)
	}
	for _, key := range report.Divergent {
		logger.Warn(ctx, "Variable '{{_Var_}}%s{{|-|}}' is read differently by standard dotenv loaders.", key)
	}

	if !report.OK() {
		return fmt.Errorf("'%s' is not ready to deploy", paths.Normalise(path))
	}
	logger.Notice(ctx, "'{{_File_}}%s{{|-|}}' is ready to deploy.", paths.Normalise(path))
	return nil
}

func handleConfigShow(ctx context.Context, conf config.AppConfig) {
	source := conf.Source
	if source == "" {
		source = "built-in defaults"
	}
	logFile := "{{_No_}}no{{|-|}}"
	if conf.Log.File {
		logFile = "{{_File_}}" + paths.GetLogFilePath() + "{{|-|}}"
	}
	outputFile := conf.Paths.OutputFile
	if outputFile == "" {
		outputFile = "(env file)"
	}

	rows := [][2]string{
		{"YAML File", "{{_File_}}" + conf.Paths.YAMLFile + "{{|-|}}"},
		{"Env File", "{{_File_}}" + conf.Paths.EnvFile + "{{|-|}}"},
		{"Output File", "{{_File_}}" + outputFile + "{{|-|}}"},
		{"Log Level", "{{_Var_}}" + conf.Log.Level + "{{|-|}}"},
		{"Log File", logFile},
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Configuration options stored in '{{_File_}}%s{{|-|}}':\n", source)
	for _, row := range rows {
		fmt.Fprintf(&sb, "   {{_UsageCommand_}}%-12s{{|-|}} %s\n", row[0], row[1])
	}
	logger.Display(ctx, strings.TrimSuffix(sb.String(), "\n"))
}

func handleVersion(ctx context.Context) {
	logger.Display(ctx, fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	logger.Display(ctx, fmt.Sprintf("Commit {{_Version_}}%s{{|-|}} built {{_Version_}}%s{{|-|}}", version.Commit, version.BuildDate))
}

func handleHelp(ctx context.Context, group *CommandGroup) {
	target := ""
	if len(group.Args) > 0 {
		target = group.Args[0]
	}
	PrintHelp(ctx, target)
}
