package cmd

import (
	"EnvFileGenerator/internal/constants"
	"EnvFileGenerator/internal/logger"
	"EnvFileGenerator/internal/version"
	"context"
	"fmt"
	"strings"
)

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(ctx context.Context, target string) {
	logger.Display(ctx, GetUsage(target))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	if target == "" {
		printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}] [{{_UsageCommand_}}<Command>{{|-|}}] ...", appCmd))
		printStr("")
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
		printStr(fmt.Sprintf("Generates '{{_UsageFile_}}%s{{|-|}}' from the built-in template, the placeholder values in", constants.EnvFileName))
		printStr(fmt.Sprintf("'{{_UsageFile_}}%s{{|-|}}' and the values already present in the existing env file.", constants.YAMLFileName))
		printStr("Values in the existing env file always win. Placeholders set to '{{_UsageVar_}}RANDOM{{|-|}}' receive a new secret.")
		printStr("Running without a command builds with the configured file locations.")
		printStr("")
		printStr("You may include multiple commands on the command-line, and they will be executed in")
		printStr("the order given, only stopping on an error. Any flags included only apply to the")
		printStr("following command, and get reset before the next command.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	showAll := target == ""

	match := func(opts ...string) bool {
		if showAll {
			return true
		}
		for _, o := range opts {
			if o == target {
				return true
			}
		}
		return false
	}

	// Flags
	if match("-f", "--force") {
		printStr("{{_UsageCommand_}}-f --force{{|-|}}")
		printStr("	Overwrite an existing example file")
	}
	if match("-n", "--dry-run") {
		printStr("{{_UsageCommand_}}-n --dry-run{{|-|}}")
		printStr("	Print the generated file instead of writing it")
	}
	if match("-v", "--verbose") {
		printStr("{{_UsageCommand_}}-v --verbose{{|-|}}")
		printStr("	Verbose")
	}
	if match("-x", "--debug") {
		printStr("{{_UsageCommand_}}-x --debug{{|-|}}")
		printStr("	Debug")
	}

	if showAll {
		printStr("")
		printStr("CLI Commands:")
		printStr("")
	}

	if match("-b", "--build") {
		printStr("{{_UsageCommand_}}-b --build{{|-|}} [{{_UsageFile_}}<yaml>{{|-|}} [{{_UsageFile_}}<env>{{|-|}} [{{_UsageFile_}}<output>{{|-|}}]]]")
		printStr("	Build the env file. Paths that are not given come from the configuration.")
		printStr("	The output defaults to the env file, which is replaced.")
	}
	if match("-c", "--check") {
		printStr("{{_UsageCommand_}}-c --check{{|-|}} [{{_UsageFile_}}<env>{{|-|}}]")
		printStr("	Report placeholders without a value, values still set to '{{_UsageVar_}}RANDOM{{|-|}}',")
		printStr("	and values a standard dotenv loader would read differently")
	}
	if match("--config-show", "--show-config") {
		printStr("{{_UsageCommand_}}--config-show{{|-|}}")
		printStr("{{_UsageCommand_}}--show-config{{|-|}}")
		printStr("	Shows the current configuration options")
	}
	if match("-d", "--diff") {
		printStr("{{_UsageCommand_}}-d --diff{{|-|}} [{{_UsageFile_}}<yaml>{{|-|}} [{{_UsageFile_}}<env>{{|-|}} [{{_UsageFile_}}<output>{{|-|}}]]]")
		printStr("	Show the changes a build would make to the output file, without writing it")
	}
	if match("-E", "--example") {
		printStr("{{_UsageCommand_}}-E --example{{|-|}} [{{_UsageFile_}}<yaml>{{|-|}}]")
		printStr("	Write a YAML file with every placeholder set to '{{_UsageVar_}}foobar{{|-|}}'")
	}
	if match("-h", "--help") {
		printStr("{{_UsageCommand_}}-h --help{{|-|}}")
		printStr("	Show this usage information")
		printStr("{{_UsageCommand_}}-h --help{{|-|}} {{_UsageOption_}}<option>{{|-|}}")
		printStr("	Show the usage of the specified option")
	}
	if match("-V", "--version") {
		printStr("{{_UsageCommand_}}-V --version{{|-|}}")
		printStr("	Display version information")
	}

	return strings.TrimRight(sb.String(), "\n")
}
