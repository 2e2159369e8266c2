package env

import (
	"EnvFileGenerator/internal/logger"
	"context"
	"io"
	"strings"
)

// BuildOptions selects the files used by Build.
type BuildOptions struct {
	YAMLFile   string
	EnvFile    string
	OutputFile string // empty means overwrite EnvFile
	DryRun     bool   // generate without writing

	Random io.Reader // secret source, crypto/rand when nil
}

// Plan is a generated file together with the paths it was built from.
type Plan struct {
	YAMLFile   string
	EnvFile    string
	OutputFile string
	Result
}

// Prepare validates paths, loads both sources and generates the output
// without writing anything.
func Prepare(ctx context.Context, opts BuildOptions) (Plan, error) {
	yamlPath, err := RequirePath("YAML file", opts.YAMLFile)
	if err != nil {
		return Plan{}, err
	}
	envPath, err := RequirePath("env file", opts.EnvFile)
	if err != nil {
		return Plan{}, err
	}
	outputPath := strings.TrimSpace(opts.OutputFile)
	if outputPath == "" {
		outputPath = envPath
	}

	yamlVars, err := LoadYAMLFile(yamlPath)
	if err != nil {
		return Plan{}, err
	}
	logger.Info(ctx, "Loaded {{_Var_}}%d{{|-|}} placeholder values from '{{_File_}}%s{{|-|}}'.", yamlVars.Len(), yamlPath)

	existing, err := LoadEnvFile(envPath)
	if err != nil {
		return Plan{}, err
	}
	logger.Info(ctx, "Loaded {{_Var_}}%d{{|-|}} existing variables from '{{_File_}}%s{{|-|}}'.", existing.Len(), envPath)

	result, err := Generator{Random: opts.Random}.Generate(yamlVars, existing)
	if err != nil {
		return Plan{}, err
	}

	if result.Secrets > 0 {
		logger.Info(ctx, "Generated {{_Var_}}%d{{|-|}} new secret(s).", result.Secrets)
	}
	for _, key := range result.Extras {
		logger.Info(ctx, "Keeping additional variable '{{_Var_}}%s{{|-|}}'.", key)
	}
	for _, name := range result.Unresolved {
		logger.Warn(ctx, "Placeholder '{{_Placeholder_}}$%s{{|-|}}' has no value.", name)
	}

	return Plan{
		YAMLFile:   yamlPath,
		EnvFile:    envPath,
		OutputFile: outputPath,
		Result:     result,
	}, nil
}

// Build generates the env file and, unless DryRun is set, writes it to the
// output path. The generated content is returned either way.
func Build(ctx context.Context, opts BuildOptions) (string, error) {
	plan, err := Prepare(ctx, opts)
	if err != nil {
		return "", err
	}
	if opts.DryRun {
		return plan.Content, nil
	}
	if err := WriteFile(ctx, plan.OutputFile, plan.Content); err != nil {
		return "", err
	}
	logger.Notice(ctx, "Wrote '{{_File_}}%s{{|-|}}'.", plan.OutputFile)
	return plan.Content, nil
}
