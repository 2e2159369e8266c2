package cmd

import (
	"EnvFileGenerator/internal/config"
	"EnvFileGenerator/internal/console"
	"EnvFileGenerator/internal/logger"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger.Output
	logger.Output = &buf
	t.Cleanup(func() { logger.Output = prev })
	return &buf
}

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	dir := t.TempDir()
	conf := config.Default()
	conf.Paths.YAMLFile = filepath.Join(dir, ".env.yml")
	conf.Paths.EnvFile = filepath.Join(dir, ".env")
	return conf
}

func mustParse(t *testing.T, args ...string) []CommandGroup {
	t.Helper()
	groups, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return groups
}

func TestExecuteDefaultsToBuild(t *testing.T) {
	conf := testConfig(t)
	if err := os.WriteFile(conf.Paths.YAMLFile, []byte("WebsiteURL: https://example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if code := Execute(context.Background(), conf, nil); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	data, err := os.ReadFile(conf.Paths.EnvFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `SS_BASE_URL="https://example.com"`) {
		t.Errorf("output missing base URL:\n%s", data)
	}
}

func TestExecuteDryRunPrints(t *testing.T) {
	conf := testConfig(t)
	out := captureOutput(t)

	if code := Execute(context.Background(), conf, mustParse(t, "-n", "-b")); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if _, err := os.Stat(conf.Paths.EnvFile); !os.IsNotExist(err) {
		t.Errorf("dry run wrote %s", conf.Paths.EnvFile)
	}
	if !strings.HasSuffix(out.String(), "SS_WHITE_LABEL_ONLY=false\n") {
		t.Errorf("dry run output:\n%s", out.String())
	}
}

func TestExecuteBuildArguments(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "vars.yml")
	envPath := filepath.Join(dir, "site.env")
	outPath := filepath.Join(dir, "site.out.env")
	if err := os.WriteFile(envPath, []byte("CUSTOM_KEY=hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	code := Execute(context.Background(), testConfig(t), mustParse(t, "-b", yamlPath, envPath, outPath))
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "CUSTOM_KEY=hello\n") {
		t.Errorf("extra key not kept:\n%s", data)
	}
}

func TestExecuteExampleNeedsForce(t *testing.T) {
	conf := testConfig(t)
	ctx := context.Background()

	if code := Execute(ctx, conf, mustParse(t, "-E")); code != 0 {
		t.Fatalf("first example: exit code %d", code)
	}
	if code := Execute(ctx, conf, mustParse(t, "-E")); code != 1 {
		t.Errorf("second example without -f: exit code %d, want 1", code)
	}
	if code := Execute(ctx, conf, mustParse(t, "-f", "-E")); code != 0 {
		t.Errorf("example with -f: exit code %d", code)
	}
}

func TestExecuteStopsAtFirstError(t *testing.T) {
	conf := testConfig(t)
	out := captureOutput(t)

	// The check fails because the file does not exist, so version never runs
	code := Execute(context.Background(), conf, mustParse(t, "-c", "-V"))
	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if strings.Contains(out.String(), "EnvFileGenerator") {
		t.Errorf("command after the failure ran:\n%s", out.String())
	}
}

func TestExecuteCheckAfterBuild(t *testing.T) {
	conf := testConfig(t)
	yaml := "WebsiteURL: a\nBranch: b\nDBServer: c\nDBName: d\nDBUser: e\nDBPassword: f\n" +
		"BasicAuthUser: g\nBasicAuthPassword: h\nAdminUser: i\nAdminPassword: j\nFIAPingURL: k\n" +
		"SessionKey: RANDOM\nSendAllEmailsTo: m\nMFASecretKey: RANDOM\nBYPASS_MFA: 'false'\n"
	if err := os.WriteFile(conf.Paths.YAMLFile, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	code := Execute(context.Background(), conf, mustParse(t, "-b", "-c"))
	if code != 0 {
		t.Errorf("exit code %d, want 0", code)
	}
}

func TestExecuteCheckUnloadableFile(t *testing.T) {
	conf := testConfig(t)
	out := captureOutput(t)
	if err := os.WriteFile(conf.Paths.EnvFile, []byte("A=1\nB=\"x\"y\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	code := Execute(context.Background(), conf, mustParse(t, "-c"))
	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if !strings.Contains(out.String(), "Standard dotenv loaders cannot read this file") {
		t.Errorf("loader error not reported:\n%s", out.String())
	}
}

func TestExecuteDiff(t *testing.T) {
	conf := testConfig(t)
	// A separate output keeps the env file absent, so YAML changes show up
	conf.Paths.OutputFile = filepath.Join(filepath.Dir(conf.Paths.EnvFile), "out.env")
	out := captureOutput(t)
	ctx := context.Background()

	if code := Execute(ctx, conf, mustParse(t, "-b")); code != 0 {
		t.Fatalf("build: exit code %d", code)
	}
	out.Reset()
	if code := Execute(ctx, conf, mustParse(t, "-d")); code != 0 {
		t.Fatalf("diff: exit code %d", code)
	}
	if out.Len() != 0 {
		t.Errorf("diff of an up to date file printed:\n%s", out.String())
	}

	if err := os.WriteFile(conf.Paths.YAMLFile, []byte("Branch: release\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if code := Execute(ctx, conf, mustParse(t, "--diff")); code != 0 {
		t.Fatalf("diff: exit code %d", code)
	}
	got := console.Strip(out.String())
	if !strings.Contains(got, `- SS_RELEASE_BRANCH="$Branch"`) || !strings.Contains(got, `+ SS_RELEASE_BRANCH="release"`) {
		t.Errorf("unexpected diff:\n%s", got)
	}
}

func TestExecuteInformationCommands(t *testing.T) {
	conf := testConfig(t)
	out := captureOutput(t)

	code := Execute(context.Background(), conf, mustParse(t, "-V", "--config-show", "-h", "-b"))
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	got := console.Strip(out.String())
	for _, want := range []string{"EnvFileGenerator [", conf.Paths.YAMLFile, "-b --build"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestExecuteResetsLevel(t *testing.T) {
	logger.SetLevel(logger.LevelNotice)
	captureOutput(t)

	Execute(context.Background(), testConfig(t), mustParse(t, "-x", "-V"))
	if got := logger.LevelVar.Level(); got != logger.LevelNotice {
		t.Errorf("level after execute = %v, want %v", got, logger.LevelNotice)
	}
}
