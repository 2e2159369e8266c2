package env

import (
	"EnvFileGenerator/internal/constants"
	"EnvFileGenerator/internal/logger"
	"EnvFileGenerator/internal/paths"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// WriteFile replaces path with content.
//
// The write holds an advisory lock on path+".lock" and goes through a temp
// file in the same directory that is renamed over the target, so readers
// never see a partial file. The lock file is left in place. An existing target keeps its permission bits.
func WriteFile(ctx context.Context, path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory '%s': %w", dir, err)
	}

	lock := flock.New(paths.GetLockFilePath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock '%s': %w", path, err)
	}
	// Never removed, so every writer locks the same inode.
	defer func() { _ = lock.Unlock() }()
	logger.Trace(ctx, "Locked '{{_File_}}%s{{|-|}}'.", lock.Path())

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, constants.TempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file in '%s': %w", dir, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write '%s': %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync '%s': %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close '%s': %w", path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod '%s': %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace '%s': %w", path, err)
	}
	committed = true

	logger.Debug(ctx, "Replaced '{{_File_}}%s{{|-|}}' (%d bytes).", path, len(content))
	return nil
}
