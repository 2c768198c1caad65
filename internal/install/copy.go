package install

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ai-labs/claude-skills/internal/errors"
	"github.com/ai-labs/claude-skills/internal/logging"
)

// ErrSymlinkCycle is returned when a symlinked directory in the bundle
// resolves to one of its own ancestors.
var ErrSymlinkCycle = errors.New("symlink cycle in bundle")

// copier mirrors a source tree into a destination tree, overwriting files
// that collide and leaving destination-only files alone.
type copier struct {
	logger  *slog.Logger
	dirPerm os.FileMode
	stats   *Stats
}

// copyDir recursively copies a directory from src to dst, creating dst and
// any missing parents. ancestors holds the directories on the current path
// from the bundle root; a src that is one of them is a cycle. It stops at
// the first error.
func (c *copier) copyDir(src, dst string, ancestors []os.FileInfo) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", src)
	}
	for _, a := range ancestors {
		if os.SameFile(a, info) {
			return errors.Wrapf(ErrSymlinkCycle, "at %s", src)
		}
	}
	ancestors = append(ancestors, info)

	if err := c.ensureDir(dst); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			// Follow links: a linked file is copied by content, a linked
			// directory is recursed into.
			info, err := os.Stat(srcPath)
			if err != nil {
				return errors.Wrapf(err, "resolving symlink %s", srcPath)
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if err := c.copyDir(srcPath, dstPath, ancestors); err != nil {
				return err
			}
		case mode.IsRegular():
			if err := c.copyFile(srcPath, dstPath); err != nil {
				return err
			}
		default:
			c.stats.EntriesSkipped++
			c.logger.Log(context.Background(), logging.LevelTrace, "skipping irregular entry", "path", srcPath, "mode", mode.String())
		}
	}

	return nil
}

func (c *copier) ensureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dir, c.dirPerm); err != nil {
		return errors.Wrapf(err, "creating directory %s", dir)
	}
	c.stats.DirsCreated++
	return nil
}

// copyFile copies a single file from src to dst byte-for-byte, truncating
// any existing file at dst, and gives dst the permission bits of src.
// A dst that is src itself (through a symlink) is left alone.
func (c *copier) copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening source file %s", src)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return errors.Wrapf(err, "stating source file %s", src)
	}
	perm := srcInfo.Mode().Perm()

	dstInfo, statErr := os.Stat(dst)
	existed := statErr == nil

	if existed && os.SameFile(srcInfo, dstInfo) {
		c.stats.EntriesSkipped++
		c.logger.Debug("skipping file that resolves to its source", "src", src, "dst", dst)
		return nil
	}

	// A read-only copy from an earlier run must still be replaceable.
	if existed && dstInfo.Mode().IsRegular() && dstInfo.Mode().Perm()&0o200 == 0 {
		if err := os.Chmod(dst, dstInfo.Mode().Perm()|0o200); err != nil {
			return errors.Wrapf(err, "making %s writable", dst)
		}
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm|0o200)
	if err != nil {
		return errors.Wrapf(err, "creating destination file %s", dst)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Wrapf(err, "copying content from %s to %s", src, dst)
	}
	if err := dstFile.Close(); err != nil {
		return errors.Wrapf(err, "closing destination file %s", dst)
	}
	if err := os.Chmod(dst, perm); err != nil {
		return errors.Wrapf(err, "setting mode of %s", dst)
	}

	c.stats.FilesCopied++
	if existed {
		c.stats.FilesOverwritten++
	}
	c.logger.Debug("copied file", "src", src, "dst", dst, "bytes", srcInfo.Size(), "overwritten", existed)

	return nil
}
