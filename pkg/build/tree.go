package build

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/configblock/pkg/errors"
	"github.com/arthur-debert/configblock/pkg/logging"
)

// SourceExtensions are the file extensions BuildTree converts.
var SourceExtensions = []string{".md", ".markdown"}

// Result lists the files a build wrote.
type Result struct {
	Written []string
}

// BuildFile converts the markdown file in and writes the output to out,
// creating parent directories as needed.
func (c *Converter) BuildFile(in, out string) error {
	source, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", in).
			WithDetail("path", in)
	}

	var buf bytes.Buffer
	if err := c.Convert(source, &buf); err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to build %s", in).
			WithDetail("path", in)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(out))
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", out).
			WithDetail("path", out)
	}

	c.logger.Info().Str("source", in).Str("output", out).Msg("Built document")
	return nil
}

// BuildTree converts every markdown file under root, mirroring the
// directory layout into outDir. Hidden directories and outDir itself are
// skipped. The first failing document stops the build.
func (c *Converter) BuildTree(root, outDir string) (*Result, error) {
	done := logging.LogOperationStart(c.logger, "build")
	defer done()

	sources, err := c.collect(root, outDir)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, errors.Newf(errors.ErrNotFound, "no markdown files under %s", root).
			WithDetail("path", root)
	}

	result := &Result{}
	for _, rel := range sources {
		out := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+c.Extension())
		if err := c.BuildFile(filepath.Join(root, rel), out); err != nil {
			return result, err
		}
		result.Written = append(result.Written, out)
	}
	return result, nil
}

func (c *Converter) collect(root, outDir string) ([]string, error) {
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid output directory")
	}

	var sources []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if abs, err := filepath.Abs(path); err == nil && abs == absOut {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSource(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to scan %s", root).
			WithDetail("path", root)
	}
	return sources, nil
}

func isSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
