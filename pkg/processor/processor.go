package processor

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/james-woods/format-sql/pkg/consts"
	"github.com/james-woods/format-sql/pkg/format"
	"github.com/james-woods/format-sql/pkg/rewrite"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type (
	// Params configures a Processor. Only Formatter is required.
	Params struct {
		Formatter *format.Formatter
		// Types are the extensions, without the dot, kept when walking
		// directories. consts.DefaultTypes is used when empty.
		Types     []string
		Recursive bool
		DryRun    bool
		// Out receives the resulting text of every file in dry-run mode.
		// Defaults to os.Stdout.
		Out io.Writer
		// WriteFile stores a processed file. Defaults to os.WriteFile.
		WriteFile func(path string, data []byte, perm os.FileMode) error
		Logger    *slog.Logger
	}

	// Processor formats the SQL of files on disk.
	Processor struct {
		rewriter  *rewrite.Rewriter
		types     []string
		recursive bool
		dryRun    bool
		out       io.Writer
		writeFile func(string, []byte, os.FileMode) error
		logger    *slog.Logger
	}

	// File is a file selected for processing.
	File struct {
		Path string
		Mode Mode
		Perm os.FileMode
	}

	// Mode tells how the content of a file is searched for SQL.
	Mode int
)

const (
	// SQLMode treats the whole file as SQL statements.
	SQLMode Mode = iota
	// EmbeddedMode looks for SQL in the file's string literals.
	EmbeddedMode
)

func (m Mode) String() string {
	if m == SQLMode {
		return "sql"
	}
	return "embedded"
}

// New creates a Processor from p, filling in defaults.
func New(p Params) *Processor {
	types := p.Types
	if len(types) == 0 {
		types = consts.DefaultTypes
	}

	normalized := make([]string, 0, len(types))
	for _, t := range types {
		normalized = append(normalized, normalizeType(t))
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	writeFile := p.WriteFile
	if writeFile == nil {
		writeFile = os.WriteFile
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Processor{
		rewriter:  rewrite.New(p.Formatter, logger),
		types:     normalized,
		recursive: p.Recursive,
		dryRun:    p.DryRun,
		out:       out,
		writeFile: writeFile,
		logger:    logger,
	}
}

// Run processes the files found under paths, in order. It returns the
// collected filesystem errors once every file has been attempted. Context
// cancellation is checked between files.
func (p *Processor) Run(ctx context.Context, paths []string) error {
	files, errs := p.Discover(paths)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}

		errs = multierr.Append(errs, p.processFile(f))
	}

	return errs
}

// Discover expands paths into the files to process. Files are kept as given;
// directories are walked in lexical order when the processor is recursive and
// skipped with a warning otherwise. Paths that cannot be read are reported in
// the returned error and do not stop discovery.
func (p *Processor) Discover(paths []string) ([]File, error) {
	var (
		files []File
		errs  error
	)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "failed to access path: %s", path))
			continue
		}

		if !info.IsDir() {
			files = append(files, newFile(path, info))
			continue
		}

		if !p.recursive {
			p.logger.Warn("Skipping directory, use --recursive to format it", "path", path)
			continue
		}

		found, err := p.walk(path)
		files = append(files, found...)
		errs = multierr.Append(errs, err)
	}

	return files, errs
}

func (p *Processor) walk(dir string) ([]File, error) {
	var (
		files []File
		errs  error
	)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "failed to walk directory: %s", path))
			return nil
		}

		if d.IsDir() || !slices.Contains(p.types, fileType(path)) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "failed to access path: %s", path))
			return nil
		}

		files = append(files, newFile(path, info))
		return nil
	})

	return files, multierr.Append(errs, err)
}

func (p *Processor) processFile(f File) error {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", f.Path)
	}

	p.logger.Debug("Formatting file", "path", f.Path, "mode", f.Mode)

	text := string(content)
	var result string
	if f.Mode == SQLMode {
		result = p.rewriter.SQLText(text)
	} else {
		result = p.rewriter.EmbeddedSQL(text)
	}

	if p.dryRun {
		if _, err := fmt.Fprint(p.out, result); err != nil {
			return errors.Wrap(err, "failed to write formatted content to output")
		}
		return nil
	}

	if err := p.writeFile(f.Path, []byte(result), f.Perm); err != nil {
		return errors.Wrapf(err, "failed to write formatted content to file: %s", f.Path)
	}

	if result == text {
		p.logger.Info("File unchanged", "path", f.Path)
	} else {
		p.logger.Info("File formatted", "path", f.Path)
	}
	return nil
}

func newFile(path string, info fs.FileInfo) File {
	mode := EmbeddedMode
	if fileType(path) == consts.SQLType {
		mode = SQLMode
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = consts.ModeFile
	}

	return File{Path: path, Mode: mode, Perm: perm}
}

// fileType returns the lower-cased extension of path without the dot.
func fileType(path string) string {
	return normalizeType(filepath.Ext(path))
}

func normalizeType(t string) string {
	return strings.ToLower(strings.TrimPrefix(t, "."))
}
