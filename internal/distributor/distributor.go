// Package distributor implements the filesystem distributor: it writes a
// rendered configuration file into every configured destination directory.
package distributor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Info carries a rendered file to Distribute.
type Info struct {
	Data      string // rendered file content
	FileName  string // output file name written into each destination
	InputPath string // path of the config the output was generated from
}

// Distributor writes rendered files to local directories.
type Distributor struct {
	paths         []string
	createParents bool

	fs     afero.Fs
	logger *log.Logger
}

// Option customizes a Distributor.
type Option func(*Distributor)

// WithFs sets the filesystem the distributor writes to.
func WithFs(fsys afero.Fs) Option {
	return func(d *Distributor) {
		d.fs = fsys
	}
}

// WithLogger sets the logger used for per-destination debug output.
func WithLogger(l *log.Logger) Option {
	return func(d *Distributor) {
		d.logger = l
	}
}

// New builds a Distributor from cfg. The paths entry is required; see the
// package tests for how scalar and sequence values are normalized.
// Credentials are ignored.
func New(cfg Config, _ *Credentials, opts ...Option) (*Distributor, error) {
	raw, ok := cfg.Lookup(KeyPaths)
	if !ok {
		return nil, &NoPathsError{}
	}

	paths, err := normalizePaths(raw)
	if err != nil {
		return nil, err
	}

	createParents, _ := cfg.Lookup(KeyCreateParents)

	d := &Distributor{
		paths:         paths,
		createParents: parseFlag(createParents),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.fs == nil {
		d.fs = afero.NewOsFs()
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	return d, nil
}

// Paths returns a copy of the normalized destination paths.
func (d *Distributor) Paths() []string {
	out := make([]string, len(d.paths))
	copy(out, d.paths)
	return out
}

// CreateParents reports whether missing destination directories are created.
func (d *Distributor) CreateParents() bool {
	return d.createParents
}

// Distribute writes info.Data to <base>/<path>/<info.FileName> for every
// configured path, in order, where base is the directory of info.InputPath.
// It stops at the first failure; files written before it are left in place.
func (d *Distributor) Distribute(info Info) (*Distributor, error) {
	dests, err := d.Destinations(info.InputPath)
	if err != nil {
		return d, err
	}

	if len(dests) == 0 {
		d.logger.Warn("no destination paths configured, nothing to distribute", "file", info.FileName)
		return d, nil
	}

	for _, dest := range dests {
		if dest != "" && d.createParents {
			if err := d.fs.MkdirAll(dest, 0o755); err != nil {
				return d, fmt.Errorf("creating destination directory %s: %w", dest, err)
			}
		}

		exists, err := d.dirExists(dest)
		if err != nil {
			return d, fmt.Errorf("checking destination directory %s: %w", dest, err)
		}
		if !exists {
			return d, &DestinationNotExistError{Destination: dest}
		}

		target := filepath.Join(dest, info.FileName)
		if err := d.writeFile(target, info.Data); err != nil {
			return d, err
		}
		d.logger.Debug("distributed file", "path", target, "bytes", len(info.Data))
	}
	return d, nil
}

// Destinations resolves the configured paths against the directory of
// inputPath, in configuration order. Absolute paths are used unchanged.
func (d *Distributor) Destinations(inputPath string) ([]string, error) {
	base, err := baseDir(inputPath)
	if err != nil {
		return nil, err
	}
	dests := make([]string, len(d.paths))
	for i, p := range d.paths {
		if filepath.IsAbs(p) {
			dests[i] = filepath.Clean(p)
			continue
		}
		dests[i] = filepath.Join(base, p)
	}
	return dests, nil
}

func (d *Distributor) dirExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	return afero.DirExists(d.fs, path)
}

func (d *Distributor) writeFile(path, data string) (err error) {
	f, err := d.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// baseDir returns the absolute directory containing inputPath, or "" when
// no input path was given.
func baseDir(inputPath string) (string, error) {
	if inputPath == "" {
		return "", nil
	}
	abs, err := filepath.Abs(filepath.Dir(inputPath))
	if err != nil {
		return "", fmt.Errorf("resolving directory of %s: %w", inputPath, err)
	}
	return abs, nil
}

// IsFilesystemError reports whether err came from the underlying filesystem.
func IsFilesystemError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
