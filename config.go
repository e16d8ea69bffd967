package textbundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// DefaultDirectory is the directory name resolved by DefaultConfig, relative
// to the process's working directory.
const DefaultDirectory = "languages"

// Config describes where language bundles live and which languages are
// enabled. The directory is resolved to an absolute path and validated at
// construction and on every mutation; a Config that exists is always backed
// by a directory that existed when it was last checked.
//
// Config has value semantics: copies share no mutable state, so a Config
// handed to NewLanguages is unaffected by later mutation of the original.
type Config struct {
	directory string
	format    Format
	languages []string
}

// NewConfig creates a configuration over the given directory, resolved
// against the process's working directory. It fails with ErrDirectoryNotFound
// if the path does not exist, ErrNotADirectory if it exists but is not a
// directory, and ErrUnknownFormat for a format outside the supported set.
//
// The language list is kept in the given order. Duplicates in the input are
// preserved as given; deduplication is enforced only by AddLanguage.
func NewConfig(directory string, format Format, languages ...string) (Config, error) {
	if !format.valid() {
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}

	path, err := resolveDirectory(directory)
	if err != nil {
		return Config{}, err
	}

	return Config{
		directory: path,
		format:    format,
		languages: slices.Clone(languages),
	}, nil
}

// DefaultConfig creates a configuration over the "languages" directory under
// the process's working directory, creating it if it does not exist. It fails
// with ErrNotADirectory if the path exists but is not a directory. The
// language list starts empty; add codes with AddLanguage.
func DefaultConfig(format Format) (Config, error) {
	if !format.valid() {
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}

	path, err := filepath.Abs(DefaultDirectory)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrIO, err)
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(path, 0o755); err != nil {
			return Config{}, fmt.Errorf("%w: %s", ErrIO, err)
		}
	case err != nil:
		return Config{}, fmt.Errorf("%w: %s", ErrIO, err)
	case !info.IsDir():
		return Config{}, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	return Config{directory: path, format: format}, nil
}

// Directory returns the absolute path of the bundle directory.
func (c Config) Directory() string {
	return c.directory
}

// SetDirectory changes the bundle directory, resolving and validating the new
// path the same way NewConfig does. On failure the previous directory is
// retained.
func (c *Config) SetDirectory(directory string) error {
	path, err := resolveDirectory(directory)
	if err != nil {
		return err
	}
	c.directory = path
	return nil
}

// Format returns the configured source format.
func (c Config) Format() Format {
	return c.format
}

// Languages returns a copy of the enabled language codes in insertion order.
func (c Config) Languages() []string {
	return slices.Clone(c.languages)
}

// AddLanguage appends a language code to the enabled list. It fails with
// ErrDuplicateLanguage if the code is already present and ErrEmptyLanguage if
// the code is empty; in both cases the list is left unchanged.
func (c *Config) AddLanguage(code string) error {
	if code == "" {
		return ErrEmptyLanguage
	}
	if slices.Contains(c.languages, code) {
		return fmt.Errorf("%w: %q", ErrDuplicateLanguage, code)
	}
	c.languages = append(c.languages, code)
	return nil
}

// clone returns a Config that shares no mutable state with the receiver.
func (c Config) clone() Config {
	return Config{
		directory: c.directory,
		format:    c.format,
		languages: slices.Clone(c.languages),
	}
}

// resolveDirectory resolves a path against the working directory and checks
// that it names an existing directory.
func resolveDirectory(directory string) (string, error) {
	path, err := filepath.Abs(directory)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrIO, err)
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
	case err != nil:
		return "", fmt.Errorf("%w: %s", ErrIO, err)
	case !info.IsDir():
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	return path, nil
}
