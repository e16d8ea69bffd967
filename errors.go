package textbundle

import "errors"

// Sentinel errors for bundle loading and configuration.
// Callers match them with errors.Is; wrapped messages carry the offending
// path, code, or source fragment.
var (
	// ErrDirectoryNotFound is returned when a configured directory does not exist.
	ErrDirectoryNotFound = errors.New("textbundle: directory not found")

	// ErrNotADirectory is returned when a configured path exists but is not a directory.
	ErrNotADirectory = errors.New("textbundle: path is not a directory")

	// ErrDuplicateLanguage is returned when a language code is added to a Config twice.
	ErrDuplicateLanguage = errors.New("textbundle: language already configured")

	// ErrEmptyLanguage is returned when an empty language code is given.
	ErrEmptyLanguage = errors.New("textbundle: language code cannot be empty")

	// ErrNotConfigured is returned when a language code is requested that is not
	// in the Config's enabled-language list, regardless of what exists on disk.
	ErrNotConfigured = errors.New("textbundle: language not configured")

	// ErrFileNotFound is returned when a language's bundle file does not exist.
	ErrFileNotFound = errors.New("textbundle: language file not found")

	// ErrNotAFile is returned when a language's bundle path exists but is not a
	// regular file.
	ErrNotAFile = errors.New("textbundle: path is not a regular file")

	// ErrIO is returned when the filesystem fails for a reason other than a
	// missing path, for example a permission error while reading a bundle.
	ErrIO = errors.New("textbundle: i/o error")

	// ErrParse is returned when a bundle is not well-formed in its format, or
	// contains a value outside the string/array/object model (numbers,
	// booleans, null and datetimes are rejected, never coerced).
	ErrParse = errors.New("textbundle: invalid language file")

	// ErrNotAnObject is returned when a structurally valid bundle does not have
	// an object at its root.
	ErrNotAnObject = errors.New("textbundle: texts root is not an object")

	// ErrUnknownFormat is returned when a Format value outside the supported
	// set is given.
	ErrUnknownFormat = errors.New("textbundle: unknown format")
)
