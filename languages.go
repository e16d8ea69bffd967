package textbundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Languages owns a write-once cache of loaded language bundles. A bundle is
// read and parsed on the first Resolve of its code and served from memory
// afterwards; entries are never evicted or updated for the lifetime of the
// instance.
//
// All methods are safe for concurrent use. The cache mutex is held across the
// whole check-read-parse-insert sequence, so two goroutines racing on the
// same uncached code cannot produce duplicate entries.
type Languages struct {
	mu     sync.Mutex
	config Config
	cache  []LanguageTexts
}

// NewLanguages creates an empty Languages over a snapshot of the given
// configuration. Later mutation of the caller's Config does not affect it.
func NewLanguages(config Config) *Languages {
	return &Languages{config: config.clone()}
}

// Load creates a Languages over the configuration and eagerly resolves every
// enabled language code in order. It fails fast: the first language that
// cannot be resolved aborts the whole call and no Languages is returned.
func Load(config Config) (*Languages, error) {
	languages := NewLanguages(config)
	for _, code := range languages.config.languages {
		if _, err := languages.Resolve(code); err != nil {
			return nil, err
		}
	}
	return languages, nil
}

// Resolve returns the bundle for a language code, loading
// directory/<code><ext> on the first request and serving the cached snapshot
// afterwards.
//
// It fails with ErrNotConfigured when the code is not in the configuration's
// enabled list, regardless of what exists on disk; ErrFileNotFound or
// ErrNotAFile when the bundle path is missing or not a regular file; ErrIO on
// read failures; ErrParse on malformed content; and ErrNotAnObject when the
// bundle's root is not an object.
func (l *Languages) Resolve(code string) (LanguageTexts, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !slices.Contains(l.config.languages, code) {
		return LanguageTexts{}, fmt.Errorf("%w: %q", ErrNotConfigured, code)
	}

	for _, texts := range l.cache {
		if texts.language == code {
			return texts, nil
		}
	}

	texts, err := l.loadLanguage(code)
	if err != nil {
		return LanguageTexts{}, err
	}

	l.cache = append(l.cache, texts)
	return texts, nil
}

// ResolveText resolves the language bundle and looks up a single text key.
// A missing key is reported as false, not an error; resolution failures are
// returned as from Resolve.
func (l *Languages) ResolveText(code, key string) (Value, bool, error) {
	texts, err := l.Resolve(code)
	if err != nil {
		return Value{}, false, err
	}
	value, ok := texts.Text(key)
	return value, ok, nil
}

// Cached returns the language codes currently held in the cache, in the order
// they were loaded.
func (l *Languages) Cached() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	codes := make([]string, len(l.cache))
	for i, texts := range l.cache {
		codes[i] = texts.language
	}
	return codes
}

// loadLanguage reads and parses one bundle file. Callers hold the cache mutex.
func (l *Languages) loadLanguage(code string) (LanguageTexts, error) {
	path := filepath.Join(l.config.directory, code+l.config.format.Ext())

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return LanguageTexts{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case err != nil:
		return LanguageTexts{}, fmt.Errorf("%w: %s", ErrIO, err)
	case !info.Mode().IsRegular():
		return LanguageTexts{}, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return LanguageTexts{}, fmt.Errorf("%w: %s", ErrIO, err)
	}

	value, err := Parse(raw, l.config.format)
	if err != nil {
		return LanguageTexts{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	texts, err := NewLanguageTexts(code, value)
	if err != nil {
		return LanguageTexts{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return texts, nil
}
