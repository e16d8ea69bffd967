// Package textbundle loads per-language text bundles from JSON or TOML files
// into an in-memory lookup structure keyed by language code and text key.
//
// Bundles live one file per language directly inside a configured directory,
// named <code>.json or <code>.toml depending on the configured Format. Each
// file must parse to an object at its root, and every value in it must be a
// string, an array, or a nested object. Numbers, booleans, null and datetimes
// are rejected at parse time rather than coerced: all text content is
// explicit strings. Values are returned verbatim; the package does no
// pluralization, interpolation, fallback between languages, or file watching.
//
// # Basic Usage
//
// Build a Config, load the enabled languages, and look texts up by key:
//
//	config, err := textbundle.NewConfig("languages", textbundle.FormatJSON, "en", "es")
//	if err != nil {
//		return err
//	}
//
//	languages, err := textbundle.Load(config)
//	if err != nil {
//		return err
//	}
//
//	greeting, ok, err := languages.ResolveText("en", "greeting")
//	if err != nil {
//		return err
//	}
//	if ok {
//		fmt.Println(greeting) // "Hello, world!"
//	}
//
// Load resolves every configured language eagerly and fails fast on the first
// broken bundle. Use NewLanguages instead to defer loading: each language is
// then read and parsed on its first Resolve and served from an in-memory
// cache afterwards. The cache is write-once and never evicted.
//
// # Nested Structures
//
// Text lookup is single-level. Nested objects and arrays come back as Value
// trees and are traversed by the caller:
//
//	pages, ok, err := languages.ResolveText("en", "pages")
//	if err != nil || !ok {
//		return err
//	}
//	entries, _ := pages.AsObject()
//	fmt.Println(entries["home"]) // "{ description: This is the home page., title: Home page }"
//
// # Errors
//
// All failures are returned to the caller as wrapped sentinel errors; nothing
// is logged or retried internally. Match with errors.Is:
//
//	if _, err := languages.Resolve("fr"); errors.Is(err, textbundle.ErrNotConfigured) {
//		// "fr" is not in the Config's enabled list.
//	}
//
// Requesting a language outside the configured list always fails with
// ErrNotConfigured, even when a bundle file for it exists on disk.
package textbundle
