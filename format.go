package textbundle

// Format identifies the source encoding of on-disk language bundles.
// It selects both the parser and the file extension used to locate a
// language's bundle file.
type Format int

const (
	// FormatJSON reads bundles from <code>.json files.
	FormatJSON Format = iota

	// FormatTOML reads bundles from <code>.toml files.
	FormatTOML
)

// Ext returns the file extension for the format, including the leading dot.
// It returns an empty string for unknown formats.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatTOML:
		return ".toml"
	}
	return ""
}

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	}
	return "unknown"
}

func (f Format) valid() bool {
	return f == FormatJSON || f == FormatTOML
}
