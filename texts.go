package textbundle

import "fmt"

// LanguageTexts is an immutable snapshot of one language's parsed bundle.
// Its payload is always the Object variant, checked at construction.
// It is safe for concurrent use.
type LanguageTexts struct {
	language string
	texts    Value
}

// NewLanguageTexts creates a snapshot for a language code. It fails with
// ErrNotAnObject if texts is not the Object variant and ErrEmptyLanguage if
// the code is empty. The texts tree is deep-copied, so later changes to
// values the caller still holds cannot reach the snapshot.
func NewLanguageTexts(language string, texts Value) (LanguageTexts, error) {
	if language == "" {
		return LanguageTexts{}, ErrEmptyLanguage
	}
	if !texts.IsObject() {
		return LanguageTexts{}, fmt.Errorf("%w: %s", ErrNotAnObject, texts)
	}
	return LanguageTexts{language: language, texts: texts.Clone()}, nil
}

// Language returns the language code of the snapshot.
func (t LanguageTexts) Language() string {
	return t.language
}

// Text returns a deep copy of the value stored under key, or false if the key
// does not exist. Lookup is single-level: nested structures come back as
// Object or Array values and are traversed by the caller.
func (t LanguageTexts) Text(key string) (Value, bool) {
	value, ok := t.texts.obj[key]
	if !ok {
		return Value{}, false
	}
	return value.Clone(), true
}

// Texts returns a deep copy of the whole bundle as an Object Value.
func (t LanguageTexts) Texts() Value {
	return t.texts.Clone()
}
