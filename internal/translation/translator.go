package translation

import "context"

// Translation is the outcome of translating one text to the pivot language.
// ResolvedLanguage is the tag recorded for downstream bookkeeping: the caller
// supplied code, or the literal "auto" sentinel when detection was delegated.
// DetectedLanguage is populated only when the backend reports what it
// actually detected.
type Translation struct {
	Text             string
	ResolvedLanguage string
	DetectedLanguage string
}

// Translator converts text in the given source language to English. A source
// of "auto" delegates language detection to the backend. Implementations do
// not retry.
type Translator interface {
	Translate(ctx context.Context, text string, sourceLang string) (Translation, error)
}
