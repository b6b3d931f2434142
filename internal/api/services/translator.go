package services

import "context"

// SourceAuto asks the translation backend to detect the source language.
const SourceAuto = "auto"

// Translator converts text between two language codes. Implementations are
// stateless wrappers around an external service; any transport or decoding
// problem is a hard failure for the caller.
type Translator interface {
	Translate(ctx context.Context, text, source, dest string) (string, error)
}

// SupportedLanguages are the codes offered on the query form. The orchestrator
// itself accepts any parseable BCP 47 code.
var SupportedLanguages = []string{
	"en", "es", "fr", "de", "hi", "it", "pt", "ru", "zh", "ja", "ar",
}
