package services

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleTranslator uses the Cloud Translation API. A client is created per
// call; the call volume here is one or two translations per query.
type GoogleTranslator struct {
	credentials string
}

func NewGoogleTranslator(credentials string) *GoogleTranslator {
	return &GoogleTranslator{credentials: credentials}
}

func (t *GoogleTranslator) Translate(ctx context.Context, text, source, dest string) (string, error) {
	destTag, err := language.Parse(dest)
	if err != nil {
		return "", fmt.Errorf("invalid target language: %w", err)
	}

	opts := []option.ClientOption{}
	if t.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(t.credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	var translations []translate.Translation
	if source == "" || source == SourceAuto {
		translations, err = client.Translate(ctx, []string{text}, destTag, nil)
	} else {
		sourceTag, parseErr := language.Parse(source)
		if parseErr != nil {
			return "", fmt.Errorf("invalid source language: %w", parseErr)
		}
		translations, err = client.Translate(ctx, []string{text}, destTag, &translate.Options{
			Source: sourceTag,
		})
	}
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return translations[0].Text, nil
}
