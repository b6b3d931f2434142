package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nikhilsahni7/medquery/internal/models"
)

// ErrEmptyQuery is returned when the submitted question is empty after
// trimming. Nothing is called and nothing is stored in that case.
var ErrEmptyQuery = errors.New("empty query")

const promptTemplate = `Imagine you are a medical expert and you are giving accurate medical advice to a patient.
You are presented with a medical query and asked to provide a response with a detailed explanation.
Note that dont mention any inaccurate or misleading information.

Medical Query: %s

Key Details:
- Provide precise information related to the patient's medical concern.
- Indicate if any diagnostic tests or examinations have been performed.
- Specify the current medications or treatments prescribed.
- The response should be in a paragraph format but not in point-wise.
- If only a specific disease name is mentioned, response must contain the symptoms, causes, and treatment of the disease with respective headings.

Guidelines:
- Use clear and concise language.
- The vocabulary should be appropriate for the medical context.
- Include specific parameters or considerations within the medical context.
- If the response contains a list of items, convert it into a paragraph format.
- Avoid using abbreviations or acronyms.
- Avoid Headings and Subheadings; just give the complete response in a paragraph format.
- Refrain from presenting inaccurate or ambiguous information.
- Ensure the query is focused and not overly broad.`

type historyStore interface {
	Append(ctx context.Context, userID uuid.UUID, question, answer, language string) (*models.QueryRecord, error)
}

// Orchestrator drives one question through translation, generation,
// back-translation, and persistence, in that order.
type Orchestrator struct {
	translator Translator
	generator  Generator
	history    historyStore
}

func NewOrchestrator(translator Translator, generator Generator, history historyStore) *Orchestrator {
	return &Orchestrator{
		translator: translator,
		generator:  generator,
		history:    history,
	}
}

// Answer produces a medically-framed answer in targetLang and logs the
// exchange. Any adapter failure aborts the whole operation before the record
// is written; the stored question is always the user's original text, not the
// English-normalized version.
func (o *Orchestrator) Answer(ctx context.Context, userID uuid.UUID, rawInput, targetLang string) (string, error) {
	question := strings.TrimSpace(rawInput)
	if question == "" {
		return "", ErrEmptyQuery
	}
	if targetLang == "" {
		targetLang = "en"
	}

	// One branch decides both translation sites: the generator is always
	// prompted in English.
	needsTranslation := targetLang != "en"

	normalized := question
	if needsTranslation {
		translated, err := o.translator.Translate(ctx, question, SourceAuto, "en")
		if err != nil {
			return "", fmt.Errorf("inbound translation: %w", err)
		}
		normalized = translated
	}

	prompt := fmt.Sprintf(promptTemplate, normalized)

	completion, err := o.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generation: %w", err)
	}

	answer := completion
	if needsTranslation {
		translated, err := o.translator.Translate(ctx, completion, "en", targetLang)
		if err != nil {
			return "", fmt.Errorf("outbound translation: %w", err)
		}
		answer = translated
	}

	if _, err := o.history.Append(ctx, userID, question, answer, targetLang); err != nil {
		return "", fmt.Errorf("saving history: %w", err)
	}

	return answer, nil
}
