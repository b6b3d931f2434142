package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// MyMemoryTranslator calls the free MyMemory translation API. It needs no
// credentials, only an optional contact email that raises the daily quota.
type MyMemoryTranslator struct {
	email   string
	baseURL string
	client  *http.Client
}

func NewMyMemoryTranslator(email string) *MyMemoryTranslator {
	return &MyMemoryTranslator{
		email:   email,
		baseURL: "https://api.mymemory.translated.net",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *MyMemoryTranslator) Translate(ctx context.Context, text, source, dest string) (string, error) {
	if source == "" || source == SourceAuto {
		source = "Autodetect"
	}
	langPair := fmt.Sprintf("%s|%s", source, dest)

	apiURL := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		t.baseURL,
		url.QueryEscape(text),
		url.QueryEscape(langPair))
	if t.email != "" {
		apiURL += fmt.Sprintf("&de=%s", url.QueryEscape(t.email))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if mymemResp.ResponseStatus != 200 {
		return "", fmt.Errorf("API error: %s (%d)", mymemResp.ResponseDetails, mymemResp.ResponseStatus)
	}
	if mymemResp.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("no translation returned")
	}

	return mymemResp.ResponseData.TranslatedText, nil
}
