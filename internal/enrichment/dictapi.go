package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"lexitrain/internal/domain"
)

const defaultTimeout = 10 * time.Second

// DictClient is an HTTP client for the dictionary lookup API.
type DictClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewDictClient creates a dictionary API client. An empty apiKey produces an
// unconfigured client that the coordinator will skip.
func NewDictClient(baseURL, apiKey string) *DictClient {
	return &DictClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Configured reports whether a credential is present.
func (c *DictClient) Configured() bool {
	return c.apiKey != ""
}

// dictEntry mirrors one entry of the provider's JSON response.
type dictEntry struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string   `json:"definition"`
			Example    string   `json:"example"`
			Synonyms   []string `json:"synonyms"`
			Antonyms   []string `json:"antonyms"`
		} `json:"definitions"`
		Synonyms []string `json:"synonyms"`
		Antonyms []string `json:"antonyms"`
	} `json:"meanings"`
}

// Lookup fetches word detail for a single surface form.
func (c *DictClient) Lookup(ctx context.Context, surfaceForm string) (domain.Enrichment, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(surfaceForm)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Enrichment{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Enrichment{}, fmt.Errorf("%w: %v", domain.ErrEnrichmentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Provider has no data for this word. Not an error.
		return domain.Enrichment{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Enrichment{}, fmt.Errorf("lookup %q: unexpected status %d", surfaceForm, resp.StatusCode)
	}

	var entries []dictEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return domain.Enrichment{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(entries) == 0 {
		return domain.Enrichment{}, nil
	}

	return flatten(entries[0]), nil
}

// flatten collapses the provider's nested meanings into the single-record
// shape the corpus stores: first definition and example win.
func flatten(entry dictEntry) domain.Enrichment {
	result := domain.Enrichment{Pronunciation: entry.Phonetic}

	for _, meaning := range entry.Meanings {
		for _, def := range meaning.Definitions {
			if result.Definition == "" {
				result.Definition = def.Definition
			}
			if result.ExampleSentence == "" {
				result.ExampleSentence = def.Example
			}
			result.Synonyms = appendUnique(result.Synonyms, def.Synonyms)
			result.Antonyms = appendUnique(result.Antonyms, def.Antonyms)
		}
		result.Synonyms = appendUnique(result.Synonyms, meaning.Synonyms)
		result.Antonyms = appendUnique(result.Antonyms, meaning.Antonyms)
	}

	return result
}

func appendUnique(dst []string, src []string) []string {
	for _, s := range src {
		if s == "" {
			continue
		}
		exists := false
		for _, d := range dst {
			if d == s {
				exists = true
				break
			}
		}
		if !exists {
			dst = append(dst, s)
		}
	}
	return dst
}
