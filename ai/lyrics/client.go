// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package lyrics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/poiesic/melodex/ai"
	"github.com/poiesic/melodex/core"
)

// analyzePath is the analysis service endpoint for single-track analysis.
const analyzePath = "/analyze"

// Client implements ai.Analyzer against the metadata/lyrics analysis service
// HTTP API.
type Client struct {
	host   string
	client *http.Client
	logger *slog.Logger
}

// newClient is an internal constructor that returns the concrete type.
func newClient(config *ai.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		host: config.AnalysisHost,
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		logger: slog.Default().With("component", "lyrics-client"),
	}, nil
}

// NewClient creates a new analysis service client using the provided
// configuration.
//
// Returns ai.Analyzer interface to enforce abstraction.
func NewClient(config *ai.Config) (ai.Analyzer, error) {
	return newClient(config)
}

// analyzeRequest is the wire request carrying a single source locator.
type analyzeRequest struct {
	URL string `json:"url"`
}

// analyzeResponse is the wire shape of the analysis service response.
// The irregular field names ("language-iso", "ddex moods", "ddex themes")
// are the service's, not ours; they are normalized into core.TrackAnalysis
// before leaving this package.
type analyzeResponse struct {
	Summary     string          `json:"summary"`
	Language    string          `json:"language"`
	LanguageIso string          `json:"language-iso"`
	Explicit    bool            `json:"explicit"`
	Keywords    orderedValues   `json:"keywords"`
	Moods       orderedValues   `json:"ddex moods"`
	Themes      orderedValues   `json:"ddex themes"`
	Flags       json.RawMessage `json:"flags"`
}

// Analyze requests analysis for the media at sourceURL and returns the
// normalized metadata. A non-2xx status or a malformed body is an error;
// absent optional mappings are not.
func (c *Client) Analyze(ctx context.Context, sourceURL string) (*core.TrackAnalysis, error) {
	body, err := json.Marshal(analyzeRequest{URL: sourceURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+analyzePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("requesting analysis", "url", sourceURL)
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("analysis request failed", "url", sourceURL, "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("analysis service returned non-success", "url", sourceURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		c.logger.Error("malformed analysis payload", "url", sourceURL, "err", err)
		return nil, fmt.Errorf("malformed analysis payload: %w", err)
	}

	return &core.TrackAnalysis{
		Summary:     parsed.Summary,
		Language:    parsed.Language,
		LanguageIso: parsed.LanguageIso,
		Explicit:    parsed.Explicit,
		Keywords:    parsed.Keywords,
		Moods:       parsed.Moods,
		Themes:      parsed.Themes,
		Flags:       []byte(parsed.Flags),
	}, nil
}
