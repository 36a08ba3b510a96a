package adapter

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

// SearchResult is one practice-exercise source found on the web.
type SearchResult struct {
	Title   string
	Snippet string
	URL     string
}

// Search is the interface for the external exercise search backend
type Search interface {
	Search(ctx context.Context, query string) ([]*SearchResult, error)
}

// geminiSearch implements Search with Gemini's GoogleSearch grounding: the
// model runs the web query and the grounding chunks carry the sources.
type geminiSearch struct {
	gemini Gemini
}

// NewSearch creates a Search backed by Gemini search grounding
func NewSearch(gemini Gemini) Search {
	return &geminiSearch{gemini: gemini}
}

func (s *geminiSearch) Search(ctx context.Context, query string) ([]*SearchResult, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: genai.NewContentFromText(
			"You are a research assistant. Answer with a single short sentence describing the best matching exercise.", ""),
	}

	contents := []*genai.Content{
		genai.NewContentFromText(query, genai.RoleUser),
	}

	resp, err := s.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to run grounded search", goerr.V("query", query))
	}

	if len(resp.Candidates) == 0 {
		return nil, goerr.New("search returned no candidates", goerr.V("query", query))
	}

	snippet := strings.TrimSpace(ResponseText(resp))
	candidate := resp.Candidates[0]

	var results []*SearchResult
	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			results = append(results, &SearchResult{
				Title:   chunk.Web.Title,
				Snippet: snippet,
				URL:     chunk.Web.URI,
			})
		}
	}

	// The model may answer without attributable sources; keep the answer.
	if len(results) == 0 && snippet != "" {
		results = append(results, &SearchResult{Snippet: snippet})
	}

	if len(results) == 0 {
		return nil, goerr.New("search returned no results", goerr.V("query", query))
	}

	return results, nil
}
