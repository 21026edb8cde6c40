package careerbooster

import (
	"context"
	"fmt"
)

const homePath = "/api/home"

// HomeSummary is the dashboard payload. The backend owns the exact shapes,
// the client passes them through.
type HomeSummary struct {
	UserProgress   map[string]any   `json:"userProgress"`
	RecentAnalyses []map[string]any `json:"recentAnalyses"`
}

// Home fetches the authenticated dashboard summary.
func (c *Client) Home(ctx context.Context) (*HomeSummary, error) {
	if c.tokens.Token() == "" {
		return nil, &AuthError{Message: ErrNoToken.Error()}
	}

	summary := &HomeSummary{}
	if err := c.getJSON(ctx, homePath, nil, summary); err != nil {
		return nil, fmt.Errorf("fetching home summary: %w", err)
	}

	return summary, nil
}
