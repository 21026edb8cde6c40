package careerbooster

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

const coursesPath = "/api/courses"

type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type Courses struct {
	Items []*Course
}

func (c *Courses) Len() int {
	return len(c.Items)
}

// Courses lists course recommendations for a category. The endpoint is
// public, no session is required.
func (c *Client) Courses(ctx context.Context, category string) (*Courses, error) {
	var q url.Values
	if category != "" {
		q = url.Values{"category": []string{category}}
	}

	// the payload shape is loosely specified, decode the elements we know
	var response struct {
		Elements []map[string]any `json:"elements"`
	}
	if err := c.getJSON(ctx, coursesPath, q, &response); err != nil {
		return nil, fmt.Errorf("fetching courses: %w", err)
	}

	var items []*Course
	cfg := &mapstructure.DecoderConfig{
		Result:  &items,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(response.Elements); err != nil {
		return nil, fmt.Errorf("decoding courses: %w", err)
	}

	return &Courses{Items: items}, nil
}
