package careerbooster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/careerbooster/cb-cli/internal/cvdraft"

	"go.uber.org/zap"
)

const (
	generatorPath = "/api/cv-generator"

	// DefaultTemplate names the rendered layout the backend applies when
	// the user does not pick one.
	DefaultTemplate = "modern"
)

// CreateCV submits the whole draft and returns the server-assigned record
// identifier. A non-2xx answer is a hard failure carrying the raw body; the
// export step must not run in that case.
func (c *Client) CreateCV(ctx context.Context, draft *cvdraft.Draft) (string, error) {
	var created struct {
		ID string `json:"id"`
	}

	if err := c.postJSON(ctx, generatorPath, draft, &created); err != nil {
		return "", fmt.Errorf("creating CV record: %w", err)
	}

	if created.ID == "" {
		return "", fmt.Errorf("creating CV record: server returned no id")
	}

	c.logger.Debug("CV record created", zap.String("id", created.ID))

	return created.ID, nil
}

// Generate runs the two-step protocol: create the record, then fetch the
// rendered document. A failed create aborts before any export request is
// made. When the export fails after a successful create, the record id is
// still returned so the caller can fetch the document again later; the
// orphaned server-side record is accepted.
func (c *Client) Generate(ctx context.Context, draft *cvdraft.Draft, template string) (string, []byte, error) {
	id, err := c.CreateCV(ctx, draft)
	if err != nil {
		return "", nil, err
	}

	doc, err := c.ExportPDF(ctx, id, template)
	if err != nil {
		return id, nil, err
	}

	return id, doc, nil
}

// ExportPDF fetches the rendered document for a created record. The request
// is idempotent for a given id and template, so the same document can be
// fetched again for separate view and share actions.
func (c *Client) ExportPDF(ctx context.Context, id, template string) ([]byte, error) {
	if id == "" {
		return nil, fmt.Errorf("record id is required")
	}
	if template == "" {
		template = DefaultTemplate
	}

	path := fmt.Sprintf("%s/%s/export/pdf", generatorPath, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	req = c.setHeaders(req)
	req.URL.RawQuery = url.Values{"template": []string{template}}.Encode()

	resp, err := c.request(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if err := statusError(resp.StatusCode, data); err != nil {
		return nil, fmt.Errorf("exporting PDF for record %s: %w", id, err)
	}

	c.logger.Debug("exported PDF",
		zap.String("id", id),
		zap.String("template", template),
		zap.Int("bytes", len(data)),
	)

	return data, nil
}
