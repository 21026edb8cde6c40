package careerbooster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	uploadPath = "/api/cv/upload"

	// DefaultFileName is used when the picked file carries no name.
	DefaultFileName = "document.pdf"
	// DefaultAnalysisType mirrors the analysis the mobile client asks for.
	DefaultAnalysisType = "general_analysis"
)

// ErrUploadInFlight guards against dispatching a second upload while one is
// still uploading or processing.
var ErrUploadInFlight = errors.New("an upload is already in progress")

type UploadStatus string

const (
	UploadIdle       UploadStatus = "idle"
	UploadPreparing  UploadStatus = "preparing"
	UploadUploading  UploadStatus = "uploading"
	UploadProcessing UploadStatus = "processing"
	UploadDone       UploadStatus = "done"
	UploadFailed     UploadStatus = "failed"
)

// UploadFile is the picked binary payload plus its metadata as reported by
// the source.
type UploadFile struct {
	Name      string
	MediaType string
	Size      int64
	Content   io.Reader
}

// UploadJob tracks one CV analysis request from pick to terminal state.
type UploadJob struct {
	ID         string
	File       UploadFile
	Status     UploadStatus
	ResultText string
	Err        error

	transitions []UploadStatus
}

func newUploadJob(file UploadFile) *UploadJob {
	return &UploadJob{
		ID:          uuid.NewString(),
		File:        file,
		Status:      UploadIdle,
		transitions: []UploadStatus{UploadIdle},
	}
}

// Transitions returns every state the job has been in, in order.
func (j *UploadJob) Transitions() []UploadStatus {
	out := make([]UploadStatus, len(j.transitions))
	copy(out, j.transitions)

	return out
}

func (j *UploadJob) to(status UploadStatus) {
	j.Status = status
	j.transitions = append(j.transitions, status)
}

func (j *UploadJob) fail(err error) error {
	j.Err = err
	j.to(UploadFailed)

	return err
}

// Uploader serializes upload dispatch: at most one job may be in flight.
type Uploader struct {
	client *Client
	logger *zap.Logger

	mu     sync.Mutex
	active *UploadJob
}

func NewUploader(client *Client) *Uploader {
	return &Uploader{
		client: client,
		logger: client.logger,
	}
}

// Start runs the analysis flow for file and blocks until a terminal state.
// The returned job always reflects what happened, the error is non-nil
// exactly when the job ended failed. A new start discards any prior result;
// starting while a job is uploading or processing is rejected.
func (u *Uploader) Start(ctx context.Context, file UploadFile, analysisType string) (*UploadJob, error) {
	u.mu.Lock()
	if u.active != nil && (u.active.Status == UploadUploading || u.active.Status == UploadProcessing) {
		u.mu.Unlock()
		return nil, ErrUploadInFlight
	}
	job := newUploadJob(file)
	u.active = job
	u.mu.Unlock()

	return job, u.run(ctx, job, analysisType)
}

func (u *Uploader) run(ctx context.Context, job *UploadJob, analysisType string) error {
	job.to(UploadPreparing)

	if job.File.Size > MaxUploadSize {
		return job.fail(&PayloadTooLargeError{Size: job.File.Size, Limit: MaxUploadSize})
	}

	if u.client.tokens.Token() == "" {
		return job.fail(&AuthError{Message: ErrNoToken.Error()})
	}

	body, mediaType, err := buildUploadBody(&job.File, u.logger)
	if err != nil {
		return job.fail(err)
	}

	job.to(UploadUploading)

	if analysisType == "" {
		analysisType = DefaultAnalysisType
	}
	q := url.Values{"analysisType": []string{analysisType}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.client.BaseURL+uploadPath, body)
	if err != nil {
		return job.fail(err)
	}
	req = u.client.setHeaders(req)
	req.Header.Set("Content-Type", mediaType)
	req.URL.RawQuery = q.Encode()

	resp, err := u.client.request(req)
	if err != nil {
		return job.fail(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return job.fail(&TransportError{Err: err})
	}

	if err := statusError(resp.StatusCode, data); err != nil {
		return job.fail(err)
	}

	job.to(UploadProcessing)

	var result struct {
		Recommendations string `json:"recommendations"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return job.fail(fmt.Errorf("decoding analysis response: %w", err))
	}

	job.ResultText = result.Recommendations
	job.to(UploadDone)

	u.logger.Debug("analysis finished",
		zap.String("job_id", job.ID),
		zap.String("file", job.File.Name),
	)

	return nil
}

// buildUploadBody assembles the multipart body with the single part named
// "file". The part is always labelled as PDF: the backend accepts nothing
// else, so a permissive picker result is coerced rather than rejected.
func buildUploadBody(file *UploadFile, logger *zap.Logger) (io.Reader, string, error) {
	if file.Name == "" {
		file.Name = DefaultFileName
	}

	if file.MediaType != "" && file.MediaType != PDFMediaType {
		logger.Warn("coercing non-PDF media type, the backend may still reject the content",
			zap.String("file", file.Name),
			zap.String("reported_type", file.MediaType),
		)
	}

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	header.Set("Content-Type", PDFMediaType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}

	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &b, w.FormDataContentType(), nil
}
