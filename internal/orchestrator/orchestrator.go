package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultContentType = "application/octet-stream"
	uploadTimeout      = 10 * time.Minute
)

var (
	ErrBusy   = errors.New("orchestrator: an upload is already in progress")
	ErrNoFile = errors.New("orchestrator: no file selected")
	ErrFailed = errors.New("orchestrator: upload failed")
)

// noFileText is what the user sees when uploading without a selection.
const noFileText = "Please select a file"

type Option func(*Orchestrator)

// WithObserver registers fn to receive a Snapshot after every change.
// fn is called outside the orchestrator's lock.
func WithObserver(fn func(Snapshot)) Option {
	return func(o *Orchestrator) { o.observer = fn }
}

// WithHTTPClient replaces the default resty client used to talk to the
// uploader service. Its base URL is overwritten with the server URL. It is
// never used for the object store.
func WithHTTPClient(c *resty.Client) Option {
	return func(o *Orchestrator) { o.c = c }
}

// Orchestrator drives one file at a time through either the server relay or
// a direct presigned upload. It is safe for concurrent use.
type Orchestrator struct {
	c        *resty.Client
	store    *resty.Client
	observer func(Snapshot)

	mu       sync.Mutex
	state    State
	file     *File
	progress int
	status   string
	result   *Result
	errText  string
}

func New(serverURL string, opts ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range opts {
		opt(o)
	}
	if o.c == nil {
		o.c = resty.New().SetTimeout(uploadTimeout)
	}
	o.c.SetBaseURL(serverURL)
	// presigned URLs carry their own authorization
	o.store = resty.New().SetTimeout(uploadTimeout)
	return o
}

// Select makes f the file to upload and clears any previous outcome.
func (o *Orchestrator) Select(f File) error {
	o.mu.Lock()
	if o.state == Uploading {
		o.mu.Unlock()
		return ErrBusy
	}
	o.file = &f
	o.state = Selecting
	o.result = nil
	o.errText = ""
	o.status = ""
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.notify(snap)
	return nil
}

func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	VideoURL string `json:"video_url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Error    string `json:"error"`
}

// UploadViaServer sends the file to the server's /upload endpoint, which
// relays it to the object store.
func (o *Orchestrator) UploadViaServer(ctx context.Context) (Result, error) {
	f, err := o.begin()
	if err != nil {
		return Result{}, err
	}

	o.step(25, "Uploading file to server...")

	var body uploadResponse
	_, err = o.c.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetMultipartField("file", f.Name, contentTypeOf(f), bytes.NewReader(f.Content)).
		SetResult(&body).
		SetError(&body).
		Post("/upload")

	o.step(75, "Server processing and uploading to R2...")

	if err != nil {
		return o.fail(err.Error())
	}
	if !body.Success {
		msg := body.Error
		if msg == "" {
			msg = "Upload failed"
		}
		return o.fail(msg)
	}

	o.step(100, "Upload completed successfully!")
	return o.succeed(Result{
		Success:  true,
		VideoURL: body.VideoURL,
		Message:  "Upload successful via server!",
		Filename: body.Filename,
		Size:     body.Size,
		Type:     body.Type,
	}), nil
}

type uploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

type uploadURLResponse struct {
	Success      bool   `json:"success"`
	PresignedURL string `json:"presignedUrl"`
	PublicURL    string `json:"publicUrl"`
	Error        string `json:"error"`
}

// UploadDirect asks the server for a presigned URL and PUTs the bytes to the
// object store itself. Nothing is sent to the store if issuance fails.
func (o *Orchestrator) UploadDirect(ctx context.Context) (Result, error) {
	f, err := o.begin()
	if err != nil {
		return Result{}, err
	}
	ct := contentTypeOf(f)

	o.step(0, "Generating presigned URL...")

	var issued uploadURLResponse
	_, err = o.c.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetBody(uploadURLRequest{Filename: f.Name, ContentType: ct}).
		SetResult(&issued).
		SetError(&issued).
		Post("/generate-upload-url")
	if err != nil {
		return o.fail(err.Error())
	}
	if !issued.Success {
		msg := issued.Error
		if msg == "" {
			msg = "Failed to generate presigned URL"
		}
		return o.fail(msg)
	}

	o.step(25, "Uploading file directly to R2...")

	resp, err := o.store.R().
		SetContext(ctx).
		SetHeader("Content-Type", ct).
		SetBody(f.Content).
		Put(issued.PresignedURL)
	if err != nil {
		return o.fail(err.Error())
	}
	if !resp.IsSuccess() {
		return o.fail(fmt.Sprintf("Upload failed with status: %d", resp.StatusCode()))
	}

	o.step(100, "Upload completed successfully!")
	return o.succeed(Result{
		Success:  true,
		VideoURL: issued.PublicURL,
		Message:  "Upload successful via presigned URL!",
		Filename: f.Name,
		Size:     f.Size(),
		Type:     ct,
	}), nil
}

func (o *Orchestrator) begin() (File, error) {
	o.mu.Lock()
	if o.state == Uploading {
		o.mu.Unlock()
		return File{}, ErrBusy
	}
	if o.file == nil {
		o.errText = noFileText
		snap := o.snapshotLocked()
		o.mu.Unlock()
		o.notify(snap)
		return File{}, ErrNoFile
	}
	f := *o.file
	o.state = Uploading
	o.errText = ""
	o.progress = 0
	o.status = ""
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.notify(snap)
	return f, nil
}

func (o *Orchestrator) step(progress int, status string) {
	o.mu.Lock()
	o.progress = progress
	o.status = status
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.notify(snap)
}

func (o *Orchestrator) succeed(r Result) Result {
	o.mu.Lock()
	o.state = Succeeded
	o.result = &r
	o.file = nil
	o.progress = 0
	o.status = ""
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.notify(snap)
	return r
}

func (o *Orchestrator) fail(msg string) (Result, error) {
	o.mu.Lock()
	o.state = Failed
	o.errText = "Upload failed: " + msg
	o.progress = 0
	o.status = ""
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.notify(snap)
	return Result{}, fmt.Errorf("%w: %s", ErrFailed, msg)
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	s := Snapshot{
		State:    o.state,
		Progress: o.progress,
		Status:   o.status,
		Error:    o.errText,
	}
	if o.file != nil {
		s.FileName = o.file.Name
	}
	if o.result != nil {
		r := *o.result
		s.Result = &r
	}
	return s
}

func (o *Orchestrator) notify(s Snapshot) {
	if o.observer != nil {
		o.observer(s)
	}
}

func contentTypeOf(f File) string {
	if f.ContentType == "" {
		return defaultContentType
	}
	return f.ContentType
}
