package transport

import (
	"context"
	"time"

	"github.com/fhuszti/r2-uploader-go/internal/port"

	"github.com/go-resty/resty/v2"
)

// DefaultPutTimeout bounds a single relay PUT, body included.
const DefaultPutTimeout = 10 * time.Minute

// Putter sends raw bytes to presigned URLs.
type Putter struct {
	c *resty.Client
}

var _ port.ObjectPutter = (*Putter)(nil)

func NewPutter() *Putter {
	return NewPutterWithClient(resty.New().SetTimeout(DefaultPutTimeout))
}

func NewPutterWithClient(c *resty.Client) *Putter {
	return &Putter{c: c}
}

// Put returns the status code of the object store's answer. Only transport
// failures are reported as errors.
func (p *Putter) Put(ctx context.Context, presignedURL, contentType string, body []byte) (int, error) {
	resp, err := p.c.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Put(presignedURL)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode(), nil
}
