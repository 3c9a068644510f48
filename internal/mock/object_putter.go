package mock

import "context"

// ObjectPutter implements port.ObjectPutter for tests.
type ObjectPutter struct {
	StatusOut int
	Err       error

	Called         bool
	GotURL         string
	GotContentType string
	GotBody        []byte
}

func (m *ObjectPutter) Put(ctx context.Context, presignedURL, contentType string, body []byte) (int, error) {
	m.Called = true
	m.GotURL = presignedURL
	m.GotContentType = contentType
	m.GotBody = body
	if m.Err != nil {
		return 0, m.Err
	}
	return m.StatusOut, nil
}
