package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// ProgressFunc receives fractional upload progress in the range 0-100. The
// reported sequence is non-decreasing and ends at 100 before the upload is
// considered successful.
type ProgressFunc func(percentComplete float64)

// UploadResume streams a resume to the backend as a multipart form and
// reports progress through the callback. Each attempt reaches exactly one
// terminal outcome; there is no abort path.
func (s *StudentClient) UploadResume(ctx context.Context, studentID int64, filename string, resume io.Reader, progress ProgressFunc) error {
	var form bytes.Buffer
	writer := multipart.NewWriter(&form)

	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		return fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, resume); err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish upload form: %w", err)
	}

	body := &progressReader{
		r:      &form,
		total:  int64(form.Len()),
		report: progress,
	}

	path := fmt.Sprintf("/student/%d/resume", studentID)
	req, err := s.core.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = body.total

	if err := s.core.send(req, nil); err != nil {
		return err
	}

	// The transport may have buffered the tail; pin the terminal value.
	if progress != nil {
		progress(100)
	}
	return nil
}

// progressReader counts bytes handed to the transport. Progress can only
// grow because the read offset is monotonic.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.report != nil && p.total > 0 && n > 0 {
		pct := float64(p.read) * 100 / float64(p.total)
		if pct > 100 {
			pct = 100
		}
		p.report(pct)
	}
	return n, err
}
