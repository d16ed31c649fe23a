package upstream_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/mkaraca/careergate/internal/pkg/apperrors"
)

func TestUploadResume_ProgressIsMonotonicAndTerminal(t *testing.T) {
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/student/42/resume" {
			http.NotFound(w, r)
			return
		}
		file, _, err := r.FormFile("resume")
		if err != nil {
			http.Error(w, "missing file", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if _, err := io.Copy(io.Discard, file); err != nil {
			http.Error(w, "read failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	var reports []float64
	progress := func(pct float64) {
		reports = append(reports, pct)
	}

	resume := strings.NewReader(strings.Repeat("resume content ", 4096))
	err := clients.Student.UploadResume(context.Background(), 42, "resume.pdf", resume, progress)
	if err != nil {
		t.Fatalf("UploadResume failed: %v", err)
	}

	if len(reports) == 0 {
		t.Fatal("no progress reported")
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] < reports[i-1] {
			t.Fatalf("progress decreased at %d: %v -> %v", i, reports[i-1], reports[i])
		}
	}
	if last := reports[len(reports)-1]; last != 100 {
		t.Errorf("final progress = %v, want 100", last)
	}
	for _, pct := range reports {
		if pct < 0 || pct > 100 {
			t.Errorf("progress %v out of range", pct)
		}
	}
}

func TestUploadResume_UpstreamRejection(t *testing.T) {
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"message":"file too large"}`))
	}))

	err := clients.Student.UploadResume(context.Background(), 42, "resume.pdf", strings.NewReader("x"), nil)
	if err == nil {
		t.Fatal("expected error for rejected upload")
	}

	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *apperrors.APIError", err)
	}
	if apiErr.Status != http.StatusRequestEntityTooLarge {
		t.Errorf("Status = %d, want 413", apiErr.Status)
	}
}

func TestUploadResume_NilProgressIsFine(t *testing.T) {
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if err := clients.Student.UploadResume(context.Background(), 42, "resume.pdf", strings.NewReader("x"), nil); err != nil {
		t.Fatalf("UploadResume failed: %v", err)
	}
}
