package services_test

import (
	"crypto/sha256"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkaraca/careergate/internal/pkg/sealer"
	"github.com/mkaraca/careergate/internal/session"
	"github.com/mkaraca/careergate/internal/upstream"
)

// newBackend wires a fake backend, upstream clients and a session service
// over a throwaway sqlite store.
func newBackend(t *testing.T, handler http.Handler) (*upstream.Clients, *session.Service, *session.SQLStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	core, err := upstream.NewClient(upstream.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, srv.Client(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	clients := upstream.NewClients(core)

	key := sha256.Sum256([]byte("services-test-key"))
	seal, err := sealer.New(key[:])
	if err != nil {
		t.Fatalf("sealer.New: %v", err)
	}
	store, err := session.NewSQLStore(filepath.Join(t.TempDir(), "sessions.db"), seal, 0)
	if err != nil {
		t.Fatalf("NewSQLStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return clients, session.NewService(store, clients, zerolog.Nop()), store
}
