package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mkaraca/careergate/internal/app/services"
)

func TestAnnouncementListIsNewestFirst(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/1/announcement", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Deliberately shuffled by the backend.
		_, _ = w.Write([]byte(`[
			{"id":2,"message":"middle","timestamp":"2026-03-02T10:00:00Z"},
			{"id":3,"message":"newest","timestamp":"2026-03-03T10:00:00Z"},
			{"id":1,"message":"oldest","timestamp":"2026-03-01T10:00:00Z"}
		]`))
	})

	clients, _, _ := newBackend(t, mux)
	svc := services.NewAnnouncementService(clients.Admin)

	announcements, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(announcements) != 3 {
		t.Fatalf("len = %d, want 3", len(announcements))
	}
	wantOrder := []int64{3, 2, 1}
	for i, want := range wantOrder {
		if announcements[i].ID != want {
			t.Errorf("announcements[%d].ID = %d, want %d", i, announcements[i].ID, want)
		}
	}
	for i := 1; i < len(announcements); i++ {
		if announcements[i].Timestamp.After(announcements[i-1].Timestamp) {
			t.Errorf("timestamps out of order at %d", i)
		}
	}
}

func TestAnnouncementCreate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /admin/1/announcement", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["message"] == "" {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":4,"message":"` + body["message"] + `","timestamp":"2026-03-04T10:00:00Z"}`))
	})

	clients, _, _ := newBackend(t, mux)
	svc := services.NewAnnouncementService(clients.Admin)

	created, err := svc.Create(context.Background(), 1, "Fair moved to Hall B")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 4 || created.Message != "Fair moved to Hall B" {
		t.Errorf("created = %+v", created)
	}
}

func TestAnnouncementUpdateAndDelete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /admin/1/announcement/4", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":4,"message":"corrected","timestamp":"2026-03-04T10:00:00Z"}`))
	})
	deleted := false
	mux.HandleFunc("DELETE /admin/1/announcement/4", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusOK)
	})

	clients, _, _ := newBackend(t, mux)
	svc := services.NewAnnouncementService(clients.Admin)
	ctx := context.Background()

	updated, err := svc.Update(ctx, 1, 4, "corrected")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Message != "corrected" {
		t.Errorf("Message = %q, want corrected", updated.Message)
	}

	if err := svc.Delete(ctx, 1, 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("delete never reached the backend")
	}
}
