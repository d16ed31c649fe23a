package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/app/services"
	"github.com/mkaraca/careergate/internal/session"
)

func TestUpdateOwnProfileRefreshesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /student/42/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"firstName":"Ada","lastName":"King","email":"ada.king@uni.edu"}`))
	})

	clients, sessions, store := newBackend(t, mux)
	ctx := context.Background()

	rec := session.Record{UserID: 42, UserType: models.RoleStudent, Name: "Ada Lovelace", Email: "ada@uni.edu"}
	if err := store.Save(ctx, "sid-profile", rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	sess, _ := sessions.Current(ctx, "sid-profile")

	svc := services.NewProfileService(clients.Student, clients.Company, clients.Faculty, sessions)
	updated, err := svc.UpdateStudentProfile(ctx, sess, 42, models.StudentProfile{LastName: "King"})
	if err != nil {
		t.Fatalf("UpdateStudentProfile: %v", err)
	}
	if updated.LastName != "King" {
		t.Errorf("LastName = %q, want King", updated.LastName)
	}

	got, _ := sessions.Current(ctx, "sid-profile")
	if got.Name != "Ada King" {
		t.Errorf("session Name = %q, want refreshed name", got.Name)
	}
	if got.Email != "ada.king@uni.edu" {
		t.Errorf("session Email = %q, want refreshed email", got.Email)
	}
}

func TestUpdateOtherProfileLeavesSessionAlone(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /company/7/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Initech","email":"jobs@initech.example"}`))
	})

	clients, sessions, store := newBackend(t, mux)
	ctx := context.Background()

	rec := session.Record{UserID: 1, UserType: models.RoleAdmin, Name: "Root", Email: "root@uni.edu"}
	if err := store.Save(ctx, "sid-admin", rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	sess, _ := sessions.Current(ctx, "sid-admin")

	svc := services.NewProfileService(clients.Student, clients.Company, clients.Faculty, sessions)
	if _, err := svc.UpdateCompanyProfile(ctx, sess, 7, models.CompanyProfile{Name: "Initech"}); err != nil {
		t.Fatalf("UpdateCompanyProfile: %v", err)
	}

	got, _ := sessions.Current(ctx, "sid-admin")
	if got.Name != "Root" || got.Email != "root@uni.edu" {
		t.Errorf("session changed: %q/%q", got.Name, got.Email)
	}
}

func TestCompanyDashboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /company/7/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"fairs":[{"fairId":3,"name":"Spring Fair","date":"2026-04-01","location":"Hall A"}],
			"positions":[{"positionId":9,"name":"Backend Intern","companyId":7,"intern":true}],
			"applicants":{"9":12}
		}`))
	})

	clients, sessions, _ := newBackend(t, mux)
	svc := services.NewProfileService(clients.Student, clients.Company, clients.Faculty, sessions)

	dashboard, err := svc.CompanyDashboard(context.Background(), 7)
	if err != nil {
		t.Fatalf("CompanyDashboard: %v", err)
	}
	if len(dashboard.Fairs) != 1 || dashboard.Fairs[0].FairID != 3 {
		t.Errorf("Fairs = %+v", dashboard.Fairs)
	}
	if len(dashboard.Positions) != 1 || dashboard.Positions[0].PositionID != 9 {
		t.Errorf("Positions = %+v", dashboard.Positions)
	}
	if dashboard.Applicants["9"] != 12 {
		t.Errorf("Applicants = %v", dashboard.Applicants)
	}
}
