package rolenav_test

import (
	"testing"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/pkg/rolenav"
)

func TestProfilePath(t *testing.T) {
	tests := []struct {
		name   string
		role   models.Role
		userID int64
		want   string
	}{
		{"student", models.RoleStudent, 42, "/student/42"},
		{"company", models.RoleCompany, 7, "/company/7"},
		{"faculty", models.RoleFaculty, 3, "/faculty/3"},
		{"admin", models.RoleAdmin, 1, "/admin/1"},
		{"unknown role falls back to login", models.Role("ghost"), 42, rolenav.LoginPath},
		{"empty role falls back to login", models.Role(""), 42, rolenav.LoginPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rolenav.ProfilePath(tt.role, tt.userID); got != tt.want {
				t.Errorf("ProfilePath(%q, %d) = %q, want %q", tt.role, tt.userID, got, tt.want)
			}
		})
	}
}

func TestProfilePathIsDeterministic(t *testing.T) {
	// Same inputs must always yield the same path; routing decisions carry
	// no hidden state.
	for i := 0; i < 3; i++ {
		if got := rolenav.ProfilePath(models.RoleStudent, 42); got != "/student/42" {
			t.Fatalf("call %d: ProfilePath changed to %q", i, got)
		}
	}
}
