// Package rolenav maps an authenticated role to its profile route. The
// mapping is pure and total so navigation code can call it unconditionally:
// unknown roles land on the login route instead of an error.
package rolenav

import (
	"fmt"

	"github.com/mkaraca/careergate/internal/app/models"
)

// LoginPath is where every unrecognized role is sent.
const LoginPath = "/login"

// ProfilePath returns the profile route for the given role and user id.
// The same {role, id} pair always yields the same path.
func ProfilePath(role models.Role, userID int64) string {
	switch role {
	case models.RoleStudent:
		return fmt.Sprintf("/student/%d", userID)
	case models.RoleCompany:
		return fmt.Sprintf("/company/%d", userID)
	case models.RoleFaculty:
		return fmt.Sprintf("/faculty/%d", userID)
	case models.RoleAdmin:
		return fmt.Sprintf("/admin/%d", userID)
	default:
		return LoginPath
	}
}
