package upstream

import (
	"context"
	"net/http"

	"github.com/mkaraca/careergate/internal/app/models"
)

// AuthClient talks to the login and registration endpoints.
type AuthClient struct {
	core *Client
}

// LoginResult is the upstream response to a successful login.
type LoginResult struct {
	UserID      int64  `json:"user_id"`
	RedirectURL string `json:"redirect_url"`
}

// Login authenticates a student, company or faculty account.
func (a *AuthClient) Login(ctx context.Context, creds models.Credentials) (*LoginResult, error) {
	body := map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
		"userType": string(creds.UserType),
	}

	var result LoginResult
	if err := a.core.do(ctx, http.MethodPost, "/login/", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterPayload is the account-creation request forwarded upstream.
type RegisterPayload struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	UserType    string `json:"userType"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// Register creates a new account and logs it in.
func (a *AuthClient) Register(ctx context.Context, payload RegisterPayload) (*LoginResult, error) {
	var result LoginResult
	if err := a.core.do(ctx, http.MethodPost, "/register/", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AdminSession is the upstream response to a successful admin login.
type AdminSession struct {
	AdminID int64  `json:"admin_id"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// AdminLogin authenticates an admin account and returns its API token.
func (a *AuthClient) AdminLogin(ctx context.Context, email, password string) (*AdminSession, error) {
	body := map[string]string{"email": email, "password": password}

	var result AdminSession
	if err := a.core.do(ctx, http.MethodPost, "/admin/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AdminVerify checks a stored admin token against the backend. Admin sessions
// are the only ones verified server-side on rehydration.
func (a *AuthClient) AdminVerify(ctx context.Context, token string) error {
	req, err := a.core.newRequest(ctx, http.MethodGet, "/admin/verify", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return a.core.send(req, nil)
}
