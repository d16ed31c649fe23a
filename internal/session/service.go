package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/pkg/apperrors"
	"github.com/mkaraca/careergate/internal/pkg/rolenav"
	"github.com/mkaraca/careergate/internal/upstream"
)

// Service is the single source of truth for the current user and role. It
// delegates authentication to the upstream client and owns the persisted
// session record's lifecycle.
type Service struct {
	store   Store
	clients *upstream.Clients
	logger  zerolog.Logger

	enrichWG sync.WaitGroup
}

// NewService creates a session Service over the given store and clients.
func NewService(store Store, clients *upstream.Clients, logger zerolog.Logger) *Service {
	return &Service{
		store:   store,
		clients: clients,
		logger:  logger,
	}
}

// Current returns the session for sid without upstream validation.
func (s *Service) Current(ctx context.Context, sid string) (models.Session, error) {
	rec, ok, err := s.store.Load(ctx, sid)
	if err != nil {
		return models.Session{SID: sid}, err
	}
	if !ok || !rec.Authenticated() {
		return models.Session{SID: sid}, nil
	}
	return sessionFromRecord(sid, rec), nil
}

// Initialize rehydrates the session at page load. Student, company and
// faculty sessions are trusted from the persisted record without a network
// round-trip; only admin sessions are verified against the backend, and a
// failed verification clears the session. The asymmetry mirrors how the
// platform has always behaved.
func (s *Service) Initialize(ctx context.Context, sid string) (models.Session, error) {
	rec, ok, err := s.store.Load(ctx, sid)
	if err != nil {
		return models.Session{SID: sid}, err
	}
	if !ok || !rec.Authenticated() {
		return models.Session{SID: sid}, nil
	}

	if rec.UserType == models.RoleAdmin {
		token := rec.AdminToken
		if token == "" || tokenExpired(token) {
			s.logger.Warn().Str("sid", sid).Msg("Admin session has no usable token, clearing")
			if err := s.store.Clear(ctx, sid); err != nil {
				return models.Session{SID: sid}, err
			}
			return models.Session{SID: sid}, apperrors.ErrSessionInvalid
		}
		if err := s.clients.Auth.AdminVerify(ctx, token); err != nil {
			s.logger.Warn().Err(err).Str("sid", sid).Msg("Admin token verification failed, clearing session")
			if err := s.store.Clear(ctx, sid); err != nil {
				return models.Session{SID: sid}, err
			}
			return models.Session{SID: sid}, apperrors.ErrSessionInvalid
		}
	} else if rec.Name == "" && rec.Email == "" {
		s.spawnEnrich(sid, rec)
	}

	return sessionFromRecord(sid, rec), nil
}

// Login authenticates the credentials upstream, persists the identity and
// returns the session together with the role-routed redirect path. Failures
// come back as errors; nothing is thrown past this boundary.
func (s *Service) Login(ctx context.Context, sid string, creds models.Credentials) (models.Session, string, error) {
	result, err := s.clients.Auth.Login(ctx, creds)
	if err != nil {
		return models.Session{SID: sid}, rolenav.LoginPath, err
	}

	rec := Record{
		UserID:   result.UserID,
		UserType: creds.UserType,
	}
	if err := s.store.Save(ctx, sid, rec); err != nil {
		return models.Session{SID: sid}, rolenav.LoginPath, err
	}

	s.spawnEnrich(sid, rec)

	return sessionFromRecord(sid, rec), rolenav.ProfilePath(creds.UserType, result.UserID), nil
}

// Register creates an account upstream and establishes the session the same
// way a login would.
func (s *Service) Register(ctx context.Context, sid string, payload upstream.RegisterPayload, role models.Role) (models.Session, string, error) {
	result, err := s.clients.Auth.Register(ctx, payload)
	if err != nil {
		return models.Session{SID: sid}, rolenav.LoginPath, err
	}

	rec := Record{
		UserID:   result.UserID,
		UserType: role,
	}
	if err := s.store.Save(ctx, sid, rec); err != nil {
		return models.Session{SID: sid}, rolenav.LoginPath, err
	}

	s.spawnEnrich(sid, rec)

	return sessionFromRecord(sid, rec), rolenav.ProfilePath(role, result.UserID), nil
}

// AdminLogin authenticates an admin and persists its verified token.
func (s *Service) AdminLogin(ctx context.Context, sid, email, password string) (models.Session, string, error) {
	result, err := s.clients.Auth.AdminLogin(ctx, email, password)
	if err != nil {
		return models.Session{SID: sid}, rolenav.LoginPath, err
	}

	rec := Record{
		UserID:     result.AdminID,
		UserType:   models.RoleAdmin,
		Name:       result.Name,
		Email:      result.Email,
		AdminToken: result.Token,
	}
	if err := s.store.Save(ctx, sid, rec); err != nil {
		return models.Session{SID: sid}, rolenav.LoginPath, err
	}

	return sessionFromRecord(sid, rec), rolenav.ProfilePath(models.RoleAdmin, result.AdminID), nil
}

// Logout clears the persisted session. Idempotent: logging out an
// unauthenticated session is a no-op, never an error.
func (s *Service) Logout(ctx context.Context, sid string) error {
	return s.store.Clear(ctx, sid)
}

// AddRegisteredFair records a confirmed fair registration in the session.
func (s *Service) AddRegisteredFair(ctx context.Context, sid string, fairID int64) error {
	return s.mutate(ctx, sid, func(rec *Record) {
		for _, id := range rec.RegisteredFairs {
			if id == fairID {
				return
			}
		}
		rec.RegisteredFairs = append(rec.RegisteredFairs, fairID)
	})
}

// RemoveRegisteredFair drops a fair from the session's registered list. Only
// called after the backend confirmed the cancellation.
func (s *Service) RemoveRegisteredFair(ctx context.Context, sid string, fairID int64) error {
	return s.mutate(ctx, sid, func(rec *Record) {
		fairs := make([]int64, 0, len(rec.RegisteredFairs))
		for _, id := range rec.RegisteredFairs {
			if id != fairID {
				fairs = append(fairs, id)
			}
		}
		rec.RegisteredFairs = fairs
	})
}

// MergeProfile folds refreshed display fields into the session record.
func (s *Service) MergeProfile(ctx context.Context, sid, name, email string) error {
	return s.mutate(ctx, sid, func(rec *Record) {
		if name != "" {
			rec.Name = name
		}
		if email != "" {
			rec.Email = email
		}
	})
}

// Wait blocks until in-flight profile enrichments finish. Used on shutdown.
func (s *Service) Wait() {
	s.enrichWG.Wait()
}

func (s *Service) mutate(ctx context.Context, sid string, fn func(*Record)) error {
	rec, ok, err := s.store.Load(ctx, sid)
	if err != nil {
		return err
	}
	if !ok || !rec.Authenticated() {
		return apperrors.ErrUnauthenticated
	}
	fn(&rec)
	return s.store.Save(ctx, sid, rec)
}

// spawnEnrich fires the background effect that fills the session's profile
// fields once a session becomes authenticated.
func (s *Service) spawnEnrich(sid string, rec Record) {
	s.enrichWG.Add(1)
	go func() {
		defer s.enrichWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		s.enrich(ctx, sid, rec)
	}()
}

// enrich fetches the role's profile and merges it into the session. A 401 or
// 404 from the profile endpoint means the stored identity is stale, so the
// session is cleared. Network failures are logged and swallowed: the session
// stays authenticated with an incomplete profile, and there is no retry.
func (s *Service) enrich(ctx context.Context, sid string, rec Record) {
	var name, email string
	var err error

	switch rec.UserType {
	case models.RoleStudent:
		var p *models.StudentProfile
		if p, err = s.clients.Student.Profile(ctx, rec.UserID); err == nil {
			name = joinName(p.FirstName, p.LastName)
			email = p.Email
		}
	case models.RoleCompany:
		var p *models.CompanyProfile
		if p, err = s.clients.Company.Profile(ctx, rec.UserID); err == nil {
			name = p.Name
			email = p.Email
		}
	case models.RoleFaculty:
		var p *models.FacultyProfile
		if p, err = s.clients.Faculty.Profile(ctx, rec.UserID); err == nil {
			name = joinName(p.FirstName, p.LastName)
			email = p.Email
		}
	default:
		return
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) || errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Warn().Err(err).Str("sid", sid).Msg("Profile fetch rejected, clearing session")
			if cerr := s.store.Clear(context.WithoutCancel(ctx), sid); cerr != nil {
				s.logger.Error().Err(cerr).Str("sid", sid).Msg("Failed to clear invalid session")
			}
			return
		}
		s.logger.Warn().Err(err).Str("sid", sid).Msg("Profile enrichment failed, keeping session")
		return
	}

	if merr := s.MergeProfile(ctx, sid, name, email); merr != nil {
		s.logger.Warn().Err(merr).Str("sid", sid).Msg("Failed to merge enriched profile")
	}
}

func sessionFromRecord(sid string, rec Record) models.Session {
	return models.Session{
		SID:             sid,
		Authenticated:   rec.Authenticated(),
		UserID:          rec.UserID,
		UserType:        rec.UserType,
		Name:            rec.Name,
		Email:           rec.Email,
		RegisteredFairs: rec.RegisteredFairs,
		LastFairID:      rec.LastFairID,
	}
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// tokenExpired reports whether the stored admin token carries an exp claim
// that is already past. The signature is the backend's to verify; only the
// expiry is checked locally before spending a round-trip on it.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
