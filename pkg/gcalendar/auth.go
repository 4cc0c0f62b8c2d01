package gcalendar

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Authenticator manages the persisted OAuth session for calendar access.
//
// Session policy: load the persisted token; if it is still valid, use it as
// is. If it is stale but carries a refresh token, refresh silently and persist
// the fresh token before handing it out. Anything else requires the
// interactive authorization flow (scripts/gcal-auth) and surfaces ErrNoSession.
type Authenticator struct {
	config *oauth2.Config
	store  *TokenStore
}

// NewAuthenticator builds an authenticator from an OAuth Desktop App
// credentials file and a token store.
func NewAuthenticator(credentialsPath string, store *TokenStore) (*Authenticator, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %q: %w", credentialsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %q: %w", credentialsPath, err)
	}

	return &Authenticator{config: config, store: store}, nil
}

// OAuthConfig exposes the underlying config for the interactive auth flow.
func (a *Authenticator) OAuthConfig() *oauth2.Config {
	return a.config
}

// Token loads a usable token, refreshing and persisting it when necessary.
func (a *Authenticator) Token(ctx context.Context) (*oauth2.Token, error) {
	tok, err := a.store.Load()
	if err != nil {
		// A corrupt token file triggers re-authorization rather than a
		// fatal error; drop it so the next run starts clean.
		_ = a.store.Clear()
		return nil, fmt.Errorf("%w (stored token was unreadable: %v)", ErrNoSession, err)
	}
	if tok == nil {
		return nil, ErrNoSession
	}

	if tok.Valid() {
		return tok, nil
	}

	if tok.RefreshToken == "" {
		return nil, ErrNoSession
	}

	fresh, err := a.config.TokenSource(ctx, tok).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthExpired, err)
	}

	// Persist before use so a later run does not repeat the refresh.
	if err := a.store.Save(fresh); err != nil {
		return nil, fmt.Errorf("failed to persist refreshed session: %w", err)
	}
	return fresh, nil
}

// NewSession authenticates and returns a session bound to the Calendar API.
func (a *Authenticator) NewSession(ctx context.Context) (*Session, error) {
	tok, err := a.Token(ctx)
	if err != nil {
		return nil, err
	}
	return NewSessionFromHTTP(ctx, a.config.Client(ctx, tok))
}
