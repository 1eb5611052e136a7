package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/usecase/shared"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	ProviderGoogle = "google"

	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleProvider(cfg config.OAuthConfig) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

func (g *GoogleProvider) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (g *GoogleProvider) Exchange(ctx context.Context, code string) (*shared.OAuthIdentity, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, errs.Wrap(err, "failed to exchange code")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build userinfo request")
	}

	resp, err := g.config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to get user info")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read user info")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("google userinfo returned %d", resp.StatusCode))
	}

	var info struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, errs.Wrap(err, "failed to decode user info")
	}

	return &shared.OAuthIdentity{
		Provider:      ProviderGoogle,
		Subject:       info.Sub,
		Email:         info.Email,
		EmailVerified: info.EmailVerified,
		Name:          info.Name,
	}, nil
}
