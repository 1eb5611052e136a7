package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"elearning-storefront/internal/domain/auth"
	"elearning-storefront/internal/domain/user"
	"elearning-storefront/internal/infra"
	"elearning-storefront/internal/pkg/clock"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/jwt"
	"elearning-storefront/internal/pkg/password"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/shared"
)

var (
	ErrInvalidCredentials    = errs.New("credentials rejected")
	ErrInvalidRegistration   = errs.New("invalid registration")
	ErrEmailTaken            = errs.New("email already registered")
	ErrAccountInactive       = errs.New("account is inactive")
	ErrSocialLoginDisabled   = errs.New("social login is not configured")
	ErrSocialLoginFailed     = errs.New("social login failed")
	ErrSocialEmailUnverified = errs.New("social account email is not verified")
	ErrTokenGeneration       = errs.New("token generation failed")
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is a freshly issued session and its signed token.
type AuthResult struct {
	Session   session.Session
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	GoogleAuthURL(state string) (string, error)
	// GoogleCallback signs in the Google account, creating a user on first login.
	GoogleCallback(ctx context.Context, code string) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	google     shared.OAuthProvider
	clock      clock.Clock
	hash       func(string) (string, error)
}

// NewAuthCommands accepts a nil google provider when social login is disabled.
func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, google shared.OAuthProvider, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		google:     google,
		clock:      clk,
		hash:       password.HashPassword,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	reg, err := auth.NewRegistration(in.Name, in.Email, in.Password, in.ConfirmPassword)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrInvalidRegistration), errs.ErrValidation)
	}

	hash, err := a.hash(reg.Credentials().Password().Value())
	if err != nil {
		if errs.Is(err, password.ErrTooLong) {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(reg.Name(), reg.Credentials().Email(), hash, a.clock.Now())

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, findErr := tx.Users().FindByEmail(ctx, u.Email())
		switch {
		case findErr == nil:
			return errs.Mark(ErrEmailTaken, errs.ErrConflict)
		case !infra.IsKind(findErr, infra.KindNotFound):
			return findErr
		}

		if createErr := tx.Users().Create(ctx, u); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(ErrEmailTaken, errs.ErrConflict)
			}
			return createErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", u.ID())
	return a.issue(u)
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, findErr := tx.Users().FindByEmail(ctx, credentials.Email())
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				// Same error as a wrong password so emails cannot be enumerated
				return errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
			}
			return findErr
		}
		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !u.CanUsePassword() {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}
	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}
	if !u.IsActive() {
		return nil, errs.Mark(ErrAccountInactive, errs.ErrUnauthorized)
	}

	a.touchLastLogin(ctx, u)
	return a.issue(u)
}

func (a *authCommandsImpl) GoogleAuthURL(state string) (string, error) {
	if a.google == nil {
		return "", errs.Mark(ErrSocialLoginDisabled, errs.ErrNotFound)
	}
	return a.google.AuthCodeURL(state), nil
}

func (a *authCommandsImpl) GoogleCallback(ctx context.Context, code string) (*AuthResult, error) {
	if a.google == nil {
		return nil, errs.Mark(ErrSocialLoginDisabled, errs.ErrNotFound)
	}

	identity, err := a.google.Exchange(ctx, code)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrSocialLoginFailed), errs.ErrUpstream)
	}
	if !identity.EmailVerified {
		return nil, errs.Mark(ErrSocialEmailUnverified, errs.ErrUnauthorized)
	}

	email, err := user.NewEmail(identity.Email)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrSocialLoginFailed), errs.ErrUpstream)
	}
	name, err := user.NewName(identity.Name)
	if err != nil {
		name, _ = user.NewName(strings.SplitN(email.Value(), "@", 2)[0])
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, findErr := a.findSocialUser(ctx, tx, user.Provider(identity.Provider), identity.Subject, email)
		if findErr == nil {
			u = found
			return nil
		}
		if !infra.IsKind(findErr, infra.KindNotFound) {
			return findErr
		}

		u = user.NewSocialUser(name, email, user.Provider(identity.Provider), identity.Subject, a.clock.Now())
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	if !u.IsActive() {
		return nil, errs.Mark(ErrAccountInactive, errs.ErrUnauthorized)
	}

	a.touchLastLogin(ctx, u)
	return a.issue(u)
}

// findSocialUser matches the provider account first, then an existing
// account with the same verified email.
func (a *authCommandsImpl) findSocialUser(ctx context.Context, tx shared.Tx, provider user.Provider, subject string, email user.Email) (*user.User, error) {
	u, err := tx.Users().FindByProviderSubject(ctx, provider, subject)
	if err == nil || !infra.IsKind(err, infra.KindNotFound) {
		return u, err
	}
	return tx.Users().FindByEmail(ctx, email)
}

func (a *authCommandsImpl) touchLastLogin(ctx context.Context, u *user.User) {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, u.ID())
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}
}

func (a *authCommandsImpl) issue(u *user.User) (*AuthResult, error) {
	sess := session.Session{
		UserID: u.ID(),
		Role:   u.Role(),
		Name:   u.Name().Value(),
		Email:  u.Email().Value(),
	}

	token, err := a.jwtService.GenerateToken(sess)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		Session:   sess,
		Token:     token,
		ExpiresIn: a.jwtService.Duration(),
	}, nil
}
