package access

import (
	"net/http"
	"net/url"
	"strings"

	"elearning-storefront/internal/domain/user"
)

type Outcome int

const (
	Allow Outcome = iota
	Redirect
	Deny
)

const (
	LoginPath        = "/login"
	HomePath         = "/"
	MsgLoginRequired = "login_required"
)

// Request is everything the gate looks at.
type Request struct {
	Path string
	// OriginalURL is the absolute URL preserved as the login callback.
	OriginalURL string
	HasSession  bool
	Role        user.Role
}

type Decision struct {
	Outcome  Outcome
	Location string // set for Redirect
	Status   int    // set for Deny
	Message  string // set for Deny
}

var (
	pagePrefixes = []string{"/checkout", "/orders", "/enrollments", "/my-courses"}
	apiPrefixes  = []string{
		"/api/orders",
		"/api/payments",
		"/api/enrollments",
		"/api/my-courses",
		"/api/checkout",
		"/api/coupons",
		"/api/auth/me",
		"/api/auth/logout",
	}
)

const (
	adminPagePrefix = "/admin"
	adminAPIPrefix  = "/api/admin"
)

// Evaluate decides whether a request may proceed. It is a pure function of its input.
func Evaluate(r Request) Decision {
	switch {
	case under(r.Path, adminAPIPrefix):
		if !r.HasSession {
			return deny(http.StatusUnauthorized, "Unauthorized")
		}
		if !r.Role.IsAdmin() {
			return deny(http.StatusForbidden, "Forbidden")
		}
	case under(r.Path, adminPagePrefix):
		if !r.HasSession {
			return redirect(loginURL(r.OriginalURL, ""))
		}
		if !r.Role.IsAdmin() {
			return redirect(HomePath)
		}
	case underAny(r.Path, apiPrefixes):
		if !r.HasSession {
			return deny(http.StatusUnauthorized, "Unauthorized")
		}
	case underAny(r.Path, pagePrefixes):
		if !r.HasSession {
			return redirect(loginURL(r.OriginalURL, MsgLoginRequired))
		}
	}
	return Decision{Outcome: Allow}
}

// RequiresSession reports whether the path is gated at all.
func RequiresSession(path string) bool {
	return under(path, adminAPIPrefix) || under(path, adminPagePrefix) ||
		underAny(path, apiPrefixes) || underAny(path, pagePrefixes)
}

func loginURL(callback, msg string) string {
	q := url.Values{}
	q.Set("callbackUrl", callback)
	if msg != "" {
		q.Set("msg", msg)
	}
	return LoginPath + "?" + q.Encode()
}

func under(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func underAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if under(path, p) {
			return true
		}
	}
	return false
}

func redirect(location string) Decision {
	return Decision{Outcome: Redirect, Location: location}
}

func deny(status int, msg string) Decision {
	return Decision{Outcome: Deny, Status: status, Message: msg}
}
