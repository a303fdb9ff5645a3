package mapsdk

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotInviteLink is returned by ParseInviteLink for URLs that are not
// invite deep links.
var ErrNotInviteLink = errors.New("mapsdk: not an invite link")

// BuildInviteLink renders a token as a deep link: <scheme>://invite/<token>.
func BuildInviteLink(scheme, token string) string {
	return scheme + "://invite/" + url.PathEscape(token)
}

// ParseInviteLink extracts the token from an invite deep link. Two forms
// are accepted:
//
//	wander://invite/<token>        (custom app scheme; host is "invite")
//	https://<host>/invite/<token>  (universal link; "invite" is a path segment)
//
// The token is opaque: any non-empty URL-safe path segment passes.
func ParseInviteLink(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrNotInviteLink
	}

	var token string
	switch {
	case u.Host == "invite":
		token = strings.Trim(u.EscapedPath(), "/")
	default:
		path := strings.Trim(u.EscapedPath(), "/")
		segments := strings.Split(path, "/")
		if len(segments) != 2 || segments[0] != "invite" {
			return "", ErrNotInviteLink
		}
		token = segments[1]
	}

	token, err = url.PathUnescape(token)
	if err != nil || token == "" || strings.Contains(token, "/") {
		return "", ErrNotInviteLink
	}
	return token, nil
}
