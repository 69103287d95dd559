package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-nft-market/models"
)

const basicAuthPrefix = "Basic "

// ErrBadAuthRequest is matched by every error returned from [ParseBasicAuth].
var ErrBadAuthRequest = errors.New("bad request")

// Reasons a Basic Authorization header is rejected.
var (
	ErrAuthorizationHeaderMissing = errors.New("the `Authorization` header was missing")
	ErrAuthorizationHeaderNotText = errors.New("the `Authorization` header was not a valid UTF-8 string")
	ErrNotBasicScheme             = errors.New("the authorization scheme was not `Basic`")
	ErrInvalidBase64Credentials   = errors.New("failed to base64-decode `Basic` credentials")
	ErrCredentialsNotUTF8         = errors.New("the decoded credential string is not valid UTF-8")
	ErrUsernameMissing            = errors.New("a username must be provided in `Basic` auth")
	ErrPasswordMissing            = errors.New("a password must be provided in `Basic` auth")
)

// ParseBasicAuth extracts the username and password from the Authorization
// header:
//
//	Authorization: Basic base64(username:password)
//
// The decoded text is split on its first ':' so the password may itself
// contain ':'. An empty password is accepted, an empty username is not.
// Every failure wraps [ErrBadAuthRequest] and one of the reason errors above.
func ParseBasicAuth(header http.Header) (models.Credentials, error) {
	values := header.Values("Authorization")
	if len(values) == 0 {
		return models.Credentials{}, badAuthRequest(ErrAuthorizationHeaderMissing)
	}

	value := values[0]
	if !utf8.ValidString(value) {
		return models.Credentials{}, badAuthRequest(ErrAuthorizationHeaderNotText)
	}

	encoded, ok := strings.CutPrefix(value, basicAuthPrefix)
	if !ok {
		return models.Credentials{}, badAuthRequest(ErrNotBasicScheme)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return models.Credentials{}, badAuthRequest(fmt.Errorf("%w: %w", ErrInvalidBase64Credentials, err))
	}

	if !utf8.Valid(decoded) {
		return models.Credentials{}, badAuthRequest(ErrCredentialsNotUTF8)
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return models.Credentials{}, badAuthRequest(ErrPasswordMissing)
	}
	if username == "" {
		return models.Credentials{}, badAuthRequest(ErrUsernameMissing)
	}

	return models.Credentials{
		Username: username,
		Password: models.Secret(password),
	}, nil
}

func badAuthRequest(reason error) error {
	return fmt.Errorf("%w: %w", ErrBadAuthRequest, reason)
}
