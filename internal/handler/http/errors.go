// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the basicAuth middleware when
	// the incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not use the "Basic" scheme or cannot be
	// split into a scheme and a value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidCredentialsEncoding is returned when the credentials part of
	// the "Authorization" header is not valid base64.
	ErrInvalidCredentialsEncoding = errors.New("credentials in `Authorization` header are not valid base64")

	// ErrMalformedCredentials is returned when the decoded credentials do not
	// contain a colon separating the email address from the password.
	ErrMalformedCredentials = errors.New("malformed credentials in `Authorization` header")
)
