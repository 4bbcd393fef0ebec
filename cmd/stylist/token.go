package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenInfo is what `stylist token` prints. The signature is never checked; only the backend
// can do that.
type tokenInfo struct {
	Subject   string         `json:"subject,omitempty"`
	Issuer    string         `json:"issuer,omitempty"`
	IssuedAt  *time.Time     `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time     `json:"expiresAt,omitempty"`
	Expired   bool           `json:"expired"`
	Claims    map[string]any `json:"claims"`
}

func runToken(cc *commandContext, args []string) error {
	fs := cc.newFlagSet("token")
	query := fs.String("query", "", "JMESPath expression applied to the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tok, ok := cc.Creds.Token.Token(cc.Ctx)
	if !ok {
		return errNotSignedIn
	}
	info, err := decodeToken(tok, time.Now())
	if err != nil {
		return err
	}
	return printJSON(cc.Out, info, *query)
}

var errOpaqueToken = errors.New("stored credential is not a JWT")

func decodeToken(raw string, now time.Time) (tokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return tokenInfo{}, fmt.Errorf("%w: %w", errOpaqueToken, err)
	}

	info := tokenInfo{Claims: claims}
	info.Subject, _ = claims.GetSubject()
	info.Issuer, _ = claims.GetIssuer()
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		t := iat.UTC()
		info.IssuedAt = &t
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.UTC()
		info.ExpiresAt = &t
		info.Expired = !now.Before(t)
	}
	return info, nil
}
