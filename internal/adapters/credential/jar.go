package credential

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/target/stylist-web/internal/ports"
	"golang.org/x/net/publicsuffix"
)

var _ ports.CookieStore = (*JarStore)(nil)

// JarStore exposes an http.CookieJar scoped to one site as a CookieStore, so the credential
// cookie is also sent by the http.Client that shares the jar.
type JarStore struct {
	jar  *cookiejar.Jar
	site *url.URL
}

// NewJarStore creates a jar for siteURL using the public-suffix list for domain rules.
func NewJarStore(siteURL string) (*JarStore, error) {
	u, err := url.Parse(siteURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid cookie site %q", siteURL)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &JarStore{jar: jar, site: &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}}, nil
}

// Jar returns the underlying jar for use as http.Client.Jar.
func (j *JarStore) Jar() http.CookieJar { return j.jar }

func (j *JarStore) Cookie(_ context.Context, name string) (string, bool, error) {
	for _, c := range j.jar.Cookies(j.site) {
		if c.Name == name {
			return c.Value, true, nil
		}
	}
	return "", false, nil
}

func (j *JarStore) SetCookie(_ context.Context, c *http.Cookie) error {
	j.jar.SetCookies(j.site, []*http.Cookie{c})
	return nil
}

func (j *JarStore) DeleteCookie(_ context.Context, name string) error {
	j.jar.SetCookies(j.site, []*http.Cookie{{Name: name, Path: "/", MaxAge: -1}})
	return nil
}
