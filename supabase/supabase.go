package supabase

import (
	"fmt"
	"net/http"
	"strings"

	"studyup/ai-gateway/types"

	"github.com/golang-jwt/jwt"
	"github.com/supabase-community/supabase-go"
)

// Provider hands out store clients. Requests carrying a bearer token get a client
// that forwards it, so row-level security is enforced for that caller.
type Provider struct {
	apiURL string
	apiKey string
	base   *Store
}

func NewProvider(apiURL, apiKey string) (*Provider, error) {
	if apiURL == "" || apiKey == "" {
		return nil, types.NewConfigurationError("SUPABASE_URL or SUPABASE_KEY is missing")
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	return &Provider{
		apiURL: apiURL,
		apiKey: apiKey,
		base:   NewStore(client),
	}, nil
}

// ForRequest returns the store to use for r and the caller's user id ("" when
// the request is not user-authenticated).
func (p *Provider) ForRequest(r *http.Request) (*Store, string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return p.base, "", nil
	}

	jwtString, ok := bearerToken(authHeader)
	if !ok {
		return nil, "", types.NewUnauthorized("Invalid Authorization header", nil)
	}

	userID, err := subjectFromToken(jwtString)
	if err != nil {
		return nil, "", types.NewUnauthorized("Invalid Authorization header", err)
	}

	client, err := supabase.NewClient(p.apiURL, p.apiKey, &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + jwtString,
		},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return NewStore(client), userID, nil
}

// bearerToken extracts the token from an Authorization header. The scheme is
// case-insensitive.
func bearerToken(authHeader string) (string, bool) {
	const prefix = "Bearer "
	if len(authHeader) < len(prefix) || !strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(authHeader[len(prefix):])
	return token, token != ""
}

// subjectFromToken reads the sub claim. The signature is verified by the store,
// which receives the same token. Anon and service keys carry no sub, so an empty
// subject is not an error.
func subjectFromToken(jwtString string) (string, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(jwtString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid JWT claims")
	}

	sub, _ := claims["sub"].(string)
	return sub, nil
}
