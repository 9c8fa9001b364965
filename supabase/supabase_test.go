package supabase

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyup/ai-gateway/types"
)

func TestNewProviderRequiresCredentials(t *testing.T) {
	_, err := NewProvider("", "key")
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindConfiguration))
}

func TestProviderForRequest(t *testing.T) {
	provider, err := NewProvider("https://project.supabase.co", "anon-key")
	require.NoError(t, err)

	userToken, err := signUserToken("user-123", "test-secret")
	require.NoError(t, err)
	anonToken, err := signUserToken("", "test-secret")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantUser   string
		wantBase   bool
		wantErrKnd types.ErrorKind
	}{
		{name: "no header uses base client", header: "", wantBase: true},
		{name: "user token", header: "Bearer " + userToken, wantUser: "user-123"},
		{name: "anon token has no subject", header: "Bearer " + anonToken, wantUser: ""},
		{name: "lowercase scheme", header: "bearer " + userToken, wantUser: "user-123"},
		{name: "uppercase scheme", header: "BEARER " + userToken, wantUser: "user-123"},
		{name: "missing bearer prefix", header: userToken, wantErrKnd: types.KindUnauthorized},
		{name: "empty bearer token", header: "Bearer   ", wantErrKnd: types.KindUnauthorized},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErrKnd: types.KindUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantErrKnd: types.KindUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/study-plan", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			store, userID, err := provider.ForRequest(req)
			if tt.wantErrKnd != "" {
				require.Error(t, err)
				assert.True(t, types.IsKind(err, tt.wantErrKnd))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, store)
			assert.Equal(t, tt.wantUser, userID)
			if tt.wantBase {
				assert.Same(t, provider.base, store)
			} else {
				assert.NotSame(t, provider.base, store)
			}
		})
	}
}
