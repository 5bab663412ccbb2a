package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/gemeinde/wegewart-api/internal/interfaces/http"
	pkgjwt "github.com/gemeinde/wegewart-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testOrtsteil  = "Nord"
	testIssuer    = "wegewart-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber app with AuthMiddleware and RequireRole
// in front of a dummy handler.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			actor := apphttp.GetActor(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"user_id":  actor.ID,
				"ortsteil": actor.Ortsteil,
				"roles":    actor.Roles.Tags(),
			})
		},
	)
	return app
}

func tokenForRoles(t *testing.T, roles string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrtsteil, roles, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRoles(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_AnyOfSeveralTagsPasses(t *testing.T) {
	app := buildTestApp("admin", "verwaltung")
	resp := doRequest(t, app, tokenForRoles(t, "verwaltung,wegewart"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"one matching tag out of a multi-role string must be enough")
}

func TestRequireRole_WrongRoleForbidden(t *testing.T) {
	app := buildTestApp("admin", "verwaltung")
	resp := doRequest(t, app, tokenForRoles(t, "wegewart"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_EmptyRolesForbidden(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRoles(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"the empty role set is valid but carries no permission")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ResolvesActor(t *testing.T) {
	app := buildTestApp("ortsvorsteher")
	resp := doRequest(t, app, tokenForRoles(t, " ortsvorsteher , wegewart "))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		UserID   string   `json:"user_id"`
		Ortsteil string   `json:"ortsteil"`
		Roles    []string `json:"roles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, testOrtsteil, body.Ortsteil)
	assert.Equal(t, []string{"ortsvorsteher", "wegewart"}, body.Roles,
		"the raw role string is trimmed and decoded once by the middleware")
}

func TestJWT_GenerateAndParseRoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrtsteil, "wegewart", testIssuer, testExpMin)
	require.NoError(t, err)

	userID, ortsteil, roles, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testOrtsteil, ortsteil)
	assert.Equal(t, "wegewart", roles)
}

func TestJWT_ExpiredTokenFails(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrtsteil, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}

func TestJWT_WrongSecretFails(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testOrtsteil, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err)
}
