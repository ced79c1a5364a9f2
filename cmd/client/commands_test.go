package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-session/internal/adapter"
	"github.com/MKhiriev/go-rest-session/internal/config"
	handler "github.com/MKhiriev/go-rest-session/internal/handler/http"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/service"
	"github.com/MKhiriev/go-rest-session/internal/session"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/models"
)

type testCLI struct {
	cli     *cli
	out     *bytes.Buffer
	session *session.Session
	copied  []string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()

	serverCfg := &config.ServerConfig{Auth: config.Auth{
		TokenSignKey:         "cli-test-key",
		TokenIssuer:          "cli-test",
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: time.Hour,
		AdminLogin:           "admin",
		AdminPassword:        "secret",
	}}
	services, err := service.NewServices(store.NewServerStorages(), serverCfg, "test", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, services.Seed(context.Background(), serverCfg.Auth))

	srv := httptest.NewServer(handler.NewHandler(services, logger.Nop()).Init(5 * time.Second))
	t.Cleanup(srv.Close)

	adapterCfg := config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}
	auth, err := adapter.NewAuthService(adapterCfg, 0, logger.Nop())
	require.NoError(t, err)

	sess := session.New(store.NewMemoryTokenRepository(), auth, logger.Nop())
	client, err := adapter.NewClient(adapterCfg, sess, logger.Nop(), adapter.WithUnauthorizedHandler(expireSession(sess)))
	require.NoError(t, err)

	tc := &testCLI{out: &bytes.Buffer{}, session: sess}
	tc.cli = &cli{
		api: adapter.NewAPI(client, auth, sess, logger.Nop()),
		out: tc.out,
		copyFn: func(s string) error {
			tc.copied = append(tc.copied, s)
			return nil
		},
	}
	return tc
}

func (tc *testCLI) run(t *testing.T, args ...string) error {
	t.Helper()
	tc.out.Reset()
	return tc.cli.run(context.Background(), "client", args)
}

func TestCLI_LoginMeLogout(t *testing.T) {
	tc := newTestCLI(t)

	require.NoError(t, tc.run(t, "login", "-login", "admin", "-password", "secret"))
	assert.Contains(t, tc.out.String(), "login: admin")
	assert.NotEmpty(t, tc.session.AccessToken())

	require.NoError(t, tc.run(t, "me"))
	assert.Contains(t, tc.out.String(), "role:  admin")

	require.NoError(t, tc.run(t, "logout"))
	assert.Empty(t, tc.session.AccessToken())

	assert.ErrorIs(t, tc.run(t, "token"), adapter.ErrNotSignedIn)
}

func TestCLI_LoginErrors(t *testing.T) {
	tc := newTestCLI(t)

	assert.ErrorIs(t, tc.run(t, "login", "-login", "admin"), errMissingLogin)
	assert.ErrorIs(t, tc.run(t, "login", "-login", "admin", "-password", "wrong"), adapter.ErrUnauthorized)
}

func TestCLI_List(t *testing.T) {
	tc := newTestCLI(t)
	require.NoError(t, tc.run(t, "login", "-login", "admin", "-password", "secret"))

	require.NoError(t, tc.run(t, "list", "-limit", "2", "-sort", "price", "-desc", "-status", "active", "-tags", "drink"))

	out := tc.out.String()
	assert.Contains(t, out, "Cà phê trứng")
	assert.Contains(t, out, "45,000")
	assert.Contains(t, out, "page 1, 2 per page")
	assert.NotContains(t, out, "Trà đá")
}

func TestCLI_ListSearchWithoutResults(t *testing.T) {
	tc := newTestCLI(t)
	require.NoError(t, tc.run(t, "login", "-login", "admin", "-password", "secret"))

	require.NoError(t, tc.run(t, "list", "-q", "pizza"))

	assert.Contains(t, tc.out.String(), "No items (total 0)")
}

func TestCLI_ExpiredSessionIsCleared(t *testing.T) {
	tc := newTestCLI(t)
	require.NoError(t, tc.session.SetTokens(context.Background(), models.TokenPair{AccessToken: "stale", RefreshToken: "unknown"}))

	err := tc.run(t, "me")

	assert.ErrorIs(t, err, errSessionExpired)
	assert.True(t, tc.session.Tokens().IsZero())
}

func TestCLI_TokenCopy(t *testing.T) {
	tc := newTestCLI(t)
	require.NoError(t, tc.run(t, "login", "-login", "admin", "-password", "secret"))

	require.NoError(t, tc.run(t, "token", "-copy"))

	require.Len(t, tc.copied, 1)
	assert.Equal(t, tc.session.AccessToken(), tc.copied[0])
	assert.Contains(t, tc.out.String(), "copied")
}

func TestCLI_UnknownCommand(t *testing.T) {
	tc := newTestCLI(t)

	assert.ErrorIs(t, tc.run(t, "frobnicate"), errUnknownCommand)

	require.NoError(t, tc.run(t))
	assert.Contains(t, tc.out.String(), "commands:")
}

func TestListQuery(t *testing.T) {
	q := listQuery(2, 5, "name", false, "active, draft", "", "pho")

	assert.Equal(t, &models.Pagination{Current: 2, PageSize: 5}, q.Pagination)
	assert.Equal(t, &models.Sorter{Field: "name", Order: models.SortAscend}, q.Sorter)
	assert.Equal(t, models.FilterValue{"active", "draft"}, q.Filters["status"])
	assert.NotContains(t, q.Filters, "tags[]")
	assert.Equal(t, "pho", q.Extra["q"])
}
