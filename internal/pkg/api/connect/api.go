// Package connect is a client for the cloud connector-management
// service: session authentication plus the per-connector config,
// offsets, status and create endpoints.
package connect

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/client"
)

// DefaultBaseURL of the connector-management service.
const DefaultBaseURL = "https://confluent.cloud/"

// TokenTTL is how long a session token is trusted. After that every
// remote call re-authenticates first.
const TokenTTL = 180 * time.Second

// Credentials for the session endpoint. Lifetime is one process run.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Empty() bool {
	return c.Email == "" || c.Password == ""
}

type Api struct {
	http        *client.Client
	logger      *zap.SugaredLogger
	clock       clockwork.Clock
	credentials Credentials
	token       string
	lastAuth    time.Time
}

func NewApi(ctx context.Context, logger *zap.SugaredLogger, baseURL string, credentials Credentials, verbose bool) *Api {
	if baseURL == "" {
		panic(fmt.Errorf("api base url is not set"))
	}
	http := client.NewClient(ctx, logger, verbose).WithBaseURL(baseURL)
	return &Api{
		http:        http,
		logger:      logger,
		clock:       clockwork.NewRealClock(),
		credentials: credentials,
	}
}

// WithClock replaces the clock, for tests.
func (a *Api) WithClock(clock clockwork.Clock) *Api {
	a.clock = clock
	return a
}

// HTTPClient returns the underlying client, used by tests to attach a mock.
func (a *Api) HTTPClient() *client.Client {
	return a.http
}

// Token returns the current session token, empty before Authenticate.
func (a *Api) Token() string {
	return a.token
}

// refreshToken authenticates on the first call and then again whenever
// the token is older than TokenTTL. Single operator, single thread, so
// no locking around the token state.
func (a *Api) refreshToken() error {
	if a.token != "" && a.clock.Since(a.lastAuth) <= TokenTTL {
		return nil
	}
	return a.Authenticate()
}
