package migrate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/api/connect"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/dialog"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt/scripted"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/mapping"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/utils/testhelper"
)

const testBaseURL = "https://connect.example.com/"

func newTestFlow(t *testing.T, variant *mapping.Variant, console *scripted.Prompt) *Flow {
	t.Helper()
	logger, _, _ := testhelper.NewDebugLogger()
	api := connect.NewApi(
		context.Background(),
		logger,
		testBaseURL,
		connect.Credentials{Email: "user@example.com", Password: "secret"},
		false,
	)
	httpmock.ActivateNonDefault(api.HTTPClient().Resty().GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.RegisterResponder(
		"POST", testBaseURL+"api/sessions",
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"token": "token123"}),
	)

	return &Flow{
		Variant:     variant,
		Api:         api,
		Dialogs:     dialog.New(console),
		Logger:      logger,
		Environment: "env-1",
		Cluster:     "lkc-1",
		Connector:   "my-sink",
	}
}

func registerSource(t *testing.T, name, state, configJSON string) {
	t.Helper()
	base := testBaseURL + "api/accounts/env-1/clusters/lkc-1/connectors/" + name
	httpmock.RegisterResponder(
		"GET", base+"/status",
		httpmock.NewStringResponder(200, `{"connector":{"state":"`+state+`"}}`),
	)
	httpmock.RegisterResponder(
		"GET", base+"/offsets",
		httpmock.NewStringResponder(200, `{"offsets":[{"partition":{"kafka_topic":"orders"},"offset":{"kafka_offset":42}}]}`),
	)
	httpmock.RegisterResponder(
		"GET", base,
		httpmock.NewStringResponder(200, `{"name":"`+name+`","config":`+configJSON+`}`),
	)
}

func TestRunBigQuery(t *testing.T) {
	console := scripted.New().
		AddConfirm(true).                       // breaking changes
		AddAnswer("my-sink-v2").                // new name
		AddAnswer(dialog.IngestionModeStreaming).
		AddConfirm(false). // integer casting
		AddAnswer(dialog.AutoCreateTablesNonPartitioned).
		AddConfirm(false).          // date time formatter
		AddAnswer("real-secret").   // scrubbed kafka.api.secret
		AddConfirm(true)            // final config review
	f := newTestFlow(t, mapping.BigQuery(), console)

	registerSource(t, "my-sink", "PAUSED", `{
		"connector.class": "BigQuerySink",
		"tasks.max": "2",
		"auto.update.schemas": "true",
		"kafka.api.secret": "****************",
		"project": "my-project"
	}`)

	var created map[string]any
	httpmock.RegisterResponder(
		"POST", testBaseURL+"api/accounts/env-1/clusters/lkc-1/connectors",
		func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return nil, err
			}
			if err := json.Unmarshal(body, &created); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(201, `{"name":"my-sink-v2","state":"PROVISIONING"}`), nil
		},
	)

	require.NoError(t, Run(f))
	assert.Equal(t, StateDone, f.State())

	// The create request carries the transformed config and the source offsets
	assert.Equal(t, "my-sink-v2", created["name"])
	config := created["config"].(map[string]any)
	assert.Equal(t, "my-sink-v2", config["name"])
	assert.Equal(t, "BigQueryStorageSink", config["connector.class"])
	assert.Equal(t, "2", config["tasks.max"])
	assert.Equal(t, "ADD NEW FIELDS", config["auto.update.schemas"])
	assert.Equal(t, "real-secret", config["kafka.api.secret"])
	assert.Equal(t, "my-project", config["project"])
	assert.Equal(t, dialog.IngestionModeStreaming, config["ingestion.mode"])
	assert.Len(t, created["offsets"], 1)
}

func TestRunHTTP(t *testing.T) {
	console := scripted.New().
		AddAnswer("my-sink_v2"). // new name
		AddConfirm(true)         // final config review
	f := newTestFlow(t, mapping.HTTP(), console)

	registerSource(t, "my-sink", "PAUSED", `{
		"connector.class": "HttpSink",
		"http.api.url": "https://api.example.com/v1/events",
		"request.method": "POST"
	}`)

	var created map[string]any
	httpmock.RegisterResponder(
		"POST", testBaseURL+"api/accounts/env-1/clusters/lkc-1/connectors",
		func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return nil, err
			}
			if err := json.Unmarshal(body, &created); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(201, `{"name":"my-sink_v2"}`), nil
		},
	)

	require.NoError(t, Run(f))
	assert.Equal(t, StateDone, f.State())

	config := created["config"].(map[string]any)
	assert.Equal(t, "HttpSinkV2", config["connector.class"])
	assert.Equal(t, "https://api.example.com", config["http.api.base.url"])
	assert.Equal(t, "/v1/events", config["api1.http.api.path"])
	assert.Equal(t, "POST", config["api1.http.request.method"])
}

func TestRunAbortOnBreakingChanges(t *testing.T) {
	console := scripted.New().AddConfirm(false)
	f := newTestFlow(t, mapping.BigQuery(), console)

	err := Run(f)
	require.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, StateAborted, f.State())

	// Nothing was fetched or created
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestRunAbortWhenNotPaused(t *testing.T) {
	console := scripted.New().
		AddConfirm(true). // breaking changes
		AddConfirm(false) // running connector warning
	f := newTestFlow(t, mapping.BigQuery(), console)

	registerSource(t, "my-sink", "RUNNING", `{}`)

	err := Run(f)
	require.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, StateAborted, f.State())
	assert.Equal(t, 0, httpmock.GetCallCountInfo()["POST "+testBaseURL+"api/accounts/env-1/clusters/lkc-1/connectors"])
}

func TestRunAbortOnUnsupportedKeys(t *testing.T) {
	console := scripted.New().
		AddConfirm(true). // breaking changes
		AddConfirm(false) // unsupported keys acknowledgement
	f := newTestFlow(t, mapping.BigQuery(), console)

	registerSource(t, "my-sink", "PAUSED", `{"allow.schema.unionization": "true"}`)

	err := Run(f)
	require.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, StateAborted, f.State())
}

func TestRunAbortOnFinalReview(t *testing.T) {
	console := scripted.New().
		AddConfirm(true).        // breaking changes
		AddAnswer("my-sink-v2"). // new name
		AddAnswer(dialog.IngestionModeStreaming).
		AddConfirm(false). // integer casting
		AddAnswer(dialog.AutoCreateTablesNonPartitioned).
		AddConfirm(false). // date time formatter
		AddConfirm(false)  // final config review declined
	f := newTestFlow(t, mapping.BigQuery(), console)

	registerSource(t, "my-sink", "PAUSED", `{"project": "my-project"}`)

	err := Run(f)
	require.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, StateAborted, f.State())
	assert.Equal(t, 0, httpmock.GetCallCountInfo()["POST "+testBaseURL+"api/accounts/env-1/clusters/lkc-1/connectors"])
}

func TestRunStatusError(t *testing.T) {
	console := scripted.New().AddConfirm(true)
	f := newTestFlow(t, mapping.BigQuery(), console)

	httpmock.RegisterResponder(
		"GET", testBaseURL+"api/accounts/env-1/clusters/lkc-1/connectors/my-sink/status",
		httpmock.NewStringResponder(404, `{"error":"connector not found"}`),
	)

	err := Run(f)
	require.Error(t, err)
	apiErr := &connect.Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, StateFetchingStatus, f.State())
}

func TestRunCreateDenied(t *testing.T) {
	console := scripted.New().
		AddConfirm(true).        // breaking changes
		AddAnswer("my-sink-v2"). // new name
		AddAnswer(dialog.IngestionModeStreaming).
		AddConfirm(false). // integer casting
		AddAnswer(dialog.AutoCreateTablesNonPartitioned).
		AddConfirm(false). // date time formatter
		AddConfirm(true)   // final config review
	f := newTestFlow(t, mapping.BigQuery(), console)

	registerSource(t, "my-sink", "PAUSED", `{"project": "my-project"}`)
	httpmock.RegisterResponder(
		"POST", testBaseURL+"api/accounts/env-1/clusters/lkc-1/connectors",
		httpmock.NewStringResponder(409, `{"error":"connector my-sink-v2 already exists"}`),
	)

	err := Run(f)
	require.Error(t, err)
	conflictErr := &connect.ConflictError{}
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, StateCreating, f.State())
}
