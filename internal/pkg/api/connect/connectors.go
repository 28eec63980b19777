package connect

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/connector"
)

type statusResponse struct {
	Connector struct {
		State string `json:"state"`
	} `json:"connector"`
}

type configResponse struct {
	Config *connector.Config `json:"config"`
}

type offsetsResponse struct {
	Offsets json.RawMessage `json:"offsets"`
}

type createRequest struct {
	Name    string            `json:"name"`
	Config  *connector.Config `json:"config"`
	Offsets json.RawMessage   `json:"offsets"`
}

// ConnectorStatus returns the connector state, eg. RUNNING or PAUSED.
func (a *Api) ConnectorStatus(env, cluster, name string) (string, error) {
	op := "get connector status for " + name

	res, err := a.get(op, "api/accounts/{env}/clusters/{cluster}/connectors/{name}/status", env, cluster, name, false)
	if err != nil {
		return "", err
	}

	status := statusResponse{}
	if err := json.Unmarshal(res.Body(), &status); err != nil {
		return "", &Error{Operation: op, Message: "cannot decode response", ResponseBody: res.String()}
	}
	return status.Connector.State, nil
}

// ConnectorOffsets returns the connector offsets as an opaque value.
func (a *Api) ConnectorOffsets(env, cluster, name string) (connector.Offsets, error) {
	op := "get connector offsets for " + name

	// The offsets endpoint authenticates with a bearer token.
	res, err := a.get(op, "api/accounts/{env}/clusters/{cluster}/connectors/{name}/offsets", env, cluster, name, true)
	if err != nil {
		return nil, err
	}

	offsets := offsetsResponse{}
	if err := json.Unmarshal(res.Body(), &offsets); err != nil {
		return nil, &Error{Operation: op, Message: "cannot decode response", ResponseBody: res.String()}
	}
	return connector.Offsets(offsets.Offsets), nil
}

// ConnectorConfig returns the connector configuration.
func (a *Api) ConnectorConfig(env, cluster, name string) (*connector.Config, error) {
	op := "get connector config for " + name

	res, err := a.get(op, "api/accounts/{env}/clusters/{cluster}/connectors/{name}", env, cluster, name, false)
	if err != nil {
		return nil, err
	}

	config := configResponse{}
	if err := json.Unmarshal(res.Body(), &config); err != nil || config.Config == nil {
		return nil, &Error{Operation: op, Message: "cannot decode response", ResponseBody: res.String()}
	}
	return config.Config, nil
}

// CreateConnector registers the new connector with the source offsets.
// The service replies 201 on success, anything else is a denial.
func (a *Api) CreateConnector(env, cluster, name string, config *connector.Config, offsets connector.Offsets) (*orderedmap.OrderedMap, error) {
	op := "create connector " + name

	if err := a.refreshToken(); err != nil {
		return nil, err
	}

	res, err := a.http.R().
		SetPathParam("env", env).
		SetPathParam("cluster", cluster).
		SetCookie(&http.Cookie{Name: "auth_token", Value: a.token}).
		SetBody(createRequest{Name: name, Config: config, Offsets: json.RawMessage(offsets)}).
		Post("api/accounts/{env}/clusters/{cluster}/connectors")
	if err != nil {
		return nil, &Error{Operation: op, Message: err.Error()}
	}
	if res.StatusCode() != http.StatusCreated {
		return nil, &ConflictError{StatusCode: res.StatusCode(), ResponseBody: res.String()}
	}

	created := orderedmap.New()
	if err := json.Unmarshal(res.Body(), created); err != nil {
		return nil, &Error{Operation: op, Message: "cannot decode response", ResponseBody: res.String()}
	}
	return created, nil
}

// get refreshes the token and calls one of the read endpoints.
func (a *Api) get(op, urlTemplate, env, cluster, name string, bearer bool) (*resty.Response, error) {
	if err := a.refreshToken(); err != nil {
		return nil, err
	}

	req := a.http.R().
		SetPathParam("env", env).
		SetPathParam("cluster", cluster).
		SetPathParam("name", name)
	if bearer {
		req.SetAuthToken(a.token)
	} else {
		req.SetCookie(&http.Cookie{Name: "auth_token", Value: a.token})
	}

	res, err := req.Get(urlTemplate)
	if err != nil {
		return nil, &Error{Operation: op, Message: err.Error()}
	}
	if !res.IsSuccess() {
		return nil, &Error{
			Operation:    op,
			Message:      "request failed",
			StatusCode:   res.StatusCode(),
			ResponseBody: res.String(),
		}
	}
	return res, nil
}
