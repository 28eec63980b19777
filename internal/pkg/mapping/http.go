package mapping

import (
	"fmt"
	"strings"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/connector"
)

// HTTP describes the HTTP sink V1 -> V2 migration. The V2 connector
// addresses multiple APIs, the migrated one becomes "api1".
func HTTP() *Variant {
	return &Variant{
		Name:           "http",
		ConnectorClass: "HttpSinkV2",
		Constants: []Default{
			{Key: "apis.num", Value: "1"},
		},
		Extract: extractHTTPAPIURL,
		Fields: map[string]string{
			"auth.type":                     "auth.type",
			"batch.json.as.array":           "api1.batch.json.as.array",
			"batch.key.pattern":             "api1.batch.key.pattern",
			"batch.max.size":                "api1.max.batch.size",
			"batch.prefix":                  "api1.batch.prefix",
			"batch.separator":               "api1.batch.separator",
			"batch.suffix":                  "api1.batch.suffix",
			"behavior.on.error":             "behavior.on.error",
			"behavior.on.null.values":       "api1.behavior.on.null.values",
			"connection.password":           "connection.password",
			"connection.user":               "connection.user",
			"header.separator":              "api1.http.request.headers.separator",
			"headers":                       "api1.http.request.headers",
			"http.connect.timeout.ms":       "api1.http.connect.timeout.ms",
			"http.request.timeout.ms":       "api1.http.request.timeout.ms",
			"https.host.verifier.enabled":   "https.host.verifier.enabled",
			"https.ssl.key.password":        "https.ssl.key.password",
			"https.ssl.keystore.password":   "https.ssl.keystore.password",
			"https.ssl.keystorefile":        "https.ssl.keystorefile",
			"https.ssl.protocol":            "https.ssl.protocol",
			"https.ssl.truststore.password": "https.ssl.truststore.password",
			"https.ssl.truststorefile":      "https.ssl.truststorefile",
			"max.retries":                   "api1.max.retries",
			"oauth2.client.auth.mode":       "oauth2.client.auth.mode",
			"oauth2.client.header.separator": "oauth2.client.header.separator",
			"oauth2.client.headers":         "oauth2.client.headers",
			"oauth2.client.id":              "oauth2.client.id",
			"oauth2.client.scope":           "oauth2.client.scope",
			"oauth2.client.secret":          "oauth2.client.secret",
			"oauth2.jwt.claimset":           "oauth2.jwt.claimset",
			"oauth2.jwt.enabled":            "oauth2.jwt.enabled",
			"oauth2.jwt.keystore.password":  "oauth2.jwt.keystore.password",
			"oauth2.jwt.keystore.path":      "oauth2.jwt.keystore.path",
			"oauth2.jwt.keystore.type":      "oauth2.jwt.keystore.type",
			"oauth2.token.property":         "oauth2.token.property",
			"oauth2.token.url":              "oauth2.token.url",
			"regex.patterns":                "api1.regex.patterns",
			"regex.replacements":            "api1.regex.replacements",
			"regex.separator":               "api1.regex.separator",
			"report.errors.as":              "report.errors.as",
			"request.body.format":           "api1.request.body.format",
			"request.method":                "api1.http.request.method",
			"retry.backoff.ms":              "api1.retry.backoff.ms",
			"retry.backoff.policy":          "api1.retry.backoff.policy",
			"retry.on.status.codes":         "api1.retry.on.status.codes",
			"sensitive.headers":             "api1.http.request.sensitive.headers",
			"topics":                        "api1.topics",
		},
		Passthrough: []string{
			"input.data.format",
			"kafka.api.key",
			"kafka.api.secret",
			"kafka.auth.mode",
			"kafka.service.account.id",
			"max.poll.interval.ms",
			"max.poll.records",
			"schema.context.name",
			"topics",
		},
		Unsupported:   map[string]string{},
		Reserved:      []string{"name", "connector.class", "tasks.max", "http.api.url"},
		NewNameSuffix: "_v2",
	}
}

// extractHTTPAPIURL splits the composite "http.api.url" into the base
// URL (scheme + host) and the request path. "https://host/a/b" ->
// base "https://host", path "/a/b". A URL without path segments yields
// path "/".
func extractHTTPAPIURL(source *connector.Config) ([]Default, error) {
	apiURL := source.GetString("http.api.url")
	if apiURL == "" {
		return nil, fmt.Errorf(`missing "http.api.url" in source configuration`)
	}

	parts := strings.Split(apiURL, "/")
	base := strings.Join(firstN(parts, 3), "/")
	path := "/" + strings.Join(skipN(parts, 3), "/")

	return []Default{
		{Key: "http.api.base.url", Value: base},
		{Key: "api1.http.api.path", Value: path},
	}, nil
}

func firstN(parts []string, n int) []string {
	if len(parts) < n {
		return parts
	}
	return parts[:n]
}

func skipN(parts []string, n int) []string {
	if len(parts) < n {
		return nil
	}
	return parts[n:]
}
