// Package client wraps resty with explicit timeouts and a bounded
// retry on transient HTTP failures. Business-level retries are left to
// the operator, this covers the transport only.
package client

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/build"
)

const (
	RequestTimeout   = 45 * time.Second
	HTTPTimeout      = 30 * time.Second
	IdleConnTimeout  = 90 * time.Second
	KeepAlive        = 30 * time.Second
	MaxIdleConns     = 16
	RetryCount       = 3
	RetryWaitTime    = 100 * time.Millisecond
	RetryWaitTimeMax = 3 * time.Second
)

type Client struct {
	parentCtx context.Context
	logger    *Logger
	resty     *resty.Client
	retries   map[*resty.Request]uint
}

func NewClient(parentCtx context.Context, logger *zap.SugaredLogger, verbose bool) *Client {
	c := &Client{}
	c.logger = &Logger{logger}
	c.parentCtx = parentCtx
	c.resty = createRestyClient(c.logger)
	c.retries = make(map[*resty.Request]uint)
	setupLogs(c, verbose)

	return c
}

func (c *Client) WithBaseURL(baseURL string) *Client {
	c.resty.SetBaseURL(baseURL)
	return c
}

func (c *Client) R() *resty.Request {
	return c.resty.R().SetContext(c.parentCtx)
}

// SetCookie is used for the session token, see the api package.
func (c *Client) SetCookie(name, value string) *Client {
	c.resty.SetCookie(&http.Cookie{Name: name, Value: value})
	return c
}

// Resty returns the underlying client, used by tests to attach httpmock.
func (c *Client) Resty() *resty.Client {
	return c.resty
}

func createRestyClient(logger *Logger) *resty.Client {
	c := resty.New()
	c.SetLogger(logger)
	c.SetHeader("User-Agent", fmt.Sprintf("ccmigrate/%s", build.BuildVersion))
	c.SetTimeout(RequestTimeout)
	c.SetTransport(createTransport())
	c.SetRetryCount(RetryCount)
	c.SetRetryWaitTime(RetryWaitTime)
	c.SetRetryMaxWaitTime(RetryWaitTimeMax)
	c.AddRetryCondition(func(response *resty.Response, err error) bool {
		// Retry transient failures only
		switch response.StatusCode() {
		case
			http.StatusRequestTimeout,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	})

	return c
}

func createTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   HTTPTimeout,
		KeepAlive: KeepAlive,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          MaxIdleConns,
		IdleConnTimeout:       IdleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   MaxIdleConns,
	}
}

func setupLogs(client *Client, verbose bool) {
	// Debug full request and response if verbose = true
	// Secrets are hidden, see Logger
	if verbose {
		client.resty.SetDebug(true)
		client.resty.SetDebugBodyLimit(32 * 1024)
		return
	}

	// Log only a simple message if verbose = false
	client.resty.AddRetryHook(func(response *resty.Response, err error) {
		client.retries[response.Request]++
		attempt := client.retries[response.Request]
		if int(attempt) <= client.resty.RetryCount {
			client.logger.Warnf("%s | Retrying %dx ..", responseToLog(response), attempt)
		}
	})
	client.resty.OnAfterResponse(func(c *resty.Client, response *resty.Response) error {
		if response.IsSuccess() {
			client.logger.Debugf(responseToLog(response))
		}
		return nil
	})
	client.resty.OnError(func(request *resty.Request, err error) {
		var msg string
		if v, ok := err.(*resty.ResponseError); ok {
			msg = responseToLog(v.Response)
		} else {
			msg = requestToLog(request, err)
		}

		attempt, retried := client.retries[request]
		if retried {
			msg = fmt.Sprintf("%s | Retried %dx", msg, attempt)
		}

		client.logger.Errorf(msg)
		delete(client.retries, request)
	})
}

func requestToLog(req *resty.Request, err error) string {
	return fmt.Sprintf("%s %s | %s", req.Method, req.URL, err)
}

func responseToLog(res *resty.Response) string {
	req := res.Request
	return fmt.Sprintf("%s %s | %d | %s", req.Method, req.URL, res.StatusCode(), res.Time())
}
