//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/verimark/verimark/core"
)

const (
	defaultTimeout = 10 * time.Second
)

var tracer = otel.Tracer("client")

// Client talks to the external pinning service. Pin attempts the JSON
// endpoint first and falls back to a multipart form upload; Fetch reads
// back through the unauthenticated public gateway.
type Client interface {
	Pin(ctx context.Context, payload string) (string, error)
	Fetch(ctx context.Context, address string) (string, error)
}

type client struct {
	config core.Config
	http   *http.Client
}

func NewClient(config core.Config) Client {
	return &client{
		config: config,
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

func (c *client) Pin(ctx context.Context, payload string) (string, error) {
	ctx, span := tracer.Start(ctx, "Client.Pin")
	defer span.End()

	address, jsonErr := c.pinJSON(ctx, payload)
	if jsonErr == nil {
		return address, nil
	}
	span.RecordError(jsonErr)

	address, formErr := c.pinForm(ctx, payload)
	if formErr == nil {
		return address, nil
	}
	span.RecordError(formErr)

	return "", errors.Wrap(core.NewErrorUpstreamUnavailable(), formErr.Error())
}

func (c *client) pinJSON(ctx context.Context, payload string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"pinataContent": payload,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.Pinning.Endpoint+"/pinning/pinJSONToIPFS", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.Pinning.Token)

	return c.doPin(req)
}

func (c *client) pinForm(ctx context.Context, payload string) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "content.txt")
	if err != nil {
		return "", err
	}
	part.Write([]byte(payload))
	form.Close()

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.Pinning.Endpoint+"/pinning/pinFileToIPFS", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.config.Pinning.Token)

	return c.doPin(req)
}

func (c *client) doPin(req *http.Request) (string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pinning api returned %d", resp.StatusCode)
	}

	var parsed pinResponse
	err = json.NewDecoder(resp.Body).Decode(&parsed)
	if err != nil {
		return "", err
	}
	if parsed.IpfsHash == "" {
		return "", fmt.Errorf("pinning api returned no hash")
	}

	return parsed.IpfsHash, nil
}

func (c *client) Fetch(ctx context.Context, address string) (string, error) {
	ctx, span := tracer.Start(ctx, "Client.Fetch")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, "GET", c.config.Pinning.Gateway+"/"+address, nil)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(core.NewErrorUpstreamUnavailable(), err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", core.NewErrorNotFound()
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrap(core.NewErrorUpstreamUnavailable(), fmt.Sprintf("gateway returned %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(core.NewErrorUpstreamUnavailable(), err.Error())
	}

	return string(body), nil
}
