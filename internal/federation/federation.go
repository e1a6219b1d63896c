// Package federation contains client for communication with remote nodes.
package federation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/socialdistribution/internal/activity"
	"github.com/Decentr-net/socialdistribution/internal/entities"
)

//go:generate mockgen -destination=./mock/federation.go -package=mock -source=federation.go

var log = logrus.WithField("package", "federation")

const maxResponseSize = 4 << 20

// Client talks to other nodes' APIs.
type Client interface {
	// ListAuthors fetches authors hosted by the node.
	ListAuthors(ctx context.Context, n *entities.Node) ([]*entities.Author, error)
	// PushPost delivers a post into a remote author's inbox.
	PushPost(ctx context.Context, n *entities.Node, authorID uuid.UUID, p *entities.Post) error
}

// UnexpectedStatusError is returned when a node responds with non 2xx code.
type UnexpectedStatusError struct {
	Code int
	Body string
}

func (e UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.Code, e.Body)
}

type client struct {
	c *http.Client
}

// New creates new instance of client.
func New(timeout time.Duration) Client {
	return NewWithHTTPClient(&http.Client{
		Transport: cleanhttp.DefaultPooledTransport(),
		Timeout:   timeout,
	})
}

// NewWithHTTPClient ...
func NewWithHTTPClient(c *http.Client) Client {
	return client{c: c}
}

func (c client) ListAuthors(ctx context.Context, n *entities.Node) ([]*entities.Author, error) {
	var resp activity.AuthorsCollection

	if err := c.do(ctx, http.MethodGet, endpoint(n, "authors/"), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get authors: %w", err)
	}

	out := make([]*entities.Author, 0, len(resp.Items))
	for _, v := range resp.Items {
		if v.ID == uuid.Nil {
			continue
		}

		a := v.ToAuthor()
		if a.Host == "" {
			a.Host = n.Host
		}
		out = append(out, a)
	}

	return out, nil
}

func (c client) PushPost(ctx context.Context, n *entities.Node, authorID uuid.UUID, p *entities.Post) error {
	if err := c.do(ctx, http.MethodPost,
		endpoint(n, fmt.Sprintf("authors/%s/inbox", authorID)),
		activity.FromPost(p), nil,
	); err != nil {
		return fmt.Errorf("failed to push post: %w", err)
	}

	return nil
}

func (c client) do(ctx context.Context, method, url string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return UnexpectedStatusError{Code: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		log.WithField("url", url).Debug(spew.Sdump(out))
	}

	return nil
}

func endpoint(n *entities.Node, path string) string {
	return strings.TrimSuffix(n.APIURL, "/") + "/" + path
}
