package natsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jvs-project/uuidgen/pkg/errclass"
	"github.com/jvs-project/uuidgen/pkg/uuid"
)

// DefaultTimeout bounds a request when the caller's context has no deadline.
const DefaultTimeout = 2 * time.Second

// Client calls a Service.
type Client struct {
	nc      *nats.Conn
	subject string
	timeout time.Duration
}

// NewClient returns a Client for subject. A non-positive timeout uses DefaultTimeout.
func NewClient(nc *nats.Conn, subject string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{nc: nc, subject: subject, timeout: timeout}
}

// New asks the service for a fresh UUID.
func (c *Client) New(ctx context.Context) (uuid.UUID, error) {
	msg, err := c.request(ctx, c.subject+newSuffix, nil)
	if err != nil {
		return uuid.Nil, err
	}
	u, err := uuid.Parse(string(msg.Data))
	if err != nil {
		return uuid.Nil, fmt.Errorf("decode reply: %w", err)
	}
	return u, nil
}

// Inspect asks the service to decode s.
func (c *Client) Inspect(ctx context.Context, s string) (uuid.Info, error) {
	msg, err := c.request(ctx, c.subject+inspectSuffix, []byte(s))
	if err != nil {
		return uuid.Info{}, err
	}
	var info uuid.Info
	if err := json.Unmarshal(msg.Data, &info); err != nil {
		return uuid.Info{}, fmt.Errorf("decode reply: %w", err)
	}
	return info, nil
}

func (c *Client) request(ctx context.Context, subject string, data []byte) (*nats.Msg, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := nats.NewMsg(subject)
	req.Data = data
	msg, err := c.nc.RequestMsgWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("nats request: %w", err)
	}
	if remote := msg.Header.Get(errHeaderKey); remote != "" {
		return nil, remoteError(msg.Header.Get(errCodeHeaderKey), remote)
	}
	return msg, nil
}

// remoteError restores the error class carried in the reply headers.
func remoteError(code, text string) error {
	for _, class := range []*errclass.UUIDError{errclass.ErrEntropyUnavailable, errclass.ErrInvalidFormat} {
		if code == class.Code {
			return class.WithMessagef("remote: %s", text)
		}
	}
	return errors.New("remote: " + text)
}
