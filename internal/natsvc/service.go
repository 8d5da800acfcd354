// Package natsvc serves UUID generation and inspection over NATS request/reply.
package natsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jvs-project/uuidgen/pkg/errclass"
	"github.com/jvs-project/uuidgen/pkg/logging"
	"github.com/jvs-project/uuidgen/pkg/metrics"
	"github.com/jvs-project/uuidgen/pkg/uuid"
)

const (
	newSuffix     = ".new"
	inspectSuffix = ".inspect"

	// QueueGroup lets several responders share one subject.
	QueueGroup = "uuidgen"

	errHeaderKey     = "err"
	errCodeHeaderKey = "err-code"
)

// Service answers <subject>.new and <subject>.inspect requests.
//
// Example usage:
//
//	svc := natsvc.NewService(nc, "uuidgen", logger, metrics.Default())
//	err := svc.Start(ctx)
type Service struct {
	nc      *nats.Conn
	subject string
	logger  *logging.Logger
	metrics *metrics.Registry

	newID func() (uuid.UUID, error)
}

// NewService creates a Service. A nil logger falls back to the global logger;
// a nil registry disables metrics.
func NewService(nc *nats.Conn, subject string, logger *logging.Logger, reg *metrics.Registry) *Service {
	if logger == nil {
		logger = logging.Global()
	}
	return &Service{
		nc:      nc,
		subject: subject,
		logger:  logger.WithFields(map[string]any{"component": "natsvc", "subject": subject}),
		metrics: reg,
		newID:   uuid.New,
	}
}

// Start subscribes the handlers and returns once the server has acknowledged
// the subscriptions. They are removed when ctx is done.
func (s *Service) Start(ctx context.Context) error {
	newSub, err := s.nc.QueueSubscribe(s.subject+newSuffix, QueueGroup, s.newHandler)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", s.subject+newSuffix, err)
	}
	inspectSub, err := s.nc.QueueSubscribe(s.subject+inspectSuffix, QueueGroup, s.inspectHandler)
	if err != nil {
		_ = newSub.Unsubscribe()
		return fmt.Errorf("subscribe %s: %w", s.subject+inspectSuffix, err)
	}
	if err := s.nc.Flush(); err != nil {
		_ = newSub.Unsubscribe()
		_ = inspectSub.Unsubscribe()
		return fmt.Errorf("flush subscriptions: %w", err)
	}
	s.logger.Info("nats service started")

	go func() {
		<-ctx.Done()
		_ = newSub.Unsubscribe()
		_ = inspectSub.Unsubscribe()
		s.logger.Info("nats service stopped")
	}()
	return nil
}

// newHandler replies with a fresh canonical UUID.
func (s *Service) newHandler(msg *nats.Msg) {
	start := time.Now()
	u, err := s.newID()
	s.metrics.RecordGenerate(metrics.SurfaceNATS, err == nil, time.Since(start))
	if err != nil {
		s.logger.ErrorErr("generate uuid", err)
		s.respondErr(msg, err)
		return
	}
	s.logger.Debug("generated uuid", map[string]any{"uuid": u.String()})
	s.respond(msg, []byte(u.String()))
}

// inspectHandler parses the request body and replies with Info as JSON.
func (s *Service) inspectHandler(msg *nats.Msg) {
	u, err := uuid.Parse(string(msg.Data))
	s.metrics.RecordParse(metrics.SurfaceNATS, err == nil)
	if err != nil {
		s.respondErr(msg, err)
		return
	}
	data, err := json.Marshal(uuid.Inspect(u))
	if err != nil {
		s.respondErr(msg, err)
		return
	}
	s.respond(msg, data)
}

func (s *Service) respond(msg *nats.Msg, data []byte) {
	if err := msg.Respond(data); err != nil {
		s.logger.ErrorErr("respond", err)
	}
}

func (s *Service) respondErr(msg *nats.Msg, err error) {
	resp := nats.NewMsg(msg.Reply)
	resp.Header.Set(errHeaderKey, err.Error())
	var ue *errclass.UUIDError
	if errors.As(err, &ue) {
		resp.Header.Set(errCodeHeaderKey, ue.Code)
	}
	if rerr := msg.RespondMsg(resp); rerr != nil {
		s.logger.ErrorErr("respond", rerr)
	}
}
