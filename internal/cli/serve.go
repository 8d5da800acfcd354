package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/jvs-project/uuidgen/internal/httpapi"
	"github.com/jvs-project/uuidgen/internal/natsvc"
	"github.com/jvs-project/uuidgen/pkg/logging"
)

var (
	serveNATS     bool
	serveHTTP     bool
	serveNATSURL  string
	serveHTTPAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve UUID generation over NATS and HTTP",
	Long: `Run the NATS responder and the HTTP API until interrupted.

NATS subjects (request/reply, queue group "uuidgen"):
  <subject>.new      reply: canonical UUID
  <subject>.inspect  request: UUID string, reply: JSON

HTTP routes:
  GET  /v1/uuids?count=N
  GET  /v1/uuids/:id
  POST /v1/uuids/compare
  GET  /metrics
  GET  /healthz

Examples:
  uuidgen serve
  uuidgen serve --nats=false --http-addr :9090
  uuidgen serve --http=false --nats-url nats://nats:4222`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !serveNATS && !serveHTTP {
			return errors.New("nothing to serve: both --nats and --http are disabled")
		}
		if serveNATSURL != "" {
			cfg.NATS.URL = serveNATSURL
		}
		if serveHTTPAddr != "" {
			cfg.HTTP.Addr = serveHTTPAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveNATS, "nats", true, "run the NATS responder")
	serveCmd.Flags().BoolVar(&serveHTTP, "http", true, "run the HTTP API")
	serveCmd.Flags().StringVar(&serveNATSURL, "nats-url", "", "NATS server URL (overrides config)")
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http-addr", "", "HTTP listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	logger := logging.Global()
	reg := metricsRegistry()

	if serveNATS {
		nc, err := nats.Connect(cfg.NATS.URL, nats.Name("uuidgen"))
		if err != nil {
			return fmt.Errorf("connect to nats %s: %w", cfg.NATS.URL, err)
		}
		defer nc.Drain()

		svc := natsvc.NewService(nc, cfg.NATS.Subject, logger, reg)
		if err := svc.Start(ctx); err != nil {
			return err
		}
	}

	if serveHTTP {
		gin.SetMode(gin.ReleaseMode)
		return httpapi.NewServer(cfg.HTTP.Addr, logger, reg).ListenAndServe(ctx)
	}
	<-ctx.Done()
	return nil
}
