package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// NotesServiceName is the service name reported by the health service for
// the note API.
const NotesServiceName = "notes.v1.Notes"

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1.Health service so orchestrators can
// probe the note server over gRPC. A handler instance is created once at
// startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service already reports
// SERVING for the server as a whole and for [NotesServiceName].
func NewHandler(logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(NotesServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: healthServer,
		logger: logger,
	}
}

// Register attaches the handler's services to server.
func (h *Handler) Register(server grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Shutdown switches every service to NOT_SERVING. Watchers are notified
// before the transport stops.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("health service switched to NOT_SERVING")
	h.health.Shutdown()
}

// UnaryLoggingInterceptor puts a request-scoped logger with a trace id into
// the context and logs the outcome of every unary call.
func (h *Handler) UnaryLoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		requestLogger := h.logger.With().
			Str("trace_id", uuid.NewString()).
			Str("grpc_method", info.FullMethod).
			Logger()
		ctx = requestLogger.WithContext(ctx)

		resp, err := handler(ctx, req)

		event := requestLogger.Info()
		if err != nil {
			event = requestLogger.Warn().Err(err)
		}
		event.
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("gRPC request handled")

		return resp, err
	}
}
