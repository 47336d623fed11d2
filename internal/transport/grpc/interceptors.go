package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	slotbookv1 "slotbook/internal/gen/proto/slotbook/v1"
	"slotbook/internal/observability/requestid"
)

// RequestIDInterceptor tags every call with a request id, echoes it in the
// response header and logs the call outcome.
func RequestIDInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		id := requestid.Ensure(incomingRequestID(ctx))
		ctx = requestid.WithContext(ctx, id)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestid.MetadataKey, id))

		resp, err := handler(ctx, req)

		log.Info("rpc completed",
			slog.String("method", info.FullMethod),
			slog.String("request_id", id),
			slog.String("code", status.Code(err).String()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return resp, err
	}
}

// TimeoutInterceptor applies a default deadline to calls that arrive
// without one.
func TimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); ok {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return handler(ctx, req)
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(requestid.MetadataKey)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// NewServer builds a gRPC server with the booking service registered.
func NewServer(srv slotbookv1.BookingServiceServer, log *slog.Logger, timeout time.Duration, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(RequestIDInterceptor(log), TimeoutInterceptor(timeout)),
	}, opts...)
	s := grpc.NewServer(opts...)
	slotbookv1.RegisterBookingServiceServer(s, srv)
	return s
}
