package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/oriole/internal/auth"
	"github.com/MKhiriev/oriole/internal/logger"
	"github.com/MKhiriev/oriole/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	authorizationKey = "authorization"
	bearerPrefix     = "Bearer "
)

// authenticate builds the request context for method and, unless method is
// public, verifies the bearer token carried in the incoming metadata. The
// status messages reuse the error codes of the HTTP gate.
func (h *Handler) authenticate(ctx context.Context, method string) (context.Context, error) {
	rc := utils.RequestContext{ID: h.newRequestID()}

	l := h.logger.With().Str("request_id", rc.ID).Str("method", method).Logger()
	ctx = l.WithContext(ctx)
	log := logger.FromContext(ctx)

	if _, public := h.publicMethods[method]; public {
		return utils.WithRequestContext(ctx, rc), nil
	}

	tokenString, err := tokenFromMetadata(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("bearer token rejected")
		if errors.Is(err, ErrMissingBearerToken) {
			return nil, status.Error(codes.Unauthenticated, "missing_bearer_token")
		}
		return nil, status.Error(codes.Unauthenticated, "bearer_token_required")
	}

	claims, err := h.tokens.Decode(tokenString)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			log.Info().Err(err).Msg("intercepted an expired token")
			return nil, status.Error(codes.Unauthenticated, "expired_token")
		case errors.Is(err, auth.ErrMisconfiguration):
			log.Error().Err(err).Msg("authenticator is misconfigured")
			return nil, status.Error(codes.Internal, "InternalServerError")
		default:
			log.Warn().Err(err).Msg("someone tried to use a fake token")
			return nil, status.Error(codes.Unauthenticated, "invalid_token")
		}
	}

	rc.Claims = claims
	rc.UserID = claims.Subject()

	return utils.WithRequestContext(ctx, rc), nil
}

func (h *Handler) unaryAuth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	authCtx, err := h.authenticate(ctx, info.FullMethod)
	if err != nil {
		return nil, err
	}
	return handler(authCtx, req)
}

func (h *Handler) streamAuth(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	authCtx, err := h.authenticate(ss.Context(), info.FullMethod)
	if err != nil {
		return err
	}
	return handler(srv, &wrappedServerStream{ServerStream: ss, ctx: authCtx})
}

// wrappedServerStream overrides the context of a grpc.ServerStream.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

func tokenFromMetadata(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ErrMissingBearerToken
	}

	values := md.Get(authorizationKey)
	if len(values) == 0 {
		return "", ErrMissingBearerToken
	}

	if !strings.HasPrefix(values[0], bearerPrefix) {
		return "", ErrBearerTokenRequired
	}

	return values[0][len(bearerPrefix):], nil
}
