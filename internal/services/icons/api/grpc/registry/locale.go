package registry

import (
	"context"
	"strings"

	"github.com/louisbranch/apollo/internal/platform/requestctx"
	iconsi18n "github.com/louisbranch/apollo/internal/services/icons/i18n"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// localeMetadataKey carries the caller's preferred languages.
const localeMetadataKey = "accept-language"

// LocaleUnaryInterceptor resolves the caller locale from metadata once and
// stores it in the handler context.
func LocaleUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return handler(requestctx.WithLocale(ctx, localeFromMetadata(ctx)), req)
	}
}

// callerLocale prefers the interceptor's choice and falls back to metadata.
func callerLocale(ctx context.Context) string {
	if locale := requestctx.LocaleFromContext(ctx); locale != "" {
		return locale
	}
	return localeFromMetadata(ctx)
}

func localeFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if tag, ok := iconsi18n.MatchAcceptLanguage(strings.Join(md.Get(localeMetadataKey), ",")); ok {
			return iconsi18n.Locale(tag)
		}
	}
	return iconsi18n.Locale(iconsi18n.Default())
}
