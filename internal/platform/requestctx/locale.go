// Package requestctx carries per-request values resolved at the edge.
package requestctx

import "context"

type localeContextKey struct{}

// WithLocale stores the locale resolved for the caller.
func WithLocale(ctx context.Context, locale string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the stored locale, or "" when none was resolved.
func LocaleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(localeContextKey{}).(string)
	return value
}
