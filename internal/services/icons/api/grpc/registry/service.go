// Package registry exposes the icon registry over gRPC.
package registry

import (
	"context"
	"errors"

	apperrors "github.com/louisbranch/apollo/internal/platform/errors"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/services/icons/lookup"
	"github.com/louisbranch/apollo/internal/services/icons/metrics"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Service implements IconRegistryServiceServer.
type Service struct {
	renderer *lookup.Renderer
	metrics  *metrics.Metrics
}

// NewService creates a registry service. A nil renderer gets a private one.
func NewService(renderer *lookup.Renderer, m *metrics.Metrics) *Service {
	if renderer == nil {
		renderer = lookup.NewRenderer(lookup.DefaultCacheTTL, m)
	}
	return &Service{renderer: renderer, metrics: m}
}

// LookupIcon resolves one reference.
func (s *Service) LookupIcon(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "lookup request is required")
	}
	def, err := lookup.Observe(s.metrics, metrics.SurfaceGRPC, in.GetValue())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	out, err := structpb.NewStruct(viewFields(lookup.ViewOf(def)))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode icon: %v", err)
	}
	return out, nil
}

// ListIcons returns every icon matching the query. An empty query lists the
// whole table in codepoint order.
func (s *Service) ListIcons(ctx context.Context, in *wrapperspb.StringValue) (*structpb.ListValue, error) {
	matches := icons.Find(in.GetValue())
	values := make([]any, 0, len(matches))
	for _, def := range matches {
		values = append(values, viewFields(lookup.ViewOf(def)))
	}
	out, err := structpb.NewList(values)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode icons: %v", err)
	}
	return out, nil
}

// RenderIcon renders the icon named by the "ref" field.
func (s *Service) RenderIcon(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "render request is required")
	}
	fields := in.GetFields()
	req := lookup.RenderRequest{
		Ref:   fields["ref"].GetStringValue(),
		Size:  fields["size"].GetStringValue(),
		Color: fields["color"].GetStringValue(),
	}
	markup, _, err := s.renderer.Render(req, metrics.SurfaceGRPC)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return wrapperspb.String(markup), nil
}

func viewFields(view lookup.IconView) map[string]any {
	return map[string]any{
		"name":      view.Name,
		"key":       view.Key,
		"codepoint": view.Codepoint,
		"hex":       view.Hex,
		"label":     view.Label,
	}
}

// toStatus converts a domain error to a status whose details carry a message
// localized for the caller.
func toStatus(ctx context.Context, err error) error {
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		return status.Error(codes.Internal, err.Error())
	}
	locale := callerLocale(ctx)
	return domainErr.ToGRPCStatus(locale)
}
