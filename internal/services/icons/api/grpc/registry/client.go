package registry

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/apollo/internal/platform/errors"
	platformgrpc "github.com/louisbranch/apollo/internal/platform/grpc"
	"github.com/louisbranch/apollo/internal/platform/timeouts"
	"github.com/louisbranch/apollo/internal/services/icons/lookup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is a typed wrapper over the icon registry service.
type Client struct {
	conn grpc.ClientConnInterface
	// Locale is sent as accept-language so error details come back localized.
	Locale string
}

// NewClient wraps an existing connection.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Dial connects to addr and waits for the registry to report SERVING. The
// caller closes the returned connection.
func Dial(ctx context.Context, addr string) (*Client, *grpc.ClientConn, error) {
	conn, err := platformgrpc.Connect(ctx, addr, platformgrpc.ConnectOptions{
		Service: ServiceName,
		Timeout: timeouts.GRPCDial,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect icon registry %s: %w", addr, err)
	}
	return NewClient(conn), conn, nil
}

// LookupIcon resolves ref on the server.
func (c *Client) LookupIcon(ctx context.Context, ref string) (lookup.IconView, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(c.outgoing(ctx), LookupIconFullMethodName, wrapperspb.String(ref), out); err != nil {
		return lookup.IconView{}, apperrors.FromGRPCStatus(err)
	}
	return viewFromStruct(out), nil
}

// ListIcons lists the icons matching query.
func (c *Client) ListIcons(ctx context.Context, query string) ([]lookup.IconView, error) {
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(c.outgoing(ctx), ListIconsFullMethodName, wrapperspb.String(query), out); err != nil {
		return nil, apperrors.FromGRPCStatus(err)
	}
	views := make([]lookup.IconView, 0, len(out.GetValues()))
	for _, value := range out.GetValues() {
		views = append(views, viewFromStruct(value.GetStructValue()))
	}
	return views, nil
}

// RenderIcon renders req on the server.
func (c *Client) RenderIcon(ctx context.Context, req lookup.RenderRequest) (string, error) {
	in, err := structpb.NewStruct(map[string]any{
		"ref":   req.Ref,
		"size":  req.Size,
		"color": req.Color,
	})
	if err != nil {
		return "", fmt.Errorf("encode render request: %w", err)
	}
	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(c.outgoing(ctx), RenderIconFullMethodName, in, out); err != nil {
		return "", apperrors.FromGRPCStatus(err)
	}
	return out.GetValue(), nil
}

func (c *Client) outgoing(ctx context.Context) context.Context {
	if strings.TrimSpace(c.Locale) == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, localeMetadataKey, c.Locale)
}

func viewFromStruct(s *structpb.Struct) lookup.IconView {
	fields := s.GetFields()
	return lookup.IconView{
		Name:      fields["name"].GetStringValue(),
		Key:       fields["key"].GetStringValue(),
		Codepoint: fields["codepoint"].GetStringValue(),
		Hex:       fields["hex"].GetStringValue(),
		Label:     fields["label"].GetStringValue(),
	}
}
