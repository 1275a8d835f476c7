package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("lookup: %w", New(CodeIconUnknown, "icon 999 is not registered"))
	if !stderrors.Is(err, New(CodeIconUnknown, "")) {
		t.Fatal("expected wrapped error to match by code")
	}
	if stderrors.Is(err, New(CodeReleaseNotFound, "")) {
		t.Fatal("expected different code not to match")
	}
}

func TestWrapExposesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeUnknown, "failed", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(fmt.Errorf("x: %w", New(CodeIconRefEmpty, "empty"))); got != CodeIconRefEmpty {
		t.Fatalf("CodeOf = %q, want %q", got, CodeIconRefEmpty)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %q, want %q", got, CodeUnknown)
	}
}

func TestCodeMappings(t *testing.T) {
	tests := []struct {
		code     Code
		wantGRPC codes.Code
		wantHTTP int
	}{
		{CodeIconRefEmpty, codes.InvalidArgument, http.StatusBadRequest},
		{CodePageSizeInvalid, codes.InvalidArgument, http.StatusBadRequest},
		{CodePageTokenInvalid, codes.InvalidArgument, http.StatusBadRequest},
		{CodeIconUnknown, codes.NotFound, http.StatusNotFound},
		{CodeReleaseNotFound, codes.NotFound, http.StatusNotFound},
		{CodeReleaseAlreadyExists, codes.AlreadyExists, http.StatusConflict},
		{CodeCompatBroken, codes.FailedPrecondition, http.StatusConflict},
		{CodeUnknown, codes.Internal, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := tc.code.GRPCCode(); got != tc.wantGRPC {
			t.Errorf("%s.GRPCCode() = %v, want %v", tc.code, got, tc.wantGRPC)
		}
		if got := tc.code.HTTPStatus(); got != tc.wantHTTP {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tc.code, got, tc.wantHTTP)
		}
	}
}

func TestToGRPCStatusAttachesDetails(t *testing.T) {
	err := WithMetadata(CodeIconUnknown, "icon nope is not registered", map[string]string{"Ref": "nope"})
	st, ok := status.FromError(err.ToGRPCStatus("en-US"))
	if !ok {
		t.Fatal("expected gRPC status")
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("code = %v, want %v", st.Code(), codes.NotFound)
	}
	var sawInfo, sawLocalized bool
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			sawInfo = true
			if d.GetReason() != string(CodeIconUnknown) {
				t.Fatalf("reason = %q, want %q", d.GetReason(), CodeIconUnknown)
			}
			if d.GetMetadata()["Ref"] != "nope" {
				t.Fatalf("metadata = %v, want Ref=nope", d.GetMetadata())
			}
		case *errdetails.LocalizedMessage:
			sawLocalized = true
			if d.GetMessage() != `Icon "nope" is not part of the Apollo set.` {
				t.Fatalf("localized message = %q", d.GetMessage())
			}
		}
	}
	if !sawInfo || !sawLocalized {
		t.Fatalf("details missing: info=%v localized=%v", sawInfo, sawLocalized)
	}
}

func TestFromGRPCStatusRoundTrip(t *testing.T) {
	original := WithMetadata(CodeReleaseNotFound, "release v9 not found", map[string]string{"Version": "v9"})
	recovered := FromGRPCStatus(original.ToGRPCStatus("pt-BR"))
	if recovered.Code != CodeReleaseNotFound {
		t.Fatalf("code = %q, want %q", recovered.Code, CodeReleaseNotFound)
	}
	if recovered.Metadata["Version"] != "v9" {
		t.Fatalf("metadata = %v", recovered.Metadata)
	}
	if want := original.Localize("pt-BR"); recovered.UserMessage != want || recovered.Localize("en-US") != want {
		t.Fatalf("user message = %q, want the peer's %q", recovered.UserMessage, want)
	}

	plain := FromGRPCStatus(status.Error(codes.Unavailable, "down"))
	if plain.Code != CodeUnknown {
		t.Fatalf("plain code = %q, want %q", plain.Code, CodeUnknown)
	}
}

func TestLocalize(t *testing.T) {
	err := fmt.Errorf("resolve: %w", WithMetadata(CodeIconUnknown, "icon nope", map[string]string{"Ref": "nope"}))
	if got := Localize(err, "en-US"); got != `Icon "nope" is not part of the Apollo set.` {
		t.Fatalf("en-US = %q", got)
	}
	if got := Localize(err, "pt-BR"); got == Localize(err, "en-US") {
		t.Fatalf("pt-BR should differ from en-US, got %q", got)
	}
	if got := Localize(stderrors.New("disk full"), "en-US"); got != "Something went wrong." {
		t.Fatalf("plain error = %q", got)
	}
}
