package pagination

import (
	"errors"
	"strings"
	"testing"
)

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 50, Max: 200}
	tests := []struct {
		in   int32
		want int
	}{
		{in: 0, want: 50},
		{in: -3, want: 50},
		{in: 10, want: 10},
		{in: 500, want: 200},
	}
	for _, tc := range tests {
		if got := ClampPageSize(tc.in, cfg); got != tc.want {
			t.Fatalf("ClampPageSize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize with empty config = %d, want 1", got)
	}
}

func TestParsePageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 50, Max: 200}
	for raw, want := range map[string]int{"": 50, " 20 ": 20, "999": 200, "0": 50} {
		got, err := ParsePageSize(raw, cfg)
		if err != nil {
			t.Fatalf("ParsePageSize(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParsePageSize(%q) = %d, want %d", raw, got, want)
		}
	}
	for _, raw := range []string{"abc", "-1", "99999999999"} {
		if _, err := ParsePageSize(raw, cfg); err == nil {
			t.Fatalf("ParsePageSize(%q) expected error", raw)
		}
	}
}

func TestByKeyWalksAllPages(t *testing.T) {
	items := []string{"add", "check", "close", "copy", "edit"}
	identity := func(s string) string { return s }

	var seen []string
	token := ""
	pages := 0
	for {
		page, err := ByKey(items, identity, 2, token)
		if err != nil {
			t.Fatalf("ByKey(%q): %v", token, err)
		}
		seen = append(seen, page.Items...)
		pages++
		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}
	if pages != 3 {
		t.Fatalf("pages = %d, want 3", pages)
	}
	if strings.Join(seen, ",") != strings.Join(items, ",") {
		t.Fatalf("seen = %v, want %v", seen, items)
	}
}

func TestByKeyRejectsUnknownToken(t *testing.T) {
	for _, token := range []string{"zzz", "ad", "ADD"} {
		page, err := ByKey([]string{"add", "check"}, func(s string) string { return s }, 10, token)
		if !errors.Is(err, ErrPageTokenInvalid) {
			t.Fatalf("ByKey(%q) error = %v, want ErrPageTokenInvalid", token, err)
		}
		if len(page.Items) != 0 {
			t.Fatalf("ByKey(%q) page = %+v, want empty", token, page)
		}
	}
}

func TestByKeyKeepsCallerOrder(t *testing.T) {
	items := []string{"zoom", "add", "check"}
	page, err := ByKey(items, func(s string) string { return s }, 1, "zoom")
	if err != nil {
		t.Fatalf("ByKey: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0] != "add" || page.NextPageToken != "add" {
		t.Fatalf("page = %+v, want [add] with token add", page)
	}
}

func TestByKeyLastTokenGivesEmptyPage(t *testing.T) {
	page, err := ByKey([]string{"add", "check"}, func(s string) string { return s }, 2, "check")
	if err != nil || len(page.Items) != 0 || page.NextPageToken != "" {
		t.Fatalf("page = %+v, %v; want empty", page, err)
	}
}

func TestByKeyExactFitHasNoToken(t *testing.T) {
	page, err := ByKey([]string{"add", "check"}, func(s string) string { return s }, 2, "")
	if err != nil || len(page.Items) != 2 || page.NextPageToken != "" {
		t.Fatalf("page = %+v, %v", page, err)
	}
}
