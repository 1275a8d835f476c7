package routepath

import "testing"

func TestBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  string
		want string
	}{
		{got: Icon("add"), want: "/api/icons/add"},
		{got: Icon(" U+F11C "), want: "/api/icons/U+F11C"},
		{got: SVG("arrow-up"), want: "/svg/arrow-up"},
		{got: SVG("a/b"), want: "/svg/a%2Fb"},
		{got: Release("v1.2.0"), want: "/api/releases/v1.2.0"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("route = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	if Catalog != "/catalog" {
		t.Fatalf("Catalog = %q", Catalog)
	}
	if APIIconsPattern != APIIcons+"/{ref}" {
		t.Fatalf("APIIconsPattern = %q", APIIconsPattern)
	}
	if Sprite != "/sprite.svg" || FontCSS != "/apollo.css" {
		t.Fatalf("asset routes = %q, %q", Sprite, FontCSS)
	}
}
