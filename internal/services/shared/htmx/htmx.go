// Package htmx adapts full-page templ components to HTMX partial requests.
package htmx

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	// RequestHeader marks requests issued by HTMX.
	RequestHeader = "HX-Request"
	// PushURLHeader asks HTMX to push a URL onto the browser history.
	PushURLHeader = "HX-Push-Url"
)

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// TitleTag formats an escaped <title> element. Blank titles render nothing.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// PushURL records target in the browser history of an HTMX request.
func PushURL(w http.ResponseWriter, r *http.Request, target string) {
	if !IsHTMXRequest(r) || strings.TrimSpace(target) == "" {
		return
	}
	w.Header().Set(PushURLHeader, target)
}

// RenderPage writes full for regular requests. HTMX requests receive
// fragment, or the <main> content of full when fragment is nil, prefixed by
// titleTag unless the markup already carries a title.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, titleTag string) {
	if !IsHTMXRequest(r) {
		if full == nil {
			full = fragment
		}
		if full != nil {
			templ.Handler(full).ServeHTTP(w, r)
		}
		return
	}

	target, fromFull := fragment, false
	if target == nil {
		target, fromFull = full, true
	}
	if target == nil {
		return
	}

	capture := newCapture()
	templ.Handler(target).ServeHTTP(capture, r)
	body := capture.body.Bytes()
	if fromFull {
		if content, ok := mainContent(body); ok {
			body = content
		}
	}
	if titleTag != "" && !bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		body = append([]byte(titleTag), body...)
	}

	copyHeaders(w.Header(), capture.header)
	if capture.status != http.StatusOK {
		w.WriteHeader(capture.status)
	}
	_, _ = w.Write(body)
}

// capture buffers a component response so it can be trimmed before it is
// written.
type capture struct {
	header  http.Header
	status  int
	written bool
	body    bytes.Buffer
}

func newCapture() *capture {
	return &capture{header: make(http.Header), status: http.StatusOK}
}

func (c *capture) Header() http.Header { return c.header }

func (c *capture) WriteHeader(status int) {
	if c.written {
		return
	}
	c.written = true
	c.status = status
}

func (c *capture) Write(p []byte) (int, error) {
	c.written = true
	return c.body.Write(p)
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if strings.EqualFold(key, "Set-Cookie") {
			for _, value := range values {
				dst.Add(key, value)
			}
			continue
		}
		for _, value := range values {
			dst.Set(key, value)
		}
	}
}

func mainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	open := bytes.IndexByte(body[start:], '>')
	if open < 0 {
		return nil, false
	}
	contentStart := start + open + 1
	end := bytes.Index(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
