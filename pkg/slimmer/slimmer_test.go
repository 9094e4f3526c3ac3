package slimmer

import (
	"strings"
	"testing"
)

func mustSlim(t *testing.T, html string) string {
	t.Helper()
	out, err := Slim(html)
	if err != nil {
		t.Fatalf("Slim() error = %v", err)
	}
	return out
}

func TestSlimBasic(t *testing.T) {
	fxHTML := `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
	<meta property="og:title" content="Test Title">
	<meta property="og:url" content="http://example.com">
	<meta property="og:image" content="http://example.com/img.png">
	<meta property="og:description" content="Test Description">
	<meta name="keywords" content="test, html">
    <title>Simple HTML Page</title>
	<style> body{ color: red } </style>
	<link rel="stylesheet" href="style.css">
	<script> console.log("hi"); </script>
	<base href="/">
</head>
<body class="main-body" aria-label="Page body">
	<svg><path d="M0 0 L 10 10"></path></svg>
	<div>
		<span></span>
		<p> </p>
		<b>  </b>
		<i><!-- comment --></i>
	</div>
	<section>Content Inside</section>
	<article>  </article>
    <h1 funky-attribute="removeme">Hello, World!</h1>
    <p>This is a simple HTML page.</p>
	<a href="https://example.org" class="link-style" extra="gone">Link</a>
	<!-- Some Comment -->
</body>
</html>
`

	wantHead := `<head><meta property="og:title" content="Test Title"><meta property="og:url" content="http://example.com"><meta property="og:image" content="http://example.com/img.png"><meta property="og:description" content="Test Description"><title>Simple HTML Page</title></head>`
	// The outer div and its empty children, plus the empty article, all get
	// removed once their contents are gone.
	wantBody := `<body class="main-body" aria-label="Page body"><section>Content Inside</section><h1>Hello, World!</h1><p>This is a simple HTML page.</p><a href="https://example.org" class="link-style">Link</a></body>`

	html := mustSlim(t, fxHTML)

	if !strings.Contains(html, wantHead) {
		t.Errorf("missing cleaned head content\ngot:  %s\nwant substring: %s", html, wantHead)
	}
	if !strings.Contains(html, wantBody) {
		t.Errorf("missing cleaned body content\ngot:  %s\nwant substring: %s", html, wantBody)
	}

	removed := []string{
		"<meta charset", "<meta name", "<style>", "<link", "<script", "<base",
		"<svg>", "<span>", "<b>", "<i>", "<div>", "<article>",
		"funky-attribute", `extra="gone"`, "<!--",
	}
	for _, s := range removed {
		if strings.Contains(html, s) {
			t.Errorf("output should not contain %q\ngot: %s", s, html)
		}
	}

	kept := []string{
		"<title>Simple HTML Page</title>",
		`meta property="og:title"`,
		`meta property="og:url"`,
		`meta property="og:image"`,
		`meta property="og:description"`,
		"<section>Content Inside</section>",
		"<h1>Hello, World!</h1>",
	}
	for _, s := range kept {
		if !strings.Contains(html, s) {
			t.Errorf("output should contain %q\ngot: %s", s, html)
		}
	}
}

func TestSlimEmptyHeadRemoved(t *testing.T) {
	fxHTML := `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<link rel="icon" href="favicon.ico">
	</head>
	<body>
		<p>Content</p>
	</body>
	</html>
	`

	html := mustSlim(t, fxHTML)

	if strings.Contains(html, "<head>") {
		t.Errorf("emptied <head> should be removed, got: %s", html)
	}
	if !strings.Contains(html, "<body><p>Content</p></body>") {
		t.Errorf("body should remain, got: %s", html)
	}
}

func TestSlimKeepsHeadIfTitlePresent(t *testing.T) {
	fxHTML := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Only Title</title>
		<script></script>
	</head>
	<body>
		<p>Content</p>
	</body>
	</html>
	`

	html := mustSlim(t, fxHTML)

	if !strings.Contains(html, "<head><title>Only Title</title></head>") {
		t.Errorf("<head> with only title should remain, got: %s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("script should be removed, got: %s", html)
	}
}

func TestSlimNestedEmptyRemoval(t *testing.T) {
	fxHTML := `
	<!DOCTYPE html>
	<html>
	<body>
		<div>
			<p>  </p>
			<div>
				<span><!-- comment --></span>
			</div>
		</div>
		<section>
			<h1>Title</h1>
			<div> </div>
		</section>
	</body>
	</html>
	`

	html := mustSlim(t, fxHTML)

	if !strings.Contains(html, "<body><section><h1>Title</h1></section></body>") {
		t.Errorf("nested empty elements should be removed, got: %s", html)
	}
	for _, s := range []string{"<p>", "<span>", "<div>"} {
		if strings.Contains(html, s) {
			t.Errorf("output should not contain %q, got: %s", s, html)
		}
	}
}

func TestSlimKeepsEmptyNonRemovableTags(t *testing.T) {
	fxHTML := `
	<!DOCTYPE html>
	<html>
	<body>
		<main></main>
		<table><tr><td></td></tr></table>
	</body>
	</html>
	`

	html := mustSlim(t, fxHTML)

	// The parser may insert tbody, so check tags individually.
	for _, s := range []string{"<main>", "<table>", "<tr>", "<td>"} {
		if !strings.Contains(html, s) {
			t.Errorf("output should keep %q even when empty, got: %s", s, html)
		}
	}
}

func TestSlimWithOptionsOverrides(t *testing.T) {
	fxHTML := `<html><body><p data-x="1" href="/a">Text</p><figure>  </figure></body></html>`

	html, err := SlimWithOptions(fxHTML, Options{
		RemovableEmptyTags: []string{"figure"},
		AllowedBodyAttrs:   []string{"data-x"},
	})
	if err != nil {
		t.Fatalf("SlimWithOptions() error = %v", err)
	}

	if !strings.Contains(html, `<p data-x="1">Text</p>`) {
		t.Errorf("custom attribute allowlist not applied, got: %s", html)
	}
	if strings.Contains(html, "<figure>") {
		t.Errorf("empty <figure> should be removed with custom policy, got: %s", html)
	}
}

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "tags", input: "&lt;p&gt;hi&lt;/p&gt;", want: "<p>hi</p>"},
		{name: "ampersand", input: "a &amp; b", want: "a & b"},
		{name: "plain passthrough", input: "nothing here", want: "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeEntities(tt.input); got != tt.want {
				t.Errorf("DecodeEntities(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeEntities(t *testing.T) {
	if got := EncodeEntities(`<a href="x">`); got != `&lt;a href=&#34;x&#34;&gt;` {
		t.Errorf("EncodeEntities() = %q", got)
	}
}
