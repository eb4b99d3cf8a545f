package shared

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"

	"github.com/DukeRupert/pagestrip/internal/requestctx"
)

const (
	navLinkClass       = "px-3 py-2 rounded-md text-sm font-medium text-gray-600 hover:bg-gray-100"
	navLinkActiveClass = "bg-gray-900 text-white hover:bg-gray-900"
)

// NavLink is an entry in the top navigation.
type NavLink struct {
	Href  string
	Label string
}

// Nav lists the top navigation entries.
var Nav = []NavLink{
	{Href: "/users", Label: "Users"},
}

// NavLinkClass returns the classes for a nav link, highlighting the one
// matching the current path.
func NavLinkClass(href, currentPath string) string {
	if href == currentPath {
		return twmerge.Merge(navLinkClass, navLinkActiveClass)
	}
	return navLinkClass
}

// Layout renders the HTML document around body.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		currentPath := requestctx.Path(ctx)

		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw(`<title>`)
		hw.Text(title)
		hw.Raw(` · Pagestrip</title>`)
		hw.Raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		hw.Raw(`<link rel="stylesheet" href="/static/app.css"></head>`)
		hw.Raw(`<body class="bg-gray-50 text-gray-900"><header class="border-b bg-white"><nav class="mx-auto flex max-w-5xl gap-2 p-4">`)
		for _, link := range Nav {
			hw.Raw(`<a`)
			hw.URL("href", link.Href)
			hw.Attr("class", NavLinkClass(link.Href, currentPath))
			if link.Href == currentPath {
				hw.Attr("aria-current", "page")
			}
			hw.Raw(`>`)
			hw.Text(link.Label)
			hw.Raw(`</a>`)
		}
		hw.Raw(`</nav></header><main class="mx-auto max-w-5xl p-4">`)
		hw.Render(ctx, body)
		hw.Raw(`</main></body></html>`)

		return hw.Err()
	})
}
