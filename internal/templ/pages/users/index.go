// Package users renders the paged user directory.
package users

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DukeRupert/pagestrip/internal/templ/components/pagination"
	"github.com/DukeRupert/pagestrip/internal/templ/shared"
)

var printer = message.NewPrinter(language.English)

// Summary describes the visible slice of the directory,
// e.g. "Showing 41–60 of 1,234 users".
func Summary(data pagination.Data) string {
	if data.Total == 0 {
		return "No users found"
	}
	if data.First == 0 {
		return printer.Sprintf("Page %d is past the end of %d users", data.CurrentPage, data.Total)
	}
	if data.Total == 1 {
		return "Showing 1 of 1 user"
	}
	return printer.Sprintf("Showing %d–%d of %d users", data.First, data.Last, data.Total)
}

// IndexPage renders the full users page.
func IndexPage(data ListPageData) templ.Component {
	return shared.Layout("Users", Content(data))
}

// Content renders the swappable part of the page: table, summary and strip.
// htmx requests receive only this fragment.
func Content(data ListPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := shared.NewWriter(w)

		hw.Raw(`<section`)
		hw.Attr("id", ContentID)
		hw.Raw(`><h1 class="text-xl font-semibold">Users</h1>`)
		hw.Raw(`<p class="mt-1 text-sm text-gray-500">`)
		hw.Text(Summary(data.Pagination))
		hw.Raw(`</p>`)

		hw.Raw(`<table class="mt-4 w-full text-left text-sm"><thead><tr>`)
		for _, col := range data.Columns {
			hw.Raw(`<th class="py-2"`)
			if col.Active {
				if col.Desc {
					hw.Attr("aria-sort", "descending")
				} else {
					hw.Attr("aria-sort", "ascending")
				}
			}
			hw.Raw(`><a`)
			hw.URL("href", col.Href)
			if data.Config.UseHtmx {
				hw.URL("hx-get", col.Href)
				hw.Attr("hx-target", "#"+ContentID)
				hw.Attr("hx-swap", "outerHTML")
				hw.Attr("hx-push-url", "true")
			}
			hw.Raw(`>`)
			hw.Text(col.Label)
			if col.Active {
				if col.Desc {
					hw.Raw(` ↓`)
				} else {
					hw.Raw(` ↑`)
				}
			}
			hw.Raw(`</a></th>`)
		}
		hw.Raw(`<th class="py-2">Joined</th></tr></thead><tbody>`)

		for _, u := range data.Users {
			hw.Raw(`<tr class="border-t"><td class="py-2">`)
			hw.Text(printer.Sprintf("%d", u.ID))
			hw.Raw(`</td><td class="py-2">`)
			hw.Text(u.Name)
			hw.Raw(`</td><td class="py-2">`)
			hw.Text(u.Email)
			hw.Raw(`</td><td class="py-2">`)
			hw.Text(u.Created)
			hw.Raw(`</td></tr>`)
		}
		hw.Raw(`</tbody></table>`)

		hw.Render(ctx, pagination.Strip(data.Pagination, data.Config))
		hw.Raw(`</section>`)

		return hw.Err()
	})
}
