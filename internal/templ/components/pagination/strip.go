package pagination

import (
	"context"
	"io"
	"strconv"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"

	"github.com/DukeRupert/pagestrip/internal/pagewindow"
	"github.com/DukeRupert/pagestrip/internal/templ/shared"
)

const (
	itemClass     = "inline-flex min-w-9 justify-center rounded-md border border-gray-300 bg-white px-3 py-1 text-sm text-gray-700 hover:bg-gray-50"
	currentClass  = "border-blue-600 bg-blue-600 text-white hover:bg-blue-600"
	ellipsisClass = "border-transparent bg-transparent text-gray-400 hover:bg-transparent"
	disabledClass = "cursor-not-allowed text-gray-300 hover:bg-white"
)

// ItemClass returns the classes for a strip entry.
func ItemClass(item pagewindow.PageItem, currentPage int) string {
	switch {
	case item.Ellipsis:
		return twmerge.Merge(itemClass, ellipsisClass)
	case item.Number == currentPage:
		return twmerge.Merge(itemClass, currentClass)
	default:
		return itemClass
	}
}

// Strip renders previous/next controls around the page-number strip.
// It renders nothing when there is at most one page.
func Strip(data Data, cfg Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !data.Visible() {
			return nil
		}

		hw := shared.NewWriter(w)
		hw.Raw(`<nav class="mt-4 flex items-center justify-between gap-2" aria-label="Pagination">`)

		writeStep(hw, cfg, "Previous", data.PrevPage, data.HasPrevious)

		hw.Raw(`<ul class="flex gap-1">`)
		for _, item := range data.Items {
			hw.Raw(`<li>`)
			if item.Ellipsis {
				// The marker jumps to the page next to the collapsed range.
				writeLink(hw, cfg, item.Number, ItemClass(item, data.CurrentPage), false)
				hw.Raw(`<span aria-hidden="true">…</span><span class="sr-only">Jump to page `)
				hw.Text(strconv.Itoa(item.Number))
				hw.Raw(`</span></a>`)
			} else {
				writeLink(hw, cfg, item.Number, ItemClass(item, data.CurrentPage), item.Number == data.CurrentPage)
				hw.Text(strconv.Itoa(item.Number))
				hw.Raw(`</a>`)
			}
			hw.Raw(`</li>`)
		}
		hw.Raw(`</ul>`)

		writeStep(hw, cfg, "Next", data.NextPage, data.HasNext)

		hw.Raw(`</nav>`)
		return hw.Err()
	})
}

// writeStep renders a previous/next control, disabled when not enabled.
func writeStep(hw *shared.Writer, cfg Config, label string, page int, enabled bool) {
	if !enabled {
		hw.Raw(`<span`)
		hw.Attr("class", twmerge.Merge(itemClass, disabledClass))
		hw.Raw(` aria-disabled="true">`)
		hw.Text(label)
		hw.Raw(`</span>`)
		return
	}
	writeLink(hw, cfg, page, itemClass, false)
	hw.Text(label)
	hw.Raw(`</a>`)
}

// writeLink opens an anchor for page, adding htmx attributes when enabled.
func writeLink(hw *shared.Writer, cfg Config, page int, class string, current bool) {
	href := cfg.PageURL(page)

	hw.Raw(`<a`)
	hw.URL("href", href)
	hw.Attr("class", class)
	if current {
		hw.Attr("aria-current", "page")
	}
	if cfg.UseHtmx {
		hw.URL("hx-get", href)
		if cfg.TargetID != "" {
			hw.Attr("hx-target", "#"+cfg.TargetID)
			hw.Attr("hx-swap", "outerHTML")
		}
		if cfg.PushURL {
			hw.Attr("hx-push-url", "true")
		}
	}
	hw.Raw(`>`)
}
