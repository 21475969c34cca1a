package presenter

import (
	"fmt"
	"html"

	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/models"
)

// Presenter renders result sets and detail cards. Detail data and credits
// are fetched lazily through source; person names go through translator.
type Presenter struct {
	source      DetailSource
	translator  Translator
	pageSize    int
	maxOverview int
	logger      *logrus.Logger
}

// NewPresenter creates a presenter with the given page size and synopsis cap
func NewPresenter(source DetailSource, translator Translator, pageSize, maxOverview int, logger *logrus.Logger) *Presenter {
	return &Presenter{
		source:      source,
		translator:  translator,
		pageSize:    pageSize,
		maxOverview: maxOverview,
		logger:      logger,
	}
}

// PageCount returns the number of pages the items occupy
func (p *Presenter) PageCount(total int) int {
	return (total + p.pageSize - 1) / p.pageSize
}

// RenderPage renders one page of a result set with navigation controls.
// An empty set or an out-of-range page yields the no-results view.
func (p *Presenter) RenderPage(items []models.MediaItem, query string, page int) View {
	totalPages := p.PageCount(len(items))
	if len(items) == 0 || page < 0 || page >= totalPages {
		return NoResults()
	}

	start := page * p.pageSize
	end := start + p.pageSize
	if end > len(items) {
		end = len(items)
	}
	current := items[start:end]

	buttons := [][]Button{{homeButton}}
	for i := 0; i < len(current); i += 2 {
		row := []Button{resultButton(current[i])}
		if i+1 < len(current) {
			row = append(row, resultButton(current[i+1]))
		}
		buttons = append(buttons, row)
	}

	// Navigation affordances only when the set spans multiple pages
	if totalPages > 1 {
		var nav []Button
		if page > 0 {
			nav = append(nav, Button{Label: "⬅️", Data: fmt.Sprintf("page_%d", page-1)})
		}
		nav = append(nav, Button{
			Label: fmt.Sprintf("%d/%d", page+1, totalPages),
			Data:  "current_page",
		})
		if end < len(items) {
			nav = append(nav, Button{Label: "➡️", Data: fmt.Sprintf("page_%d", page+1)})
		}
		buttons = append(buttons, nav)
	}

	return View{
		Text: fmt.Sprintf("Результаты поиска для '%s' (страница %d/%d):",
			html.EscapeString(query), page+1, totalPages),
		Buttons: buttons,
	}
}

// resultButton builds the compact "title (year) emoji" button for an item
func resultButton(item models.MediaItem) Button {
	title := truncate(item.Title, 30, 33)

	year := "N/A"
	if y := item.Year(); y != 0 {
		year = fmt.Sprintf("%d", y)
	}

	emoji := "🎬"
	if item.MediaType == models.MediaTypeTV {
		emoji = "📺"
	}

	return Button{
		Label: fmt.Sprintf("%s (%s) %s", title, year, emoji),
		Data:  fmt.Sprintf("details_%d_%s", item.ID, item.MediaType),
	}
}

// truncate shortens s to keep runes with an ellipsis once it exceeds limit
func truncate(s string, keep, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:keep]) + "..."
}
