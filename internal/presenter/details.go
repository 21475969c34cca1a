package presenter

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/mvolkov/kinobot/internal/models"
)

// DetailSource provides detail records and credits, served through the
// response cache tiers
type DetailSource interface {
	Details(ctx context.Context, id int64, mediaType models.MediaType) (*models.MediaDetails, error)
	Credits(ctx context.Context, id int64, mediaType models.MediaType) (*models.Credits, error)
}

// Translator localizes person names; it never fails, falling back to the
// input text
type Translator interface {
	Translate(ctx context.Context, text string) string
}

const castLimit = 5

// movieDirectorJobs are the crew jobs treated as "director" in summary view
var movieDirectorJobs = map[string]bool{
	"director": true,
	"режиссер": true,
}

// seriesDirectorJobs is the broader director-equivalent job list the
// expanded view recognizes for series
var seriesDirectorJobs = map[string]bool{
	"director":            true,
	"режиссер":            true,
	"series director":     true,
	"directing":           true,
	"television director": true,
	"creator":             true,
	"created by":          true,
}

// RenderDetails renders the summary detail card for an item: synopsis
// truncated, credits fetched lazily, names localized
func (p *Presenter) RenderDetails(ctx context.Context, id int64, mediaType models.MediaType) (View, error) {
	return p.renderCard(ctx, id, mediaType, false)
}

// RenderExpandedDetails is the same pipeline without synopsis truncation
// and with the broader director-equivalent job list for series
func (p *Presenter) RenderExpandedDetails(ctx context.Context, id int64, mediaType models.MediaType) (View, error) {
	return p.renderCard(ctx, id, mediaType, true)
}

func (p *Presenter) renderCard(ctx context.Context, id int64, mediaType models.MediaType, expanded bool) (View, error) {
	details, err := p.source.Details(ctx, id, mediaType)
	if err != nil {
		return View{}, err
	}

	credits, err := p.source.Credits(ctx, id, mediaType)
	if err != nil {
		p.logger.WithError(err).WithField("id", id).Warn("Failed to fetch credits")
		credits = &models.Credits{}
	}

	directors := p.directors(ctx, details, credits, expanded)
	cast := p.cast(ctx, credits)

	title := html.EscapeString(details.Title)
	if title == "" {
		title = "Без названия"
	}

	year := "N/A"
	if y := details.Year(); y != 0 {
		year = fmt.Sprintf("%d", y)
	}

	emoji := "🎬"
	if mediaType == models.MediaTypeTV {
		emoji = "📺"
	}

	// Truncate before escaping so the cut can never land inside an entity
	overview := details.Overview
	if overview == "" {
		overview = "Нет описания"
	} else if !expanded {
		overview = truncate(overview, p.maxOverview, p.maxOverview)
	}
	overview = html.EscapeString(overview)

	text := fmt.Sprintf(
		"<b>%s %s (%s)</b>\n\n"+
			"🌍 Страна: %s\n"+
			"🎭 Жанр: %s\n"+
			"⭐ Рейтинг: %.1f\n"+
			"🎥 Режиссер: %s\n"+
			"👥 В ролях: %s\n\n"+
			"📖 %s",
		emoji, title, year,
		p.countries(details),
		formatGenres(details.Genres, mediaType),
		details.VoteAverage,
		directors,
		cast,
		overview,
	)

	toggle := Button{
		Label: "Читать далее",
		Data:  fmt.Sprintf("expand_%d_%s", id, mediaType),
	}
	if expanded {
		toggle = Button{
			Label: "Свернуть описание",
			Data:  fmt.Sprintf("collapse_%d_%s", id, mediaType),
		}
	}

	return View{
		Text: text,
		Buttons: [][]Button{
			{homeButton},
			{toggle},
			{{Label: "⬅️ Назад к списку", Data: "back_to_list"}},
		},
	}, nil
}

// directors extracts, deduplicates and localizes the director-equivalent
// names. Series fall back to the created-by list when the crew yields
// nothing.
func (p *Presenter) directors(ctx context.Context, details *models.MediaDetails, credits *models.Credits, expanded bool) string {
	jobs := movieDirectorJobs
	if expanded && details.MediaType == models.MediaTypeTV {
		jobs = seriesDirectorJobs
	}

	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" {
			return
		}
		translated := p.translator.Translate(ctx, name)
		if seen[translated] {
			return
		}
		seen[translated] = true
		names = append(names, html.EscapeString(translated))
	}

	for _, member := range credits.Crew {
		if jobs[strings.ToLower(member.Job)] {
			add(member.Name)
		}
	}

	if len(names) == 0 && details.MediaType == models.MediaTypeTV {
		for _, name := range details.CreatedBy {
			add(name)
		}
	}

	if len(names) == 0 {
		return "Неизвестно"
	}
	return strings.Join(names, ", ")
}

// cast renders the localized top-billed cast
func (p *Presenter) cast(ctx context.Context, credits *models.Credits) string {
	var names []string
	for i, member := range credits.Cast {
		if i >= castLimit {
			break
		}
		names = append(names, html.EscapeString(p.translator.Translate(ctx, member.Name)))
	}
	if len(names) == 0 {
		return "Нет информации"
	}
	return strings.Join(names, ", ")
}

// countries renders the localized production-country list
func (p *Presenter) countries(details *models.MediaDetails) string {
	var names []string
	seen := make(map[string]bool)
	for _, country := range details.ProductionCountries {
		name := CountryName(country.ISOCode)
		if name == country.ISOCode && country.Name != "" {
			name = country.Name
		}
		name = html.EscapeString(name)
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return "Неизвестно"
	}
	return strings.Join(names, ", ")
}
