package presenter

import (
	"strconv"
	"strings"

	"github.com/mvolkov/kinobot/internal/models"
)

// movieGenres is the localized movie genre taxonomy
var movieGenres = map[int]string{
	28:    "Боевик",
	12:    "Приключения",
	16:    "Мультфильм",
	35:    "Комедия",
	80:    "Криминал",
	99:    "Документальный",
	18:    "Драма",
	10751: "Семейный",
	14:    "Фэнтези",
	36:    "История",
	27:    "Ужасы",
	10402: "Музыка",
	9648:  "Мистика",
	10749: "Романтика",
	878:   "Фантастика",
	10770: "Телевизионный фильм",
	53:    "Триллер",
	10752: "Военный",
	37:    "Вестерн",
}

// seriesGenres is the distinct tv genre taxonomy
var seriesGenres = map[int]string{
	10759: "Боевик и Приключения",
	16:    "Анимация",
	35:    "Комедия",
	80:    "Криминал",
	99:    "Документальный",
	18:    "Драма",
	10751: "Семейный",
	10762: "Детский",
	9648:  "Детектив",
	10763: "Новости",
	10764: "Реалити-шоу",
	10765: "НФ и Фэнтези",
	10766: "Мыльная опера",
	10767: "Ток-шоу",
	10768: "Военный и Политика",
	37:    "Вестерн",
}

// GenreName resolves a genre id to its localized name for the given media
// type, falling back to the numeric id when unknown
func GenreName(id int, mediaType models.MediaType) string {
	table := movieGenres
	if mediaType == models.MediaTypeTV {
		table = seriesGenres
	}
	if name, ok := table[id]; ok {
		return name
	}
	return strconv.Itoa(id)
}

// formatGenres renders a detail response's genre list, preferring the
// localized tables over the API-provided names and dropping duplicates
func formatGenres(genres []models.Genre, mediaType models.MediaType) string {
	var names []string
	seen := make(map[string]bool)
	for _, genre := range genres {
		name := GenreName(genre.ID, mediaType)
		if name == strconv.Itoa(genre.ID) && genre.Name != "" {
			name = genre.Name
		}
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
