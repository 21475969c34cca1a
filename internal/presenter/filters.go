package presenter

import (
	"fmt"
	"strings"

	"github.com/mvolkov/kinobot/internal/models"
)

// FilterSummary describes the applied criteria for the result-page header
func FilterSummary(criteria models.Criteria) string {
	var parts []string

	switch criteria.MediaType {
	case models.MediaTypeMovie:
		parts = append(parts, "Тип: Фильм")
	case models.MediaTypeTV:
		parts = append(parts, "Тип: Сериал")
	}

	if criteria.GenreID != nil {
		parts = append(parts, "Жанр: "+GenreName(*criteria.GenreID, criteria.MediaType))
	}

	if criteria.Years != nil {
		if criteria.Years.End <= 1999 {
			parts = append(parts, "Год: До 2000")
		} else {
			parts = append(parts, fmt.Sprintf("Год: %d-%d", criteria.Years.Start, criteria.Years.End))
		}
	}

	if criteria.Rating != nil {
		switch *criteria.Rating {
		case models.RatingHigh:
			parts = append(parts, "Рейтинг: Более 8")
		case models.RatingMedium:
			parts = append(parts, "Рейтинг: От 5 до 8")
		case models.RatingLow:
			parts = append(parts, "Рейтинг: Меньше 5")
		}
	}

	if criteria.Country != "" {
		parts = append(parts, "Страна: "+CountryName(criteria.Country))
	}

	switch criteria.Sort {
	case models.SortRating:
		parts = append(parts, "Сортировка: по рейтингу")
	case models.SortReleaseDate:
		parts = append(parts, "Сортировка: по дате выхода")
	default:
		parts = append(parts, "Сортировка: по популярности")
	}

	return "Фильтры: " + strings.Join(parts, " | ")
}
