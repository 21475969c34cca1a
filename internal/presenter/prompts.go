package presenter

import (
	"github.com/mvolkov/kinobot/internal/wizard"
)

var (
	backButton = Button{Label: "⬅️ Назад", Data: "back"}
	skipAny    = Button{Label: "Любой", Data: "skip"}
)

// WizardPrompt renders the dialog for a wizard state. Prompts are
// deterministic functions of the state, so "back" regenerates the earlier
// prompt from scratch without any history.
func WizardPrompt(state wizard.State) View {
	switch state {
	case wizard.StateChooseType:
		return View{
			Text: "Выберите тип:",
			Buttons: [][]Button{
				{homeButton},
				{
					{Label: "🎬 Фильм", Data: "type_movie"},
					{Label: "📺 Сериал", Data: "type_tv"},
				},
				{{Label: "🎬📺 Все", Data: "type_any"}},
			},
		}

	case wizard.StateChooseGenre:
		return View{
			Text: "Выберите жанр:",
			Buttons: [][]Button{
				{homeButton},
				{
					{Label: "Боевик", Data: "genre_28"},
					{Label: "Комедия", Data: "genre_35"},
				},
				{
					{Label: "Драма", Data: "genre_18"},
					{Label: "Фантастика", Data: "genre_878"},
				},
				{skipAny},
				{backButton},
			},
		}

	case wizard.StateChooseYear:
		return View{
			Text: "Выберите год выпуска:",
			Buttons: [][]Button{
				{homeButton},
				{
					{Label: "С 2020", Data: "year_2020"},
					{Label: "2010-2019", Data: "year_2010-2019"},
				},
				{
					{Label: "2000-2009", Data: "year_2000-2009"},
					{Label: "До 2000", Data: "year_pre2000"},
				},
				{skipAny},
				{backButton},
			},
		}

	case wizard.StateChooseRating:
		return View{
			Text: "Выберите рейтинг:",
			Buttons: [][]Button{
				{homeButton},
				{
					{Label: "Более 8", Data: "rating_high"},
					{Label: "От 5 до 8", Data: "rating_medium"},
					{Label: "Меньше 5", Data: "rating_low"},
				},
				{skipAny},
				{backButton},
			},
		}

	case wizard.StateChooseCountry:
		buttons := [][]Button{{homeButton}}
		for i := 0; i < len(wizardCountries); i += 2 {
			row := []Button{{
				Label: CountryName(wizardCountries[i]),
				Data:  "country_" + wizardCountries[i],
			}}
			if i+1 < len(wizardCountries) {
				row = append(row, Button{
					Label: CountryName(wizardCountries[i+1]),
					Data:  "country_" + wizardCountries[i+1],
				})
			}
			buttons = append(buttons, row)
		}
		buttons = append(buttons,
			[]Button{{Label: "Любая", Data: "skip"}},
			[]Button{backButton},
		)
		return View{Text: "Выберите страну:", Buttons: buttons}

	case wizard.StateChooseSort:
		return View{
			Text: "Выберите способ сортировки:",
			Buttons: [][]Button{
				{homeButton},
				{{Label: "По популярности ⭐", Data: "sort_popularity"}},
				{{Label: "По рейтингу 📊", Data: "sort_rating"}},
				{{Label: "По дате выхода 📅", Data: "sort_date"}},
				{backButton},
			},
		}
	}

	return MainMenu()
}
