// Package presenter renders result pages, detail cards and wizard prompts
// into transport-agnostic views: text plus a button grid. The excluded
// chat-transport layer delivers them.
package presenter

// Button is a single pressable affordance; Data is the opaque payload the
// transport echoes back on press.
type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// View is one outbound message: text and a button grid
type View struct {
	Text    string     `json:"text"`
	Buttons [][]Button `json:"buttons,omitempty"`
}

var homeButton = Button{Label: "🏠 В главное меню", Data: "home"}

// MainMenu is the initial dialog offering the two search modes
func MainMenu() View {
	return View{
		Text: "Вы можете искать фильмы и сериалы двумя способами:\n" +
			"1. Просто введите название фильма или сериала.\n" +
			"2. Используйте поиск по параметрам.",
		Buttons: [][]Button{
			{{Label: "Поиск по названию", Data: "search_by_title"}},
			{{Label: "Поиск по фильтру", Data: "search_by_filter"}},
		},
	}
}

// AskQuery prompts for a free-text query
func AskQuery() View {
	return View{Text: "Введите название фильма или сериала:"}
}

// NoResults is the empty-state view with a retry affordance
func NoResults() View {
	return View{
		Text: "❌ По вашему запросу ничего не найдено.\n\n" +
			"Возможные причины:\n" +
			"• Слишком узкие критерии поиска\n" +
			"• Нет контента с этими параметрами\n\n" +
			"Попробуйте изменить параметры поиска.",
		Buttons: [][]Button{
			{{Label: "🔄 Новый поиск", Data: "search_by_filter"}},
			{homeButton},
		},
	}
}

// SessionExpired prompts the user to restart after state was lost
func SessionExpired() View {
	return View{
		Text:    "Сессия поиска истекла. Начните новый поиск.",
		Buttons: [][]Button{{homeButton}},
	}
}

// TryAgain is the generic recovery view for unexpected rendering failures
func TryAgain() View {
	return View{
		Text:    "Произошла ошибка при получении информации. Пожалуйста, попробуйте позже.",
		Buttons: [][]Button{{homeButton}},
	}
}

// Cancelled confirms an abandoned wizard
func Cancelled() View {
	return View{Text: "Поиск отменён.", Buttons: [][]Button{{homeButton}}}
}
