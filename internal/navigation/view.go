package navigation

import (
	"support-nav-bot/internal/connect/requests"
)

// View - то, что нужно показать пользователю в ответ на его сообщение:
// сначала изображения, затем текст с клавиатурой
type View struct {
	Images   []string
	Text     string
	Keyboard *requests.Keyboard
}

func textView(text string) View {
	return View{Text: text}
}
