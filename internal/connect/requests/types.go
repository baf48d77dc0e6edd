package requests

import "github.com/google/uuid"

type (
	// KeyboardKey - кнопка клавиатуры под сообщением
	KeyboardKey struct {
		ID   string `json:"id,omitempty"`
		Text string `json:"text"`
	}

	// Keyboard - строки кнопок
	Keyboard [][]KeyboardKey

	MessageRequest struct {
		LineID   uuid.UUID  `json:"line_id"`
		UserID   int64      `json:"user_id"`
		AuthorID *uuid.UUID `json:"author_id,omitempty"`
		Text     string     `json:"text"`
		Keyboard *Keyboard  `json:"keyboard,omitempty"`
	}

	FileRequest struct {
		LineID   uuid.UUID  `json:"line_id"`
		UserID   int64      `json:"user_id"`
		AuthorID *uuid.UUID `json:"author_id,omitempty"`
		FileName string     `json:"file_name"`
		Comment  *string    `json:"comment,omitempty"`
	}

	HookSetupRequest struct {
		ID   uuid.UUID `json:"id"`
		Type string    `json:"type"`
		Url  string    `json:"url"`
	}
)

// Labels - тексты всех кнопок клавиатуры по порядку
func (k Keyboard) Labels() []string {
	var labels []string
	for _, row := range k {
		for _, key := range row {
			labels = append(labels, key.Text)
		}
	}
	return labels
}
