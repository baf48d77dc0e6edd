package cache

import "support-nav-bot/internal/database"

// HistoryPush - добавить шаг в историю
func (s *Session) HistoryPush(action database.NavAction) {
	s.History = append(s.History, action)
}

// HistoryPushNode - добавить узел контента в историю, если он уже не последний
func (s *Session) HistoryPushNode(nodeID int64) {
	if top, ok := s.HistoryTop(); ok && top == database.NodeAction(nodeID) {
		return
	}
	s.HistoryPush(database.NodeAction(nodeID))
}

// HistoryBack - удалить последний шаг. Корень не удаляется,
// в этом случае возвращается false и вызывающий должен вернуть пользователя в начало.
func (s *Session) HistoryBack() bool {
	if len(s.History) <= 1 {
		return false
	}
	s.History = s.History[:len(s.History)-1]
	return true
}

// HistoryTop - текущий экран пользователя
func (s *Session) HistoryTop() (database.NavAction, bool) {
	if len(s.History) == 0 {
		return database.NavAction{}, false
	}
	return s.History[len(s.History)-1], true
}

// HistoryReset - история заново начинается с корня
func (s *Session) HistoryReset(rootID int64) {
	s.History = []database.NavAction{database.NodeAction(rootID)}
}

// HistoryIsRoot - в истории только переданный узел
func (s *Session) HistoryIsRoot(nodeID int64) bool {
	return len(s.History) == 1 && s.History[0] == database.NodeAction(nodeID)
}
