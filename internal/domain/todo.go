package domain

// TodoItem is a planned action for today. A matching logged action
// auto-completes it.
type TodoItem struct {
	ID         string  `json:"id"`
	SkillID    SkillID `json:"skillId"`
	ActionID   string  `json:"actionId"`
	ActionName string  `json:"actionName"`
	Completed  bool    `json:"completed"`
}

// TodoState holds today's todo list; Items are cleared lazily on date change
type TodoState struct {
	LastResetDate string     `json:"lastResetDate"`
	Items         []TodoItem `json:"items"`
}
