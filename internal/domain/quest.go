package domain

// QuestType determines how quest progress is measured against the action log
type QuestType string

const (
	// QuestTypeActions counts every entry in the window
	QuestTypeActions QuestType = "actions"
	// QuestTypeUniqueSkills counts distinct skills with at least one entry
	QuestTypeUniqueSkills QuestType = "unique_skills"
	// QuestTypeSkillCount counts entries for the quest's skill
	QuestTypeSkillCount QuestType = "skill_count"
	// QuestTypeSkillAction is met by any single entry for the quest's skill
	QuestTypeSkillAction QuestType = "skill_action"
)

// Quest is a static daily or weekly objective definition
type Quest struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Desc   string    `json:"desc"`
	Type   QuestType `json:"type"`
	Skill  SkillID   `json:"skill,omitempty"` // required for skill_count / skill_action
	Target int       `json:"target"`
	XP     int       `json:"xp"`
}

// QuestCompletion records which of the active quests have been completed in
// the current daily/weekly window. The maps are cleared lazily whenever the
// recorded date no longer matches the live window key.
type QuestCompletion struct {
	DailyDate  string          `json:"dailyDate"`
	Daily      map[string]bool `json:"daily"`
	WeeklyDate string          `json:"weeklyDate"`
	Weekly     map[string]bool `json:"weekly"`
}

// NewQuestCompletion returns completion state keyed to the given windows
func NewQuestCompletion(dailyDate, weekKey string) QuestCompletion {
	return QuestCompletion{
		DailyDate:  dailyDate,
		Daily:      make(map[string]bool),
		WeeklyDate: weekKey,
		Weekly:     make(map[string]bool),
	}
}
