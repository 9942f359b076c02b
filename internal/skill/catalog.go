package skill

import "github.com/ascend-app/ascend/internal/domain"

// Defs is the fixed skill catalog: the seven XP-based skills plus the money
// track. The catalog itself is never mutated at runtime; user-authored custom
// actions live in GameState and are unioned in by Actions.
var Defs = []domain.SkillDefinition{
	{
		ID:    domain.SkillStrength,
		Name:  "Strength",
		Icon:  "💪",
		Color: "#EF4444",
		Desc:  "Lifting, physical training, raw power",
		Actions: []domain.SkillAction{
			{ID: "gym", Name: "Gym Session", XP: 75, Desc: "Hit the weights"},
			{ID: "home_workout", Name: "Home Workout", XP: 50, Desc: "Bodyweight training at home"},
			{ID: "give_me_10", Name: "Give Me 10", XP: 2, Desc: "Quick 10 reps of anything"},
			{ID: "martial_arts", Name: "Martial Arts", XP: 70, Desc: "Combat training session"},
		},
	},
	{
		ID:    domain.SkillEndurance,
		Name:  "Endurance",
		Icon:  "🏃",
		Color: "#F97316",
		Desc:  "Cardio, consistency, stamina",
		Actions: []domain.SkillAction{
			{ID: "run_30", Name: "Run 30min", XP: 60, Desc: "30 minute run"},
			{ID: "sports_1hr", Name: "Sports Activity 1hr+", XP: 70, Desc: "Active sport for 1+ hours"},
			{ID: "hiit_30", Name: "HIIT 30min", XP: 90, Desc: "High intensity interval training"},
			{ID: "steps_2500", Name: "2,500 Steps", XP: 7, Desc: "Walk 2500 steps"},
		},
	},
	{
		ID:    domain.SkillDiscipline,
		Name:  "Discipline",
		Icon:  "⚔️",
		Color: "#EAB308",
		Desc:  "Habits, streaks, routines",
		Actions: []domain.SkillAction{
			{ID: "early_bird", Name: "Early Bird", XP: 30, Desc: "Wake up early"},
			{ID: "worked_out", Name: "Worked Out", XP: 50, Desc: "Completed a workout"},
			{ID: "cold_shower", Name: "Cold Shower", XP: 20, Desc: "Took a cold shower"},
			{ID: "ate_clean", Name: "Ate Clean", XP: 50, Desc: "Clean eating all day"},
			{ID: "f_vices", Name: "F My Vices", XP: 60, Desc: "Resisted temptation"},
		},
	},
	{
		ID:    domain.SkillIntellect,
		Name:  "Intellect",
		Icon:  "🧠",
		Color: "#3B82F6",
		Desc:  "Studying, reading, learning",
		Actions: []domain.SkillAction{
			{ID: "reading_30", Name: "Reading 30min", XP: 40, Desc: "30 minutes of reading"},
			{ID: "course", Name: "Course / Lecture", XP: 60, Desc: "Completed a lesson"},
			{ID: "deep_work", Name: "Deep Work 1hr", XP: 80, Desc: "1 hour of focused work"},
			{ID: "writing", Name: "Writing / Creating", XP: 50, Desc: "Creative output"},
			{ID: "coding", Name: "Coding Session", XP: 50, Desc: "Programming work"},
			{ID: "instrument", Name: "Play Instrument", XP: 40, Desc: "Music practice"},
			{ID: "podcast", Name: "Podcast / Documentary", XP: 25, Desc: "Educational content"},
		},
	},
	{
		ID:    domain.SkillSocial,
		Name:  "Social",
		Icon:  "👥",
		Color: "#EC4899",
		Desc:  "Conversations, networking, dating",
		Actions: []domain.SkillAction{
			{ID: "whatsapp", Name: "WhatsApp Friend", XP: 50, Desc: "Messaged a friend"},
			{ID: "new_connection", Name: "New Connection", XP: 80, Desc: "Met someone new"},
			{ID: "social_event", Name: "Social Event", XP: 70, Desc: "Attended a gathering"},
			{ID: "call_family", Name: "Call Family", XP: 40, Desc: "Called a family member"},
		},
	},
	{
		ID:    domain.SkillMind,
		Name:  "Mind",
		Icon:  "🧘",
		Color: "#8B5CF6",
		Desc:  "Meditation, faith, emotional regulation",
		Actions: []domain.SkillAction{
			{ID: "meditation", Name: "Meditation 15min", XP: 50, Desc: "15 minutes of meditation"},
			{ID: "breathwork", Name: "Breathwork", XP: 30, Desc: "Breathing exercises"},
			{ID: "therapy", Name: "Therapy / Coaching", XP: 100, Desc: "Professional session"},
			{ID: "gratitude", Name: "Gratitude Practice", XP: 25, Desc: "Write down what you're grateful for"},
			{ID: "church", Name: "Go To Church", XP: 200, Desc: "Attended service"},
			{ID: "pray", Name: "Pray", XP: 20, Desc: "Prayer session"},
		},
	},
	{
		ID:    domain.SkillDurability,
		Name:  "Durability",
		Icon:  "🛡️",
		Color: "#14B8A6",
		Desc:  "Sleep, recovery, health upkeep",
		Actions: []domain.SkillAction{
			{ID: "sleep_7hr", Name: "7hr Sleep", XP: 70, Desc: "Got 7+ hours of sleep"},
			{ID: "vitamins", Name: "Drink Vitamins", XP: 30, Desc: "Took vitamins/supplements"},
			{ID: "cold_sauna", Name: "Cold Shower / Sauna", XP: 40, Desc: "Recovery session"},
			{ID: "stretching", Name: "Stretching / Mobility", XP: 30, Desc: "Flexibility work"},
		},
	},
	{
		ID:    domain.SkillMoney,
		Name:  "Money",
		Icon:  "💰",
		Color: "#22C55E",
		Desc:  "Net worth tracking, financial growth",
		// No actions - levels are derived from net worth input
		Actions: []domain.SkillAction{},
	},
}

// Def returns the catalog entry for a skill id, or nil
func Def(id domain.SkillID) *domain.SkillDefinition {
	for i := range Defs {
		if Defs[i].ID == id {
			return &Defs[i]
		}
	}
	return nil
}

// Action looks up a fixed catalog action within a skill
func Action(skillID domain.SkillID, actionID string) *domain.SkillAction {
	def := Def(skillID)
	if def == nil {
		return nil
	}
	for i := range def.Actions {
		if def.Actions[i].ID == actionID {
			return &def.Actions[i]
		}
	}
	return nil
}

// DefaultStates returns zero-XP states for the seven tracked skills
func DefaultStates() []domain.SkillState {
	states := make([]domain.SkillState, 0, len(domain.TrackedSkillIDs))
	for _, id := range domain.TrackedSkillIDs {
		states = append(states, domain.SkillState{ID: id, XP: 0})
	}
	return states
}
