package entities

// achievements maps a streak length to the title unlocked on reaching it.
var achievements = map[int]string{
	1:   "👶 Первый вдох",
	2:   "👣 Первые шаги",
	3:   "🎯 Ординатор-энтузиаст",
	5:   "⚡️ Мозговая активация",
	7:   "💪 Гигант педиатр",
	10:  "🌊 Врач на волне",
	14:  "☕️ Доктор без выходных",
	21:  "🩺 Стабильность – признак профи",
	30:  "📚 Гуру гайдлайнов",
	60:  "🏅 Наставник ординаторов",
	90:  "💎 Легендарный неонатолог",
	180: "🔥 Кандидат бессмертия",
	365: "👑 Легенда отделения",
}

// AchievementFor returns the title unlocked at exactly this streak length.
func AchievementFor(streak int) (string, bool) {
	title, ok := achievements[streak]
	return title, ok
}
