package interpret

import "github.com/ppiankov/cardiorisk/internal/i18n"

// Template keys
const (
	KeyHighHigh   = "high_high"
	KeyHighMedium = "high_medium"
	KeyModerate   = "moderate"
	KeyLow        = "low"
)

// FactorsPlaceholder is replaced with the comma-joined factor list.
const FactorsPlaceholder = "{factors}"

// Templates is the built-in narrative table.
var Templates = i18n.Table{
	i18n.English: {
		KeyHighHigh:   "The model indicates a high cardiovascular risk driven by clinically significant factors, including {factors}. Given the high confidence of the prediction, clinical intervention and intensive risk factor management should be strongly considered.",
		KeyHighMedium: "The model indicates a high cardiovascular risk associated with factors such as {factors}. Clinical evaluation and preventive intervention are recommended.",
		KeyModerate:   "The model suggests a moderate cardiovascular risk associated with factors such as {factors}. Lifestyle modification and regular monitoring are advised.",
		KeyLow:        "The model indicates a low cardiovascular risk. Continued adherence to healthy lifestyle practices is recommended.",
	},
	i18n.Russian: {
		KeyHighHigh:   "Модель указывает на высокий сердечно-сосудистый риск, обусловленный клинически значимыми факторами, включая {factors}. Учитывая высокую достоверность прогноза, рекомендуется активное клиническое вмешательство и коррекция факторов риска.",
		KeyHighMedium: "Модель указывает на высокий сердечно-сосудистый риск, связанный с такими факторами, как {factors}. Рекомендуется клиническая оценка и профилактическое вмешательство.",
		KeyModerate:   "Модель предполагает умеренный сердечно-сосудистый риск, связанный с факторами, такими как {factors}. Рекомендуется изменение образа жизни и регулярный мониторинг.",
		KeyLow:        "Модель указывает на низкий сердечно-сосудистый риск. Рекомендуется продолжать придерживаться здорового образа жизни.",
	},
	i18n.Korean: {
		KeyHighHigh:   "모델은 {factors}를 포함한 임상적으로 중요한 요인으로 인한 높은 심혈관 위험을 나타냅니다. 높은 예측 신뢰도를 고려할 때 임상 개입과 강화된 위험 요인 관리를 강력히 권고합니다.",
		KeyHighMedium: "모델은 {factors}와 같은 요인과 관련된 높은 심혈관 위험을 나타냅니다. 임상 평가 및 예방적 개입을 권장합니다.",
		KeyModerate:   "모델은 {factors}와 같은 요인과 관련된 중간 정도의 심혈관 위험을 제시합니다. 생활방식 개선 및 정기적인 모니터링을 조언합니다.",
		KeyLow:        "모델은 낮은 심혈관 위험을 나타냅니다. 건강한 생활습관의 지속을 권장합니다.",
	},
}
