package i18n

var en = map[string]string{
	"app_title": "CardioRisk AI",

	// Form
	"section_demographics":    "Demographics",
	"section_indicators":      "Indicators",
	"section_lifestyle":       "Lifestyle",
	"label_region":            "Region (WHO)",
	"region_unknown":          "Unknown",
	"label_dob":               "Date of Birth",
	"label_age":               "Age (years)",
	"label_gender":            "Gender",
	"label_systolic":          "Systolic BP (mmHg)",
	"label_diastolic":         "Diastolic BP (mmHg)",
	"label_cholesterol":       "Cholesterol",
	"label_glucose":           "Glucose",
	"label_bmi":               "BMI (Body Mass Index)",
	"label_height":            "Height (cm)",
	"label_weight":            "Weight (kg)",
	"label_smoking":           "Smoking",
	"label_alcohol":           "Alcohol",
	"label_physical_activity": "Physical activity",
	"option_male":             "Male",
	"option_female":           "Female",
	"option_normal":           "Normal",
	"option_above_normal":     "Above normal",
	"option_high":             "High",
	"option_yes":              "Yes",
	"option_no":               "No",
	"years":                   "years",

	// Consent
	"modal_consent_title":   "Data Ethics & Analytics",
	"modal_consent_message": "Your anonymous data helps us improve the model's accuracy. No personal identifiers are stored. Do you allow us to save the results of this assessment?",
	"consent_saved":         "Thank you. The anonymized result has been saved.",
	"consent_declined":      "The result was not saved.",

	// Results
	"results_title":            "Analysis Results",
	"results_patient_profile":  "Patient Profile",
	"results_indicators":       "Indicators",
	"results_risk_probability": "Risk Probability",
	"results_key_factors":      "Key Contributing Factors",
	"results_recommendations":  "Clinical Interpretation (Second Opinion)",
	"results_bmi":              "Patient BMI",
	"results_confidence":       "Confidence",
	"risk_low":                 "Low Risk",
	"risk_moderate":            "Moderate Risk",
	"risk_high":                "High Risk",
	"risk_cvd":                 "Probability of CVD",
	"confidence_high":          "High",
	"confidence_moderate":      "Moderate",
	"confidence_low":           "Low",
	"rec_low":                  "Indicators are normal. Continue maintaining a healthy lifestyle, monitor cholesterol levels, and stay active.",
	"rec_moderate":             "Warning: elevated risk observed. Review your diet, reduce salt intake, and consult with a cardiologist.",
	"rec_high":                 "CRITICAL LEVEL. Urgent visit to a doctor is strongly recommended for detailed examination and treatment.",
	"default_recommendation":   "It is recommended to maintain your current healthy lifestyle in accordance with WHO guidelines.",

	"factor_rec_smoke":                 "Quitting smoking is one of the most effective ways to reduce cardiovascular risk.",
	"factor_rec_alco":                  "It is recommended to limit alcohol consumption.",
	"factor_rec_active":                "Regular physical activity reduces cardiovascular risk.",
	"factor_rec_bmi":                   "Weight reduction to normal BMI values can lower cardiovascular risk.",
	"factor_rec_obesity":               "Weight reduction to normal BMI values can lower cardiovascular risk.",
	"factor_rec_ap_hi":                 "Blood pressure control and medical consultation for therapy are recommended.",
	"factor_rec_ap_lo":                 "Blood pressure control and medical consultation for therapy are recommended.",
	"factor_rec_high_bp":               "Blood pressure control and medical consultation for therapy are recommended.",
	"factor_rec_cholesterol":           "A lipid-lowering diet and cholesterol level monitoring are recommended.",
	"factor_rec_cholesterol_high":      "A lipid-lowering diet and cholesterol level monitoring are recommended.",
	"factor_rec_cholesterol_attention": "A lipid-lowering diet and cholesterol level monitoring are recommended.",
	"factor_rec_gluc":                  "Blood glucose control and specialist consultation are recommended.",

	"clinical_disclaimer":          "Medical Decision Support Disclaimer",
	"clinical_disclaimer_detailed": "This tool is a clinical decision support system (CDSS) and is not intended for diagnosis or prescribing treatment. Results are a probabilistic risk assessment and must be interpreted by a medical professional.",
	"report_footer":                "Request ID: {request_id} | Model: v{model_version}",

	// Errors
	"error_form_invalid":      "Please fill in all required fields correctly",
	"error_api_failed":        "Error communicating with server. Please try again.",
	"error_calculation":       "Error during risk calculation",
	"error_network":           "Network error. Check your connection.",
	"error_session_not_found": "Session not found. Start a new assessment.",
	"error_no_result":         "No assessment has been completed yet.",
	"error_superseded":        "A newer assessment replaced this one.",
	"error_unknown_format":    "Unsupported export format.",
	"error_consent_disabled":  "Saving anonymized results is disabled.",

	// Charts
	"chart_risk":             "Risk Level",
	"chart_safe":             "Safe",
	"chart_factor_influence": "Factor Influence",
	"direction_increases":    "Increases risk",
	"direction_reduces":      "Reduces risk",
	"shap_age":               "Age",
	"shap_systolic":          "Systolic BP",
	"shap_cholesterol":       "Cholesterol",
	"shap_glucose":           "Glucose",
	"shap_bmi":               "BMI",
	"shap_smoking":           "Smoking",
	"shap_alcohol":           "Alcohol",
	"shap_activity":          "Physical Activity",
	"chart_blood_pressure":   "Blood Pressure",

	// Hints
	"hint_label":              "Clinical Hint",
	"hint_selection_feedback": "You selected status '{status}'. For your region it corresponds to: {value}.",
	"hint_glucose_1":          "No symptoms and stable weight.",
	"hint_glucose_2":          "BMI > 25, low activity, age 45+.",
	"hint_glucose_3":          "Thirst, frequent urination, diabetes in relatives.",
	"hint_cholesterol_1":      "Active lifestyle, no smoking.",
	"hint_cholesterol_2":      "Smoking, fast food, BP > 130/80.",
	"hint_cholesterol_3":      "Obesity, xanthelasma, chest pain on exertion.",
	"ref_glucose_1":           "< 5.6 mmol/L",
	"ref_glucose_2":           "5.6 - 6.9 mmol/L",
	"ref_glucose_3":           ">= 7.0 mmol/L",
	"ref_cholesterol_1":       "< 5.2 mmol/L",
	"ref_cholesterol_2":       "5.2 - 6.2 mmol/L",
	"ref_cholesterol_3":       "> 6.2 mmol/L",

	// Patient view
	"patient_title":           "Your Result",
	"patient_your_risk":       "Your cardiovascular disease risk:",
	"patient_meaning":         "This means...",
	"patient_description":     "Please consult with your doctor for detailed advice.",
	"patient_unavailable":     "Result unavailable",
	"patient_check_input":     "Please check your input data and ensure all fields are filled correctly.",
	"patient_validation_note": "Result shown, but some data is outside recommended ranges.",

	// Doctor view
	"doctor_view":                "Clinical Risk Assessment (Doctor View)",
	"doctor_patient_summary":     "Patient data summary",
	"doctor_model_output":        "Model output (clinical)",
	"doctor_factors":             "Key contributing factors",
	"doctor_conditions":          "Clinical conditions",
	"doctor_interpretation":      "Clinical interpretation",
	"doctor_warnings":            "Warnings & model limitations",
	"doctor_disclaimer":          "Disclaimer",
	"doctor_disclaimer_text":     "This tool is intended for clinical decision support only and does not replace professional medical advice.",
	"doctor_predicted_risk":      "Predicted cardiovascular disease risk",
	"doctor_risk_category":       "Risk category",
	"doctor_confidence":          "Prediction confidence",
	"doctor_no_factors":          "No clinically relevant factors identified",
	"doctor_factors_unavailable": "Clinical factor analysis unavailable",
	"doctor_no_conditions":       "No clinically significant conditions identified",
	"doctor_validation_invalid":  "Some input data does not meet model requirements. Results may be inaccurate.",
	"doctor_validation_warnings": "Input data is outside model recommended ranges. Interpret results with caution.",
	"doctor_advisory_full":       "Model results should be interpreted in the context of the patient's complete clinical picture. The model is an auxiliary tool and does not replace clinical judgment.",
	"doctor_advisory_short":      "Model results should be interpreted in the context of the patient's complete clinical picture.",
	"doctor_second_opinion":      "AI second opinion (informational)",

	// Interpretation
	"interpretation_unavailable": "Clinical interpretation unavailable",
	"general_risk_factors":       "general risk factors",

	// Safety warnings reported by the prediction service
	"warning_young_age":      "The model is less accurate for patients under 40 years old",
	"warning_bp_inversion":   "Systolic blood pressure is lower than diastolic. Please check the accuracy of the input data.",
	"warning_underweight":    "Body mass index indicates underweight. Interpretation of cardiovascular risk may differ.",
	"warning_very_old_age":   "The patient's age exceeds the range used during model training. Prediction reliability may be reduced.",
	"warning_extreme_bp":     "Blood pressure values are outside the typical clinical ranges observed during model training.",
	"warning_extreme_bmi":    "Extremely high BMI value detected. Model prediction may be unreliable.",
	"warning_low_confidence": "The prediction is close to clinical threshold values. Interpret the result with caution.",

	// Input validation codes
	"validation_invalid_payload":     "Input data is missing.",
	"validation_age_invalid":         "Age is missing or not a number.",
	"validation_sbp_invalid":         "Systolic blood pressure is missing or not a number.",
	"validation_dbp_invalid":         "Diastolic blood pressure is missing or not a number.",
	"validation_bmi_invalid":         "BMI is missing or not a number.",
	"validation_cholesterol_missing": "Cholesterol level is required.",
	"validation_gluc_missing":        "Glucose level is required.",
	"validation_gender_missing":      "Gender is required.",
	"validation_smoke_missing":       "Smoking status is required.",
	"validation_alco_missing":        "Alcohol status is required.",
	"validation_active_missing":      "Physical activity status is required.",
	"validation_age_too_young":       "Age is below 18 years.",
	"validation_age_too_old":         "Age is above 90 years.",
	"validation_sbp_out_of_range":    "Systolic blood pressure is outside 90-220 mmHg.",
	"validation_dbp_out_of_range":    "Diastolic blood pressure is outside 50-140 mmHg.",
	"validation_bp_inversion":        "Systolic blood pressure is lower than diastolic.",
	"validation_bmi_out_of_range":    "BMI is outside 15-60 kg/m2.",
}

var ru = map[string]string{
	"section_demographics":    "Демография",
	"section_indicators":      "Показатели",
	"section_lifestyle":       "Образ жизни",
	"label_region":            "Регион (ВОЗ)",
	"region_unknown":          "Неизвестно",
	"label_dob":               "Дата рождения",
	"label_age":               "Возраст (лет)",
	"label_gender":            "Пол",
	"label_systolic":          "Систолическое АД (mmHg)",
	"label_diastolic":         "Диастолическое АД (mmHg)",
	"label_cholesterol":       "Холестерин",
	"label_glucose":           "Глюкоза",
	"label_bmi":               "ИМТ",
	"label_height":            "Рост (см)",
	"label_weight":            "Вес (кг)",
	"label_smoking":           "Курение",
	"label_alcohol":           "Алкоголь",
	"label_physical_activity": "Физическая активность",
	"option_male":             "Мужской",
	"option_female":           "Женский",
	"option_normal":           "Норма",
	"option_above_normal":     "Выше нормы",
	"option_high":             "Высокий",
	"option_yes":              "Да",
	"option_no":               "Нет",
	"years":                   "лет",

	"modal_consent_title":   "Этика данных и аналитика",
	"modal_consent_message": "Ваши анонимные данные помогут улучшить точность модели. Личные данные не сохраняются. Разрешаете ли вы сохранить результаты этой оценки?",
	"consent_saved":         "Спасибо. Обезличенный результат сохранён.",
	"consent_declined":      "Результат не сохранён.",

	"results_title":            "Результаты анализа",
	"results_patient_profile":  "Профиль пациента",
	"results_indicators":       "Показатели",
	"results_risk_probability": "Вероятность риска",
	"results_key_factors":      "Ключевые факторы влияния",
	"results_recommendations":  "Клиническая интерпретация (Второе мнение)",
	"results_bmi":              "ИМТ пациента",
	"results_confidence":       "Достоверность",
	"risk_low":                 "Низкий риск",
	"risk_moderate":            "Умеренный риск",
	"risk_high":                "Высокий риск",
	"risk_cvd":                 "Вероятность ССЗ заболеваний",
	"confidence_high":          "Высокая",
	"confidence_moderate":      "Средняя",
	"confidence_low":           "Низкая",
	"rec_low":                  "Показатели в норме. Продолжайте вести здоровый образ жизни, следите за уровнем холестерина и поддерживайте активность.",
	"rec_moderate":             "Внимание: наблюдается повышенный риск. Рекомендуется пересмотреть диету, сократить потребление соли и проконсультироваться с кардиологом.",
	"rec_high":                 "КРИТИЧЕСКИЙ УРОВЕНЬ. Настоятельно рекомендуется немедленно обратиться к врачу для детального обследования и назначения терапии.",
	"default_recommendation":   "Рекомендуется придерживаться текущего здорового образа жизни в соответствии с рекомендациями ВОЗ.",

	"factor_rec_smoke":                 "Отказ от курения является одним из наиболее эффективных способов снижения сердечно-сосудистого риска.",
	"factor_rec_alco":                  "Рекомендуется ограничить потребление алкоголя.",
	"factor_rec_active":                "Регулярная физическая активность снижает сердечно-сосудистый риск.",
	"factor_rec_bmi":                   "Снижение массы тела до нормальных значений ИМТ может снизить сердечно-сосудистый риск.",
	"factor_rec_obesity":               "Снижение массы тела до нормальных значений ИМТ может снизить сердечно-сосудистый риск.",
	"factor_rec_ap_hi":                 "Рекомендуется контроль артериального давления и консультация врача по вопросам терапии.",
	"factor_rec_ap_lo":                 "Рекомендуется контроль артериального давления и консультация врача по вопросам терапии.",
	"factor_rec_high_bp":               "Рекомендуется контроль артериального давления и консультация врача по вопросам терапии.",
	"factor_rec_cholesterol":           "Рекомендуется соблюдение гиполипидемической диеты и контроль уровня холестерина.",
	"factor_rec_cholesterol_high":      "Рекомендуется соблюдение гиполипидемической диеты и контроль уровня холестерина.",
	"factor_rec_cholesterol_attention": "Рекомендуется соблюдение гиполипидемической диеты и контроль уровня холестерина.",
	"factor_rec_gluc":                  "Рекомендуется контроль уровня глюкозы и консультация специалиста.",

	"clinical_disclaimer":          "Отказ от ответственности",
	"clinical_disclaimer_detailed": "Данный инструмент является системой поддержки принятия врачебных решений (CDSS) и не предназначен для постановки диагноза или назначения лечения. Результаты являются вероятностной оценкой риска и должны интерпретироваться медицинским специалистом.",
	"report_footer":                "ID запроса: {request_id} | Модель: v{model_version}",

	"error_form_invalid":      "Пожалуйста, заполните все требуемые поля корректно",
	"error_api_failed":        "Ошибка при соединении с сервером. Пожалуйста, попробуйте снова.",
	"error_calculation":       "Ошибка при расчете риска",
	"error_network":           "Ошибка сети. Проверьте подключение.",
	"error_session_not_found": "Сессия не найдена. Начните новую оценку.",
	"error_no_result":         "Оценка ещё не выполнена.",
	"error_superseded":        "Эта оценка заменена более новой.",
	"error_unknown_format":    "Неподдерживаемый формат экспорта.",
	"error_consent_disabled":  "Сохранение обезличенных результатов отключено.",

	"chart_risk":             "Риск",
	"chart_safe":             "Безопасно",
	"chart_factor_influence": "Влияние фактора",
	"direction_increases":    "Повышает риск",
	"direction_reduces":      "Снижает риск",
	"shap_age":               "Возраст",
	"shap_systolic":          "Сист. АД",
	"shap_cholesterol":       "Холестерин",
	"shap_glucose":           "Глюкоза",
	"shap_bmi":               "ИМТ",
	"shap_smoking":           "Курение",
	"shap_alcohol":           "Алкоголь",
	"shap_activity":          "Физическая активность",
	"chart_blood_pressure":   "Давление",

	"hint_label":              "Подсказка",
	"hint_selection_feedback": "Вы выбрали статус '{status}'. Для вашего региона это соответствует значениям: {value}.",
	"hint_glucose_1":          "Отсутствие симптомов и стабильный вес.",
	"hint_glucose_2":          "ИМТ > 25, малоподвижность, возраст 45+.",
	"hint_glucose_3":          "Жажда, частое мочеиспускание, диабет у родственников.",
	"hint_cholesterol_1":      "Активный образ жизни, отсутствие курения.",
	"hint_cholesterol_2":      "Курение, фастфуд, давление > 130/80.",
	"hint_cholesterol_3":      "Ожирение, ксантелазмы, боли в груди при нагрузке.",
	"ref_glucose_1":           "< 5.6 ммоль/л",
	"ref_glucose_2":           "5.6 - 6.9 ммоль/л",
	"ref_glucose_3":           ">= 7.0 ммоль/л",
	"ref_cholesterol_1":       "< 5.2 ммоль/л",
	"ref_cholesterol_2":       "5.2 - 6.2 ммоль/л",
	"ref_cholesterol_3":       "> 6.2 ммоль/л",

	"patient_title":           "Ваш результат",
	"patient_your_risk":       "Ваш риск сердечно-сосудистых заболеваний:",
	"patient_meaning":         "Это означает...",
	"patient_description":     "Обратитесь к врачу для подробной консультации.",
	"patient_unavailable":     "Результат недоступен",
	"patient_check_input":     "Проверьте введенные данные и убедитесь, что все поля заполнены корректно.",
	"patient_validation_note": "Результат показан, но некоторые данные выходят за рекомендуемые диапазоны.",

	"doctor_view":                "Клиническая оценка риска (для врача)",
	"doctor_patient_summary":     "Краткая информация о пациенте",
	"doctor_model_output":        "Результаты модели (клинические)",
	"doctor_factors":             "Ключевые влияющие факторы",
	"doctor_conditions":          "Клинические состояния",
	"doctor_interpretation":      "Клиническая интерпретация",
	"doctor_warnings":            "Предупреждения и ограничения модели",
	"doctor_disclaimer":          "Дисклеймер",
	"doctor_disclaimer_text":     "Этот инструмент предназначен исключительно для поддержки клинических решений и не заменяет профессиональную медицинскую консультацию.",
	"doctor_predicted_risk":      "Предсказанный риск сердечно-сосудистых заболеваний",
	"doctor_risk_category":       "Категория риска",
	"doctor_confidence":          "Достоверность прогноза",
	"doctor_no_factors":          "Клинически значимые факторы не выявлены",
	"doctor_factors_unavailable": "Анализ клинических факторов недоступен",
	"doctor_no_conditions":       "Клинически значимые состояния не выявлены",
	"doctor_validation_invalid":  "Некоторые введенные данные не соответствуют требованиям модели. Результат может быть неточным.",
	"doctor_validation_warnings": "Введенные данные выходят за рекомендуемые диапазоны модели. Интерпретируйте результат с осторожностью.",
	"doctor_advisory_full":       "Результаты модели должны интерпретироваться в контексте полной клинической картины пациента. Модель является вспомогательным инструментом и не заменяет клиническое суждение.",
	"doctor_advisory_short":      "Результаты модели должны интерпретироваться в контексте полной клинической картины пациента.",
	"doctor_second_opinion":      "Второе мнение ИИ (справочно)",

	"interpretation_unavailable": "Клиническая интерпретация недоступна",
	"general_risk_factors":       "общие факторы риска",

	"warning_young_age":      "Модель менее точна у пациентов младше 40 лет",
	"warning_bp_inversion":   "Систолическое давление ниже диастолического. Проверьте корректность введённых данных.",
	"warning_underweight":    "Индекс массы тела указывает на недостаточный вес. Интерпретация сердечно-сосудистого риска может отличаться.",
	"warning_very_old_age":   "Возраст пациента превышает диапазон, использованный при обучении модели. Достоверность прогноза может быть снижена.",
	"warning_extreme_bp":     "Значения артериального давления выходят за пределы типичных клинических диапазонов, наблюдавшихся при обучении модели.",
	"warning_extreme_bmi":    "Обнаружено экстремально высокое значение ИМТ. Прогноз модели может быть ненадёжным.",
	"warning_low_confidence": "Прогноз близок к клиническому пороговому значению. Интерпретируйте результат с осторожностью.",

	"validation_invalid_payload":     "Данные не переданы.",
	"validation_age_invalid":         "Возраст не указан или не является числом.",
	"validation_sbp_invalid":         "Систолическое давление не указано или не является числом.",
	"validation_dbp_invalid":         "Диастолическое давление не указано или не является числом.",
	"validation_bmi_invalid":         "ИМТ не указан или не является числом.",
	"validation_cholesterol_missing": "Укажите уровень холестерина.",
	"validation_gluc_missing":        "Укажите уровень глюкозы.",
	"validation_gender_missing":      "Укажите пол.",
	"validation_smoke_missing":       "Укажите статус курения.",
	"validation_alco_missing":        "Укажите употребление алкоголя.",
	"validation_active_missing":      "Укажите физическую активность.",
	"validation_age_too_young":       "Возраст меньше 18 лет.",
	"validation_age_too_old":         "Возраст больше 90 лет.",
	"validation_sbp_out_of_range":    "Систолическое давление вне диапазона 90-220 мм рт. ст.",
	"validation_dbp_out_of_range":    "Диастолическое давление вне диапазона 50-140 мм рт. ст.",
	"validation_bp_inversion":        "Систолическое давление ниже диастолического.",
	"validation_bmi_out_of_range":    "ИМТ вне диапазона 15-60 кг/м2.",
}

var kr = map[string]string{
	"section_demographics":    "인구통계",
	"section_indicators":      "지표",
	"section_lifestyle":       "생활 방식",
	"label_region":            "거주 지역 (WHO)",
	"region_unknown":          "알 수 없음",
	"label_dob":               "생년월일",
	"label_age":               "나이 (세)",
	"label_gender":            "성별",
	"label_systolic":          "수축기 혈압 (mmHg)",
	"label_diastolic":         "이완기 혈압 (mmHg)",
	"label_cholesterol":       "콜레스테롤",
	"label_glucose":           "혈당",
	"label_bmi":               "BMI",
	"label_height":            "키 (cm)",
	"label_weight":            "몸무게 (kg)",
	"label_smoking":           "흡연",
	"label_alcohol":           "알코올",
	"label_physical_activity": "신체 활동",
	"option_male":             "남성",
	"option_female":           "여성",
	"option_normal":           "정상",
	"option_above_normal":     "정상 이상",
	"option_high":             "높음",
	"option_yes":              "예",
	"option_no":               "아니오",
	"years":                   "세",

	"modal_consent_title":   "데이터 윤리 및 분석",
	"modal_consent_message": "당신의 익명 데이터는 모델의 정확도를 향상하는 데 도움이 됩니다. 개인 식별 정보는 저장되지 않습니다. 이 평가 결과를 저장하도록 허용하시겠습니까?",
	"consent_saved":         "감사합니다. 익명화된 결과가 저장되었습니다.",
	"consent_declined":      "결과가 저장되지 않았습니다.",

	"results_title":            "분석 결과",
	"results_patient_profile":  "환자 프로필",
	"results_indicators":       "지표",
	"results_risk_probability": "위험 확률",
	"results_key_factors":      "주요 영향 요인",
	"results_recommendations":  "임상적 해석 (제2의 견해)",
	"results_bmi":              "환자 BMI",
	"results_confidence":       "신뢰도",
	"risk_low":                 "저위험",
	"risk_moderate":            "중간 위험",
	"risk_high":                "고위험",
	"risk_cvd":                 "심혈관질환 확률",
	"confidence_high":          "높음",
	"confidence_moderate":      "중간",
	"confidence_low":           "낮음",
	"rec_low":                  "지표가 정상입니다. 건강한 생활 습관을 유지하고 콜레스테롤 수치를 모니터링하며 활동을 계속하세요.",
	"rec_moderate":             "경고: 상승된 위험이 관찰되었습니다. 식단을 검토하고 염분 섭취를 줄이며 심장 전문의와 상담하세요.",
	"rec_high":                 "심각한 수준입니다. 상세한 검사와 치료를 위해 즉시 의사를 방문할 것을 강력히 권장합니다.",
	"default_recommendation":   "WHO 권장 사항에 따라 현재의 건강한 생활 습관을 유지하는 것이 권장됩니다.",

	"factor_rec_smoke":                 "금연은 심혈관 위험을 줄이는 가장 효과적인 방법 중 하나입니다.",
	"factor_rec_alco":                  "알코올 섭취를 제한하는 것이 권장됩니다.",
	"factor_rec_active":                "규칙적인 신체 활동은 심혈관 위험을 낮춥니다.",
	"factor_rec_bmi":                   "체중을 정상 BMI 범위로 줄이면 심혈관 위험을 낮출 수 있습니다.",
	"factor_rec_obesity":               "체중을 정상 BMI 범위로 줄이면 심혈관 위험을 낮출 수 있습니다.",
	"factor_rec_ap_hi":                 "혈압 조절 및 치료에 대한 의사 상담이 권장됩니다.",
	"factor_rec_ap_lo":                 "혈압 조절 및 치료에 대한 의사 상담이 권장됩니다.",
	"factor_rec_high_bp":               "혈압 조절 및 치료에 대한 의사 상담이 권장됩니다.",
	"factor_rec_cholesterol":           "지질저하 식단을 따르고 콜레스테롤 수치를 관리하는 것이 권장됩니다.",
	"factor_rec_cholesterol_high":      "지질저하 식단을 따르고 콜레스테롤 수치를 관리하는 것이 권장됩니다.",
	"factor_rec_cholesterol_attention": "지질저하 식단을 따르고 콜레스테롤 수치를 관리하는 것이 권장됩니다.",
	"factor_rec_gluc":                  "혈당 수치를 관리하고 전문의와 상담하는 것이 권장됩니다.",

	"clinical_disclaimer":          "의료 결정 지원 면책조항",
	"clinical_disclaimer_detailed": "본 도구는 임상 의사결정 지원 시스템(CDSS)이며 진단이나 처방을 위한 것이 아닙니다. 결과는 확률적 위험 평가이며 반드시 의료 전문가에 의해 해석되어야 합니다.",
	"report_footer":                "요청 ID: {request_id} | 모델: v{model_version}",

	"error_form_invalid":      "모든 필수 필드를 올바르게 작성하십시오",
	"error_api_failed":        "서버와의 통신 오류. 다시 시도하세요.",
	"error_calculation":       "위험 계산 중 오류 발생",
	"error_network":           "네트워크 오류. 연결을 확인하세요.",
	"error_session_not_found": "세션을 찾을 수 없습니다. 새 평가를 시작하세요.",
	"error_no_result":         "아직 완료된 평가가 없습니다.",
	"error_superseded":        "더 최근의 평가로 대체되었습니다.",
	"error_unknown_format":    "지원되지 않는 내보내기 형식입니다.",
	"error_consent_disabled":  "익명화된 결과 저장이 비활성화되어 있습니다.",

	"chart_risk":             "위험",
	"chart_safe":             "안전",
	"chart_factor_influence": "요인 영향",
	"direction_increases":    "위험 증가",
	"direction_reduces":      "위험 감소",
	"shap_age":               "나이",
	"shap_systolic":          "수축기 혈압",
	"shap_cholesterol":       "콜레스테롤",
	"shap_glucose":           "혈당",
	"shap_bmi":               "BMI",
	"shap_smoking":           "흡연",
	"shap_alcohol":           "알코올",
	"shap_activity":          "신체 활동",
	"chart_blood_pressure":   "혈압",

	"hint_label":              "힌트",
	"hint_selection_feedback": "'{status}' 상태를 선택했습니다. 귀하의 지역에서는 {value}에 해당합니다.",
	"hint_glucose_1":          "증상이 없고 체중이 안정적입니다.",
	"hint_glucose_2":          "BMI > 25, 활동량 부족, 45세 이상.",
	"hint_glucose_3":          "갈증, 빈뇨, 가족력이 있는 당뇨병.",
	"hint_cholesterol_1":      "활동적인 생활 방식, 비흡연.",
	"hint_cholesterol_2":      "흡연, 패스트푸드 섭취, 혈압 > 130/80.",
	"hint_cholesterol_3":      "비만, 황색판종, 운동 시 가슴 통증.",
	"ref_glucose_1":           "< 100 mg/dL",
	"ref_glucose_2":           "100 - 125 mg/dL",
	"ref_glucose_3":           ">= 126 mg/dL",
	"ref_cholesterol_1":       "< 200 mg/dL",
	"ref_cholesterol_2":       "200 - 239 mg/dL",
	"ref_cholesterol_3":       ">= 240 mg/dL",

	"patient_title":           "귀하의 결과",
	"patient_your_risk":       "귀하의 심혈관 질환 위험:",
	"patient_meaning":         "이는 다음을 의미합니다...",
	"patient_description":     "자세한 상담을 위해 의사와 상의하세요.",
	"patient_unavailable":     "결과를 사용할 수 없습니다",
	"patient_check_input":     "입력한 데이터를 확인하고 모든 필드가 올바르게 채워져 있는지 확인하세요.",
	"patient_validation_note": "결과가 표시되었지만 일부 데이터가 권장 범위를 벗어났습니다.",

	"doctor_view":                "임상 위험 평가 (의사용)",
	"doctor_patient_summary":     "환자 정보 요약",
	"doctor_model_output":        "모델 결과 (임상)",
	"doctor_factors":             "주요 영향 요인",
	"doctor_conditions":          "임상 상태",
	"doctor_interpretation":      "임상 해석",
	"doctor_warnings":            "경고 및 모델 제한사항",
	"doctor_disclaimer":          "면책사항",
	"doctor_disclaimer_text":     "이 도구는 임상 의사결정 지원 목적으로만 사용되며 전문 의료 상담을 대체하지 않습니다.",
	"doctor_predicted_risk":      "예측된 심혈관 질환 위험",
	"doctor_risk_category":       "위험 범주",
	"doctor_confidence":          "예측 신뢰도",
	"doctor_no_factors":          "임상적으로 중요한 요인이 확인되지 않았습니다",
	"doctor_factors_unavailable": "임상 요인 분석을 사용할 수 없습니다",
	"doctor_no_conditions":       "임상적으로 중요한 상태가 확인되지 않았습니다",
	"doctor_validation_invalid":  "입력된 일부 데이터가 모델 요구사항을 충족하지 않습니다. 결과가 부정확할 수 있습니다.",
	"doctor_validation_warnings": "입력된 데이터가 모델의 권장 범위를 벗어났습니다. 결과를 주의해서 해석하십시오.",
	"doctor_advisory_full":       "모델 결과는 환자의 전체 임상 상황의 맥락에서 해석되어야 합니다. 모델은 보조 도구이며 임상적 판단을 대체하지 않습니다.",
	"doctor_advisory_short":      "모델 결과는 환자의 전체 임상 상황의 맥락에서 해석되어야 합니다.",
	"doctor_second_opinion":      "AI 제2의 견해 (참고용)",

	"interpretation_unavailable": "임상적 해석을 사용할 수 없습니다",
	"general_risk_factors":       "일반적인 위험 요인",

	"warning_young_age":      "40세 미만 환자에서는 모델 정확도가 낮을 수 있습니다",
	"warning_bp_inversion":   "수축기 혈압이 이완기 혈압보다 낮습니다. 입력 데이터의 정확성을 확인하세요.",
	"warning_underweight":    "체중 지수가 저체중을 나타냅니다. 심혈관 위험의 해석이 달라질 수 있습니다.",
	"warning_very_old_age":   "환자의 나이가 모델 학습 시 사용된 범위를 초과합니다. 예측의 신뢰성은 감소할 수 있습니다.",
	"warning_extreme_bp":     "혈압 값이 모델 학습 시 관찰된 일반적인 임상 범위를 벗어납니다.",
	"warning_extreme_bmi":    "BMI 값이 극단적으로 높습니다. 모델 예측은 신뢰성이 낮을 수 있습니다.",
	"warning_low_confidence": "예측 결과가 임상적 기준치에 가깝습니다. 결과 해석 시 주의가 필요합니다.",

	"validation_invalid_payload":     "입력 데이터가 없습니다.",
	"validation_age_invalid":         "나이가 비어 있거나 숫자가 아닙니다.",
	"validation_sbp_invalid":         "수축기 혈압이 비어 있거나 숫자가 아닙니다.",
	"validation_dbp_invalid":         "이완기 혈압이 비어 있거나 숫자가 아닙니다.",
	"validation_bmi_invalid":         "BMI가 비어 있거나 숫자가 아닙니다.",
	"validation_cholesterol_missing": "콜레스테롤 수준을 선택하세요.",
	"validation_gluc_missing":        "혈당 수준을 선택하세요.",
	"validation_gender_missing":      "성별을 선택하세요.",
	"validation_smoke_missing":       "흡연 여부를 선택하세요.",
	"validation_alco_missing":        "음주 여부를 선택하세요.",
	"validation_active_missing":      "신체 활동 여부를 선택하세요.",
	"validation_age_too_young":       "나이가 18세 미만입니다.",
	"validation_age_too_old":         "나이가 90세를 초과합니다.",
	"validation_sbp_out_of_range":    "수축기 혈압이 90-220 mmHg 범위를 벗어났습니다.",
	"validation_dbp_out_of_range":    "이완기 혈압이 50-140 mmHg 범위를 벗어났습니다.",
	"validation_bp_inversion":        "수축기 혈압이 이완기 혈압보다 낮습니다.",
	"validation_bmi_out_of_range":    "BMI가 15-60 kg/m2 범위를 벗어났습니다.",
}
