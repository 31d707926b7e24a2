package assessment

import (
	"github.com/hirassa/screening-api/locale"
)

// diabetesRisk returns the type 2 diabetes risk questionnaire, adapted from
// the FINDRISC score. Maximum achievable score is 26.
func diabetesRisk() *Assessment {
	return &Assessment{
		ID: "diabetes-risk",
		Name: locale.Text{
			En: "Type 2 Diabetes Risk Test",
			Fr: "Test de risque de diabète de type 2",
			Ar: "اختبار خطر الإصابة بداء السكري من النوع الثاني",
		},
		Description: locale.Text{
			En: "Answer a few questions to estimate your risk of developing type 2 diabetes within the next 10 years.",
			Fr: "Répondez à quelques questions pour estimer votre risque de développer un diabète de type 2 dans les 10 prochaines années.",
			Ar: "أجب عن بضعة أسئلة لتقدير خطر إصابتك بداء السكري من النوع الثاني خلال السنوات العشر القادمة.",
		},
		Questions: []Question{
			{
				ID: "age",
				Text: locale.Text{
					En: "How old are you?",
					Fr: "Quel âge avez-vous ?",
					Ar: "كم عمرك؟",
				},
				Options: []Option{
					{Label: locale.Text{En: "Under 45", Fr: "Moins de 45 ans", Ar: "أقل من 45 سنة"}, Points: 0},
					{Label: locale.Text{En: "45 to 54", Fr: "45 à 54 ans", Ar: "من 45 إلى 54 سنة"}, Points: 2},
					{Label: locale.Text{En: "55 to 64", Fr: "55 à 64 ans", Ar: "من 55 إلى 64 سنة"}, Points: 3},
					{Label: locale.Text{En: "Over 64", Fr: "Plus de 64 ans", Ar: "أكثر من 64 سنة"}, Points: 4},
				},
			},
			{
				ID: "bmi",
				Text: locale.Text{
					En: "What is your body mass index (BMI)?",
					Fr: "Quel est votre indice de masse corporelle (IMC) ?",
					Ar: "ما هو مؤشر كتلة جسمك؟",
				},
				Options: []Option{
					{Label: locale.Text{En: "Lower than 25", Fr: "Inférieur à 25", Ar: "أقل من 25"}, Points: 0},
					{Label: locale.Text{En: "25 to 30", Fr: "Entre 25 et 30", Ar: "بين 25 و30"}, Points: 1},
					{Label: locale.Text{En: "Higher than 30", Fr: "Supérieur à 30", Ar: "أكثر من 30"}, Points: 3},
				},
			},
			{
				ID: "waist",
				Text: locale.Text{
					En: "What is your waist circumference, measured below the ribs?",
					Fr: "Quel est votre tour de taille, mesuré sous les côtes ?",
					Ar: "ما هو محيط خصرك، مقاساً تحت الأضلاع؟",
				},
				Options: []Option{
					{Label: locale.Text{
						En: "Less than 94 cm (men) / 80 cm (women)",
						Fr: "Moins de 94 cm (hommes) / 80 cm (femmes)",
						Ar: "أقل من 94 سم (رجال) / 80 سم (نساء)",
					}, Points: 0},
					{Label: locale.Text{
						En: "94 to 102 cm (men) / 80 to 88 cm (women)",
						Fr: "94 à 102 cm (hommes) / 80 à 88 cm (femmes)",
						Ar: "من 94 إلى 102 سم (رجال) / من 80 إلى 88 سم (نساء)",
					}, Points: 3},
					{Label: locale.Text{
						En: "More than 102 cm (men) / 88 cm (women)",
						Fr: "Plus de 102 cm (hommes) / 88 cm (femmes)",
						Ar: "أكثر من 102 سم (رجال) / 88 سم (نساء)",
					}, Points: 4},
				},
			},
			{
				ID: "activity",
				Text: locale.Text{
					En: "Do you get at least 30 minutes of physical activity every day?",
					Fr: "Pratiquez-vous au moins 30 minutes d'activité physique chaque jour ?",
					Ar: "هل تمارس نشاطاً بدنياً لمدة 30 دقيقة على الأقل كل يوم؟",
				},
				Options: []Option{
					{Label: locale.Text{En: "Yes", Fr: "Oui", Ar: "نعم"}, Points: 0},
					{Label: locale.Text{En: "No", Fr: "Non", Ar: "لا"}, Points: 2},
				},
			},
			{
				ID: "vegetables",
				Text: locale.Text{
					En: "How often do you eat vegetables or fruit?",
					Fr: "À quelle fréquence mangez-vous des légumes ou des fruits ?",
					Ar: "كم مرة تتناول الخضروات أو الفواكه؟",
				},
				Options: []Option{
					{Label: locale.Text{En: "Every day", Fr: "Tous les jours", Ar: "كل يوم"}, Points: 0},
					{Label: locale.Text{En: "Not every day", Fr: "Pas tous les jours", Ar: "ليس كل يوم"}, Points: 1},
				},
			},
			{
				ID: "blood-pressure",
				Text: locale.Text{
					En: "Have you ever taken medication for high blood pressure?",
					Fr: "Avez-vous déjà pris des médicaments contre l'hypertension ?",
					Ar: "هل سبق أن تناولت أدوية لارتفاع ضغط الدم؟",
				},
				Options: []Option{
					{Label: locale.Text{En: "No", Fr: "Non", Ar: "لا"}, Points: 0},
					{Label: locale.Text{En: "Yes", Fr: "Oui", Ar: "نعم"}, Points: 2},
				},
			},
			{
				ID: "blood-glucose",
				Text: locale.Text{
					En: "Have you ever been told that your blood glucose was high?",
					Fr: "Vous a-t-on déjà dit que votre glycémie était élevée ?",
					Ar: "هل سبق أن قيل لك إن نسبة السكر في دمك مرتفعة؟",
				},
				Options: []Option{
					{Label: locale.Text{En: "No", Fr: "Non", Ar: "لا"}, Points: 0},
					{Label: locale.Text{En: "Yes", Fr: "Oui", Ar: "نعم"}, Points: 5},
				},
			},
			{
				ID: "family-history",
				Text: locale.Text{
					En: "Has anyone in your family been diagnosed with diabetes?",
					Fr: "Un membre de votre famille a-t-il été diagnostiqué diabétique ?",
					Ar: "هل تم تشخيص أحد أفراد عائلتك بمرض السكري؟",
				},
				Options: []Option{
					{Label: locale.Text{En: "No", Fr: "Non", Ar: "لا"}, Points: 0},
					{Label: locale.Text{
						En: "Yes: grandparent, aunt, uncle or cousin",
						Fr: "Oui : grand-parent, oncle, tante ou cousin",
						Ar: "نعم: جد أو عم أو خال أو ابن عم",
					}, Points: 3},
					{Label: locale.Text{
						En: "Yes: parent, brother, sister or child",
						Fr: "Oui : parent, frère, sœur ou enfant",
						Ar: "نعم: أحد الوالدين أو أخ أو أخت أو ابن",
					}, Points: 5},
				},
			},
		},
		RiskLevels: []RiskLevel{
			{
				MinScore: 0, MaxScore: 6,
				Label: locale.Text{En: "Low risk", Fr: "Risque faible", Ar: "خطر منخفض"},
				Message: locale.Text{
					En: "An estimated 1 in 100 people with this score will develop type 2 diabetes within 10 years. Keep up your healthy habits.",
					Fr: "On estime qu'une personne sur 100 avec ce score développera un diabète de type 2 dans les 10 ans. Gardez vos bonnes habitudes.",
					Ar: "من المقدر أن يصاب شخص واحد من كل 100 بهذا المجموع بداء السكري من النوع الثاني خلال 10 سنوات. حافظ على عاداتك الصحية.",
				},
				Color: ColorGreen,
			},
			{
				MinScore: 7, MaxScore: 11,
				Label: locale.Text{En: "Slightly elevated risk", Fr: "Risque légèrement élevé", Ar: "خطر مرتفع قليلاً"},
				Message: locale.Text{
					En: "Consider reviewing your lifestyle. Regular physical activity and a balanced diet lower your risk.",
					Fr: "Pensez à revoir votre hygiène de vie. Une activité physique régulière et une alimentation équilibrée réduisent le risque.",
					Ar: "فكر في مراجعة نمط حياتك. النشاط البدني المنتظم والنظام الغذائي المتوازن يقللان من الخطر.",
				},
				Color: ColorYellow,
			},
			{
				MinScore: 12, MaxScore: 16,
				Label: locale.Text{En: "Moderate to high risk", Fr: "Risque modéré à élevé", Ar: "خطر متوسط إلى مرتفع"},
				Message: locale.Text{
					En: "You should have your blood glucose checked. Visit a participating pharmacy for a free screening.",
					Fr: "Vous devriez faire contrôler votre glycémie. Rendez-vous dans une pharmacie participante pour un dépistage gratuit.",
					Ar: "ينبغي فحص نسبة السكر في دمك. توجه إلى صيدلية مشاركة لإجراء فحص مجاني.",
				},
				Color: ColorOrange,
			},
			{
				MinScore: 17, MaxScore: 26,
				Label: locale.Text{En: "Very high risk", Fr: "Risque très élevé", Ar: "خطر مرتفع جداً"},
				Message: locale.Text{
					En: "See a doctor as soon as possible for a blood glucose test and clinical follow-up.",
					Fr: "Consultez un médecin dès que possible pour un test de glycémie et un suivi clinique.",
					Ar: "استشر طبيباً في أقرب وقت ممكن لإجراء فحص السكر في الدم والمتابعة السريرية.",
				},
				Color: ColorRed,
			},
		},
	}
}
