package services

import "healthai-backend/internal/models"

// AdviceFor returns the static advice bundle for a disease and predicted
// outcome. Content is a fixed lookup table, not derived from the model.
func AdviceFor(disease string, hasCondition bool) models.HealthAdvice {
	advice := models.HealthAdvice{
		GeneralTips: []string{},
		Resources:   []string{},
	}

	switch disease {
	case "diabetes":
		if hasCondition {
			advice.GeneralTips = []string{
				"Monitor your blood sugar levels regularly",
				"Follow a balanced diet low in simple carbohydrates",
				"Engage in regular physical activity",
				"Take prescribed medications as directed",
			}
			advice.DoctorVisit = "Schedule an appointment with an endocrinologist or your primary care physician"
			advice.Resources = []string{
				"American Diabetes Association: www.diabetes.org",
				"National Institute of Diabetes and Digestive and Kidney Diseases: www.niddk.nih.gov",
			}
		} else {
			advice.GeneralTips = []string{
				"Maintain a healthy weight",
				"Exercise regularly (at least 150 minutes per week)",
				"Limit sugar and refined carbohydrate intake",
				"Get regular health checkups",
			}
		}

	case "heart":
		if hasCondition {
			advice.GeneralTips = []string{
				"Follow a heart-healthy diet (Mediterranean diet recommended)",
				"Quit smoking if you currently smoke",
				"Manage stress through relaxation techniques",
				"Take all prescribed medications regularly",
			}
			advice.DoctorVisit = "Schedule an appointment with a cardiologist immediately"
			advice.Resources = []string{
				"American Heart Association: www.heart.org",
				"Cardiology department at your nearest hospital",
			}
		} else {
			advice.GeneralTips = []string{
				"Maintain healthy blood pressure and cholesterol levels",
				"Exercise for at least 30 minutes most days",
				"Eat a diet rich in fruits, vegetables, and whole grains",
				"Avoid tobacco products",
			}
		}

	case "kidney":
		if hasCondition {
			advice.GeneralTips = []string{
				"Monitor blood pressure regularly",
				"Reduce sodium intake",
				"Stay hydrated with water",
				"Avoid NSAIDs (like ibuprofen) unless prescribed",
			}
			advice.DoctorVisit = "Schedule an appointment with a nephrologist as soon as possible"
			advice.Resources = []string{
				"National Kidney Foundation: www.kidney.org",
				"Your local nephrology center",
			}
		} else {
			advice.GeneralTips = []string{
				"Drink plenty of water",
				"Maintain healthy blood pressure",
				"Limit salt and processed foods",
				"Get regular kidney function tests if at risk",
			}
		}
	}

	return advice
}
