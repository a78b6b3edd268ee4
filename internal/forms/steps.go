package forms

var healthStep = Step{
	ID:    1,
	Key:   "health",
	Title: "Health Information",
	Fields: []Field{
		{Name: "age", Label: "Age", Kind: KindNumber, Required: true},
		{Name: "gender", Label: "Gender", Kind: KindSingle, Options: []string{"Male", "Female", "Other"}},
		{Name: "height", Label: "Height", Kind: KindNumber, Required: true},
		{Name: "weight", Label: "Weight", Kind: KindNumber, Required: true},
		{Name: "chronicConditions", Label: "Chronic conditions", Kind: KindMulti, Options: []string{
			"Diabetes", "Hypertension", "Heart Disease", "Asthma", "Cancer History",
			"Kidney Disease", "Liver Disease", "Mental Health Conditions", "Arthritis",
			"Thyroid Disorders", "None",
		}},
		{Name: "familyHistory", Label: "Family history", Kind: KindMulti, Options: []string{
			"Heart Disease", "Cancer", "Diabetes", "Stroke", "Alzheimer's",
			"Mental Health Issues", "Kidney Disease", "None",
		}},
		{Name: "smokingStatus", Label: "Smoking status", Kind: KindSingle, Required: true, Options: []string{"never", "former", "current"}},
		{Name: "alcoholConsumption", Label: "Alcohol consumption", Kind: KindSingle, Required: true, Options: []string{"none", "occasional", "moderate", "heavy"}},
		{Name: "medications", Label: "Current medications", Kind: KindText},
	},
}

var lifestyleStep = Step{
	ID:    2,
	Key:   "lifestyle",
	Title: "Lifestyle Assessment",
	Fields: []Field{
		{Name: "exerciseFrequency", Label: "Exercise frequency", Kind: KindSingle, Required: true, Options: []string{"never", "rarely", "sometimes", "regularly", "daily"}},
		{Name: "sleepHours", Label: "Sleep hours", Kind: KindSingle, Required: true, Options: []string{"less-than-5", "5-6", "7-8", "9-plus"}},
		{Name: "exerciseType", Label: "Exercise types", Kind: KindMulti, Options: []string{
			"Cardio", "Weight Training", "Yoga", "Swimming", "Running", "Cycling",
			"Team Sports", "Walking", "Hiking", "Dancing", "None",
		}},
		{Name: "dietType", Label: "Diet type", Kind: KindSingle, Required: true, Options: []string{"balanced", "vegetarian", "vegan", "keto", "mediterranean", "fast-food", "other"}},
		{Name: "stressLevel", Label: "Stress level", Kind: KindSingle, Required: true, Options: []string{"low", "moderate", "high", "very-high"}},
		{Name: "workEnvironment", Label: "Work environment", Kind: KindSingle, Required: true, Options: []string{"office", "physical", "healthcare", "outdoor", "hazardous", "remote", "retired"}},
		{Name: "travelFrequency", Label: "Travel frequency", Kind: KindSingle, Required: true, Options: []string{"never", "domestic-rare", "domestic-frequent", "international-rare", "international-frequent"}},
		{Name: "hobbies", Label: "Hobbies", Kind: KindMulti, Options: []string{
			"Reading", "Cooking", "Gardening", "Music", "Art", "Travel",
			"Sports", "Gaming", "Photography", "Volunteering", "None",
		}},
		{Name: "riskActivities", Label: "High-risk activities", Kind: KindMulti, Options: []string{
			"Extreme Sports", "Motorcycle Riding", "Rock Climbing", "Skydiving",
			"Scuba Diving", "Racing", "Contact Sports", "None",
		}},
		{Name: "socialSupport", Label: "Social support", Kind: KindSingle, Required: true, Options: []string{"strong", "moderate", "limited", "isolated"}},
		{Name: "workLifeBalance", Label: "Work-life balance", Kind: KindSingle, Required: true, Options: []string{"excellent", "good", "fair", "poor"}},
	},
}

var financialStep = Step{
	ID:    3,
	Key:   "financial",
	Title: "Financial Profile",
	Fields: []Field{
		{Name: "annualIncome", Label: "Annual income", Kind: KindSingle, Required: true, Options: []string{"under-25k", "25k-50k", "50k-75k", "75k-100k", "100k-150k", "150k-200k", "over-200k"}},
		{Name: "employmentStatus", Label: "Employment status", Kind: KindSingle, Required: true, Options: []string{"full-time", "part-time", "self-employed", "contractor", "unemployed", "student", "retired"}},
		{Name: "monthlyExpenses", Label: "Monthly living expenses", Kind: KindSingle, Required: true, Options: []string{"under-1k", "1k-2k", "2k-3k", "3k-5k", "5k-7k", "over-7k"}},
		{Name: "budgetForInsurance", Label: "Monthly insurance budget", Kind: KindSingle, Required: true, Options: []string{"under-100", "100-200", "200-300", "300-500", "500-800", "over-800"}},
		{Name: "existingInsurance", Label: "Existing insurance", Kind: KindMulti, Options: []string{
			"Health Insurance", "Life Insurance", "Dental Insurance", "Vision Insurance",
			"Disability Insurance", "Auto Insurance", "Home Insurance", "None",
		}},
		{Name: "dependents", Label: "Number of dependents", Kind: KindSingle, Required: true, Options: []string{"0", "1", "2", "3", "4-plus"}},
		{Name: "emergencyFund", Label: "Emergency fund", Kind: KindSingle, Required: true, Options: []string{"none", "minimal", "moderate", "good", "excellent"}},
		{Name: "debtLoad", Label: "Current debt load", Kind: KindSingle, Required: true, Options: []string{"none", "low", "moderate", "high"}},
		{Name: "riskTolerance", Label: "Risk tolerance", Kind: KindSingle, Required: true, Options: []string{"conservative", "moderate", "aggressive"}},
		{Name: "financialGoals", Label: "Financial goals", Kind: KindMulti, Options: []string{
			"Emergency Fund", "Retirement Savings", "Home Purchase", "Education Fund",
			"Debt Reduction", "Investment Growth", "Travel Fund", "Business Investment",
		}},
		{Name: "investmentExperience", Label: "Investment experience", Kind: KindSingle, Required: true, Options: []string{"none", "beginner", "intermediate", "advanced"}},
		{Name: "retirementPlanning", Label: "Retirement planning", Kind: KindSingle, Required: true, Options: []string{"none", "minimal", "active", "comprehensive"}},
	},
}

var resultsStep = Step{
	ID:     4,
	Key:    "results",
	Title:  "AI Analysis Results",
	Fields: []Field{},
}
