package assessment

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// NoneOption is the multi-select answer that excludes every other option.
const NoneOption = "None"

const maxNumericAnswer = 1 << 30

// NumericText is a numeric answer collected as text. It accepts a JSON string
// or a JSON number.
type NumericText string

func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	// Keep the numeric value, not the literal: 1e2 is 100.
	num = math.Max(-maxNumericAnswer, math.Min(num, maxNumericAnswer))
	*n = NumericText(strconv.FormatInt(int64(num), 10))
	return nil
}

// Int parses the leading decimal integer of the answer, ignoring surrounding
// whitespace and any trailing text ("42 years" is 42, "4-plus" is 4).
// ok is false when there is no leading integer.
func (n NumericText) Int() (v int, ok bool) {
	s := strings.TrimSpace(string(n))
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	digits := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		digits++
		if v > 1<<30 {
			break
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// Health holds the answers from the health information step.
type Health struct {
	Age                NumericText `json:"age,omitempty"`
	Gender             string      `json:"gender,omitempty"`
	Height             NumericText `json:"height,omitempty"`
	Weight             NumericText `json:"weight,omitempty"`
	ChronicConditions  []string    `json:"chronicConditions,omitempty"`
	Medications        string      `json:"medications,omitempty"`
	Allergies          string      `json:"allergies,omitempty"`
	FamilyHistory      []string    `json:"familyHistory,omitempty"`
	SmokingStatus      string      `json:"smokingStatus,omitempty"`
	AlcoholConsumption string      `json:"alcoholConsumption,omitempty"`
}

// Lifestyle holds the answers from the lifestyle step.
type Lifestyle struct {
	ExerciseFrequency string   `json:"exerciseFrequency,omitempty"`
	ExerciseType      []string `json:"exerciseType,omitempty"`
	DietType          string   `json:"dietType,omitempty"`
	SleepHours        string   `json:"sleepHours,omitempty"`
	StressLevel       string   `json:"stressLevel,omitempty"`
	WorkEnvironment   string   `json:"workEnvironment,omitempty"`
	TravelFrequency   string   `json:"travelFrequency,omitempty"`
	Hobbies           []string `json:"hobbies,omitempty"`
	SocialSupport     string   `json:"socialSupport,omitempty"`
	WorkLifeBalance   string   `json:"workLifeBalance,omitempty"`
	RiskActivities    []string `json:"riskActivities,omitempty"`
}

// Financial holds the answers from the financial profile step. Most values
// are bucketed ranges such as "100-200" or "4-plus".
type Financial struct {
	AnnualIncome         string      `json:"annualIncome,omitempty"`
	EmploymentStatus     string      `json:"employmentStatus,omitempty"`
	MonthlyExpenses      string      `json:"monthlyExpenses,omitempty"`
	ExistingInsurance    []string    `json:"existingInsurance,omitempty"`
	BudgetForInsurance   string      `json:"budgetForInsurance,omitempty"`
	Dependents           NumericText `json:"dependents,omitempty"`
	EmergencyFund        string      `json:"emergencyFund,omitempty"`
	DebtLoad             string      `json:"debtLoad,omitempty"`
	FinancialGoals       []string    `json:"financialGoals,omitempty"`
	RiskTolerance        string      `json:"riskTolerance,omitempty"`
	InvestmentExperience string      `json:"investmentExperience,omitempty"`
	RetirementPlanning   string      `json:"retirementPlanning,omitempty"`
}

// Input aggregates the three answer records. The zero value is a valid input
// with every field absent.
type Input struct {
	Health    Health    `json:"health"`
	Lifestyle Lifestyle `json:"lifestyle"`
	Financial Financial `json:"financial"`
}

// selectedCount returns the number of selected options, or 0 when the
// selection is empty or contains NoneOption.
func selectedCount(set []string) int {
	for _, v := range set {
		if v == NoneOption {
			return 0
		}
	}
	return len(set)
}
