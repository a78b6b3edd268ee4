package assessment

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestScoreDefaults(t *testing.T) {
	if got := Score(&Input{}); got != 50 {
		t.Errorf("expected 50 for empty input, got %d", got)
	}
	if got := Score(nil); got != 50 {
		t.Errorf("expected 50 for nil input, got %d", got)
	}
}

func TestScoreRules(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want int
	}{
		{"age 70", Input{Health: Health{Age: "70"}}, 70},
		{"age 66", Input{Health: Health{Age: "66"}}, 70},
		{"age 65", Input{Health: Health{Age: "65"}}, 60},
		{"age 51", Input{Health: Health{Age: "51"}}, 60},
		{"age 50", Input{Health: Health{Age: "50"}}, 50},
		{"age 30", Input{Health: Health{Age: "30"}}, 50},
		{"age 25", Input{Health: Health{Age: "25"}}, 45},
		{"age with whitespace", Input{Health: Health{Age: " 70 "}}, 70},
		{"age non-numeric", Input{Health: Health{Age: "old"}}, 50},
		{"two chronic conditions", Input{Health: Health{ChronicConditions: []string{"Diabetes", "Hypertension"}}}, 66},
		{"chronic none", Input{Health: Health{ChronicConditions: []string{"None"}}}, 50},
		{"chronic empty", Input{Health: Health{ChronicConditions: []string{}}}, 50},
		{"current smoker", Input{Health: Health{SmokingStatus: "current"}}, 65},
		{"former smoker", Input{Health: Health{SmokingStatus: "former"}}, 50},
		{"never exercises", Input{Lifestyle: Lifestyle{ExerciseFrequency: "never"}}, 60},
		{"high stress", Input{Lifestyle: Lifestyle{StressLevel: "high"}}, 58},
		{"moderate stress", Input{Lifestyle: Lifestyle{StressLevel: "moderate"}}, 50},
		{"three risk activities", Input{Lifestyle: Lifestyle{RiskActivities: []string{"Skydiving", "Racing", "Scuba Diving"}}}, 65},
		{"risk activities none", Input{Lifestyle: Lifestyle{RiskActivities: []string{"None"}}}, 50},
		{
			"smoker, sedentary, very high stress",
			Input{
				Health:    Health{SmokingStatus: "current"},
				Lifestyle: Lifestyle{ExerciseFrequency: "never", StressLevel: "very-high"},
			},
			83,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			if got := Score(&in); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreClampsHigh(t *testing.T) {
	in := &Input{
		Health: Health{
			Age:               "80",
			SmokingStatus:     "current",
			ChronicConditions: []string{"Diabetes", "Hypertension", "Heart Disease", "Asthma", "Cancer History"},
		},
		Lifestyle: Lifestyle{
			ExerciseFrequency: "never",
			StressLevel:       "very-high",
			RiskActivities:    []string{"Extreme Sports", "Motorcycle Riding", "Rock Climbing"},
		},
	}
	// 50+20+40+15+10+8+15 = 158
	if got := Score(in); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}
}

func TestScoreClampsLow(t *testing.T) {
	in := &Input{Health: Health{Age: "-500"}}
	got := Score(in)
	if got < 0 || got > 100 {
		t.Errorf("score out of range: %d", got)
	}
	if got != 45 {
		t.Errorf("expected 45 for negative age, got %d", got)
	}
}

func TestScoreIdempotent(t *testing.T) {
	in := &Input{
		Health:    Health{Age: "55", ChronicConditions: []string{"Asthma"}},
		Lifestyle: Lifestyle{StressLevel: "high"},
	}
	first := Assess(in)
	second := Assess(in)
	if first.RiskScore != second.RiskScore {
		t.Fatalf("scores differ: %d vs %d", first.RiskScore, second.RiskScore)
	}
	for i := range first.Recommendations {
		if first.Recommendations[i].ID != second.Recommendations[i].ID ||
			first.Recommendations[i].Match != second.Recommendations[i].Match {
			t.Errorf("recommendation %d differs", i)
		}
	}
}

func TestBreakdownMatchesScore(t *testing.T) {
	in := &Input{
		Health:    Health{Age: "40", SmokingStatus: "current"},
		Lifestyle: Lifestyle{RiskActivities: []string{"Racing"}},
	}
	score, adjustments := Breakdown(in)
	if len(adjustments) != len(rules) {
		t.Fatalf("expected %d adjustments, got %d", len(rules), len(adjustments))
	}
	sum := BaseScore
	for _, a := range adjustments {
		if !a.Applied && a.Points != 0 {
			t.Errorf("%s: unapplied adjustment carries %d points", a.Name, a.Points)
		}
		sum += a.Points
	}
	if sum != score {
		t.Errorf("adjustments sum to %d, score is %d", sum, score)
	}
	if score != 70 {
		t.Errorf("expected 70, got %d", score)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLow}, {29, RiskLow}, {30, RiskModerate}, {59, RiskModerate}, {60, RiskHigh}, {100, RiskHigh},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestKeyFactors(t *testing.T) {
	in := &Input{
		Health: Health{
			Age:               "42",
			ChronicConditions: []string{"Asthma"},
			SmokingStatus:     "current",
		},
		Lifestyle: Lifestyle{
			ExerciseFrequency: "rarely",
			StressLevel:       "low",
			RiskActivities:    []string{"None"},
		},
	}
	got := KeyFactors(in)
	want := []string{"Age: 42 years", "1 chronic condition(s)", "Current smoker", "Exercise: rarely", "Stress level: low"}
	if len(got) != len(want) {
		t.Fatalf("expected %d factors, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].Label != want[i] {
			t.Errorf("factor %d: got %q, want %q", i, got[i].Label, want[i])
		}
	}
	if got[0].Category != "health" || got[4].Category != "lifestyle" {
		t.Errorf("unexpected categories: %+v", got)
	}

	if empty := KeyFactors(&Input{}); len(empty) != 0 {
		t.Errorf("expected no factors for empty input, got %+v", empty)
	}
}

func TestNumericTextUnmarshal(t *testing.T) {
	tests := []struct {
		body    string
		want    int
		wantOK  bool
		wantErr bool
	}{
		{`{"age":"70"}`, 70, true, false},
		{`{"age":70}`, 70, true, false},
		{`{"age":45.9}`, 45, true, false},
		{`{"age":1e2}`, 100, true, false},
		{`{"age":7.0e1}`, 70, true, false},
		{`{"age":-12.7}`, -12, true, false},
		{`{"age":"42 years"}`, 42, true, false},
		{`{"age":""}`, 0, false, false},
		{`{"age":null}`, 0, false, false},
		{`{"age":"abc"}`, 0, false, false},
		{`{"age":true}`, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var h Health
			err := json.Unmarshal([]byte(tt.body), &h)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got, ok := h.Age.Int()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Int() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	in := &Input{Health: Health{Age: "70"}}
	before := Score(in)

	table := Rules()
	if len(table) != len(rules) {
		t.Fatalf("expected %d rules, got %d", len(rules), len(table))
	}
	table[0] = func(*Input) Adjustment { return Adjustment{Name: "age", Points: -100} }
	_ = append(table, func(*Input) Adjustment { return Adjustment{Points: 40} })

	if got := Score(in); got != before {
		t.Errorf("score changed after editing the returned table: %d -> %d", before, got)
	}
}
