package assessment

// Toggle returns the next multi-select state after the user picks choice.
//
//	choice == "None"        -> ["None"]
//	choice already selected -> current without choice (and without "None")
//	otherwise               -> current without "None", plus choice
//
// current is never modified.
func Toggle(current []string, choice string) []string {
	if choice == NoneOption {
		return []string{NoneOption}
	}

	next := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		switch v {
		case NoneOption:
			continue
		case choice:
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, choice)
	}
	return next
}

// Normalize enforces the "None" exclusivity invariant on an already collected
// selection. A selection holding "None" next to other options keeps the other
// options, matching what Toggle would have produced had "None" been picked
// first. Duplicates are dropped.
func Normalize(selection []string) []string {
	next := make([]string, 0, len(selection))
	seen := make(map[string]bool, len(selection))
	hasNone := false
	for _, v := range selection {
		if v == NoneOption {
			hasNone = true
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		next = append(next, v)
	}
	if len(next) == 0 && hasNone {
		return []string{NoneOption}
	}
	return next
}

// Normalize applies the selection invariant to every multi-select answer.
func (in *Input) Normalize() {
	in.Health.ChronicConditions = normalizeOptional(in.Health.ChronicConditions)
	in.Health.FamilyHistory = normalizeOptional(in.Health.FamilyHistory)
	in.Lifestyle.ExerciseType = normalizeOptional(in.Lifestyle.ExerciseType)
	in.Lifestyle.Hobbies = normalizeOptional(in.Lifestyle.Hobbies)
	in.Lifestyle.RiskActivities = normalizeOptional(in.Lifestyle.RiskActivities)
	in.Financial.ExistingInsurance = normalizeOptional(in.Financial.ExistingInsurance)
	in.Financial.FinancialGoals = normalizeOptional(in.Financial.FinancialGoals)
}

// normalizeOptional keeps absent answers absent.
func normalizeOptional(selection []string) []string {
	if selection == nil {
		return nil
	}
	return Normalize(selection)
}
