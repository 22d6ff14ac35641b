// Package requirements evaluates a user profile against a static set of
// completion checks. Bosses, prestige levels and the hideout summary all
// reduce to the same shape: a vector of named booleans plus aggregate counts.
package requirements

// Check is a single evaluated requirement.
type Check struct {
	Name string `json:"name"`
	Met  bool   `json:"met"`
}

// Result aggregates a check vector.
type Result struct {
	Checks     []Check `json:"checks"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Threshold is met when the profile value reaches the required value.
func Threshold[T int | int64 | float64](name string, have, want T) Check {
	return Check{Name: name, Met: have >= want}
}

// OptionalThreshold treats a requirement of zero (or less) as not applicable,
// so it is always met. Used for the per-level kill-count requirements.
func OptionalThreshold[T int | int64](name string, have, want T) Check {
	return Check{Name: name, Met: want <= 0 || have >= want}
}

// Flag is met when the requirement is not demanded, or the profile has it.
func Flag(name string, required, have bool) Check {
	return Check{Name: name, Met: !required || have}
}

// Subset is met when every required entry is present in the profile set.
func Subset(name string, required, have []string) Check {
	haveSet := make(map[string]bool, len(have))
	for _, v := range have {
		haveSet[v] = true
	}
	for _, v := range required {
		if !haveSet[v] {
			return Check{Name: name, Met: false}
		}
	}
	return Check{Name: name, Met: true}
}

// Membership is met when member is present in set.
func Membership(member string, set map[string]bool) Check {
	return Check{Name: member, Met: set[member]}
}

// Evaluate counts the met checks. An empty vector yields 0%, never a
// division fault.
func Evaluate(checks []Check) Result {
	result := Result{Checks: checks, Total: len(checks)}
	for _, check := range checks {
		if check.Met {
			result.Completed++
		}
	}
	if result.Total > 0 {
		result.Percentage = float64(result.Completed) / float64(result.Total) * 100
	}
	return result
}
