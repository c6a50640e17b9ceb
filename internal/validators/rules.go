package validators

// Rule enumerates the closed set of checks a field can be bound to.
type Rule int

const (
	// RuleRequired rejects empty values.
	RuleRequired Rule = iota

	// RuleOneOf rejects values outside an enumerated allowed set.
	// An empty value never passes: membership implies presence.
	RuleOneOf
)

// FieldRule binds one named field to a rule and the sentinel error reported
// when the rule fails. Allowed is consulted only by RuleOneOf.
type FieldRule struct {
	Rule    Rule
	Allowed []string
	Err     error
}

// apply runs the rule against a field value and returns the bound sentinel
// error on failure.
func (fr FieldRule) apply(value string) error {
	switch fr.Rule {
	case RuleRequired:
		if value == "" {
			return fr.Err
		}
	case RuleOneOf:
		for _, allowed := range fr.Allowed {
			if value == allowed {
				return nil
			}
		}
		return fr.Err
	}

	return nil
}
