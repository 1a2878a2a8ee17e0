// Package triage derives a canned diagnostic suggestion from reported
// symptoms by scanning a fixed rule table. It is a heuristic stand-in for
// real clinical inference and gives no diagnostic guarantee; every output
// must be reviewed by a physician.
package triage

import "strings"

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Suggestion is a derived, non-authoritative candidate diagnosis bundle.
// It is recomputed per submission and never persisted.
type Suggestion struct {
	Diagnoses             []string  `json:"possible_diagnoses"`
	Risk                  RiskLevel `json:"risk_level"`
	RecommendedTests      []string  `json:"recommended_tests"`
	RecommendedSpecialist string    `json:"recommended_specialist"`
}

// clone returns a copy safe for caller edits; the table entries stay intact.
func (s Suggestion) clone() Suggestion {
	return Suggestion{
		Diagnoses:             append([]string(nil), s.Diagnoses...),
		Risk:                  s.Risk,
		RecommendedTests:      append([]string(nil), s.RecommendedTests...),
		RecommendedSpecialist: s.RecommendedSpecialist,
	}
}

// rule pairs a composite symptom key with its suggestion. Keys are
// lower-case symptom labels joined by commas.
type rule struct {
	Key        string
	Suggestion Suggestion
}

// Matcher scans an ordered rule table. Table order is significant: the
// first matching rule wins, so two tables with the same rules in different
// orders are different matchers.
type Matcher struct {
	rules    []rule
	fallback Suggestion
}

// NewMatcher returns the matcher over the built-in rule table.
func NewMatcher() *Matcher {
	return &Matcher{rules: ruleTable, fallback: defaultSuggestion}
}

// keySymptoms is how many leading symptoms contribute to the lookup key.
// The derived key is order-dependent: the same symptoms reported in a
// different order can produce a different match.
const keySymptoms = 3

// Key derives the composite lookup key from reported symptoms.
func Key(symptoms []string) string {
	if len(symptoms) > keySymptoms {
		symptoms = symptoms[:keySymptoms]
	}
	return strings.ToLower(strings.Join(symptoms, ","))
}

// Match returns the suggestion for the reported symptoms. A rule matches
// when its key contains the derived key or the derived key contains the
// rule key; the first match in table order wins. With no match the fixed
// default suggestion is returned. Deterministic for a given input.
func (m *Matcher) Match(symptoms []string) Suggestion {
	key := Key(symptoms)
	for _, r := range m.rules {
		if strings.Contains(r.Key, key) || strings.Contains(key, r.Key) {
			return r.Suggestion.clone()
		}
	}
	return m.fallback.clone()
}
