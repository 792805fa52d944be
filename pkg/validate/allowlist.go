// pkg/validate/allowlist.go

// Package validate enforces the closed vocabularies of the product catalog
// and derives the age-range category from numeric age bounds.
//
// Enum mismatches degrade to blank rather than rejecting the row: one bad
// field must never take an otherwise-good record out of the batch.
package validate

import "strings"

// Set is a fixed allowlist of permitted values.
type Set map[string]struct{}

// NewSet builds an allowlist from its members.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is a member of the set.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// The catalog allowlists. These are closed sets; adding a value is a data
// model change, not a runtime mutation.
var (
	DevelopmentLevels = NewSet("emerging", "developing", "proficient", "advanced")

	AgeCategories = NewSet(
		"Newborn to 18 months", "18 months to 3 years", "2 to 5 years",
		"3 to 6 years", "4 to 7 years", "5 to 8 years", "6 to 9 years",
		"7 to 10 years", "8 to 11 years", "9 to 12 years", "10 to Early Teens",
		"Preteens to Older Teens",
	)

	PlayTypes = NewSet(
		"pretend_play", "building_toys", "art_supplies", "active_play",
		"puzzles", "musical_toys", "sensory_toys", "group_games",
		"imagination", "construction", "crafts", "sports", "logic_games",
		"rhythm", "textures", "social_interaction",
	)

	ComplexityLevels = NewSet("simple", "moderate", "complex", "advanced", "expert")

	AttentionDurations = NewSet(
		"quick_activities", "medium_activities", "detailed_activities",
		"complex_projects", "advanced_building",
	)

	StimulationLevels    = NewSet("low", "moderate", "high")
	StructurePreferences = NewSet("structured", "flexible", "open_ended")
	EnergyRequirements   = NewSet("sedentary", "moderate", "active", "high_energy")
	SensoryLevels        = NewSet("gentle", "moderate", "intense")
	SocialContexts       = NewSet("solo_play", "paired_play", "group_play", "family_play")
	SafetyFlags          = NewSet("choking_hazard", "supervision_required", "small_parts")

	SpecialNeeds = NewSet(
		"autism_friendly", "sensory_processing", "speech_therapy", "motor_therapy",
	)

	InterventionAreas = NewSet(
		"communication", "motor_skills", "social_skills", "behavior_support",
	)

	NoiseLevels       = NewSet("quiet", "moderate", "loud")
	MessFactors       = NewSet("minimal", "moderate", "messy")
	SetupTimes        = NewSet("immediate", "quick", "moderate", "extended")
	SpaceRequirements = NewSet("small", "medium", "large", "outdoor")
)

// CheckEnum returns the trimmed value if it is an exact member of the
// allowlist, and blank otherwise. Casing and legacy values fail open to
// blank; this is policy, not an error path.
func CheckEnum(value string, allowed Set) string {
	v := strings.TrimSpace(value)
	if allowed.Contains(v) {
		return v
	}
	return ""
}

// FilterMulti tests each comma-delimited token against the allowlist
// independently. Unlisted tokens are dropped, duplicates removed, and
// first-seen order preserved. The survivors are rejoined with ", ".
func FilterMulti(value string, allowed Set) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}

	kept := make([]string, 0)
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		token := strings.TrimSpace(part)
		if token == "" || !allowed.Contains(token) || seen[token] {
			continue
		}
		seen[token] = true
		kept = append(kept, token)
	}

	return strings.Join(kept, ", ")
}
