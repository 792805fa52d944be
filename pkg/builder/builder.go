// pkg/builder/builder.go

// Package builder assembles canonical product records from raw feed rows.
// A build never fails on field content: anything that cannot be validated
// degrades to empty or absent. The one exception is the identifier, whose
// absence excludes the row entirely.
package builder

import (
	"strings"

	"github.com/liza-toph/catalog-ingress/pkg/model"
	"github.com/liza-toph/catalog-ingress/pkg/normalize"
	"github.com/liza-toph/catalog-ingress/pkg/validate"
)

// Builder turns normalized raw rows into canonical products.
type Builder struct {
	promoteOnImport bool
}

// New creates a Builder. When promoteOnImport is set, every built record's
// status is forced to "live".
func New(promoteOnImport bool) *Builder {
	return &Builder{promoteOnImport: promoteOnImport}
}

// Build constructs a canonical product from a raw row. The transform order
// is fixed: clamp age bounds, resolve the age category, filter enumerated
// fields, then coerce scalars. Returns ok=false when the row has no
// identifier; the caller decides how to account for the drop.
func (b *Builder) Build(row model.RawRow) (*model.Product, bool) {
	id := textField(row, "id")
	if id == "" {
		return nil, false
	}

	minAge, maxAge := clampAgeBounds(intField(row, "min_age_months"), intField(row, "max_age_months"))

	status := textField(row, "status")
	if b.promoteOnImport {
		status = "live"
	}

	p := &model.Product{
		ID:           id,
		Name:         textField(row, "name"),
		Brand:        textField(row, "brand"),
		Description:  textField(row, "description"),
		Price:        floatField(row, "price"),
		ImageURL:     normalize.DriveImageURL(textField(row, "image_url")),
		Categories:   normalize.Multi(normalize.Text(row["categories"])),
		AgeRange:     textField(row, "age_range"),
		Rating:       floatField(row, "rating"),
		ReviewCount:  intField(row, "review_count"),
		AffiliateURL: textField(row, "affiliate_url"),

		IsTopPick:    boolField(row, "is_top_pick"),
		IsBestseller: boolField(row, "is_bestseller"),
		IsNew:        boolField(row, "is_new"),

		MinAgeMonths:     minAge,
		MaxAgeMonths:     maxAge,
		AgeRangeCategory: resolveCategory(row["age_range_category"], minAge, maxAge),

		CommunicationLevels:   enumField(row, "communication_levels", validate.DevelopmentLevels),
		MotorLevels:           enumField(row, "motor_levels", validate.DevelopmentLevels),
		CognitiveLevels:       enumField(row, "cognitive_levels", validate.DevelopmentLevels),
		SocialEmotionalLevels: enumField(row, "social_emotional_levels", validate.DevelopmentLevels),

		PlayTypeTags:        multiField(row, "play_type_tags", validate.PlayTypes),
		ComplexityLevel:     enumField(row, "complexity_level", validate.ComplexityLevels),
		ChallengeRating:     intField(row, "challenge_rating"),
		AttentionDuration:   enumField(row, "attention_duration", validate.AttentionDurations),
		StimulationLevel:    enumField(row, "stimulation_level", validate.StimulationLevels),
		StructurePreference: enumField(row, "structure_preference", validate.StructurePreferences),
		EnergyRequirement:   enumField(row, "energy_requirement", validate.EnergyRequirements),

		SensoryCompatibility: multiField(row, "sensory_compatibility", validate.SensoryLevels),
		SocialContext:        multiField(row, "social_context", validate.SocialContexts),
		CooperationRequired:  boolField(row, "cooperation_required"),

		SafetyConsiderations: multiField(row, "safety_considerations", validate.SafetyFlags),
		SpecialNeedsSupport:  multiField(row, "special_needs_support", validate.SpecialNeeds),
		InterventionFocus:    multiField(row, "intervention_focus", validate.InterventionAreas),

		NoiseLevel:        enumField(row, "noise_level", validate.NoiseLevels),
		MessFactor:        enumField(row, "mess_factor", validate.MessFactors),
		SetupTime:         enumField(row, "setup_time", validate.SetupTimes),
		SpaceRequirements: enumField(row, "space_requirements", validate.SpaceRequirements),

		IsLizaTophCertified: boolField(row, "is_liza_toph_certified"),
		Status:              status,
	}

	return p, true
}

// clampAgeBounds raises the upper bound to the lower bound when both are
// present and inverted. Never rejects.
func clampAgeBounds(minAge, maxAge *int64) (*int64, *int64) {
	if minAge != nil && maxAge != nil && *maxAge < *minAge {
		clamped := *minAge
		return minAge, &clamped
	}
	return minAge, maxAge
}

// resolveCategory keeps an explicitly supplied category whenever it passes
// the allowlist; only missing or invalid values are re-derived from the
// age bounds.
func resolveCategory(raw string, minAge, maxAge *int64) string {
	if explicit := validate.CheckEnum(normalize.Text(raw), validate.AgeCategories); explicit != "" {
		return explicit
	}
	return validate.ResolveAgeCategory(minAge, maxAge)
}

func textField(row model.RawRow, name string) string {
	return strings.TrimSpace(normalize.Text(row[name]))
}

func enumField(row model.RawRow, name string, allowed validate.Set) string {
	return validate.CheckEnum(normalize.Text(row[name]), allowed)
}

func multiField(row model.RawRow, name string, allowed validate.Set) string {
	return validate.FilterMulti(normalize.Multi(normalize.Text(row[name])), allowed)
}

func intField(row model.RawRow, name string) *int64 {
	v, ok := normalize.Int(row[name])
	if !ok {
		return nil
	}
	return &v
}

func floatField(row model.RawRow, name string) *float64 {
	v, ok := normalize.Float(row[name])
	if !ok {
		return nil
	}
	return &v
}

func boolField(row model.RawRow, name string) *bool {
	v, ok := normalize.Bool(row[name])
	if !ok {
		return nil
	}
	return &v
}
