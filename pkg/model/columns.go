// pkg/model/columns.go
package model

// Columns is the feed and table column order for product records.
// The upsert statement and the feed schema check both follow this order.
var Columns = []string{
	"id", "name", "brand", "description", "price", "image_url", "categories",
	"age_range", "rating", "review_count", "affiliate_url", "is_top_pick",
	"is_bestseller", "is_new", "min_age_months", "max_age_months",
	"age_range_category", "communication_levels", "motor_levels",
	"cognitive_levels", "social_emotional_levels", "play_type_tags",
	"complexity_level", "challenge_rating", "attention_duration",
	"stimulation_level", "structure_preference", "energy_requirement",
	"sensory_compatibility", "social_context", "cooperation_required",
	"safety_considerations", "special_needs_support", "intervention_focus",
	"noise_level", "mess_factor", "setup_time", "space_requirements",
	"is_liza_toph_certified", "status",
}

// MultiValueColumns are the comma-delimited multi-select fields. They may be
// persisted as text or as native text[] depending on configuration.
var MultiValueColumns = map[string]bool{
	"categories":            true,
	"play_type_tags":        true,
	"sensory_compatibility": true,
	"social_context":        true,
	"safety_considerations": true,
	"special_needs_support": true,
	"intervention_focus":    true,
}

// FloatColumns hold decimal values.
var FloatColumns = map[string]bool{
	"price":  true,
	"rating": true,
}

// IntColumns hold integer values.
var IntColumns = map[string]bool{
	"review_count":     true,
	"min_age_months":   true,
	"max_age_months":   true,
	"challenge_rating": true,
}

// BoolColumns hold boolean flags.
var BoolColumns = map[string]bool{
	"is_top_pick":            true,
	"is_bestseller":          true,
	"is_new":                 true,
	"cooperation_required":   true,
	"is_liza_toph_certified": true,
}
