// pkg/model/product.go
package model

// RawRow is a single feed row as fetched: column name to operator-entered text.
// Values may be blank, inconsistently cased, or carry smart punctuation.
type RawRow map[string]string

// Feed is a snapshot of the catalog export: the column set present in the
// feed schema plus the body rows. The column set is checked structurally
// before any row is processed.
type Feed struct {
	Columns []string
	Rows    []RawRow
}

// HasColumn reports whether the feed schema contains the named column.
func (f *Feed) HasColumn(name string) bool {
	for _, c := range f.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Product is the canonical, validated record written to storage.
// Pointer fields distinguish "not set" from zero values; enumerated string
// fields are either empty or a member of their allowlist.
type Product struct {
	ID           string
	Name         string
	Brand        string
	Description  string
	Price        *float64
	ImageURL     string
	Categories   string
	AgeRange     string
	Rating       *float64
	ReviewCount  *int64
	AffiliateURL string

	IsTopPick    *bool
	IsBestseller *bool
	IsNew        *bool

	MinAgeMonths     *int64
	MaxAgeMonths     *int64
	AgeRangeCategory string

	CommunicationLevels   string
	MotorLevels           string
	CognitiveLevels       string
	SocialEmotionalLevels string

	PlayTypeTags        string
	ComplexityLevel     string
	ChallengeRating     *int64
	AttentionDuration   string
	StimulationLevel    string
	StructurePreference string
	EnergyRequirement   string

	SensoryCompatibility string
	SocialContext        string
	CooperationRequired  *bool

	SafetyConsiderations string
	SpecialNeedsSupport  string
	InterventionFocus    string

	NoiseLevel        string
	MessFactor        string
	SetupTime         string
	SpaceRequirements string

	IsLizaTophCertified *bool
	Status              string
}

// Field returns the product's value for a column name in its feed
// representation. Numeric and boolean fields come back as their pointer
// values, everything else as the canonical string.
func (p *Product) Field(column string) interface{} {
	switch column {
	case "id":
		return p.ID
	case "name":
		return p.Name
	case "brand":
		return p.Brand
	case "description":
		return p.Description
	case "price":
		return p.Price
	case "image_url":
		return p.ImageURL
	case "categories":
		return p.Categories
	case "age_range":
		return p.AgeRange
	case "rating":
		return p.Rating
	case "review_count":
		return p.ReviewCount
	case "affiliate_url":
		return p.AffiliateURL
	case "is_top_pick":
		return p.IsTopPick
	case "is_bestseller":
		return p.IsBestseller
	case "is_new":
		return p.IsNew
	case "min_age_months":
		return p.MinAgeMonths
	case "max_age_months":
		return p.MaxAgeMonths
	case "age_range_category":
		return p.AgeRangeCategory
	case "communication_levels":
		return p.CommunicationLevels
	case "motor_levels":
		return p.MotorLevels
	case "cognitive_levels":
		return p.CognitiveLevels
	case "social_emotional_levels":
		return p.SocialEmotionalLevels
	case "play_type_tags":
		return p.PlayTypeTags
	case "complexity_level":
		return p.ComplexityLevel
	case "challenge_rating":
		return p.ChallengeRating
	case "attention_duration":
		return p.AttentionDuration
	case "stimulation_level":
		return p.StimulationLevel
	case "structure_preference":
		return p.StructurePreference
	case "energy_requirement":
		return p.EnergyRequirement
	case "sensory_compatibility":
		return p.SensoryCompatibility
	case "social_context":
		return p.SocialContext
	case "cooperation_required":
		return p.CooperationRequired
	case "safety_considerations":
		return p.SafetyConsiderations
	case "special_needs_support":
		return p.SpecialNeedsSupport
	case "intervention_focus":
		return p.InterventionFocus
	case "noise_level":
		return p.NoiseLevel
	case "mess_factor":
		return p.MessFactor
	case "setup_time":
		return p.SetupTime
	case "space_requirements":
		return p.SpaceRequirements
	case "is_liza_toph_certified":
		return p.IsLizaTophCertified
	case "status":
		return p.Status
	default:
		return nil
	}
}
