package services

import (
	"strings"

	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/errs"
)

// PriceSuggestion is a heuristic market-rate estimate for a listing, priced
// in rupees per unit with a low/high band around the midpoint.
type PriceSuggestion struct {
	Suggested float64
	Low       float64
	High      float64
	Unit      string
	Rationale string
}

// PriceAdvisor produces price suggestions from static reference rates. The
// rates stand in for a market-data feed; the point is a plausible, stable
// number per listing type, category and grade, not a live quote.
type PriceAdvisor struct{}

// NewPriceAdvisor creates a new PriceAdvisor instance.
func NewPriceAdvisor() PriceAdvisor {
	return PriceAdvisor{}
}

// Reference rates in ₹ per base unit: per kg for crops, per animal for
// livestock, per acre for land.
var cropBaseRates = map[string]float64{
	"wheat":      24,
	"rice":       32,
	"maize":      20,
	"cotton":     62,
	"sugarcane":  3.5,
	"pulses":     80,
	"vegetables": 25,
	"fruits":     45,
	"spices":     180,
}

var livestockBaseRates = map[string]float64{
	"cow":     35000,
	"buffalo": 55000,
	"goat":    8000,
	"sheep":   7000,
	"poultry": 350,
	"pig":     12000,
}

var landBaseRates = map[string]float64{
	"agricultural": 450000,
	"orchard":      700000,
	"pasture":      300000,
	"barren":       150000,
}

var gradeMultipliers = map[string]float64{
	"a": 1.15,
	"b": 1.0,
	"c": 0.85,
}

// Quintals and tons are metric; a bag is the 50 kg trade bag.
var unitKilograms = map[listing.Unit]float64{
	listing.UnitKg:      1,
	listing.UnitQuintal: 100,
	listing.UnitTon:     1000,
	listing.UnitBag:     50,
}

const (
	defaultCropRate      = 30
	defaultLivestockRate = 15000
	defaultLandRate      = 400000
	bandSpread           = 0.12
)

// SuggestCrop estimates a per-unit rate for a crop category and grade. An
// unknown category falls back to a generic produce rate; an unknown or empty
// grade is treated as grade B.
func (a PriceAdvisor) SuggestCrop(category, grade string, unit listing.Unit) (PriceSuggestion, error) {
	if err := unit.Validate(); err != nil {
		return PriceSuggestion{}, err
	}

	rate, known := cropBaseRates[normalize(category)]
	if !known {
		rate = defaultCropRate
	}

	multiplier, gradeKnown := gradeMultipliers[normalize(grade)]
	if !gradeKnown {
		multiplier = 1.0
	}

	perUnit := rate * multiplier * unitKilograms[unit]
	rationale := "market reference rate for " + normalize(category)
	if !known {
		rationale = "generic produce rate; no reference data for " + normalize(category)
	}

	return withBand(perUnit, "per "+unit.String(), rationale), nil
}

// SuggestLivestock estimates a per-animal rate for an animal type.
func (a PriceAdvisor) SuggestLivestock(animalType string) (PriceSuggestion, error) {
	if strings.TrimSpace(animalType) == "" {
		return PriceSuggestion{}, errs.NewValueIsRequiredError("animalType")
	}

	rate, known := livestockBaseRates[normalize(animalType)]
	if !known {
		rate = defaultLivestockRate
	}

	rationale := "market reference rate for " + normalize(animalType)
	if !known {
		rationale = "generic livestock rate; no reference data for " + normalize(animalType)
	}

	return withBand(rate, "per animal", rationale), nil
}

// SuggestLand estimates a per-acre rate for a land type.
func (a PriceAdvisor) SuggestLand(landType string) (PriceSuggestion, error) {
	if strings.TrimSpace(landType) == "" {
		return PriceSuggestion{}, errs.NewValueIsRequiredError("landType")
	}

	rate, known := landBaseRates[normalize(landType)]
	if !known {
		rate = defaultLandRate
	}

	rationale := "market reference rate for " + normalize(landType) + " land"
	if !known {
		rationale = "generic land rate; no reference data for " + normalize(landType)
	}

	return withBand(rate, "per acre", rationale), nil
}

func withBand(midpoint float64, unit, rationale string) PriceSuggestion {
	return PriceSuggestion{
		Suggested: midpoint,
		Low:       midpoint * (1 - bandSpread),
		High:      midpoint * (1 + bandSpread),
		Unit:      unit,
		Rationale: rationale,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
