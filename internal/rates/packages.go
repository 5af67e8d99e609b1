package rates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Dimensions are in inches.
type Dimensions struct {
	Length decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
}

func (d Dimensions) valid() bool {
	return d.Length.IsPositive() && d.Width.IsPositive() && d.Height.IsPositive()
}

// PackageCustom tells the gateway to use caller supplied dimensions.
const PackageCustom = "custom"

// Package is a preset parcel shape with a carrier weight limit.
type Package struct {
	Name        string
	Dimensions  Dimensions
	MaxWeightLb decimal.Decimal
}

// ValidateWeight rejects weights the preset cannot carry.
func (p Package) ValidateWeight(weightLb decimal.Decimal) error {
	if p.MaxWeightLb.IsZero() {
		return nil
	}
	if weightLb.GreaterThan(p.MaxWeightLb) {
		return fmt.Errorf("weight exceeds maximum for %s packaging: %s lb > %s lb", p.Name, weightLb, p.MaxWeightLb)
	}
	return nil
}

func preset(name, l, w, h string, maxLb int64) Package {
	return Package{
		Name: name,
		Dimensions: Dimensions{
			Length: decimal.RequireFromString(l),
			Width:  decimal.RequireFromString(w),
			Height: decimal.RequireFromString(h),
		},
		MaxWeightLb: decimal.NewFromInt(maxLb),
	}
}

var presets = map[string]Package{
	"envelope":             preset("envelope", "12.5", "9.5", "0.75", 1),
	"large_envelope":       preset("large_envelope", "15", "12", "0.75", 1),
	"padded_envelope":      preset("padded_envelope", "12.5", "9.5", "1", 4),
	"flat_rate_envelope":   preset("flat_rate_envelope", "12.5", "9.5", "0.75", 70),
	"soft_pak":             preset("soft_pak", "14.75", "11.5", "2", 20),
	"small_box":            preset("small_box", "8", "6", "4", 20),
	"medium_box":           preset("medium_box", "12", "10", "6", 50),
	"large_box":            preset("large_box", "18", "14", "10", 70),
	"tube":                 preset("tube", "38", "6", "6", 20),
	"small_flat_rate_box":  preset("small_flat_rate_box", "8.69", "5.44", "1.75", 70),
	"medium_flat_rate_box": preset("medium_flat_rate_box", "11.25", "8.75", "6", 70),
	"large_flat_rate_box":  preset("large_flat_rate_box", "12.25", "12.25", "6", 70),
}

// PackageNames lists the preset names understood by the gateway, sorted.
func PackageNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolvePackage maps a package type onto a preset, or onto the caller's
// dimensions when the type is custom or dimensions were supplied.
func ResolvePackage(packageType string, custom *Dimensions) (Package, error) {
	if custom != nil || packageType == PackageCustom {
		if custom == nil || !custom.valid() {
			return Package{}, fmt.Errorf("%w: custom package requires positive length, width and height", ErrInvalidQuery)
		}
		return Package{Name: PackageCustom, Dimensions: *custom}, nil
	}

	p, ok := presets[packageType]
	if !ok {
		return Package{}, fmt.Errorf("%w: unknown package type %q, expected one of %s or %s",
			ErrInvalidQuery, packageType, strings.Join(PackageNames(), ", "), PackageCustom)
	}
	return p, nil
}
