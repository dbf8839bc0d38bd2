package onnx

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/wasnn/onnx-wasnn/internal/schema"
)

// enumDomain is the lookup table of one schema enum, used to read string attributes such as
// Resize's "mode" into enum values.
//
// Keys are the Pascal-cased variant names. Variants whose name is a reserved word in some of the
// schema's code generators (e.g. "None") are stored with a trailing "_", the spelling those
// generators use.
type enumDomain[E ~uint8] struct {
	name     string
	variants map[string]E
}

// reservedVariantNames are escaped with a trailing "_" in enum domains.
var reservedVariantNames = map[string]bool{"None": true, "True": true, "False": true}

func newEnumDomain[E ~uint8](name string, values map[string]E) enumDomain[E] {
	d := enumDomain[E]{name: name, variants: make(map[string]E, len(values))}
	for variant, value := range values {
		if reservedVariantNames[variant] {
			variant += "_"
		}
		d.variants[variant] = value
	}
	return d
}

// lookup converts a snake_case attribute value to Pascal case (round_prefer_floor -> RoundPreferFloor)
// and finds the variant, trying the escaped spelling second.
func (d enumDomain[E]) lookup(value string) (E, error) {
	pascal := snakeToPascal(value)
	if v, found := d.variants[pascal]; found {
		return v, nil
	}
	if v, found := d.variants[pascal+"_"]; found {
		return v, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedEnumValue, "value %q is not a valid %s", value, d.name)
}

// snakeToPascal upper-cases the first letter of each "_" separated word and joins them.
func snakeToPascal(s string) string {
	var sb strings.Builder
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(word[:1]))
		sb.WriteString(word[1:])
	}
	return sb.String()
}

var (
	rnnDirectionDomain       = newEnumDomain("RNNDirection", schema.EnumValuesRNNDirection)
	resizeModeDomain         = newEnumDomain("ResizeMode", schema.EnumValuesResizeMode)
	coordTransformModeDomain = newEnumDomain("CoordTransformMode", schema.EnumValuesCoordTransformMode)
	nearestModeDomain        = newEnumDomain("NearestMode", schema.EnumValuesNearestMode)
	scatterReductionDomain   = newEnumDomain("ScatterReduction", schema.EnumValuesScatterReduction)
)
