// This file is part of Tessellate.
//
// Tessellate is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tessellate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tessellate.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"strings"

	"github.com/glsandbox/tessellate/curated"
	"github.com/glsandbox/tessellate/tessellation"
)

// Sentinal error patterns.
const (
	UnknownVariant = "scene: unknown variant: %s"
)

// Variant selects one of the configurations of the sphere pipeline.
type Variant int

// List of valid Variant values.
const (
	VariantA Variant = iota
	VariantB
	VariantC
	numVariants
)

// Variants returns all valid variants.
func Variants() []Variant {
	v := make([]Variant, 0, numVariants)
	for i := VariantA; i < numVariants; i++ {
		v = append(v, i)
	}
	return v
}

func (v Variant) String() string {
	switch v {
	case VariantA:
		return "A"
	case VariantB:
		return "B"
	case VariantC:
		return "C"
	}
	return "unknown"
}

// ParseVariant converts a string to a Variant. The comparison is case
// insensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return VariantA, nil
	case "B":
		return VariantB, nil
	case "C":
		return VariantC, nil
	}
	return VariantA, curated.Errorf(UnknownVariant, s)
}

// TessLevel is the base tessellation level used by the control stage.
//
// Variants A and C subdivide each sphere into 10 segments of latitude and 20
// segments of longitude. Variant B uses 100 and 200.
func (v Variant) TessLevel() int {
	switch v {
	case VariantB:
		return 100
	default:
		return 10
	}
}

// Levels returns the tessellation levels for the variant.
func (v Variant) Levels() tessellation.Levels {
	return tessellation.NewLevels(v.TessLevel())
}

// PatchVerticesEveryFrame is true if the number of vertices per patch should
// be set before every draw. The value never changes and so variant C sets it
// once when the renderer is created.
func (v Variant) PatchVerticesEveryFrame() bool {
	return v != VariantC
}
