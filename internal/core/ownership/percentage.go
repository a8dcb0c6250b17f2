package ownership

import "github.com/krsgraph/krsgraph/internal/core/model"

// EffectivePercentage reduces a path's edge percentages into one effective
// ownership percentage: 100 × Π(p/100) over the edges in path order. An
// edge with no recorded percentage passes ownership through undiluted
// (multiplier 1.0). No rounding is applied; display rounding is the
// caller's concern.
func EffectivePercentage(p model.OwnershipPath) float64 {
	effective := 100.0
	for _, pct := range p.Percentages {
		if pct == nil {
			continue
		}
		effective *= *pct / 100.0
	}
	return effective
}
