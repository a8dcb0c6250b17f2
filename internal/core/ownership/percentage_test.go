package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krsgraph/krsgraph/internal/core/model"
)

func pathWithPercentages(pcts ...*float64) model.OwnershipPath {
	p := model.OwnershipPath{Percentages: pcts}
	for i := 0; i <= len(pcts); i++ {
		p.Nodes = append(p.Nodes, model.PathNode{ID: string(rune('a' + i))})
	}
	return p
}

func pct(v float64) *float64 { return &v }

func TestEffectivePercentage(t *testing.T) {
	tests := []struct {
		name string
		path model.OwnershipPath
		want float64
	}{
		{"single edge", pathWithPercentages(pct(57.66)), 57.66},
		{"two hops", pathWithPercentages(pct(60), pct(75)), 45.0},
		{"three hops", pathWithPercentages(pct(80), pct(60), pct(75)), 36.0},
		{"full ownership chain", pathWithPercentages(pct(100), pct(100)), 100.0},
		{"zero breaks the chain", pathWithPercentages(pct(0), pct(75)), 0.0},
		{"missing percentage passes through", pathWithPercentages(nil, pct(45)), 45.0},
		{"all missing", pathWithPercentages(nil, nil, nil), 100.0},
		{"empty path", pathWithPercentages(), 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EffectivePercentage(tt.path), 1e-9)
		})
	}
}
