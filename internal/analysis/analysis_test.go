package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/san-kum/lorenz/internal/viz"
)

func TestLyapunovExponent(t *testing.T) {
	rk4 := integrators.NewRK4()
	x0 := dynamo.State{1, 1, 1}

	tests := []struct {
		name    string
		r       float64
		chaotic bool
	}{
		{"classic", 28, true},
		{"decays to origin", 0.5, false},
		{"stable equilibrium", 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &physics.Lorenz{S: 10, B: 2.6666, R: tt.r}
			lambda := LyapunovExponent(l, rk4, x0, 0.01, 10, 60, 1e-8)
			if tt.chaotic {
				assert.Greater(t, lambda, 0.5)
				assert.Less(t, lambda, 1.5)
			} else {
				assert.Less(t, lambda, 0.0)
			}
		})
	}
}

func TestLyapunovExponentDegenerate(t *testing.T) {
	rk4 := integrators.NewRK4()
	l := physics.NewLorenz()
	assert.Zero(t, LyapunovExponent(l, rk4, nil, 0.01, 0, 1, 1e-8))
	assert.Zero(t, LyapunovExponent(l, rk4, dynamo.State{1, 1, 1}, 0, 0, 1, 1e-8))

	blowup := &physics.Lorenz{S: 5000, B: 2.6666, R: 28}
	euler := integrators.NewEuler()
	assert.True(t, math.IsNaN(LyapunovExponent(blowup, euler, dynamo.State{1, 1, 1}, 0.001, 0, 50, 1e-8)))
}

func TestBifurcationDiagram(t *testing.T) {
	l := physics.NewLorenz()
	sw := Sweep{Param: "r", Min: 14, Max: 28, Samples: 3, StateIndex: 2, Dt: 0.005, Transient: 20, Record: 20}

	data, err := BifurcationDiagram(l, integrators.NewRK4(), dynamo.State{1, 1, 1}, sw)
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.Equal(t, 14.0, data[0].Param)
	assert.Equal(t, 28.0, data[2].Param)
	assert.Less(t, spread(data[0].Maxima), 0.1, "r=14 spirals onto an equilibrium")
	assert.Greater(t, len(data[2].Maxima), 5)
	assert.Greater(t, spread(data[2].Maxima), 5.0, "r=28 is chaotic")
	assert.Equal(t, 28.0, l.R, "parameter restored")

	c := viz.NewCanvas(20, 5)
	blank := c.String()
	DrawBifurcation(c, data)
	assert.NotEqual(t, blank, c.String())
}

func TestBifurcationDiagramErrors(t *testing.T) {
	l := physics.NewLorenz()
	_, err := BifurcationDiagram(l, integrators.NewRK4(), dynamo.State{1, 1, 1}, Sweep{Param: "q", Samples: 2, Dt: 0.01})
	assert.True(t, errors.Is(err, dynamo.ErrUnknownParam))

	_, err = BifurcationDiagram(l, integrators.NewRK4(), dynamo.State{1, 1, 1}, Sweep{Param: "r", StateIndex: 3, Samples: 2, Dt: 0.01})
	assert.ErrorIs(t, err, dynamo.ErrDimensionMismatch)

	_, err = BifurcationDiagram(l, integrators.NewRK4(), dynamo.State{1, 1, 1}, Sweep{Param: "r", Samples: 2})
	assert.Error(t, err)

	_, err = BifurcationDiagram(l, integrators.NewRK4(), dynamo.State{1, math.NaN(), 1}, Sweep{Param: "r", Samples: 2, Dt: 0.01})
	assert.ErrorIs(t, err, dynamo.ErrInvalidState)
	assert.Equal(t, physics.DefaultR, l.R)
}

func TestDrawBifurcationEmpty(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	blank := c.String()
	DrawBifurcation(c, nil)
	DrawBifurcation(c, []BifurcationPoint{{Param: 1}})
	assert.Equal(t, blank, c.String())
}

func spread(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	lo, hi := v[0], v[0]
	for _, x := range v {
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	return hi - lo
}
