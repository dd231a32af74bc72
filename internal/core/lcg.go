package core

// LCG is a 32-bit linear congruential generator. Lottery draws go through it
// so that a seed fully determines the schedule.
//
// Not thread-safe; each simulation owns its generator.
type LCG struct {
	state uint32
}

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

func NewLCG(seed int64) *LCG {
	return &LCG{state: uint32(seed)}
}

func (g *LCG) next() uint32 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return g.state
}

// Float64 returns a value in [0, 1).
func (g *LCG) Float64() float64 {
	return float64(g.next()) / lcgModulus
}

// Intn returns a value in [0, n). It panics if n <= 0, like math/rand.
func (g *LCG) Intn(n int) int {
	if n <= 0 {
		panic("core: LCG.Intn called with n <= 0")
	}
	v := int(g.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
