package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 2, opts.Quantum)
	assert.Equal(t, 3, opts.Levels)
	assert.Equal(t, 2, opts.BaseQuantum)
	assert.Equal(t, 50, opts.BoostPeriod)
	assert.Equal(t, 100, opts.DefaultTickets)
	assert.Equal(t, int64(20240601), opts.Seed)
	assert.Equal(t, 1.0, opts.DefaultShare)
	assert.Equal(t, 0.1, opts.AgingRate)
	assert.Equal(t, ClassRoundRobin, opts.FgPolicy)
	assert.Equal(t, ClassFirstComeFirstServe, opts.BgPolicy)
	assert.Equal(t, 1000, opts.DefaultPeriod)
	assert.Equal(t, 1000, opts.DefaultDeadline)
}

func TestOptionsOverride_Apply(t *testing.T) {
	zero := 0
	seed := int64(7)
	bg := ClassRoundRobin
	rate := 0.5

	got := (&OptionsOverride{Quantum: &zero, Seed: &seed, BgPolicy: &bg, AgingRate: &rate}).Apply(DefaultOptions())

	want := DefaultOptions()
	want.Quantum = 0
	want.Seed = 7
	want.BgPolicy = ClassRoundRobin
	want.AgingRate = 0.5
	assert.Equal(t, want, got)
}

func TestOptionsOverride_NilLeavesBase(t *testing.T) {
	var o *OptionsOverride
	assert.Equal(t, DefaultOptions(), o.Apply(DefaultOptions()))
	assert.Equal(t, DefaultOptions(), (&OptionsOverride{}).Apply(DefaultOptions()))
}
