package schedulers

// Options holds every policy tunable. Each policy reads only its own fields.
// Tags let the same struct be filled from config.yaml (viper/mapstructure),
// workload files (yaml) and HTTP bodies (json).
type Options struct {
	Quantum int `mapstructure:"quantum" yaml:"quantum" json:"quantum"`

	Levels      int `mapstructure:"levels" yaml:"levels" json:"levels"`
	BaseQuantum int `mapstructure:"base_quantum" yaml:"base_quantum" json:"base_quantum"`
	BoostPeriod int `mapstructure:"boost_period" yaml:"boost_period" json:"boost_period"`

	DefaultTickets int   `mapstructure:"default_tickets" yaml:"default_tickets" json:"default_tickets"`
	Seed           int64 `mapstructure:"seed" yaml:"seed" json:"seed"`

	DefaultShare float64 `mapstructure:"default_share" yaml:"default_share" json:"default_share"`
	DefaultNice  int     `mapstructure:"default_nice" yaml:"default_nice" json:"default_nice"`
	AgingRate    float64 `mapstructure:"aging_rate" yaml:"aging_rate" json:"aging_rate"`

	FgPolicy  string `mapstructure:"fg_policy" yaml:"fg_policy" json:"fg_policy"`
	FgQuantum int    `mapstructure:"fg_quantum" yaml:"fg_quantum" json:"fg_quantum"`
	BgPolicy  string `mapstructure:"bg_policy" yaml:"bg_policy" json:"bg_policy"`
	BgQuantum int    `mapstructure:"bg_quantum" yaml:"bg_quantum" json:"bg_quantum"`

	DefaultPeriod   int `mapstructure:"default_period" yaml:"default_period" json:"default_period"`
	DefaultDeadline int `mapstructure:"default_deadline" yaml:"default_deadline" json:"default_deadline"`
}

const (
	DefaultQuantum        = 2
	DefaultLevels         = 3
	DefaultBaseQuantum    = 2
	DefaultBoostPeriod    = 50
	DefaultTickets        = 100
	DefaultSeed           = 20240601
	DefaultShare          = 1.0
	DefaultNice           = 0
	DefaultAgingRate      = 0.1
	DefaultFgQuantum      = 2
	DefaultBgQuantum      = 4
	DefaultPeriod         = 1000
	DefaultDeadline       = 1000
	strideConstant        = 10000
	cfsBaseWeight         = 1024
	cfsNiceStep           = 1.25
	foregroundMaxPriority = 1
)

// DefaultOptions returns the documented default for every tunable.
func DefaultOptions() Options {
	return Options{
		Quantum:         DefaultQuantum,
		Levels:          DefaultLevels,
		BaseQuantum:     DefaultBaseQuantum,
		BoostPeriod:     DefaultBoostPeriod,
		DefaultTickets:  DefaultTickets,
		Seed:            DefaultSeed,
		DefaultShare:    DefaultShare,
		DefaultNice:     DefaultNice,
		AgingRate:       DefaultAgingRate,
		FgPolicy:        ClassRoundRobin,
		FgQuantum:       DefaultFgQuantum,
		BgPolicy:        ClassFirstComeFirstServe,
		BgQuantum:       DefaultBgQuantum,
		DefaultPeriod:   DefaultPeriod,
		DefaultDeadline: DefaultDeadline,
	}
}

// OptionsOverride carries a partial set of tunables. Nil fields mean "not
// set" and leave the base value untouched, so an explicit zero is still an
// override.
type OptionsOverride struct {
	Quantum         *int     `yaml:"quantum" json:"quantum"`
	Levels          *int     `yaml:"levels" json:"levels"`
	BaseQuantum     *int     `yaml:"base_quantum" json:"base_quantum"`
	BoostPeriod     *int     `yaml:"boost_period" json:"boost_period"`
	DefaultTickets  *int     `yaml:"default_tickets" json:"default_tickets"`
	Seed            *int64   `yaml:"seed" json:"seed"`
	DefaultShare    *float64 `yaml:"default_share" json:"default_share"`
	DefaultNice     *int     `yaml:"default_nice" json:"default_nice"`
	AgingRate       *float64 `yaml:"aging_rate" json:"aging_rate"`
	FgPolicy        *string  `yaml:"fg_policy" json:"fg_policy"`
	FgQuantum       *int     `yaml:"fg_quantum" json:"fg_quantum"`
	BgPolicy        *string  `yaml:"bg_policy" json:"bg_policy"`
	BgQuantum       *int     `yaml:"bg_quantum" json:"bg_quantum"`
	DefaultPeriod   *int     `yaml:"default_period" json:"default_period"`
	DefaultDeadline *int     `yaml:"default_deadline" json:"default_deadline"`
}

// Apply returns base with every set field of o replacing the base value.
// A nil override returns base unchanged.
func (o *OptionsOverride) Apply(base Options) Options {
	if o == nil {
		return base
	}
	setInt(&base.Quantum, o.Quantum)
	setInt(&base.Levels, o.Levels)
	setInt(&base.BaseQuantum, o.BaseQuantum)
	setInt(&base.BoostPeriod, o.BoostPeriod)
	setInt(&base.DefaultTickets, o.DefaultTickets)
	if o.Seed != nil {
		base.Seed = *o.Seed
	}
	if o.DefaultShare != nil {
		base.DefaultShare = *o.DefaultShare
	}
	setInt(&base.DefaultNice, o.DefaultNice)
	if o.AgingRate != nil {
		base.AgingRate = *o.AgingRate
	}
	if o.FgPolicy != nil {
		base.FgPolicy = *o.FgPolicy
	}
	setInt(&base.FgQuantum, o.FgQuantum)
	if o.BgPolicy != nil {
		base.BgPolicy = *o.BgPolicy
	}
	setInt(&base.BgQuantum, o.BgQuantum)
	setInt(&base.DefaultPeriod, o.DefaultPeriod)
	setInt(&base.DefaultDeadline, o.DefaultDeadline)
	return base
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
