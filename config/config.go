package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"cpu-scheduler/internal/schedulers"
)

type SchedulerConfig struct {
	Port     int
	LogLevel string
	Options  schedulers.Options
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml once and caches it, error included.
// A missing file is not an error; defaults and CPUSIM_* environment
// variables still apply. Callers must not modify the returned config.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = LoadSchedulerConfig("")
	})
	return config, configErr
}

// LoadSchedulerConfig reads the config file at path, or config.yaml in the
// working directory when path is empty.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("cpusim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading scheduler config: %w", err)
		}
		logrus.Debug("no config.yaml found, using defaults")
	}

	cfg := &SchedulerConfig{
		Port:     v.GetInt("port"),
		LogLevel: v.GetString("log_level"),
		Options: schedulers.Options{
			Quantum:         v.GetInt("scheduler.round_robin.time_quantum"),
			Levels:          v.GetInt("scheduler.multilevel_feedback_queue.levels"),
			BaseQuantum:     v.GetInt("scheduler.multilevel_feedback_queue.base_quantum"),
			BoostPeriod:     v.GetInt("scheduler.multilevel_feedback_queue.boost_period"),
			DefaultTickets:  v.GetInt("scheduler.lottery.default_tickets"),
			Seed:            v.GetInt64("scheduler.lottery.seed"),
			DefaultShare:    v.GetFloat64("scheduler.fair_share.default_share"),
			DefaultNice:     v.GetInt("scheduler.cfs.default_nice"),
			AgingRate:       v.GetFloat64("scheduler.aging.rate"),
			FgPolicy:        v.GetString("scheduler.multilevel_queue.fg_policy"),
			FgQuantum:       v.GetInt("scheduler.multilevel_queue.fg_quantum"),
			BgPolicy:        v.GetString("scheduler.multilevel_queue.bg_policy"),
			BgQuantum:       v.GetInt("scheduler.multilevel_queue.bg_quantum"),
			DefaultPeriod:   v.GetInt("scheduler.rate_monotonic.default_period"),
			DefaultDeadline: v.GetInt("scheduler.deadline_monotonic.default_deadline"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := schedulers.DefaultOptions()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", d.Quantum)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels", d.Levels)
	v.SetDefault("scheduler.multilevel_feedback_queue.base_quantum", d.BaseQuantum)
	v.SetDefault("scheduler.multilevel_feedback_queue.boost_period", d.BoostPeriod)
	v.SetDefault("scheduler.lottery.default_tickets", d.DefaultTickets)
	v.SetDefault("scheduler.lottery.seed", d.Seed)
	v.SetDefault("scheduler.fair_share.default_share", d.DefaultShare)
	v.SetDefault("scheduler.cfs.default_nice", d.DefaultNice)
	v.SetDefault("scheduler.aging.rate", d.AgingRate)
	v.SetDefault("scheduler.multilevel_queue.fg_policy", d.FgPolicy)
	v.SetDefault("scheduler.multilevel_queue.fg_quantum", d.FgQuantum)
	v.SetDefault("scheduler.multilevel_queue.bg_policy", d.BgPolicy)
	v.SetDefault("scheduler.multilevel_queue.bg_quantum", d.BgQuantum)
	v.SetDefault("scheduler.rate_monotonic.default_period", d.DefaultPeriod)
	v.SetDefault("scheduler.deadline_monotonic.default_deadline", d.DefaultDeadline)
}
