package config

import (
	"fmt"
	"strings"

	"github.com/rpgo/fire-planner/internal/calculation"
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all settings.
const envPrefix = "FIREPLAN"

// Settings are the engine and CLI knobs that are not part of a plan.
type Settings struct {
	CorpusStep         string `mapstructure:"corpus_step"`
	ContributionStep   string `mapstructure:"contribution_step"`
	MaxIterations      int    `mapstructure:"max_iterations"`
	ContributionMethod string `mapstructure:"contribution_method"`
	Log                struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Output struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"output"`
}

// NewViper builds a Viper instance with the standard settings: YAML file
// type, FIREPLAN_ env prefix and a key replacer so that "log.level" resolves
// to FIREPLAN_LOG_LEVEL.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	d := calculation.DefaultSettings()
	v.SetDefault("corpus_step", d.CorpusStep.String())
	v.SetDefault("contribution_step", d.ContributionStep.String())
	v.SetDefault("max_iterations", d.MaxIterations)
	v.SetDefault("contribution_method", string(d.ContributionMethod))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.format", "console")
}

// LoadSettings reads the optional settings file at path, applies FIREPLAN_*
// environment overrides and defaults. An empty path skips the file.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if _, err := s.Engine(); err != nil {
		return nil, err
	}
	return s, nil
}

// Engine converts the settings into solver settings.
func (s *Settings) Engine() (calculation.Settings, error) {
	corpusStep, err := decimal.NewFromString(s.CorpusStep)
	if err != nil {
		return calculation.Settings{}, fmt.Errorf("invalid corpus_step %q: %w", s.CorpusStep, err)
	}
	contributionStep, err := decimal.NewFromString(s.ContributionStep)
	if err != nil {
		return calculation.Settings{}, fmt.Errorf("invalid contribution_step %q: %w", s.ContributionStep, err)
	}
	es := calculation.Settings{
		CorpusStep:         corpusStep,
		ContributionStep:   contributionStep,
		MaxIterations:      s.MaxIterations,
		ContributionMethod: domain.ContributionMethod(strings.ToLower(s.ContributionMethod)),
	}
	if err := es.Validate(); err != nil {
		return calculation.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return es, nil
}
