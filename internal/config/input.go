package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/rpgo/fire-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan input files
type InputParser struct {
	now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{now: time.Now}
}

// LoadFromFile loads a plan configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan configuration document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.deriveCurrentAge(&config.Base)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// deriveCurrentAge fills in current_age from birth_date when only the latter is given.
func (ip *InputParser) deriveCurrentAge(pa *domain.PlanAssumptions) {
	if pa.CurrentAge == 0 && pa.BirthDate != nil {
		pa.CurrentAge = dateutil.Age(*pa.BirthDate, ip.now())
	}
}

// ValidateConfiguration validates the base assumptions and every resolved scenario
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Base.Validate(); err != nil {
		return fmt.Errorf("base assumptions: %w", err)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, so := range config.Scenarios {
		if so.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[so.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, so.Name)
		}
		seen[so.Name] = true

		if err := so.Apply(config.Base).Validate(); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", so.Name, err)
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration with the
// classic with/without inheritance pair of scenarios
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	bequest := decimal.NewFromInt(10000000)
	earlyRetirement := 50

	return &domain.Configuration{
		Base: domain.PlanAssumptions{
			CurrentAge:         30,
			RetirementAge:      60,
			MortalityAge:       80,
			CurrentInvestments: decimal.Zero,
			MonthlyExpenses:    decimal.NewFromInt(50000),
			ExpectedReturn:     decimal.NewFromFloat(0.12),
			PortfolioReturn:    decimal.NewFromFloat(0.08),
			InflationRate:      decimal.NewFromFloat(0.08),
		},
		Scenarios: []domain.ScenarioOverride{
			{Name: "Without Inheritance"},
			{Name: "With Inheritance", Bequest: &bequest},
			{Name: "Early Retirement With Inheritance", RetirementAge: &earlyRetirement, Bequest: &bequest},
		},
	}
}

// SaveConfiguration writes a configuration back out as YAML
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
