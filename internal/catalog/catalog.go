package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step is one stage of the interview. RequiredFields gate advancement past
// the step; HighValueOptional names the (at most two) optional fields worth
// a single skippable follow-up.
type Step struct {
	Step              int      `yaml:"step"`
	Name              string   `yaml:"name"`
	Title             string   `yaml:"title"`
	Prompt            string   `yaml:"prompt"`
	TargetFields      []string `yaml:"target_fields"`
	RequiredFields    []string `yaml:"required_fields"`
	HighValueOptional []string `yaml:"high_value_optional"`
}

// OptionalFields returns the target fields that do not gate advancement.
func (s *Step) OptionalFields() []string {
	required := make(map[string]bool, len(s.RequiredFields))
	for _, f := range s.RequiredFields {
		required[f] = true
	}
	var out []string
	for _, f := range s.TargetFields {
		if !required[f] {
			out = append(out, f)
		}
	}
	return out
}

// Catalog is the fixed, ordered question plan for an interview. It is
// process-wide configuration: validated once at load, never mutated.
type Catalog struct {
	Name          string `yaml:"name"`
	ClosingPrompt string `yaml:"closing_prompt"`
	Steps         []Step `yaml:"steps"`
}

// maxHighValueOptional caps the skippable optional ask per step. Asking for
// more than two low-stakes facts at once stalls interviews.
const maxHighValueOptional = 2

// TotalSteps returns N, the number of steps in the catalog.
func (c *Catalog) TotalSteps() int {
	return len(c.Steps)
}

// StepAt returns the 1-based step n, or false if n is out of range.
func (c *Catalog) StepAt(n int) (*Step, bool) {
	if n < 1 || n > len(c.Steps) {
		return nil, false
	}
	return &c.Steps[n-1], true
}

// AllFields returns the union of every step's target fields, in catalog order.
func (c *Catalog) AllFields() []string {
	seen := make(map[string]bool)
	var out []string
	for _, step := range c.Steps {
		for _, f := range step.TargetFields {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// Validate checks the structural invariants of the catalog. A catalog that
// fails validation must never reach request handling.
func (c *Catalog) Validate() error {
	if len(c.Steps) == 0 {
		return fmt.Errorf("catalog %q has no steps", c.Name)
	}
	for i := range c.Steps {
		step := &c.Steps[i]
		expectedID := i + 1
		if step.Step != expectedID {
			return fmt.Errorf("step %d has id %d, want %d", i, step.Step, expectedID)
		}
		if step.Name == "" {
			return fmt.Errorf("step %d is missing a name", step.Step)
		}
		if step.Prompt == "" {
			return fmt.Errorf("step %d (%s) is missing a prompt", step.Step, step.Name)
		}
		if len(step.TargetFields) == 0 {
			return fmt.Errorf("step %d (%s) has no target fields", step.Step, step.Name)
		}

		targets := make(map[string]bool, len(step.TargetFields))
		for _, f := range step.TargetFields {
			if targets[f] {
				return fmt.Errorf("step %d (%s) lists target field %q twice", step.Step, step.Name, f)
			}
			targets[f] = true
		}
		required := make(map[string]bool, len(step.RequiredFields))
		for _, f := range step.RequiredFields {
			if !targets[f] {
				return fmt.Errorf("step %d (%s): required field %q is not a target field", step.Step, step.Name, f)
			}
			required[f] = true
		}
		if len(step.HighValueOptional) > maxHighValueOptional {
			return fmt.Errorf("step %d (%s): %d high-value optional fields, max is %d",
				step.Step, step.Name, len(step.HighValueOptional), maxHighValueOptional)
		}
		for _, f := range step.HighValueOptional {
			if !targets[f] {
				return fmt.Errorf("step %d (%s): high-value optional field %q is not a target field", step.Step, step.Name, f)
			}
			if required[f] {
				return fmt.Errorf("step %d (%s): high-value optional field %q is required", step.Step, step.Name, f)
			}
		}
	}
	return nil
}

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog yaml: %w", err)
	}
	if cat.ClosingPrompt == "" {
		cat.ClosingPrompt = defaultClosingPrompt
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return &cat, nil
}
