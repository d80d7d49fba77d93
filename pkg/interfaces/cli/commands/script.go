package commands

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step actions a checkout script may use
const (
	actionAdd      = "add"
	actionSet      = "set"
	actionRemove   = "remove"
	actionDiscount = "discount"
	actionCustomer = "customer"
	actionClear    = "clear"
	actionSave     = "save"
	actionResume   = "resume"
)

// lastSavedCart refers to the cart parked most recently in the same script
const lastSavedCart = "last"

// Script is a recorded register session: a sequence of cart edits followed,
// optionally, by payment.
//
//	payment: cash
//	steps:
//	  - {action: add, item: 1, quantity: 2}
//	  - {action: discount, percent: 10}
//	  - {action: customer, customer: 7}
type Script struct {
	Payment string `yaml:"payment"`
	Steps   []Step `yaml:"steps"`
}

// Step is one cashier action
type Step struct {
	Action   string `yaml:"action"`
	Item     scalar `yaml:"item"`
	Quantity int64  `yaml:"quantity"`
	Percent  scalar `yaml:"percent"`
	Customer scalar `yaml:"customer"`
	Cart     scalar `yaml:"cart"`
}

// scalar keeps a YAML scalar's literal text so that ids and amounts may be
// written either bare or quoted
type scalar string

func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = scalar(strings.TrimSpace(node.Value))
	return nil
}

// LoadScript reads and validates a checkout script
func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script file: %w", err)
	}

	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &script, nil
}

// Validate checks every step carries what its action needs
func (s *Script) Validate() error {
	for i := range s.Steps {
		step := &s.Steps[i]
		step.Action = strings.ToLower(strings.TrimSpace(step.Action))

		switch step.Action {
		case actionAdd:
			if step.Item == "" {
				return fmt.Errorf("step %d: add requires an item", i+1)
			}
			if step.Quantity == 0 {
				step.Quantity = 1
			}
		case actionSet, actionRemove:
			if step.Item == "" {
				return fmt.Errorf("step %d: %s requires an item", i+1, step.Action)
			}
		case actionDiscount:
			if step.Percent == "" {
				return fmt.Errorf("step %d: discount requires a percent", i+1)
			}
		case actionResume:
			if step.Cart == "" {
				step.Cart = lastSavedCart
			}
		case actionCustomer, actionClear, actionSave:
		case "":
			return fmt.Errorf("step %d: missing action", i+1)
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
	}
	return nil
}
