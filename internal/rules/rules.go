// Package rules defines the declarative rule tables that drive character
// creation: parameters rolled from dice, attributes and properties derived
// from them, and categorized skills.
//
// Rule tables are static data built once at process start and never mutated.
// Dependency resolution is a two-level map lookup; cross-category cycles are
// not possible because attributes, properties and skills may only depend on
// parameters.
package rules

import (
	"fmt"
	"strings"

	apperrors "github.com/arkhamworks/investigator/internal/errors"
	"github.com/arkhamworks/investigator/internal/rules/formula"
)

// Placeholder stands in for a die face that has not been rolled yet when
// rendering equations.
const Placeholder = "?"

// ParameterDef describes a rollable parameter: the dice it is rolled with
// and the accumulator reducing the faces to a value.
type ParameterDef struct {
	Key   string
	Dice  []int // sides per die, e.g. {6, 6, 6} for 3d6
	Apply formula.Accumulator
}

// AttributeDef describes a derived attribute computed from parameter totals.
type AttributeDef struct {
	Key   string
	Deps  []string
	Apply formula.Accumulator
}

// PropertyDef is like an attribute but converts its dependencies through an
// arbitrary function instead of a composable accumulator. Used for
// non-linear lookups such as the damage bonus table.
type PropertyDef struct {
	Key     string
	Deps    []string
	Convert func(values []int) string
}

// SkillDef describes a skill with its base-value formula. Fixed skills
// cannot have their base edited; Custom skills carry a free-text detail.
type SkillDef struct {
	Key    string
	Deps   []string
	Apply  formula.Accumulator
	Fixed  bool
	Custom bool
}

// CategoryDef groups skills, preserving table order.
type CategoryDef struct {
	Key    string
	Skills []SkillDef
}

// ProfileFieldDef describes a free-text profile field whose initial value
// may be derived from parameter totals (e.g. age from education).
type ProfileFieldDef struct {
	Key     string
	Deps    []string
	Convert func(values []int) string
}

// RuleSet is an immutable set of rule tables for one game system.
type RuleSet struct {
	System string

	ProfileFields []ProfileFieldDef
	Parameters    []ParameterDef
	Attributes    []AttributeDef
	Properties    []PropertyDef
	Categories    []CategoryDef

	parameters map[string]ParameterDef
}

// New assembles and validates a rule set. Every dependency referenced by an
// attribute, property, skill or profile field must name a defined parameter.
func New(system string, profile []ProfileFieldDef, parameters []ParameterDef, attributes []AttributeDef, properties []PropertyDef, categories []CategoryDef) (*RuleSet, error) {
	rs := &RuleSet{
		System:        system,
		ProfileFields: profile,
		Parameters:    parameters,
		Attributes:    attributes,
		Properties:    properties,
		Categories:    categories,
		parameters:    make(map[string]ParameterDef, len(parameters)),
	}

	for _, p := range parameters {
		if _, exists := rs.parameters[p.Key]; exists {
			return nil, apperrors.WithMetadata(apperrors.CodeRulesDuplicateKey,
				fmt.Sprintf("duplicate parameter %q in system %q", p.Key, system),
				map[string]string{"Key": p.Key})
		}
		rs.parameters[p.Key] = p
	}

	if err := rs.validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

func (rs *RuleSet) validate() error {
	check := func(key string, deps []string) error {
		for _, dep := range deps {
			if _, ok := rs.parameters[dep]; !ok {
				return apperrors.WithMetadata(apperrors.CodeRulesUnknownDependency,
					fmt.Sprintf("rule %q depends on unknown parameter %q", key, dep),
					map[string]string{"Key": key, "Dependency": dep})
			}
		}
		return nil
	}

	for _, f := range rs.ProfileFields {
		if err := check(f.Key, f.Deps); err != nil {
			return err
		}
	}
	for _, a := range rs.Attributes {
		if err := check(a.Key, a.Deps); err != nil {
			return err
		}
	}
	for _, p := range rs.Properties {
		if err := check(p.Key, p.Deps); err != nil {
			return err
		}
	}
	for _, c := range rs.Categories {
		for _, s := range c.Skills {
			if err := check(c.Key+"/"+s.Key, s.Deps); err != nil {
				return err
			}
		}
	}
	return nil
}

// Parameter looks up a parameter definition by key.
func (rs *RuleSet) Parameter(key string) (ParameterDef, bool) {
	p, ok := rs.parameters[key]
	return p, ok
}

// EvalParameter reduces rolled faces to the parameter's value.
func (rs *RuleSet) EvalParameter(key string, faces []int) (int, error) {
	p, ok := rs.parameters[key]
	if !ok {
		return 0, unknownParameter(key)
	}
	return p.Apply.Eval(faces), nil
}

// ParameterEquation renders the parameter's equation from rolled faces.
// Faces outside [1, sides] render as placeholders.
func (rs *RuleSet) ParameterEquation(key string, faces []int) (string, error) {
	p, ok := rs.parameters[key]
	if !ok {
		return "", unknownParameter(key)
	}
	terms := make([]string, len(p.Dice))
	for i := range p.Dice {
		terms[i] = Placeholder
		if i < len(faces) && faces[i] >= 1 && faces[i] <= p.Dice[i] {
			terms[i] = fmt.Sprintf("%d", faces[i])
		}
	}
	return p.Apply.Render(terms), nil
}

// gather collects dependency parameter totals in declaration order.
func gather(deps []string, totals map[string]int) []int {
	values := make([]int, len(deps))
	for i, dep := range deps {
		values[i] = totals[dep]
	}
	return values
}

// EvalAttribute computes a derived attribute from parameter totals.
func (rs *RuleSet) EvalAttribute(attr AttributeDef, totals map[string]int) int {
	return attr.Apply.Eval(gather(attr.Deps, totals))
}

// EvalProperty converts a property's dependencies into its display value.
func (rs *RuleSet) EvalProperty(prop PropertyDef, totals map[string]int) string {
	return prop.Convert(gather(prop.Deps, totals))
}

// SkillBase computes a skill's base value from parameter totals. Point
// allocations are added on top of the base by the caller.
func (rs *RuleSet) SkillBase(skill SkillDef, totals map[string]int) int {
	return skill.Apply.Eval(gather(skill.Deps, totals))
}

// ProfileValue converts a profile field's dependencies into its initial
// free-text value.
func (rs *RuleSet) ProfileValue(field ProfileFieldDef, totals map[string]int) string {
	if field.Convert == nil {
		return ""
	}
	return field.Convert(gather(field.Deps, totals))
}

func unknownParameter(key string) error {
	return apperrors.WithMetadata(apperrors.CodeRulesUnknownParameter,
		fmt.Sprintf("unknown parameter %q", key),
		map[string]string{"Key": key})
}

// Registry holds the rule sets of every supported game system.
type Registry struct {
	systems map[string]*RuleSet
}

// NewRegistry builds a registry from already-validated rule sets.
func NewRegistry(sets ...*RuleSet) *Registry {
	systems := make(map[string]*RuleSet, len(sets))
	for _, rs := range sets {
		systems[rs.System] = rs
	}
	return &Registry{systems: systems}
}

// Load returns the rule set for a game system.
func (r *Registry) Load(system string) (*RuleSet, error) {
	rs, ok := r.systems[strings.TrimSpace(system)]
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeSystemUnknown,
			fmt.Sprintf("unknown game system %q", system),
			map[string]string{"System": system})
	}
	return rs, nil
}

// Systems lists the registered system identifiers.
func (r *Registry) Systems() []string {
	keys := make([]string, 0, len(r.systems))
	for key := range r.systems {
		keys = append(keys, key)
	}
	return keys
}
