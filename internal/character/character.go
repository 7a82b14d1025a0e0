// Package character defines the persisted character document and its patch
// semantics.
//
// The document is fully self-contained and versionless: everything is keyed
// by plain strings, and a patch is a shallow merge of top-level sections
// (last writer wins). There is no optimistic-concurrency check.
package character

// Profile holds the free-text identity of a character.
type Profile struct {
	Name  string            `json:"name"`
	Items map[string]string `json:"items"`
	Notes string            `json:"notes"`
}

// Parameter is a rolled parameter with its editable modifiers.
type Parameter struct {
	Value int `json:"value"`
	Tmp   int `json:"tmp"`
	Other int `json:"other"`
}

// Total is the effective parameter value.
func (p Parameter) Total() int {
	return p.Value + p.Tmp + p.Other
}

// Skill holds the four point allocations on top of a skill's base value.
type Skill struct {
	Job    int    `json:"job"`
	Hobby  int    `json:"hobby"`
	Growth int    `json:"growth"`
	Other  int    `json:"other"`
	Fixed  bool   `json:"fixed"`
	Detail string `json:"detail,omitempty"`
}

// Points is the sum of the skill's allocations, added to its rule-table
// base to get the displayed total.
func (s Skill) Points() int {
	return s.Job + s.Hobby + s.Growth + s.Other
}

// Custom is a player-defined skill outside the rule tables.
type Custom struct {
	Name   string `json:"name"`
	Job    int    `json:"job"`
	Hobby  int    `json:"hobby"`
	Growth int    `json:"growth"`
	Other  int    `json:"other"`
}

// Category maps skill name to skill within one skill category.
type Category map[string]Skill

// Character is the persisted character document.
type Character struct {
	Profile    Profile              `json:"profile"`
	Parameters map[string]Parameter `json:"parameters"`
	Variables  map[string]int       `json:"variables"`
	Skillset   map[string]Category  `json:"skillset"`
	Custom     []Custom             `json:"custom"`
}

// Patch is a partial character document. Nil sections are left untouched;
// present sections replace the stored ones wholesale.
type Patch struct {
	Profile    *Profile             `json:"profile,omitempty"`
	Parameters map[string]Parameter `json:"parameters,omitempty"`
	Variables  map[string]int       `json:"variables,omitempty"`
	Skillset   map[string]Category  `json:"skillset,omitempty"`
	Custom     []Custom             `json:"custom,omitempty"`
}

// Merge applies the patch onto the document, section by section.
func (c Character) Merge(patch Patch) Character {
	if patch.Profile != nil {
		c.Profile = *patch.Profile
	}
	if patch.Parameters != nil {
		c.Parameters = patch.Parameters
	}
	if patch.Variables != nil {
		c.Variables = patch.Variables
	}
	if patch.Skillset != nil {
		c.Skillset = patch.Skillset
	}
	if patch.Custom != nil {
		c.Custom = patch.Custom
	}
	return c
}

// Empty reports whether the patch would change nothing.
func (p Patch) Empty() bool {
	return p.Profile == nil && p.Parameters == nil && p.Variables == nil &&
		p.Skillset == nil && p.Custom == nil
}
