package character

import "github.com/arkhamworks/investigator/internal/rules"

// New builds the initial character document from settled die faces, one
// face list per parameter. Parameter values are reduced through the rule
// formulas, derivable profile fields are pre-filled, and every rule-table
// skill starts with zero allocations.
func New(rs *rules.RuleSet, faces map[string][]int) (Character, error) {
	totals := make(map[string]int, len(rs.Parameters))
	parameters := make(map[string]Parameter, len(rs.Parameters))
	for _, p := range rs.Parameters {
		value, err := rs.EvalParameter(p.Key, faces[p.Key])
		if err != nil {
			return Character{}, err
		}
		totals[p.Key] = value
		parameters[p.Key] = Parameter{Value: value}
	}

	items := make(map[string]string, len(rs.ProfileFields))
	for _, field := range rs.ProfileFields {
		items[field.Key] = rs.ProfileValue(field, totals)
	}

	skillset := make(map[string]Category, len(rs.Categories))
	for _, c := range rs.Categories {
		skills := make(Category, len(c.Skills))
		for _, s := range c.Skills {
			skills[s.Key] = Skill{Fixed: s.Fixed}
		}
		skillset[c.Key] = skills
	}

	return Character{
		Profile:    Profile{Items: items},
		Parameters: parameters,
		Variables:  map[string]int{},
		Skillset:   skillset,
		Custom:     []Custom{},
	}, nil
}
