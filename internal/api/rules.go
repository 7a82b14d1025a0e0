package api

import (
	"context"
)

// ParameterView describes a rollable parameter for the presentation layer.
type ParameterView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Dice  []int  `json:"dice"`
}

// DerivedView describes an attribute or property derived from parameters.
type DerivedView struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Deps  []string `json:"deps"`
}

// SkillView describes one skill entry within a category.
type SkillView struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Deps   []string `json:"deps,omitempty"`
	Fixed  bool     `json:"fixed,omitempty"`
	Custom bool     `json:"custom,omitempty"`
}

// CategoryView groups skills in table order.
type CategoryView struct {
	Key    string      `json:"key"`
	Label  string      `json:"label"`
	Skills []SkillView `json:"skills"`
}

// ProfileFieldView describes one free-text profile field.
type ProfileFieldView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// RulesView is the full rule table of one game system, labelled for a
// locale. Order follows the rule tables so the presentation layer can render
// sheets without its own ordering knowledge.
type RulesView struct {
	System        string             `json:"system"`
	Locale        string             `json:"locale"`
	ProfileFields []ProfileFieldView `json:"profileFields"`
	Parameters    []ParameterView    `json:"parameters"`
	Attributes    []DerivedView      `json:"attributes"`
	Properties    []DerivedView      `json:"properties"`
	Categories    []CategoryView     `json:"categories"`
}

// Rules returns the rule tables of a game system with display labels
// resolved for the requested locale.
func (s *Service) Rules(ctx context.Context, system, locale string) (RulesView, error) {
	system, err := s.resolveSystem(system)
	if err != nil {
		return RulesView{}, err
	}
	rs, err := s.registry.Load(system)
	if err != nil {
		return RulesView{}, err
	}

	_, span := s.span(ctx, "Rules", system, "")
	defer span.End()

	label := s.labels[system]
	if label == nil {
		label = func(key, _ string) string { return key }
	}

	view := RulesView{System: system, Locale: locale}
	for _, f := range rs.ProfileFields {
		view.ProfileFields = append(view.ProfileFields, ProfileFieldView{
			Key:   f.Key,
			Label: label(f.Key, locale),
		})
	}
	for _, p := range rs.Parameters {
		view.Parameters = append(view.Parameters, ParameterView{
			Key:   p.Key,
			Label: label(p.Key, locale),
			Dice:  p.Dice,
		})
	}
	for _, a := range rs.Attributes {
		view.Attributes = append(view.Attributes, DerivedView{
			Key:   a.Key,
			Label: label(a.Key, locale),
			Deps:  a.Deps,
		})
	}
	for _, p := range rs.Properties {
		view.Properties = append(view.Properties, DerivedView{
			Key:   p.Key,
			Label: label(p.Key, locale),
			Deps:  p.Deps,
		})
	}
	for _, c := range rs.Categories {
		category := CategoryView{Key: c.Key, Label: label(c.Key, locale)}
		for _, skill := range c.Skills {
			category.Skills = append(category.Skills, SkillView{
				Key:    skill.Key,
				Label:  label(skill.Key, locale),
				Deps:   skill.Deps,
				Fixed:  skill.Fixed,
				Custom: skill.Custom,
			})
		}
		view.Categories = append(view.Categories, category)
	}
	return view, nil
}
