package coc6

import (
	"testing"

	"github.com/arkhamworks/investigator/internal/rules/formula"
)

func TestNewRuleSetValidates(t *testing.T) {
	rs, err := NewRuleSet()
	if err != nil {
		t.Fatalf("build rule set: %v", err)
	}
	if rs.System != System {
		t.Fatalf("expected system %q, got %q", System, rs.System)
	}
	if len(rs.Parameters) != 9 {
		t.Fatalf("expected 9 parameters, got %d", len(rs.Parameters))
	}
	if len(rs.Attributes) != 8 {
		t.Fatalf("expected 8 attributes, got %d", len(rs.Attributes))
	}
	if len(rs.Categories) != 5 {
		t.Fatalf("expected 5 skill categories, got %d", len(rs.Categories))
	}

	skills := 0
	for _, c := range rs.Categories {
		skills += len(c.Skills)
	}
	if skills != 60 {
		t.Fatalf("expected 60 skills, got %d", skills)
	}
}

func TestParameterFormulas(t *testing.T) {
	rs, err := NewRuleSet()
	if err != nil {
		t.Fatalf("build rule set: %v", err)
	}

	cases := []struct {
		key   string
		faces []int
		want  int
	}{
		{"str", []int{3, 4, 5}, 12},
		{"siz", []int{2, 5}, 13},
		{"int", []int{6, 6}, 18},
		{"edu", []int{3, 4, 5}, 15},
		{"wlt", []int{1, 1, 1}, 3},
	}
	for _, tc := range cases {
		got, err := rs.EvalParameter(tc.key, tc.faces)
		if err != nil {
			t.Fatalf("%s: %v", tc.key, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.key, tc.want, got)
		}
	}
}

func TestDerivedAttributes(t *testing.T) {
	rs, err := NewRuleSet()
	if err != nil {
		t.Fatalf("build rule set: %v", err)
	}
	totals := map[string]int{"str": 12, "con": 11, "pow": 13, "dex": 10, "app": 9, "siz": 14, "int": 15, "edu": 16}

	want := map[string]int{
		"san":    65,
		"luk":    65,
		"ida":    75,
		"knw":    80,
		"hp":     12, // floor((11+14)/2)
		"mp":     13,
		"jobpts": 320,
		"hbypts": 150,
	}
	for _, attr := range rs.Attributes {
		if got := rs.EvalAttribute(attr, totals); got != want[attr.Key] {
			t.Fatalf("%s: expected %d, got %d", attr.Key, want[attr.Key], got)
		}
	}
}

func TestSkillEquations(t *testing.T) {
	rs, err := NewRuleSet()
	if err != nil {
		t.Fatalf("build rule set: %v", err)
	}
	totals := map[string]int{"dex": 10, "edu": 16}

	for _, c := range rs.Categories {
		for _, s := range c.Skills {
			base := rs.SkillBase(s, totals)
			switch s.Key {
			case "dodge":
				if base != 20 {
					t.Fatalf("dodge: expected 20, got %d", base)
				}
			case "nativelang":
				if base != 80 {
					t.Fatalf("nativelang: expected 80, got %d", base)
				}
			case "cthulhu":
				if base != 0 {
					t.Fatalf("cthulhu: expected 0, got %d", base)
				}
			}
		}
	}
}

func TestAgeProfileField(t *testing.T) {
	rs, err := NewRuleSet()
	if err != nil {
		t.Fatalf("build rule set: %v", err)
	}

	for _, field := range rs.ProfileFields {
		value := rs.ProfileValue(field, map[string]int{"edu": 16})
		if field.Key == "age" {
			if value != "22" {
				t.Fatalf("age: expected 22, got %q", value)
			}
		} else if value != "" {
			t.Fatalf("%s: expected empty initial value, got %q", field.Key, value)
		}
	}
}

func TestParameterEquationUsesPlaceholders(t *testing.T) {
	rs, err := NewRuleSet()
	if err != nil {
		t.Fatalf("build rule set: %v", err)
	}

	eq, err := rs.ParameterEquation("siz", nil)
	if err != nil {
		t.Fatalf("equation: %v", err)
	}
	want := "(?+?)" + formula.PartitionMark + "+6"
	if eq != want {
		t.Fatalf("expected %q, got %q", want, eq)
	}
}

func TestDamageBonusBands(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{2, "-1d6"},
		{12, "-1d6"},
		{13, "-1d4"},
		{16, "-1d4"},
		{17, "±0"},
		{24, "±0"},
		{25, "+1d4"},
		{32, "+1d4"},
		{33, "+1d6"},
		{40, "+1d6"},
		{41, "+1d6"},
		{56, "+1d6"},
		{57, "+2d6"},
		{72, "+2d6"},
		{73, "+3d6"},
	}
	for _, tc := range cases {
		if got := DamageBonus([]int{tc.total}); got != tc.want {
			t.Fatalf("total %d: expected %s, got %s", tc.total, tc.want, got)
		}
	}
}

func TestLabelFor(t *testing.T) {
	if got := LabelFor("dodge", "en-US"); got != "Dodge" {
		t.Fatalf("expected Dodge, got %q", got)
	}
	if got := LabelFor("dodge", "ja-JP"); got != "回避" {
		t.Fatalf("expected 回避, got %q", got)
	}
	// Parameters only carry universal abbreviations.
	if got := LabelFor("str", "ja"); got != "STR" {
		t.Fatalf("expected STR, got %q", got)
	}
	if got := LabelFor("no-such-key", "en"); got != "no-such-key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}
