// Package coc6 defines the rule tables for sixth-edition Call of Cthulhu
// character sheets: rollable parameters, derived attributes, the damage
// bonus property and the skill catalog.
package coc6

import (
	"strconv"

	"github.com/arkhamworks/investigator/internal/rules"
	"github.com/arkhamworks/investigator/internal/rules/formula"
)

// System is the identifier of this ruleset.
const System = "coc6"

// summed die faces with a wrap point, the base of every rolled formula
var diceSum = formula.Sum.Then(formula.Partition, true)

// NewRuleSet builds the CoC6 rule tables. The tables are static; callers
// should build them once at startup and treat the result as immutable.
func NewRuleSet() (*rules.RuleSet, error) {
	profile := []rules.ProfileFieldDef{
		{Key: "occupation"},
		{Key: "age", Deps: []string{"edu"}, Convert: func(values []int) string {
			return strconv.Itoa(formula.Sum.Then(formula.Add(6), false).Eval(values))
		}},
		{Key: "sex"},
		{Key: "height"},
		{Key: "weight"},
		{Key: "hometown"},
		{Key: "hair"},
		{Key: "eye"},
		{Key: "skin"},
	}

	parameters := []rules.ParameterDef{
		{Key: "str", Dice: []int{6, 6, 6}, Apply: diceSum},
		{Key: "con", Dice: []int{6, 6, 6}, Apply: diceSum},
		{Key: "pow", Dice: []int{6, 6, 6}, Apply: diceSum},
		{Key: "dex", Dice: []int{6, 6, 6}, Apply: diceSum},
		{Key: "app", Dice: []int{6, 6, 6}, Apply: diceSum},
		{Key: "siz", Dice: []int{6, 6}, Apply: diceSum.Then(formula.Add(6), false)},
		{Key: "int", Dice: []int{6, 6}, Apply: diceSum.Then(formula.Add(6), false)},
		{Key: "edu", Dice: []int{6, 6, 6}, Apply: diceSum.Then(formula.Add(3), false)},
		{Key: "wlt", Dice: []int{6, 6, 6}, Apply: diceSum},
	}

	attributes := []rules.AttributeDef{
		{Key: "san", Deps: []string{"pow"}, Apply: diceSum.Then(formula.Mul(5), false)},
		{Key: "luk", Deps: []string{"pow"}, Apply: diceSum.Then(formula.Mul(5), false)},
		{Key: "ida", Deps: []string{"int"}, Apply: diceSum.Then(formula.Mul(5), false)},
		{Key: "knw", Deps: []string{"edu"}, Apply: diceSum.Then(formula.Mul(5), false)},
		{Key: "hp", Deps: []string{"con", "siz"}, Apply: diceSum.Then(formula.Div(2), false).Then(formula.Floor, false)},
		{Key: "mp", Deps: []string{"pow"}, Apply: diceSum.Then(formula.Mul(1), false)},
		{Key: "jobpts", Deps: []string{"edu"}, Apply: diceSum.Then(formula.Mul(20), false)},
		{Key: "hbypts", Deps: []string{"int"}, Apply: diceSum.Then(formula.Mul(10), false)},
	}

	properties := []rules.PropertyDef{
		{Key: "db", Deps: []string{"str", "siz"}, Convert: DamageBonus},
	}

	categories := []rules.CategoryDef{
		{Key: "combat", Skills: []rules.SkillDef{
			{Key: "dodge", Deps: []string{"dex"}, Apply: formula.Sum.Then(formula.Mul(2), false), Fixed: true},
			{Key: "fist", Apply: formula.Constant(50)},
			{Key: "grapple", Apply: formula.Constant(25)},
			{Key: "head", Apply: formula.Constant(10)},
			{Key: "kick", Apply: formula.Constant(25)},
			{Key: "martial", Apply: formula.Constant(1)},
			{Key: "throw", Apply: formula.Constant(25)},
			{Key: "handgun", Apply: formula.Constant(20)},
			{Key: "machinegun", Apply: formula.Constant(15)},
			{Key: "rifle", Apply: formula.Constant(25)},
			{Key: "shotgun", Apply: formula.Constant(30)},
			{Key: "smg", Apply: formula.Constant(15)},
		}},
		{Key: "search", Skills: []rules.SkillDef{
			{Key: "spot", Apply: formula.Constant(25), Fixed: true},
			{Key: "listen", Apply: formula.Constant(25), Fixed: true},
			{Key: "library", Apply: formula.Constant(25), Fixed: true},
			{Key: "firstaid", Apply: formula.Constant(30), Fixed: true},
			{Key: "hide", Apply: formula.Constant(15)},
			{Key: "conceal", Apply: formula.Constant(10)},
			{Key: "disguise", Apply: formula.Constant(1)},
			{Key: "sneak", Apply: formula.Constant(10)},
			{Key: "track", Apply: formula.Constant(10)},
			{Key: "navigate", Apply: formula.Constant(10)},
			{Key: "photography", Apply: formula.Constant(10)},
			{Key: "lockpick", Apply: formula.Constant(1)},
			{Key: "psychoanalysis", Apply: formula.Constant(1)},
		}},
		{Key: "action", Skills: []rules.SkillDef{
			{Key: "climb", Apply: formula.Constant(40)},
			{Key: "jump", Apply: formula.Constant(25)},
			{Key: "drive", Apply: formula.Constant(20), Custom: true},
			{Key: "pilot", Apply: formula.Constant(1), Custom: true},
			{Key: "oprhvymch", Apply: formula.Constant(1)},
			{Key: "repairmch", Apply: formula.Constant(20)},
			{Key: "repairelectr", Apply: formula.Constant(10)},
			{Key: "craft", Apply: formula.Constant(5), Custom: true},
			{Key: "art", Apply: formula.Constant(5), Custom: true},
			{Key: "ride", Apply: formula.Constant(5)},
			{Key: "swim", Apply: formula.Constant(25)},
		}},
		{Key: "negotiation", Skills: []rules.SkillDef{
			{Key: "fasttalk", Apply: formula.Constant(5)},
			{Key: "trust", Apply: formula.Constant(15)},
			{Key: "persuade", Apply: formula.Constant(15)},
			{Key: "bargain", Apply: formula.Constant(5)},
			{Key: "nativelang", Deps: []string{"edu"}, Apply: formula.Sum.Then(formula.Mul(5), false), Fixed: true},
			{Key: "foreignlang", Apply: formula.Constant(1), Custom: true},
		}},
		{Key: "knowledge", Skills: []rules.SkillDef{
			{Key: "cthulhu", Apply: formula.Constant(0)},
			{Key: "psychology", Apply: formula.Constant(5)},
			{Key: "occult", Apply: formula.Constant(5)},
			{Key: "history", Apply: formula.Constant(20)},
			{Key: "law", Apply: formula.Constant(5)},
			{Key: "accouting", Apply: formula.Constant(10)},
			{Key: "anthropology", Apply: formula.Constant(1)},
			{Key: "archaeology", Apply: formula.Constant(1)},
			{Key: "natural", Apply: formula.Constant(10)},
			{Key: "medicine", Apply: formula.Constant(5)},
			{Key: "pharmacy", Apply: formula.Constant(1)},
			{Key: "chemistry", Apply: formula.Constant(1)},
			{Key: "biology", Apply: formula.Constant(1)},
			{Key: "computer", Apply: formula.Constant(1)},
			{Key: "electronics", Apply: formula.Constant(1)},
			{Key: "physics", Apply: formula.Constant(1)},
			{Key: "astronomy", Apply: formula.Constant(1)},
			{Key: "geology", Apply: formula.Constant(1)},
		}},
	}

	return rules.New(System, profile, parameters, attributes, properties, categories)
}
