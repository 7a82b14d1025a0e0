package coc6

import "fmt"

// damageBand maps a half-open range of STR+SIZ totals to a damage bonus.
// Bands are ordered; a total matches the first band whose upper bound
// (exclusive) is greater than it.
type damageBand struct {
	upper int
	bonus string
}

var damageBands = []damageBand{
	{upper: 13, bonus: "-1d6"},
	{upper: 17, bonus: "-1d4"},
	{upper: 25, bonus: "±0"},
	{upper: 33, bonus: "+1d4"},
	{upper: 41, bonus: "+1d6"},
}

// damageStep is the number of points past the table that adds another d6.
const damageStep = 16

// DamageBonus resolves the damage bonus for the summed dependency values
// (STR+SIZ). Totals beyond the last band gain one d6 per started step of
// sixteen points.
func DamageBonus(values []int) string {
	total := 0
	for _, v := range values {
		total += v
	}

	for _, band := range damageBands {
		if total < band.upper {
			return band.bonus
		}
	}

	excess := total - (damageBands[len(damageBands)-1].upper - 1)
	n := 1 + (excess-1)/damageStep
	return fmt.Sprintf("+%dd6", n)
}
