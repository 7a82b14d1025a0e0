// Package creation implements the dice-rolling session behind character
// creation.
//
// A session keeps a history of roll snapshots ("pages"). Rerolling pushes a
// new page and marks the targeted dice as animating via a flip count; each
// Tick spins every animating die on every page in lockstep until all flip
// counts reach zero. Navigating between pages never disturbs the animation
// state. The session is driven by a single UI event loop, so methods are
// not safe for concurrent use.
package creation

import (
	"fmt"

	"github.com/arkhamworks/investigator/internal/character"
	"github.com/arkhamworks/investigator/internal/dice"
	apperrors "github.com/arkhamworks/investigator/internal/errors"
	"github.com/arkhamworks/investigator/internal/rules"
)

// Default flip-count range for a reroll, in ticks.
const (
	DefaultFlipMin = 5
	DefaultFlipMax = 15
)

// Die is the animation state of a single die.
type Die struct {
	Face  int // settled or mid-spin face; 0 before the first roll
	Flip  int // remaining animation ticks
	Sides int
}

// Page is one snapshot of every parameter's dice.
type Page map[string][]Die

func (p Page) clone() Page {
	next := make(Page, len(p))
	for key, dies := range p {
		copied := make([]Die, len(dies))
		copy(copied, dies)
		next[key] = copied
	}
	return next
}

// Session is a character-creation dice session.
type Session struct {
	ruleset *rules.RuleSet
	roller  *dice.Roller

	pages []Page // pages[0] is the newest snapshot
	index int    // currently displayed page

	flipMin int
	flipMax int
}

// NewSession starts a session with one page of unrolled dice.
func NewSession(rs *rules.RuleSet, roller *dice.Roller) *Session {
	initial := make(Page, len(rs.Parameters))
	for _, p := range rs.Parameters {
		dies := make([]Die, len(p.Dice))
		for i, sides := range p.Dice {
			dies[i] = Die{Sides: sides}
		}
		initial[p.Key] = dies
	}
	return &Session{
		ruleset: rs,
		roller:  roller,
		pages:   []Page{initial},
		flipMin: DefaultFlipMin,
		flipMax: DefaultFlipMax,
	}
}

// Reroll pushes a new snapshot with the targeted parameter's dice animating.
// An empty key targets every parameter. The flip count of each targeted die
// is drawn uniformly from [flipMin, flipMax].
func (s *Session) Reroll(key string) error {
	if key != "" {
		if _, ok := s.ruleset.Parameter(key); !ok {
			return apperrors.WithMetadata(apperrors.CodeRulesUnknownParameter,
				fmt.Sprintf("unknown parameter %q", key),
				map[string]string{"Key": key})
		}
	}

	next := s.pages[s.index].clone()
	for param, dies := range next {
		if key != "" && param != key {
			continue
		}
		for i := range dies {
			flip, err := s.roller.Face(s.flipMax - s.flipMin + 1)
			if err != nil {
				return err
			}
			dies[i].Flip = s.flipMin + flip - 1
		}
	}

	s.pages = append([]Page{next}, s.pages...)
	s.index = 0
	return nil
}

// Tick advances the animation one step: every die with a nonzero flip count,
// on every page, takes a new face different from its current one and its
// flip count drops by one. Settled dice are untouched.
func (s *Session) Tick() error {
	for _, page := range s.pages {
		for _, dies := range page {
			for i := range dies {
				if dies[i].Flip == 0 {
					continue
				}
				face, err := s.roller.Reroll(dies[i].Sides, dies[i].Face)
				if err != nil {
					return err
				}
				dies[i].Face = face
				dies[i].Flip--
			}
		}
	}
	return nil
}

// Animating reports whether any die on any page still has flips remaining.
// The idle state is this predicate being false; there is no explicit state
// object.
func (s *Session) Animating() bool {
	for _, page := range s.pages {
		for _, dies := range page {
			for _, d := range dies {
				if d.Flip > 0 {
					return true
				}
			}
		}
	}
	return false
}

// Older moves the view one snapshot back in history, saturating at the
// oldest page.
func (s *Session) Older() {
	if s.index < len(s.pages)-1 {
		s.index++
	}
}

// Newer moves the view one snapshot forward, saturating at the newest page.
func (s *Session) Newer() {
	if s.index > 0 {
		s.index--
	}
}

// Pages returns the number of snapshots in history.
func (s *Session) Pages() int {
	return len(s.pages)
}

// Current returns a copy of the displayed snapshot.
func (s *Session) Current() Page {
	return s.pages[s.index].clone()
}

// Character builds the character document from the displayed snapshot. It
// fails while any die is still animating; callers should disable creation
// until the session settles.
func (s *Session) Character() (character.Character, error) {
	if s.Animating() {
		return character.Character{}, apperrors.New(apperrors.CodeDiceNotSettled,
			"cannot create a character while dice are rolling")
	}

	faces := make(map[string][]int, len(s.pages[s.index]))
	for key, dies := range s.pages[s.index] {
		values := make([]int, len(dies))
		for i, d := range dies {
			values[i] = d.Face
		}
		faces[key] = values
	}
	return character.New(s.ruleset, faces)
}
