package roles

import (
	"github.com/samber/lo"

	"github.com/connorkuehl/valrank/internal/valrank"
)

// Delta is the membership change that brings a member in line with a rank.
type Delta struct {
	Add    []valrank.Role
	Remove []valrank.Role
}

// Empty reports whether applying the delta would change nothing.
func (d Delta) Empty() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0
}

// Plan computes the membership delta for a member holding held, given the
// resolved current and peak roles for rank.
//
// Targets the member doesn't hold are added. Every other held role that
// classifies as a current-rank or peak-rank role is removed, including a
// same-named copy of a target that has a different ID. Roles that aren't
// rank roles are never touched.
func Plan(held []valrank.Role, current, peak valrank.Role, rank valrank.RankResult) Delta {
	held = lo.UniqBy(held, func(r valrank.Role) string { return r.ID })
	holds := lo.SliceToMap(held, func(r valrank.Role) (string, struct{}) { return r.ID, struct{}{} })

	var d Delta
	for _, target := range []valrank.Role{current, peak} {
		if _, ok := holds[target.ID]; !ok {
			d.Add = append(d.Add, target)
		}
	}

	d.Remove = lo.Filter(held, func(r valrank.Role, _ int) bool {
		if r.ID == current.ID || r.ID == peak.ID {
			return false
		}
		return valrank.Classify(r.Name, rank.Current, rank.Peak).Kind != valrank.KindOther
	})

	return d
}
