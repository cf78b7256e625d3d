package valrank

import (
	"strings"
	"time"
)

// PeakSuffix is appended to a rank label to name the peak-rank role.
const PeakSuffix = " PEAK"

// PlayerID is a Riot ID as typed by the user, e.g. "Name#Tag".
type PlayerID string

// RankTier is a competitive tier label as reported by the ranking service.
type RankTier string

// RankResult is a player's current and peak tier from a single fetch.
type RankResult struct {
	Current RankTier
	Peak    RankTier
}

// CurrentRoleName is the name of the role denoting the current rank.
func (r RankResult) CurrentRoleName() string {
	return string(r.Current)
}

// PeakRoleName is the name of the role denoting the peak rank.
func (r RankResult) PeakRoleName() string {
	return string(r.Peak) + PeakSuffix
}

// Role is a guild role as seen by the bot. Roles are owned by Discord.
type Role struct {
	ID    string
	Name  string
	Color int
}

// Link associates a guild member with the player they registered as.
type Link struct {
	GuildID   string
	UserID    string
	PlayerID  PlayerID
	UpdatedAt time.Time
}

// Tiers lists every tier label the ranking service is known to report.
var Tiers = []RankTier{
	"Unranked",
	"Iron 1", "Iron 2", "Iron 3",
	"Bronze 1", "Bronze 2", "Bronze 3",
	"Silver 1", "Silver 2", "Silver 3",
	"Gold 1", "Gold 2", "Gold 3",
	"Platinum 1", "Platinum 2", "Platinum 3",
	"Diamond 1", "Diamond 2", "Diamond 3",
	"Ascendant 1", "Ascendant 2", "Ascendant 3",
	"Immortal 1", "Immortal 2", "Immortal 3",
	"Radiant",
}

var knownTiers = func() map[RankTier]struct{} {
	m := make(map[RankTier]struct{}, len(Tiers))
	for _, t := range Tiers {
		m[t] = struct{}{}
	}
	return m
}()

// Kind tags a role by what it means to the bot.
type Kind int

const (
	KindOther Kind = iota
	KindCurrentRank
	KindPeakRank
)

func (k Kind) String() string {
	switch k {
	case KindCurrentRank:
		return "current_rank"
	case KindPeakRank:
		return "peak_rank"
	default:
		return "other"
	}
}

// RoleKind is the classification of a single role name. Label is the tier
// the role stands for and is empty for KindOther.
type RoleKind struct {
	Kind  Kind
	Label RankTier
}

// Classify tags a role name. A name is a rank label if it is a known tier
// or one of the extra labels (normally the tiers of the rank being applied,
// so that tiers the table doesn't know yet are still recognized).
func Classify(name string, extra ...RankTier) RoleKind {
	isLabel := func(t RankTier) bool {
		if _, ok := knownTiers[t]; ok {
			return true
		}
		for _, e := range extra {
			if e == t {
				return true
			}
		}
		return false
	}

	if label, ok := strings.CutSuffix(name, PeakSuffix); ok && isLabel(RankTier(label)) {
		return RoleKind{Kind: KindPeakRank, Label: RankTier(label)}
	}
	if isLabel(RankTier(name)) {
		return RoleKind{Kind: KindCurrentRank, Label: RankTier(name)}
	}
	return RoleKind{Kind: KindOther}
}
