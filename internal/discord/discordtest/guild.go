package discordtest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/connorkuehl/valrank/internal/valrank"
)

var ErrUnknownGuild = errors.New("unknown guild")

// Call is one recorded role directory request.
type Call struct {
	Method  string
	UserID  string
	Name    string
	RoleIDs []string
}

// Guild is an in-memory role directory for a single guild.
type Guild struct {
	ID string

	mu      sync.Mutex
	roles   []valrank.Role
	members map[string][]string
	nextID  int
	calls   []Call
	fail    map[string]error
}

func NewGuild(id string, roles ...valrank.Role) *Guild {
	return &Guild{
		ID:      id,
		roles:   slices.Clone(roles),
		members: make(map[string][]string),
		fail:    make(map[string]error),
	}
}

// SetMember replaces the member's role IDs.
func (g *Guild) SetMember(userID string, roleIDs ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members[userID] = slices.Clone(roleIDs)
}

// FailOn makes every later call to method return err.
func (g *Guild) FailOn(method string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fail[method] = err
}

func (g *Guild) Roles() []valrank.Role {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.roles)
}

// Member returns the member's roles resolved by ID.
func (g *Guild) Member(userID string) []valrank.Role {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resolve(g.members[userID])
}

func (g *Guild) Calls() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.calls)
}

// Mutations returns the recorded calls that change roles or membership.
func (g *Guild) Mutations() []Call {
	var out []Call
	for _, c := range g.Calls() {
		switch c.Method {
		case "CreateRole", "AddMemberRoles", "RemoveMemberRoles":
			out = append(out, c)
		}
	}
	return out
}

func (g *Guild) GuildRoles(ctx context.Context, guildID string) ([]valrank.Role, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.begin(Call{Method: "GuildRoles"}, guildID); err != nil {
		return nil, err
	}
	return slices.Clone(g.roles), nil
}

func (g *Guild) MemberRoles(ctx context.Context, guildID, userID string) ([]valrank.Role, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.begin(Call{Method: "MemberRoles", UserID: userID}, guildID); err != nil {
		return nil, err
	}
	return g.resolve(g.members[userID]), nil
}

func (g *Guild) CreateRole(ctx context.Context, guildID, name string, color int) (valrank.Role, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.begin(Call{Method: "CreateRole", Name: name}, guildID); err != nil {
		return valrank.Role{}, err
	}

	g.nextID++
	role := valrank.Role{ID: fmt.Sprintf("created-%d", g.nextID), Name: name, Color: color}
	g.roles = append(g.roles, role)
	return role, nil
}

func (g *Guild) AddMemberRoles(ctx context.Context, guildID, userID string, roleIDs []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.begin(Call{Method: "AddMemberRoles", UserID: userID, RoleIDs: slices.Clone(roleIDs)}, guildID); err != nil {
		return err
	}

	held := g.members[userID]
	for _, id := range roleIDs {
		if !slices.Contains(held, id) {
			held = append(held, id)
		}
	}
	g.members[userID] = held
	return nil
}

func (g *Guild) RemoveMemberRoles(ctx context.Context, guildID, userID string, roleIDs []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.begin(Call{Method: "RemoveMemberRoles", UserID: userID, RoleIDs: slices.Clone(roleIDs)}, guildID); err != nil {
		return err
	}

	g.members[userID] = slices.DeleteFunc(slices.Clone(g.members[userID]), func(id string) bool {
		return slices.Contains(roleIDs, id)
	})
	return nil
}

// begin records the call and reports any injected or routing failure. The
// caller must hold g.mu.
func (g *Guild) begin(c Call, guildID string) error {
	g.calls = append(g.calls, c)

	if guildID != g.ID {
		return fmt.Errorf("%w: %s", ErrUnknownGuild, guildID)
	}
	return g.fail[c.Method]
}

func (g *Guild) resolve(ids []string) []valrank.Role {
	var out []valrank.Role
	for _, id := range ids {
		idx := slices.IndexFunc(g.roles, func(r valrank.Role) bool { return r.ID == id })
		if idx < 0 {
			out = append(out, valrank.Role{ID: id})
			continue
		}
		out = append(out, g.roles[idx])
	}
	return out
}
