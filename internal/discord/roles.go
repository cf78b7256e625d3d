package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/connorkuehl/valrank/internal/valrank"
)

const auditReason = "Valorant rank role sync"

func (s *Session) GuildRoles(ctx context.Context, guildID string) ([]valrank.Role, error) {
	roles, err := s.s.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return lo.Map(roles, func(r *discordgo.Role, _ int) valrank.Role { return toRole(r) }), nil
}

// MemberRoles resolves the member's role IDs against the guild's roles.
// Roles the guild no longer lists come back with an empty name.
func (s *Session) MemberRoles(ctx context.Context, guildID, userID string) ([]valrank.Role, error) {
	member, err := s.s.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	roles, err := s.GuildRoles(ctx, guildID)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(roles, func(r valrank.Role) string { return r.ID })

	return lo.Map(member.Roles, func(id string, _ int) valrank.Role {
		if r, ok := byID[id]; ok {
			return r
		}
		return valrank.Role{ID: id}
	}), nil
}

func (s *Session) CreateRole(ctx context.Context, guildID, name string, color int) (valrank.Role, error) {
	role, err := s.s.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:  name,
		Color: &color,
	}, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(auditReason))
	if err != nil {
		return valrank.Role{}, err
	}

	return toRole(role), nil
}

// AddMemberRoles grants all of roleIDs in a single member edit.
func (s *Session) AddMemberRoles(ctx context.Context, guildID, userID string, roleIDs []string) error {
	return s.editMemberRoles(ctx, guildID, userID, func(held []string) []string {
		return withRoles(held, roleIDs)
	})
}

// RemoveMemberRoles revokes all of roleIDs in a single member edit.
func (s *Session) RemoveMemberRoles(ctx context.Context, guildID, userID string, roleIDs []string) error {
	return s.editMemberRoles(ctx, guildID, userID, func(held []string) []string {
		return withoutRoles(held, roleIDs)
	})
}

func (s *Session) editMemberRoles(ctx context.Context, guildID, userID string, edit func(held []string) []string) error {
	member, err := s.s.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return err
	}

	roles := edit(member.Roles)
	_, err = s.s.GuildMemberEdit(guildID, userID, &discordgo.GuildMemberParams{
		Roles: &roles,
	}, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(auditReason))
	return err
}

// withRoles is held plus every role in add, each ID listed once.
func withRoles(held, add []string) []string {
	return lo.Union(held, add)
}

// withoutRoles is held minus every role in remove.
func withoutRoles(held, remove []string) []string {
	return lo.Without(held, remove...)
}

func toRole(r *discordgo.Role) valrank.Role {
	return valrank.Role{ID: r.ID, Name: r.Name, Color: r.Color}
}
