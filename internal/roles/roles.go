// Package roles keeps a member's rank roles in sync with their rank.
package roles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/singleflight"

	"github.com/connorkuehl/valrank/internal/metrics"
	"github.com/connorkuehl/valrank/internal/valrank"
)

var log = logrus.StandardLogger().WithFields(logrus.Fields{
	"component": "roles",
})

// ErrDirectory wraps failures reported by the role directory.
var ErrDirectory = errors.New("role directory")

// Directory is a guild's role directory plus member role assignment. Every
// method is a remote call that may fail.
type Directory interface {
	GuildRoles(ctx context.Context, guildID string) ([]valrank.Role, error)
	MemberRoles(ctx context.Context, guildID, userID string) ([]valrank.Role, error)
	CreateRole(ctx context.Context, guildID, name string, color int) (valrank.Role, error)
	AddMemberRoles(ctx context.Context, guildID, userID string, roleIDs []string) error
	RemoveMemberRoles(ctx context.Context, guildID, userID string, roleIDs []string) error
}

// Colors are the colors given to rank roles when they are created.
type Colors struct {
	Current int
	Peak    int
}

// Outcome describes what a reconciliation changed.
type Outcome struct {
	Current valrank.Role
	Peak    valrank.Role
	Created []valrank.Role
	Added   []valrank.Role
	Removed []valrank.Role
}

type Reconciler struct {
	dir     Directory
	colors  Colors
	metrics *metrics.Metrics
	tracer  trace.Tracer

	// creating collapses concurrent find-or-create calls for the same
	// guild and role name into one.
	creating singleflight.Group
}

func NewReconciler(dir Directory, colors Colors, m *metrics.Metrics, tracer trace.Tracer) *Reconciler {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	return &Reconciler{
		dir:     dir,
		colors:  colors,
		metrics: m,
		tracer:  tracer,
	}
}

// Reconcile makes the member hold exactly the current-rank and peak-rank
// roles for rank, creating the roles in the guild if needed.
//
// Nothing is mutated if ctx is already done. Once the membership batches
// start they are not interrupted.
func (r *Reconciler) Reconcile(ctx context.Context, guildID, userID string, rank valrank.RankResult) (Outcome, error) {
	ctx, span := r.tracer.Start(ctx, "roles.Reconcile", trace.WithAttributes(
		attribute.String("guild_id", guildID),
		attribute.String("user_id", userID),
		attribute.String("rank.current", string(rank.Current)),
		attribute.String("rank.peak", string(rank.Peak)),
	))
	defer span.End()

	outcome, err := r.reconcile(ctx, guildID, userID, rank)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reconcile")
	}
	return outcome, err
}

func (r *Reconciler) reconcile(ctx context.Context, guildID, userID string, rank valrank.RankResult) (Outcome, error) {
	var outcome Outcome

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	current, created, err := r.ensureRole(ctx, guildID, rank.CurrentRoleName(), r.colors.Current)
	if err != nil {
		return outcome, err
	}
	outcome.Current = current
	if created {
		outcome.Created = append(outcome.Created, current)
	}

	peak, created, err := r.ensureRole(ctx, guildID, rank.PeakRoleName(), r.colors.Peak)
	if err != nil {
		return outcome, err
	}
	outcome.Peak = peak
	if created {
		outcome.Created = append(outcome.Created, peak)
	}

	held, err := r.dir.MemberRoles(ctx, guildID, userID)
	if err != nil {
		return outcome, fmt.Errorf("%w: member roles: %w", ErrDirectory, err)
	}

	delta := Plan(held, current, peak, rank)

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	if len(delta.Add) > 0 {
		if err := r.dir.AddMemberRoles(ctx, guildID, userID, roleIDs(delta.Add)); err != nil {
			return outcome, fmt.Errorf("%w: add member roles: %w", ErrDirectory, err)
		}
		outcome.Added = delta.Add
		r.metrics.RolesChanged("add", len(delta.Add))
	}

	if len(delta.Remove) > 0 {
		if err := r.dir.RemoveMemberRoles(ctx, guildID, userID, roleIDs(delta.Remove)); err != nil {
			return outcome, fmt.Errorf("%w: remove member roles: %w", ErrDirectory, err)
		}
		outcome.Removed = delta.Remove
		r.metrics.RolesChanged("remove", len(delta.Remove))
	}

	log.WithFields(logrus.Fields{
		"guild_id": guildID,
		"user_id":  userID,
		"added":    roleNames(outcome.Added),
		"removed":  roleNames(outcome.Removed),
	}).Info("updated roles")

	return outcome, nil
}

// flightTimeout bounds a shared find-or-create. The flight outlives the
// caller that started it, so it can't use that caller's deadline.
const flightTimeout = 30 * time.Second

type ensured struct {
	role    valrank.Role
	created bool
}

// ensureRole finds the first role in the guild named name, creating it if
// there is none. Concurrent callers for the same name share one lookup;
// only the caller whose lookup created the role reports created.
func (r *Reconciler) ensureRole(ctx context.Context, guildID, name string, color int) (valrank.Role, bool, error) {
	var led bool
	flight := r.creating.DoChan(guildID+"\x00"+name, func() (any, error) {
		led = true

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flightTimeout)
		defer cancel()

		roles, err := r.dir.GuildRoles(ctx, guildID)
		if err != nil {
			return nil, fmt.Errorf("%w: guild roles: %w", ErrDirectory, err)
		}

		if role, ok := lo.Find(roles, func(role valrank.Role) bool { return role.Name == name }); ok {
			return ensured{role: role}, nil
		}

		role, err := r.dir.CreateRole(ctx, guildID, name, color)
		if err != nil {
			return nil, fmt.Errorf("%w: create role %q: %w", ErrDirectory, name, err)
		}
		r.metrics.RoleCreated()

		log.WithFields(logrus.Fields{
			"guild_id": guildID,
			"role_id":  role.ID,
			"role":     role.Name,
		}).Info("created role")

		return ensured{role: role, created: true}, nil
	})

	select {
	case <-ctx.Done():
		return valrank.Role{}, false, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return valrank.Role{}, false, res.Err
		}

		e := res.Val.(ensured)
		return e.role, e.created && led, nil
	}
}

func roleIDs(roles []valrank.Role) []string {
	return lo.Map(roles, func(r valrank.Role, _ int) string { return r.ID })
}

func roleNames(roles []valrank.Role) []string {
	return lo.Map(roles, func(r valrank.Role, _ int) string { return r.Name })
}
