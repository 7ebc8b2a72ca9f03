// Package provisioner bootstraps the single privileged gatepass account.
//
// EnsureAdmin runs a linear check-then-create sequence:
//
//	CheckUsername -> CheckPrivilegedRole -> Create
//
// An existing account with the requested username, or any account holding
// the privileged role, stops the sequence without touching the store. The
// race between the checks and the create is closed by the store's unique
// constraints, not here; a lost race surfaces as a Failed outcome.
package provisioner

import (
	"context"

	"github.com/dmitrijs2005/gatepass/internal/logging"
	"github.com/dmitrijs2005/gatepass/internal/models"
	"github.com/dmitrijs2005/gatepass/internal/userstore"
)

// UserStore is the account store the provisioner works against.
type UserStore interface {
	ExistsByUsername(ctx context.Context, userName string) (bool, error)
	ExistsByRole(ctx context.Context, role models.Role) (bool, error)
	CreateUser(ctx context.Context, na userstore.NewAccount) (*models.Account, error)
}

// Printer receives the human-readable status line for each outcome.
type Printer interface {
	Successf(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Request carries the desired credentials. NoInput only suppresses the
// post-creation reminder.
type Request struct {
	UserName string
	Email    string
	Password string
	NoInput  bool
}

type Provisioner struct {
	store   UserStore
	printer Printer
	logger  logging.Logger
}

func New(store UserStore, printer Printer, logger logging.Logger) *Provisioner {
	return &Provisioner{store: store, printer: printer, logger: logger.With("component", "provisioner")}
}

// EnsureAdmin makes sure a privileged account exists, creating one from req
// when neither the username nor the privileged role is already taken. It
// performs at most one store mutation and reports the outcome via the
// printer. Errors never escape; they become a Failed outcome.
func (p *Provisioner) EnsureAdmin(ctx context.Context, req Request) Outcome {
	out := p.ensure(ctx, req)
	p.report(out, req)
	return out
}

func (p *Provisioner) ensure(ctx context.Context, req Request) Outcome {
	log := p.logger.With("username", req.UserName)

	exists, err := p.store.ExistsByUsername(ctx, req.UserName)
	if err != nil {
		log.Error(ctx, "username lookup failed", "error", err)
		return Failed(err.Error())
	}
	if exists {
		log.Info(ctx, "account already exists, skipping")
		return Skipped(ReasonExistsByUsername, req.UserName)
	}

	exists, err = p.store.ExistsByRole(ctx, models.RoleSuperAdmin)
	if err != nil {
		log.Error(ctx, "role lookup failed", "error", err)
		return Failed(err.Error())
	}
	if exists {
		log.Info(ctx, "privileged account already exists, skipping", "role", models.RoleSuperAdmin)
		return Skipped(ReasonPrivilegedRoleExists, req.UserName)
	}

	a, err := p.store.CreateUser(ctx, userstore.NewAccount{
		UserName:    req.UserName,
		Email:       req.Email,
		Password:    req.Password,
		Role:        models.RoleSuperAdmin,
		IsStaff:     true,
		IsSuperuser: true,
		IsApproved:  true,
	})
	if err != nil {
		log.Error(ctx, "create failed", "error", err)
		return Failed(err.Error())
	}

	log.Info(ctx, "superuser created", "id", a.ID, "email", a.Email)
	return Created(a.UserName, a.Email)
}

func (p *Provisioner) report(out Outcome, req Request) {
	switch out.Kind {
	case KindCreated:
		p.printer.Successf("Successfully created superuser %q with email %q", out.UserName, out.Email)
		if !req.NoInput {
			p.printer.Warningf("Please change the default password after first login!")
		}
	case KindSkipped:
		if out.Reason == ReasonExistsByUsername {
			p.printer.Warningf("Superuser %q already exists. Skipping creation.", out.UserName)
		} else {
			p.printer.Warningf("A superuser already exists. Skipping creation.")
		}
	case KindFailed:
		p.printer.Errorf("Error creating superuser: %s", out.Message)
	}
}
