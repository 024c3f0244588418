// Package seed provisions the fixed user directory and credential
// table the service starts from. Seeding is idempotent: restarting the
// process never duplicates users or rotates passwords mid-session.
package seed

import (
	"context"
	"fmt"

	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/repository"
)

// Account pairs a directory user with its login password.
type Account struct {
	User     domain.User
	Password string
}

// DefaultAccounts is the demo directory: one manager and their reports.
func DefaultAccounts() []Account {
	managerID := "m1"
	return []Account{
		{
			User: domain.User{
				ID:     managerID,
				Name:   "Sarah Johnson",
				Email:  "sarah.johnson@company.com",
				Role:   domain.RoleManager,
				Avatar: "SJ",
			},
			Password: "manager123",
		},
		{
			User: domain.User{
				ID:        "e1",
				Name:      "Mike Chen",
				Email:     "mike.chen@company.com",
				Role:      domain.RoleEmployee,
				ManagerID: &managerID,
				Avatar:    "MC",
			},
			Password: "employee123",
		},
		{
			User: domain.User{
				ID:        "e2",
				Name:      "Emily Rodriguez",
				Email:     "emily.rodriguez@company.com",
				Role:      domain.RoleEmployee,
				ManagerID: &managerID,
				Avatar:    "ER",
			},
			Password: "employee123",
		},
		{
			User: domain.User{
				ID:        "e3",
				Name:      "David Kim",
				Email:     "david.kim@company.com",
				Role:      domain.RoleEmployee,
				ManagerID: &managerID,
				Avatar:    "DK",
			},
			Password: "employee123",
		},
	}
}

// Apply loads the given accounts into the repositories. Users already
// present keep their record; credentials are only written the first
// time so existing password hashes are not churned on every boot.
func Apply(ctx context.Context, accounts []Account, users repository.UserRepository, creds repository.CredentialRepository, bcryptCost int) error {
	for _, account := range accounts {
		if err := users.Create(ctx, &account.User); err != nil {
			return fmt.Errorf("seed user %s: %w", account.User.ID, err)
		}

		if _, err := creds.GetByEmail(ctx, account.User.Email); err == nil {
			continue
		} else if err != repository.ErrNotFound {
			return fmt.Errorf("seed credential lookup %s: %w", account.User.Email, err)
		}

		hash, err := auth.HashPassword(account.Password, bcryptCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", account.User.Email, err)
		}
		cred := &domain.Credential{
			Email:        account.User.Email,
			PasswordHash: hash,
			UserID:       account.User.ID,
		}
		if err := creds.Upsert(ctx, cred); err != nil {
			return fmt.Errorf("seed credential %s: %w", account.User.Email, err)
		}
	}
	return nil
}
