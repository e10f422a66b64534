package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-custody/models"
)

func (a *app) seedAdmin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("seed-admin", flag.ContinueOnError)
	username := fs.String("username", "admin", "username of the seeded account")
	password := fs.String("password", "", "password (omit to generate a random one)")
	force := fs.Bool("force", false, "seed even when accounts already exist")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.services.CredentialStore.SeedAdminIfEmpty(ctx, *username, *password, models.RoleAdmin, *force)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, result.Message)
	if result.Password != "" {
		// This is the only time the generated password exists outside
		// process memory. It is not persisted and not logged.
		fmt.Fprintf(a.out, "Generated password: %s\n", result.Password)
		fmt.Fprintln(a.out, "Store it now; it cannot be recovered later.")
	}
	return nil
}

func (a *app) userCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: custodyctl user <add|list|lock|unlock|protect|unprotect|must-change|set-password|delete>")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "add":
		return a.userAdd(ctx, rest)
	case "list":
		return a.userList(ctx)
	case "lock":
		return a.userLock(ctx, rest)
	case "unlock":
		return a.userUnlock(ctx, rest)
	case "protect":
		return a.userProtect(ctx, rest, true)
	case "unprotect":
		return a.userProtect(ctx, rest, false)
	case "must-change":
		return a.userMustChange(ctx, rest)
	case "set-password":
		return a.userSetPassword(ctx, rest)
	case "delete":
		return a.userDelete(ctx, rest)
	default:
		return fmt.Errorf("unknown user subcommand %q", sub)
	}
}

func (a *app) userAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user add", flag.ContinueOnError)
	username := fs.String("username", "", "username of the new account")
	role := fs.String("role", "user", "role: user or admin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("-username is required")
	}

	parsedRole, err := models.ParseRole(*role)
	if err != nil {
		return err
	}

	password, err := a.readNewPassword()
	if err != nil {
		return err
	}

	user, err := a.services.CredentialStore.CreateUser(ctx, *username, password, parsedRole)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "account %q created with id %d\n", user.Username, user.ID)
	return nil
}

func (a *app) userList(ctx context.Context) error {
	users, err := a.services.CredentialStore.ListUsers(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%-5s %-20s %-6s %-8s %-10s %-10s %s\n",
		"ID", "USERNAME", "ROLE", "FAILED", "LOCKED", "PROTECTED", "MUST-CHANGE")
	now := time.Now()
	for _, u := range users {
		locked := "-"
		if u.Locked(now) {
			locked = u.LockedUntil.Format("15:04:05")
		}
		fmt.Fprintf(a.out, "%-5d %-20s %-6s %-8d %-10s %-10v %v\n",
			u.ID, u.Username, u.Role, u.FailedAttempts, locked, u.AdminProtected, u.MustChangePassword)
	}
	return nil
}

func (a *app) userLock(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user lock", flag.ContinueOnError)
	username := fs.String("username", "", "account to lock")
	duration := fs.Duration("for", a.cfg.App.LockDuration, "how long to lock the account")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("-username is required")
	}

	// A manual lock leaves the same trace as a lockout earned through failed
	// logins: the counter sits at the configured ceiling.
	until := time.Now().Add(*duration)
	if err := a.services.CredentialStore.SetUserLockState(ctx, *username, until, a.cfg.App.MaxFailedLogins); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "account %q locked until %s\n", *username, until.Format(time.RFC3339))
	return nil
}

func (a *app) userUnlock(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user unlock", flag.ContinueOnError)
	username := fs.String("username", "", "account to unlock")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("-username is required")
	}

	if err := a.services.CredentialStore.SetUserLockState(ctx, *username, time.Time{}, 0); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "account %q unlocked\n", *username)
	return nil
}

func (a *app) userProtect(ctx context.Context, args []string, on bool) error {
	name := "user protect"
	if !on {
		name = "user unprotect"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	username := fs.String("username", "", "account to update")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("-username is required")
	}

	if err := a.services.CredentialStore.SetAdminProtection(ctx, *username, on); err != nil {
		return err
	}

	state := "enabled"
	if !on {
		state = "disabled"
	}
	fmt.Fprintf(a.out, "admin protection %s for %q\n", state, *username)
	return nil
}

func (a *app) userMustChange(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user must-change", flag.ContinueOnError)
	username := fs.String("username", "", "account to update")
	off := fs.Bool("off", false, "clear the flag instead of setting it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("-username is required")
	}

	if err := a.services.CredentialStore.SetMustChangePassword(ctx, *username, !*off); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "must-change-password = %v for %q\n", !*off, *username)
	return nil
}

func (a *app) userSetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user set-password", flag.ContinueOnError)
	username := fs.String("username", "", "account to update")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("-username is required")
	}

	password, err := a.readNewPassword()
	if err != nil {
		return err
	}

	if err := a.services.CredentialStore.SetPassword(ctx, *username, password); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "password updated for %q (lockout state reset)\n", *username)
	return nil
}

func (a *app) userDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user delete", flag.ContinueOnError)
	username := fs.String("username", "", "account to delete")
	force := fs.Bool("force", false, "delete even when the account is admin-protected")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("-username is required")
	}

	if err := a.services.CredentialStore.DeleteUser(ctx, *username, *force); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "account %q deleted\n", *username)
	return nil
}
