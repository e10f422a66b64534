package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-custody/internal/utils"
	"github.com/MKhiriev/go-secret-custody/models"
)

func (a *app) projectCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: custodyctl project <create|list|show|set-secret|delete>")
	}

	// Every project operation runs on behalf of an authenticated
	// principal; the login consumes an attempt and is audited like any
	// other.
	principal, err := a.login(ctx)
	if err != nil {
		return err
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "create":
		return a.projectCreate(ctx, principal, rest)
	case "list":
		return a.projectList(ctx, principal, rest)
	case "show":
		return a.projectShow(ctx, principal, rest)
	case "set-secret":
		return a.projectSetSecret(ctx, principal, rest)
	case "delete":
		return a.projectDelete(ctx, principal, rest)
	default:
		return fmt.Errorf("unknown project subcommand %q", sub)
	}
}

// login authenticates interactively and returns the resulting principal.
func (a *app) login(ctx context.Context) (models.Principal, error) {
	username, err := a.readLine("Username: ")
	if err != nil {
		return models.Principal{}, err
	}
	password, err := a.readPassword("Password: ")
	if err != nil {
		return models.Principal{}, err
	}

	result, err := a.services.CredentialStore.AttemptLogin(ctx, username, password, utils.LocalRequestMeta())
	if err != nil {
		return models.Principal{}, err
	}
	if !result.Success {
		return models.Principal{}, fmt.Errorf("%s", result.Message)
	}

	user, err := a.services.CredentialStore.CurrentUser(ctx)
	if err != nil {
		return models.Principal{}, err
	}
	if user.MustChangePassword {
		fmt.Fprintln(a.out, "Note: this account is flagged for a password change.")
	}

	return user.Principal(), nil
}

func (a *app) projectCreate(ctx context.Context, principal models.Principal, args []string) error {
	fs := flag.NewFlagSet("project create", flag.ContinueOnError)
	name := fs.String("name", "", "human-readable project name")
	slug := fs.String("slug", "", "unique project slug ([a-z0-9-_]{3,64})")
	metaJSON := fs.String("metadata", "", "project metadata as a JSON object")
	withSecret := fs.Bool("with-secret", false, "prompt for an initial secret")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *slug == "" {
		return fmt.Errorf("-name and -slug are required")
	}

	var metadata map[string]any
	if *metaJSON != "" {
		if err := json.Unmarshal([]byte(*metaJSON), &metadata); err != nil {
			return fmt.Errorf("parsing -metadata: %w", err)
		}
	}

	secret := ""
	if *withSecret {
		var err error
		secret, err = a.readPassword("Project secret: ")
		if err != nil {
			return err
		}
	}

	project, err := a.services.SecretVault.CreateProject(ctx, principal, *name, *slug, metadata, secret, utils.LocalRequestMeta())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "project %q created with id %d\n", project.Slug, project.ID)
	return nil
}

func (a *app) projectList(ctx context.Context, principal models.Principal, args []string) error {
	fs := flag.NewFlagSet("project list", flag.ContinueOnError)
	all := fs.Bool("all", false, "list every project (admin only)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	projects, err := a.services.SecretVault.ListProjects(ctx, principal, *all)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%-5s %-24s %-24s %-16s %s\n", "ID", "SLUG", "NAME", "OWNER", "UPDATED")
	for _, p := range projects {
		updated := "-"
		if !p.UpdatedAt.IsZero() {
			updated = p.UpdatedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(a.out, "%-5d %-24s %-24s %-16s %s\n", p.ID, p.Slug, p.Name, p.Owner, updated)
	}
	return nil
}

func (a *app) projectShow(ctx context.Context, principal models.Principal, args []string) error {
	fs := flag.NewFlagSet("project show", flag.ContinueOnError)
	id := fs.Int64("id", 0, "project id")
	decrypt := fs.Bool("decrypt", false, "print the decrypted secret")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	project, err := a.services.SecretVault.ProjectByID(ctx, principal, *id, *decrypt)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id:      %d\n", project.ID)
	fmt.Fprintf(a.out, "slug:    %s\n", project.Slug)
	fmt.Fprintf(a.out, "name:    %s\n", project.Name)
	fmt.Fprintf(a.out, "owner:   %s\n", project.Owner)
	if project.Metadata != nil {
		raw, err := json.Marshal(project.Metadata)
		if err == nil {
			fmt.Fprintf(a.out, "meta:    %s\n", raw)
		}
	}
	switch {
	case *decrypt && project.HasSecret():
		fmt.Fprintf(a.out, "secret:  %s\n", project.SecretData)
	case *decrypt:
		fmt.Fprintln(a.out, "secret:  (none or unreadable)")
	case project.HasSecret():
		fmt.Fprintln(a.out, "secret:  (stored; rerun with -decrypt to print)")
	default:
		fmt.Fprintln(a.out, "secret:  (none)")
	}
	return nil
}

func (a *app) projectSetSecret(ctx context.Context, principal models.Principal, args []string) error {
	fs := flag.NewFlagSet("project set-secret", flag.ContinueOnError)
	id := fs.Int64("id", 0, "project id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	secret, err := a.readPassword("New project secret: ")
	if err != nil {
		return err
	}

	if err := a.services.SecretVault.UpdateProjectSecret(ctx, principal, *id, secret, utils.LocalRequestMeta()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "secret updated for project %d\n", *id)
	return nil
}

func (a *app) projectDelete(ctx context.Context, principal models.Principal, args []string) error {
	fs := flag.NewFlagSet("project delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "project id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	if err := a.services.SecretVault.DeleteProject(ctx, principal, *id, utils.LocalRequestMeta()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "project %d deleted\n", *id)
	return nil
}
