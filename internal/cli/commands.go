package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"renthub-backend/internal/database"
	"renthub-backend/internal/database/models"
	"renthub-backend/internal/repository"
	"renthub-backend/internal/seed"
	"renthub-backend/internal/service"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the renthub command tree. Every subcommand opens its Env
// through load.
func NewRootCmd(load EnvLoader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "renthub",
		Short:         "RentHub data management",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		MigrateCmd(load),
		SeedCmd(load),
		CreateSuperuserCmd(load),
		CreateUserCmd(load),
		ListUsersCmd(load),
	)
	return rootCmd
}

// MigrateCmd creates the schema and the Owner and Tenant groups
func MigrateCmd(load EnvLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the role groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := load()
			if err != nil {
				return err
			}
			defer env.Close()

			if err := database.Migrate(env.DB); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			if err := database.SeedRoleGroups(env.DB); err != nil {
				return fmt.Errorf("failed to seed role groups: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}

// SeedCmd loads the catalog and demo accounts from YAML data files
func SeedCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load property types, features and demo accounts from YAML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := load()
			if err != nil {
				return err
			}
			defer env.Close()

			dataDir, _ := cmd.Flags().GetString("data-dir")
			if dataDir == "" {
				dataDir = env.Config.SeedDataDir
			}

			accounts := env.Accounts()
			seeder := seed.NewSeeder(
				repository.NewPropertyTypeRepository(env.DB),
				repository.NewFeatureRepository(env.DB),
				repository.NewUserRepository(env.DB),
				service.NewOwnerManager(accounts),
				service.NewTenantManager(accounts),
			)
			result, err := seeder.Run(dataDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Property types: %d created, %d total\n", result.PropertyTypes.Created, result.PropertyTypes.Total)
			fmt.Fprintf(out, "Features: %d created, %d total\n", result.Features.Created, result.Features.Total)
			fmt.Fprintf(out, "Accounts: %d created, %d total\n", result.Accounts.Created, result.Accounts.Total)
			return nil
		},
	}
	cmd.Flags().String("data-dir", "", "directory holding the YAML data files (default SEED_DATA_DIR)")
	return cmd
}

// CreateSuperuserCmd creates a staff superuser identified by email
func CreateSuperuserCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create a superuser",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := load()
			if err != nil {
				return err
			}
			defer env.Close()

			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			user, err := env.Accounts().CreateSuperuser(email, password, userFields(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Superuser %s created (%s)\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().String("email", "", "email address, also used as username")
	cmd.Flags().String("password", "", "password; leave empty for an unusable password")
	addUserFieldFlags(cmd)
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// CreateUserCmd creates an owner or a tenant
func CreateUserCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create an owner or a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, env, err := roleManager(cmd, load)
			if err != nil {
				return err
			}
			defer env.Close()

			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			user, err := manager.CreateUser(username, email, password, userFields(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s created (%s)\n", manager.Role(), user.Username, user.ID)
			return nil
		},
	}
	cmd.Flags().String("role", "", "owner or tenant")
	cmd.Flags().String("username", "", "username")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().String("password", "", "password; leave empty for an unusable password")
	addUserFieldFlags(cmd)
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// ListUsersCmd prints the members of a role
func ListUsersCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listusers",
		Short: "List the owners or the tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, env, err := roleManager(cmd, load)
			if err != nil {
				return err
			}
			defer env.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")
			users, total, err := manager.List(limit, offset)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tEMAIL\tPHONE")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.FullName(), u.Email, u.PhoneNumber)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d %ss\n", len(users), total, manager.Role())
			return nil
		},
	}
	cmd.Flags().String("role", "", "owner or tenant")
	cmd.Flags().Int("limit", 20, "maximum number of users to print")
	cmd.Flags().Int("offset", 0, "number of users to skip")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func roleManager(cmd *cobra.Command, load EnvLoader) (*service.RoleManager, *Env, error) {
	role, _ := cmd.Flags().GetString("role")
	env, err := load()
	if err != nil {
		return nil, nil, err
	}
	manager, err := service.NewRoleManager(env.Accounts(), models.Role(strings.ToLower(role)))
	if err != nil {
		env.Close()
		return nil, nil, fmt.Errorf("%w: %q", err, role)
	}
	return manager, env, nil
}

func addUserFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("phone", "", "phone number, E.164 or national in PHONE_DEFAULT_REGION")
	cmd.Flags().String("first-name", "", "first name")
	cmd.Flags().String("last-name", "", "last name")
	cmd.Flags().String("about", "", "short profile text")
}

func userFields(cmd *cobra.Command) service.UserFields {
	phone, _ := cmd.Flags().GetString("phone")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")
	about, _ := cmd.Flags().GetString("about")
	return service.UserFields{
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phone,
		About:       about,
	}
}
