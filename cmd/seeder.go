package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/frahmantamala/complaint-redressal/internal/auth"
	authPostgres "github.com/frahmantamala/complaint-redressal/internal/auth/postgres"
	"github.com/frahmantamala/complaint-redressal/internal/department"
	departmentPostgres "github.com/frahmantamala/complaint-redressal/internal/department/postgres"
	"github.com/frahmantamala/complaint-redressal/internal/user"
	userPostgres "github.com/frahmantamala/complaint-redressal/internal/user/postgres"
	"github.com/frahmantamala/complaint-redressal/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	seedAdminUsername   string
	seedAdminPassword   string
	seedAdminDepartment string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default departments and an admin account",
	Long:  `Idempotently create the routing departments and, when credentials are given, an admin account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to init db: %w", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			return err
		}

		authSvc := auth.NewService(authPostgres.NewRepository(gormDB), nil, cfg.Security.BCryptCost, logger.LoggerWrapper())
		return seed(context.Background(), gormDB, authSvc)
	},
}

func seed(ctx context.Context, db *gorm.DB, hasher user.PasswordHasher) error {
	lg := logger.LoggerWrapper()

	deptSvc := department.NewService(departmentPostgres.NewDepartmentRepository(db), lg)
	created, err := deptSvc.EnsureDefaults(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}
	fmt.Printf("Departments ready (%d created)\n", created)

	if seedAdminUsername == "" {
		fmt.Println("No --admin-username given; skipping admin account")
		return nil
	}
	if seedAdminPassword == "" {
		return errors.New("--admin-password is required with --admin-username")
	}

	dto := user.CreateAdminDTO{Username: seedAdminUsername, Password: seedAdminPassword}
	if seedAdminDepartment != "" {
		d, err := deptSvc.GetByName(ctx, seedAdminDepartment)
		if err != nil {
			return fmt.Errorf("failed to look up department: %w", err)
		}
		if d == nil {
			return fmt.Errorf("department %q does not exist", seedAdminDepartment)
		}
		dto.DepartmentID = &d.ID
	}

	userSvc := user.NewService(userPostgres.NewUserRepository(db), hasher, lg)
	admin, isNew, err := userSvc.EnsureAdmin(ctx, dto)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if isNew {
		fmt.Println("Seeded admin:", admin.Username)
	} else {
		fmt.Println("Admin already exists:", admin.Username)
	}
	return nil
}

func init() {
	seedCmd.Flags().StringVar(&seedAdminUsername, "admin-username", "", "Username of the admin account to create")
	seedCmd.Flags().StringVar(&seedAdminPassword, "admin-password", "", "Password of the admin account")
	seedCmd.Flags().StringVar(&seedAdminDepartment, "admin-department", "", "Department the admin belongs to")
}
