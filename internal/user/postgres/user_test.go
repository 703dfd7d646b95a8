package postgres

import (
	"context"
	"testing"

	"github.com/frahmantamala/complaint-redressal/internal"
	departmentDatamodel "github.com/frahmantamala/complaint-redressal/internal/core/datamodel/department"
	userDatamodel "github.com/frahmantamala/complaint-redressal/internal/core/datamodel/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestUserRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "UserRepository Suite")
}

var _ = Describe("UserRepository", func() {
	var (
		ctx  = context.Background()
		db   *gorm.DB
		repo *UserRepository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		Expect(db.AutoMigrate(&departmentDatamodel.Department{}, &userDatamodel.User{}, &userDatamodel.Admin{})).To(Succeed())
		repo = NewUserRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	It("creates and loads a user", func() {
		u := &userDatamodel.User{Username: "citizen", PasswordHash: "x"}
		Expect(repo.Create(ctx, u)).To(Succeed())

		loaded, err := repo.GetByID(ctx, u.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Username).To(Equal("citizen"))
	})

	It("maps a duplicate username to ErrUsernameTaken", func() {
		Expect(repo.Create(ctx, &userDatamodel.User{Username: "citizen", PasswordHash: "x"})).To(Succeed())

		err := repo.Create(ctx, &userDatamodel.User{Username: "citizen", PasswordHash: "y"})
		Expect(err).To(Equal(internal.ErrUsernameTaken))
	})

	It("returns ErrUserNotFound for a missing id", func() {
		_, err := repo.GetByID(ctx, 77)
		Expect(err).To(Equal(internal.ErrUserNotFound))
	})

	It("sees usernames from both tables", func() {
		Expect(repo.Create(ctx, &userDatamodel.User{Username: "citizen", PasswordHash: "x"})).To(Succeed())
		Expect(repo.CreateAdmin(ctx, &userDatamodel.Admin{Username: "root", PasswordHash: "x"})).To(Succeed())

		for _, name := range []string{"citizen", "root"} {
			taken, err := repo.UsernameTaken(ctx, name)
			Expect(err).NotTo(HaveOccurred())
			Expect(taken).To(BeTrue())
		}

		taken, err := repo.UsernameTaken(ctx, "nobody")
		Expect(err).NotTo(HaveOccurred())
		Expect(taken).To(BeFalse())
	})

	It("finds admins by username", func() {
		Expect(repo.CreateAdmin(ctx, &userDatamodel.Admin{Username: "root", PasswordHash: "x"})).To(Succeed())

		a, err := repo.GetAdminByUsername(ctx, "root")
		Expect(err).NotTo(HaveOccurred())
		Expect(a.ID).To(BeNumerically(">", 0))

		_, err = repo.GetAdminByUsername(ctx, "ghost")
		Expect(err).To(Equal(internal.ErrAdminNotFound))
	})
})
