package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/identity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/mailer"
	"github.com/Zane16/Foodies-Web-sub000/repository"
)

const (
	testSecret  = "test-secret"
	testBaseURL = "http://foodies.test"
)

// setupTestDB opens a per-test in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Application{}, &entity.ApplicationDocument{},
		&entity.Vendor{},
		&entity.Organization{},
		&entity.Order{},
		&entity.IdentityAccount{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type testEnv struct {
	DB        *gorm.DB
	Users     *repository.UserRepository
	Apps      *repository.ApplicationRepository
	Vendors   *repository.VendorRepository
	Orgs      *repository.OrganizationRepository
	Orders    *repository.OrderRepository
	Identity  *identity.LocalService
	Prov      *ProvisioningService
	Account   *AccountService
	Lifecycle *LifecycleService
	AppSvc    *ApplicationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)

	users := repository.NewUserRepository(db)
	apps := repository.NewApplicationRepository(db)
	vendors := repository.NewVendorRepository(db)
	orgs := repository.NewOrganizationRepository(db)
	orders := repository.NewOrderRepository(db)
	idsvc := identity.NewLocalService(db, testSecret, testBaseURL, time.Hour, 24*time.Hour)

	return &testEnv{
		DB:       db,
		Users:    users,
		Apps:     apps,
		Vendors:  vendors,
		Orgs:     orgs,
		Orders:   orders,
		Identity: idsvc,
		Prov: &ProvisioningService{
			DB:         db,
			Apps:       apps,
			Users:      users,
			Orgs:       orgs,
			Identity:   idsvc,
			Mail:       mailer.LogMailer{},
			InviteTTL:  24 * time.Hour,
			AppBaseURL: testBaseURL,
		},
		Account: &AccountService{
			DB:       db,
			Users:    users,
			Apps:     apps,
			Vendors:  vendors,
			Identity: idsvc,
		},
		Lifecycle: NewLifecycleService(db, users, vendors, idsvc),
		AppSvc:    NewApplicationService(apps),
	}
}

func (e *testEnv) createProfile(t *testing.T, email, role, org, status string) *entity.User {
	t.Helper()
	acct, err := e.Identity.CreateUser(email, map[string]any{"role": role, "organization": org})
	if err != nil {
		t.Fatalf("create identity account: %v", err)
	}
	user := &entity.User{
		Email:        email,
		FullName:     "Test " + role,
		Role:         role,
		Organization: org,
		Status:       status,
		IdentityID:   acct.ID,
	}
	if err := e.Users.Create(user); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return user
}

func (e *testEnv) submitApplication(t *testing.T, app entity.Application, docs []string) uint {
	t.Helper()
	id, err := e.AppSvc.Submit(&app, docs)
	if err != nil {
		t.Fatalf("submit application: %v", err)
	}
	return id
}
