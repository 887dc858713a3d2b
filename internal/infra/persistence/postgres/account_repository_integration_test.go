//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/persistence/repotest"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("gatekeeper_test"),
		tcpostgres.WithUsername("gatekeeper"),
		tcpostgres.WithPassword("gatekeeper"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		panic("failed to start postgres container: " + err.Error())
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		panic("failed to get connection string: " + err.Error())
	}

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		_ = container.Terminate(ctx)
		panic("failed to open gorm: " + err.Error())
	}

	if err := Migrate(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		panic("failed to migrate: " + err.Error())
	}
	testDB = db

	code := m.Run()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestAccountRepository_Contract(t *testing.T) {
	repotest.RunAccountRepository(t, func(t *testing.T) repository.AccountRepository {
		t.Helper()
		if err := testDB.Exec("TRUNCATE TABLE accounts").Error; err != nil {
			t.Fatalf("truncate accounts: %v", err)
		}

		return NewAccountRepository(testDB)
	})
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	if err := testDB.Exec("TRUNCATE TABLE accounts").Error; err != nil {
		t.Fatalf("truncate accounts: %v", err)
	}
	ctx := context.Background()
	tm := NewTransactionManager(testDB)

	sentinel := context.Canceled
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewAccountRepository().Create(ctx, newIntegrationAccount("bob")); err != nil {
			return err
		}

		return sentinel
	})
	if err != sentinel {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	if _, err := NewAccountRepository(testDB).FindByUsername(ctx, "bob"); err != repository.ErrAccountNotFound {
		t.Fatalf("expected account to be rolled back, got %v", err)
	}
}

func newIntegrationAccount(username string) *entity.Account {
	return &entity.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$04$" + username,
	}
}
