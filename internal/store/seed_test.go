package store

import (
	"context"
	"testing"

	"github.com/trimshop/trimshop-go/internal/auth"
)

func TestSeedServicesIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	if err := SeedServices(ctx, db); err != nil {
		t.Fatalf("first SeedServices: %v", err)
	}
	if err := SeedServices(ctx, db); err != nil {
		t.Fatalf("second SeedServices: %v", err)
	}

	count, err := q.CountServices(ctx)
	if err != nil {
		t.Fatalf("CountServices: %v", err)
	}
	if count != int64(len(defaultServices)) {
		t.Errorf("expected %d seeded services, got %d", len(defaultServices), count)
	}

	services, err := q.ListActiveServices(ctx)
	if err != nil {
		t.Fatalf("ListActiveServices: %v", err)
	}
	if len(services) != len(defaultServices) {
		t.Fatalf("expected %d active services, got %d", len(defaultServices), len(services))
	}
	for i, svc := range services {
		if svc.Title != defaultServices[i].Title {
			t.Errorf("service %d: got title %q, want %q", i, svc.Title, defaultServices[i].Title)
		}
	}
}

func TestBootstrapAdmin(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	q := New(db)

	cfg := BootstrapConfig{Email: "admin@trimshop.test", Password: "super-secret-pw"}

	created, err := BootstrapAdmin(ctx, db, cfg)
	if err != nil {
		t.Fatalf("first BootstrapAdmin: %v", err)
	}
	if !created {
		t.Error("expected first bootstrap to create the admin")
	}

	created, err = BootstrapAdmin(ctx, db, cfg)
	if err != nil {
		t.Fatalf("second BootstrapAdmin: %v", err)
	}
	if created {
		t.Error("expected second bootstrap to be a no-op")
	}

	user, err := q.GetUserByEmail(ctx, cfg.Email)
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user.Role != "admin" {
		t.Errorf("expected admin role, got %q", user.Role)
	}

	ok, err := auth.CheckPassword(cfg.Password, user.PasswordHash)
	if err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if !ok {
		t.Error("bootstrap password does not verify against stored hash")
	}
}

func TestBootstrapAdminUnconfigured(t *testing.T) {
	db := testDB(t)

	created, err := BootstrapAdmin(context.Background(), db, BootstrapConfig{})
	if err != nil {
		t.Fatalf("BootstrapAdmin: %v", err)
	}
	if created {
		t.Error("expected no admin to be created without credentials")
	}
}
