package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"item-api/internal/item"
	"item-api/internal/item/repository"
	"item-api/internal/item/usecase"
	pkgErrors "item-api/pkg/errors"
)

// mock dependencies

type mockLogger struct{ errors int }

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  { m.errors++ }
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  { m.errors++ }
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	created []repository.CreateItemOptions
	items   []item.Item
	err     error
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, opt)
	return nil
}

func (m *mockRepo) ListItems(ctx context.Context) ([]item.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func TestCreate(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(repo, &mockLogger{})

	err := uc.Create(context.Background(), item.CreateItemInput{Name: "Test Item", Quantity: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
	if repo.created[0].Name != "Test Item" || repo.created[0].Quantity != 42 {
		t.Errorf("unexpected insert options: %+v", repo.created[0])
	}
}

func TestCreateStorageFailure(t *testing.T) {
	repo := &mockRepo{err: errors.New("db error")}
	l := &mockLogger{}
	uc := usecase.New(repo, l)

	err := uc.Create(context.Background(), item.CreateItemInput{Name: "x", Quantity: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if pkgErrors.KindOf(err) != pkgErrors.KindStorage {
		t.Errorf("untagged repo errors must become storage errors, got %s", pkgErrors.KindOf(err))
	}
	if l.errors == 0 {
		t.Errorf("storage failure must be logged")
	}
}

func TestCreateKeepsTaggedError(t *testing.T) {
	tagged := pkgErrors.NewStorageError("item/repository/sqlstore.CreateItem", errors.New("disk full"))
	uc := usecase.New(&mockRepo{err: tagged}, &mockLogger{})

	err := uc.Create(context.Background(), item.CreateItemInput{Name: "x"})
	if err != tagged {
		t.Errorf("expected the repository error to pass through, got %v", err)
	}
}

func TestList(t *testing.T) {
	now := time.Now().UTC()
	repo := &mockRepo{items: []item.Item{
		{ID: 2, Name: "B", Quantity: 1, CreatedAt: now},
		{ID: 1, Name: "A", Quantity: 0, CreatedAt: now.Add(-time.Minute)},
	}}
	uc := usecase.New(repo, &mockLogger{})

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "B" || items[1].Name != "A" {
		t.Errorf("order must be preserved, got %+v", items)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	uc := usecase.New(&mockRepo{}, &mockLogger{})

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil {
		t.Errorf("expected empty slice, got nil")
	}
}

func TestListStorageFailure(t *testing.T) {
	uc := usecase.New(&mockRepo{err: errors.New("connection refused")}, &mockLogger{})

	items, err := uc.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if items != nil {
		t.Errorf("expected nil items on failure, got %v", items)
	}
	if pkgErrors.KindOf(err) != pkgErrors.KindStorage {
		t.Errorf("expected storage kind, got %s", pkgErrors.KindOf(err))
	}
}
