package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/models"
)

// fakeDynamo implements DynamoAPI over in-memory tables. It understands
// the one filter expression the repositories use.
type fakeDynamo struct {
	// table name -> primary key attribute
	keys map[string]string
	// table name -> pk value -> item
	items map[string]map[string]map[string]types.AttributeValue
	err   error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		keys: map[string]string{
			"Users":  "username",
			"Events": "eventId",
			"Files":  "fileId",
		},
		items: map[string]map[string]map[string]types.AttributeValue{},
	}
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	pk := f.keys[*params.TableName]
	item := f.items[*params.TableName][stringAttr(params.Key[pk])]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	table := *params.TableName
	if f.items[table] == nil {
		f.items[table] = map[string]map[string]types.AttributeValue{}
	}
	pk := f.keys[table]
	f.items[table][stringAttr(params.Item[pk])] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []map[string]types.AttributeValue
	for _, item := range f.items[*params.TableName] {
		if params.FilterExpression != nil {
			if *params.FilterExpression != "username = :username" {
				return nil, errors.New("unexpected filter expression")
			}
			want := stringAttr(params.ExpressionAttributeValues[":username"])
			if stringAttr(item["username"]) != want {
				continue
			}
		}
		out = append(out, item)
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func testUser(username string) models.User {
	user := models.NewUser(username, username+"@example.com", "Jan Kowalski", "$2a$10$hash")
	user.CreatedAt = user.CreatedAt.Truncate(time.Second)
	return user
}

func TestUserRepositorySaveAndExists(t *testing.T) {
	repo := NewUserRepository(newFakeDynamo(), "Users")
	ctx := context.Background()

	exists, err := repo.ExistsByUsername(ctx, "jan")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("expected no user before save")
	}

	if _, err := repo.Save(ctx, testUser("jan")); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Existence checks are idempotent.
	for i := 0; i < 2; i++ {
		exists, err = repo.ExistsByUsername(ctx, "jan")
		if err != nil {
			t.Fatalf("exists after save: %v", err)
		}
		if !exists {
			t.Fatal("expected user after save")
		}
	}
}

func TestUserRepositoryFindAllRoundTrip(t *testing.T) {
	repo := NewUserRepository(newFakeDynamo(), "Users")
	ctx := context.Background()

	saved := testUser("jan")
	if _, err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	users, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	got := users[0]
	if got.Username != "jan" || got.Email != "jan@example.com" || got.Role != models.RoleUser || !got.Active {
		t.Fatalf("unexpected user: %#v", got)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Fatalf("createdAt mismatch: %v vs %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestEventRepositoryFindByUsernameFilters(t *testing.T) {
	repo := NewEventRepository(newFakeDynamo(), "Events")
	ctx := context.Background()

	e1 := models.NewEvent("2026-06-01", "plener", "Sesja A", "jan", nil)
	e2 := models.NewEvent("2026-06-02", "studio", "Sesja B", "anna", nil)
	for _, e := range []models.Event{e1, e2} {
		if _, err := repo.Save(ctx, e); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	events, err := repo.FindByUsername(ctx, "jan")
	if err != nil {
		t.Fatalf("find by username: %v", err)
	}
	if len(events) != 1 || events[0].EventID != e1.EventID {
		t.Fatalf("unexpected events: %#v", events)
	}

	none, err := repo.FindByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("find by username: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty slice, got %#v", none)
	}
}

func TestEventRepositoryExistsByID(t *testing.T) {
	repo := NewEventRepository(newFakeDynamo(), "Events")
	ctx := context.Background()

	event := models.NewEvent("2026-06-01", "plener", "Sesja A", "jan", nil)
	if _, err := repo.Save(ctx, event); err != nil {
		t.Fatalf("save: %v", err)
	}

	exists, err := repo.ExistsByID(ctx, event.EventID)
	if err != nil || !exists {
		t.Fatalf("expected event to exist, got %v %v", exists, err)
	}
	exists, err = repo.ExistsByID(ctx, "missing")
	if err != nil || exists {
		t.Fatalf("expected event to be absent, got %v %v", exists, err)
	}
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	repo := NewFileRepository(newFakeDynamo(), "Files")
	ctx := context.Background()

	key := "galleries/jan/001.jpg"
	file := models.NewFile("zdjecie", "event-1", "jan", &key)
	file.CreatedAt = file.CreatedAt.Truncate(time.Second)
	if _, err := repo.Save(ctx, file); err != nil {
		t.Fatalf("save: %v", err)
	}

	files, err := repo.FindByUsername(ctx, "jan")
	if err != nil {
		t.Fatalf("find by username: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	got := files[0]
	if got.FileID != file.FileID || got.EventID != "event-1" {
		t.Fatalf("unexpected file: %#v", got)
	}
	if got.ObjectKey == nil || *got.ObjectKey != key {
		t.Fatalf("objectKey mismatch: %v", got.ObjectKey)
	}
	if got.DateOfLastDownload != nil {
		t.Fatalf("dateOfLastDownload should stay unset, got %v", got.DateOfLastDownload)
	}
	if !got.CreatedAt.Equal(file.CreatedAt) {
		t.Fatalf("createdAt mismatch: %v vs %v", got.CreatedAt, file.CreatedAt)
	}
}

func TestRepositoriesPropagateStoreErrors(t *testing.T) {
	db := newFakeDynamo()
	db.err = errors.New("service unavailable")
	ctx := context.Background()

	if _, err := NewUserRepository(db, "Users").ExistsByUsername(ctx, "jan"); err == nil {
		t.Fatal("expected error from exists")
	}
	if _, err := NewUserRepository(db, "Users").Save(ctx, testUser("jan")); err == nil {
		t.Fatal("expected error from save")
	}
	if _, err := NewEventRepository(db, "Events").FindByUsername(ctx, "jan"); err == nil {
		t.Fatal("expected error from scan")
	}
	if _, err := NewFileRepository(db, "Files").FindByUsername(ctx, "jan"); err == nil {
		t.Fatal("expected error from scan")
	}
}
