package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/models"
)

// userRecord is the stored shape of a user item. Timestamps are kept as
// RFC3339 strings in the table.
type userRecord struct {
	Username  string `dynamodbav:"username"`
	Email     string `dynamodbav:"email"`
	FullName  string `dynamodbav:"fullName"`
	Password  string `dynamodbav:"password"`
	Role      string `dynamodbav:"role"`
	CreatedAt string `dynamodbav:"createdAt"`
	Active    bool   `dynamodbav:"active"`
}

func toUserRecord(user models.User) userRecord {
	return userRecord{
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Password:  user.Password,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		Active:    user.Active,
	}
}

func (rec userRecord) toUser() models.User {
	createdAt, _ := time.Parse(time.RFC3339, rec.CreatedAt)
	return models.User{
		Username:  rec.Username,
		Email:     rec.Email,
		FullName:  rec.FullName,
		Password:  rec.Password,
		Role:      models.UserRole(rec.Role),
		CreatedAt: createdAt,
		Active:    rec.Active,
	}
}

// UserRepository persists users in a DynamoDB table keyed by username.
type UserRepository struct {
	db    DynamoAPI
	table string
}

func NewUserRepository(db DynamoAPI, table string) *UserRepository {
	return &UserRepository{db: db, table: table}
}

// Save writes the full user record. Upsert semantics, last write wins.
func (r *UserRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	item, err := attributevalue.MarshalMap(toUserRecord(user))
	if err != nil {
		return models.User{}, fmt.Errorf("marshal user %s: %w", user.Username, err)
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("put user %s: %w", user.Username, err)
	}
	return user, nil
}

// ExistsByUsername does a point lookup on the primary key.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return false, fmt.Errorf("get user %s: %w", username, err)
	}
	return len(out.Item) > 0, nil
}

// FindAll scans the whole table. Order is not guaranteed.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}

	var records []userRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}

	users := make([]models.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.toUser())
	}
	return users, nil
}
