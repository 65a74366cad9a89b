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

type eventRecord struct {
	EventID                   string  `dynamodbav:"eventId"`
	CreatedAt                 string  `dynamodbav:"createdAt"`
	Date                      string  `dynamodbav:"date"`
	Description               string  `dynamodbav:"description"`
	Title                     string  `dynamodbav:"title"`
	Username                  string  `dynamodbav:"username"`
	ImagePlaceholderObjectKey *string `dynamodbav:"imagePlaceholderObjectKey"`
}

func toEventRecord(event models.Event) eventRecord {
	return eventRecord{
		EventID:                   event.EventID,
		CreatedAt:                 event.CreatedAt.Format(time.RFC3339),
		Date:                      event.Date,
		Description:               event.Description,
		Title:                     event.Title,
		Username:                  event.Username,
		ImagePlaceholderObjectKey: event.ImagePlaceholderObjectKey,
	}
}

func (rec eventRecord) toEvent() models.Event {
	createdAt, _ := time.Parse(time.RFC3339, rec.CreatedAt)
	return models.Event{
		EventID:                   rec.EventID,
		CreatedAt:                 createdAt,
		Date:                      rec.Date,
		Description:               rec.Description,
		Title:                     rec.Title,
		Username:                  rec.Username,
		ImagePlaceholderObjectKey: rec.ImagePlaceholderObjectKey,
	}
}

// EventRepository persists events in a DynamoDB table keyed by eventId.
type EventRepository struct {
	db    DynamoAPI
	table string
}

func NewEventRepository(db DynamoAPI, table string) *EventRepository {
	return &EventRepository{db: db, table: table}
}

// Save writes the full event record. Upsert semantics, last write wins.
func (r *EventRepository) Save(ctx context.Context, event models.Event) (models.Event, error) {
	item, err := attributevalue.MarshalMap(toEventRecord(event))
	if err != nil {
		return models.Event{}, fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return models.Event{}, fmt.Errorf("put event %s: %w", event.EventID, err)
	}
	return event, nil
}

// ExistsByID does a point lookup on the primary key.
func (r *EventRepository) ExistsByID(ctx context.Context, eventID string) (bool, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"eventId": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		return false, fmt.Errorf("get event %s: %w", eventID, err)
	}
	return len(out.Item) > 0, nil
}

// FindByUsername scans the table with an equality filter on username.
// Returns an empty slice when nothing matches; order is not guaranteed.
func (r *EventRepository) FindByUsername(ctx context.Context, username string) ([]models.Event, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("username = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scan events for %s: %w", username, err)
	}

	var records []eventRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, fmt.Errorf("unmarshal events: %w", err)
	}

	events := make([]models.Event, 0, len(records))
	for _, rec := range records {
		events = append(events, rec.toEvent())
	}
	return events, nil
}
