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

type fileRecord struct {
	FileID             string  `dynamodbav:"fileId"`
	CreatedAt          string  `dynamodbav:"createdAt"`
	Description        string  `dynamodbav:"description"`
	EventID            string  `dynamodbav:"eventId"`
	Username           string  `dynamodbav:"username"`
	ObjectKey          *string `dynamodbav:"objectKey"`
	DateOfLastDownload *string `dynamodbav:"dateOfLastDownload"`
}

func toFileRecord(file models.File) fileRecord {
	rec := fileRecord{
		FileID:      file.FileID,
		CreatedAt:   file.CreatedAt.Format(time.RFC3339),
		Description: file.Description,
		EventID:     file.EventID,
		Username:    file.Username,
		ObjectKey:   file.ObjectKey,
	}
	if file.DateOfLastDownload != nil {
		s := file.DateOfLastDownload.Format(time.RFC3339)
		rec.DateOfLastDownload = &s
	}
	return rec
}

func (rec fileRecord) toFile() models.File {
	createdAt, _ := time.Parse(time.RFC3339, rec.CreatedAt)
	file := models.File{
		FileID:      rec.FileID,
		CreatedAt:   createdAt,
		Description: rec.Description,
		EventID:     rec.EventID,
		Username:    rec.Username,
		ObjectKey:   rec.ObjectKey,
	}
	if rec.DateOfLastDownload != nil {
		if t, err := time.Parse(time.RFC3339, *rec.DateOfLastDownload); err == nil {
			file.DateOfLastDownload = &t
		}
	}
	return file
}

// FileRepository persists file metadata in a DynamoDB table keyed by
// fileId.
type FileRepository struct {
	db    DynamoAPI
	table string
}

func NewFileRepository(db DynamoAPI, table string) *FileRepository {
	return &FileRepository{db: db, table: table}
}

// Save writes the full file record. Upsert semantics, last write wins.
func (r *FileRepository) Save(ctx context.Context, file models.File) (models.File, error) {
	item, err := attributevalue.MarshalMap(toFileRecord(file))
	if err != nil {
		return models.File{}, fmt.Errorf("marshal file %s: %w", file.FileID, err)
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return models.File{}, fmt.Errorf("put file %s: %w", file.FileID, err)
	}
	return file, nil
}

// FindByUsername scans the table with an equality filter on username.
// Returns an empty slice when nothing matches; order is not guaranteed.
func (r *FileRepository) FindByUsername(ctx context.Context, username string) ([]models.File, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("username = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scan files for %s: %w", username, err)
	}

	var records []fileRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, fmt.Errorf("unmarshal files: %w", err)
	}

	files := make([]models.File, 0, len(records))
	for _, rec := range records {
		files = append(files, rec.toFile())
	}
	return files, nil
}
