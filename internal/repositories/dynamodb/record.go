package dynamodb

import (
	"context"
	"fmt"

	"registration-api/internal/models"
	"registration-api/internal/repositories"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// Client is the subset of the DynamoDB API used by the record repository
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// RecordRepository implements repositories.RecordRepository on a DynamoDB table
// keyed by email
type RecordRepository struct {
	client Client
	table  string
	logger *logrus.Logger
}

// NewRecordRepository creates a new DynamoDB record repository
func NewRecordRepository(client Client, table string, logger *logrus.Logger) repositories.RecordRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &RecordRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// Put writes or overwrites a record keyed by its email
func (r *RecordRepository) Put(ctx context.Context, record *models.Record) error {
	if record == nil || record.Email == "" {
		return repositories.NewRepositoryError("put", r.table, "", repositories.ErrInvalidKey)
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return repositories.NewRepositoryError("put", r.table, record.Email,
			fmt.Errorf("marshal record: %w", err))
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("put", r.table, record.Email, err)
	}

	r.logger.WithFields(logrus.Fields{
		"table": r.table,
		"email": record.Email,
	}).Debug("Record stored")

	return nil
}

// GetByEmail retrieves a record by its email key
func (r *RecordRepository) GetByEmail(ctx context.Context, email string) (*models.Record, error) {
	if email == "" {
		return nil, repositories.NewRepositoryError("get", r.table, "", repositories.ErrInvalidKey)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("get", r.table, email, err)
	}

	if out.Item == nil {
		return nil, repositories.NotFoundError(r.table, email)
	}

	record := &models.Record{}
	if err := attributevalue.UnmarshalMap(out.Item, record); err != nil {
		return nil, repositories.NewRepositoryError("get", r.table, email,
			fmt.Errorf("unmarshal record: %w", err))
	}

	return record, nil
}

// GetAll scans the full table, following pagination until every page is consumed
func (r *RecordRepository) GetAll(ctx context.Context) ([]*models.Record, error) {
	records := []*models.Record{}

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.table),
		Select:    types.SelectAllAttributes,
	}

	for {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, repositories.NewRepositoryError("scan", r.table, "", err)
		}

		page := []*models.Record{}
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, repositories.NewRepositoryError("scan", r.table, "",
				fmt.Errorf("unmarshal records: %w", err))
		}
		records = append(records, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return records, nil
}
