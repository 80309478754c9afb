package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"intown_server/models"
	"intown_server/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// DynamoAPI is the subset of the DynamoDB client used here
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type DynamoService struct {
	Client DynamoAPI
	Logger *zap.Logger
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

// GetItem retrieves an item from DynamoDB. A missing item yields (nil, nil).
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}
	if output.Item == nil {
		return nil, nil
	}
	return output.Item, nil
}

// PutItem marshals item and writes it, replacing any item with the same key.
// A non-empty condition is passed as the ConditionExpression.
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}, condition string) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      marshaledItem,
	}
	if condition != "" {
		input.ConditionExpression = aws.String(condition)
	}

	if _, err := ds.Client.PutItem(ctx, input); err != nil {
		ds.logger().Error("Failed to insert item", zap.String("table", tableName), zap.Error(err))
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	ds.logger().Debug("Item successfully inserted", zap.String("table", tableName))
	return nil
}

// ScanAll reads every item of a table, following LastEvaluatedKey
func (ds *DynamoService) ScanAll(ctx context.Context, tableName string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		output, err := ds.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan table '%s': %w", tableName, err)
		}
		items = append(items, output.Items...)
		if len(output.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = output.LastEvaluatedKey
	}
}

func (ds *DynamoService) logger() *zap.Logger {
	if ds.Logger == nil {
		return zap.NewNop()
	}
	return ds.Logger
}

// DynamoContactRepository stores contacts in the Contacts table
type DynamoContactRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoContactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	items, err := r.Dynamo.ScanAll(ctx, models.ContactsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}
	contacts := []models.Contact{}
	if err := attributevalue.UnmarshalListOfMaps(items, &contacts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contacts: %w", err)
	}
	// Scans are unordered; match the newest-first order of the SQL backend.
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt > contacts[j].CreatedAt
	})
	return contacts, nil
}

func (r *DynamoContactRepository) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	item, err := r.Dynamo.GetItem(ctx, models.ContactsTable, utils.StringKey("id", id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	if item == nil {
		return nil, nil
	}
	var contact models.Contact
	if err := attributevalue.UnmarshalMap(item, &contact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact: %w", err)
	}
	return &contact, nil
}

func (r *DynamoContactRepository) CreateContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	if err := r.Dynamo.PutItem(ctx, models.ContactsTable, contact, "attribute_not_exists(id)"); err != nil {
		var conflict *types.ConditionalCheckFailedException
		if errors.As(err, &conflict) {
			return nil, fmt.Errorf("contact %s already exists: %w", contact.ID, err)
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, nil
}

func (r *DynamoContactRepository) CountContacts(ctx context.Context) (int, error) {
	items, err := r.Dynamo.ScanAll(ctx, models.ContactsTable)
	if err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return len(items), nil
}

// DynamoSwipeStore stores one item per contact in the Swipes table. PutItem
// replaces the whole item, so the last write for a contact wins.
type DynamoSwipeStore struct {
	Dynamo *DynamoService
	Clock  func() time.Time
}

func (s *DynamoSwipeStore) Get(ctx context.Context, contactID string) (models.SwipeStatus, error) {
	item, err := s.Dynamo.GetItem(ctx, models.SwipesTable, utils.StringKey("contactId", contactID))
	if err != nil {
		return models.SwipePending, fmt.Errorf("failed to fetch swipe status: %w", err)
	}
	if status := utils.ExtractString(item, "status"); status != "" {
		return models.SwipeStatus(status), nil
	}
	return models.SwipePending, nil
}

func (s *DynamoSwipeStore) Set(ctx context.Context, contactID string, status models.SwipeStatus) (*models.SwipeRecord, error) {
	if err := validateSwipeStatus(status); err != nil {
		return nil, err
	}
	rec := models.SwipeRecord{ContactID: contactID, Status: status, Timestamp: timestamp(s.Clock)}
	if err := s.Dynamo.PutItem(ctx, models.SwipesTable, rec, ""); err != nil {
		return nil, fmt.Errorf("failed to update swipe status: %w", err)
	}
	return &rec, nil
}

func (s *DynamoSwipeStore) All(ctx context.Context) (map[string]models.SwipeRecord, error) {
	items, err := s.Dynamo.ScanAll(ctx, models.SwipesTable)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swipes: %w", err)
	}
	var records []models.SwipeRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swipes: %w", err)
	}
	out := make(map[string]models.SwipeRecord, len(records))
	for _, rec := range records {
		out[rec.ContactID] = rec
	}
	return out, nil
}
