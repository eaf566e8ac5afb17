package store

import (
	"context"
	"fmt"

	"photoshare-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserStore is the DynamoDB-backed Users client.
type UserStore struct {
	db    *dynamodb.Client
	table string
}

// NewUserStore creates a users store bound to the given table.
func NewUserStore(db *dynamodb.Client, table string) *UserStore {
	return &UserStore{db: db, table: table}
}

// Get retrieves a user by id.
func (s *UserStore) Get(ctx context.Context, id string) (*models.User, error) {
	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       userKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// Scan returns a page of user records as delivered by the table scan.
func (s *UserStore) Scan(ctx context.Context) ([]models.User, error) {
	out, err := s.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}

	users := make([]models.User, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users: %w", err)
	}
	return users, nil
}

// Put saves a user record, replacing any existing record with the same id.
func (s *UserStore) Put(ctx context.Context, user *models.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put user: %w", err)
	}
	return nil
}

// Delete removes a user record. Deleting a missing key is a no-op.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       userKey(id),
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func userKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: id},
	}
}

// PhotoStore is the DynamoDB-backed Photos client.
type PhotoStore struct {
	db    *dynamodb.Client
	table string
}

// NewPhotoStore creates a photos store bound to the given table.
func NewPhotoStore(db *dynamodb.Client, table string) *PhotoStore {
	return &PhotoStore{db: db, table: table}
}

// Get retrieves a photo by id.
func (s *PhotoStore) Get(ctx context.Context, id string) (*models.Photo, error) {
	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       photoKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var photo models.Photo
	if err := attributevalue.UnmarshalMap(out.Item, &photo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal photo: %w", err)
	}
	return &photo, nil
}

// Scan returns a page of photo records as delivered by the table scan.
func (s *PhotoStore) Scan(ctx context.Context) ([]models.Photo, error) {
	out, err := s.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan photos: %w", err)
	}

	photos := make([]models.Photo, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &photos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal photos: %w", err)
	}
	return photos, nil
}

// Put saves a photo record, replacing any existing record with the same id.
func (s *PhotoStore) Put(ctx context.Context, photo *models.Photo) error {
	item, err := attributevalue.MarshalMap(photo)
	if err != nil {
		return fmt.Errorf("failed to marshal photo: %w", err)
	}
	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put photo: %w", err)
	}
	return nil
}

// Delete removes a photo record. Deleting a missing key is a no-op.
func (s *PhotoStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       photoKey(id),
	})
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

func photoKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"photo_id": &types.AttributeValueMemberS{Value: id},
	}
}
