package repository

import (
	"context"
	"time"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "profiles"

type profileItem struct {
	ID         string `dynamodbav:"id"`
	FirstName  string `dynamodbav:"first_name"`
	LastName   string `dynamodbav:"last_name"`
	Profession string `dynamodbav:"profession"`
	Balance    int64  `dynamodbav:"balance"`
	Type       string `dynamodbav:"type"`
	Version    int64  `dynamodbav:"version"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ProfileDynamoRepository persists Profile entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// balance is stored in cents; version is the optimistic-lock counter bumped by
// every balance write in LedgerDynamoRepository.

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) Create(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	it := toProfileItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Profile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func toProfileItem(p entities.Profile) profileItem {
	return profileItem{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Profession: p.Profession,
		Balance:    int64(p.Balance),
		Type:       string(p.Type),
		Version:    p.Version,
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProfileItem(it profileItem) entities.Profile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Profile{
		ID:         it.ID,
		FirstName:  it.FirstName,
		LastName:   it.LastName,
		Profession: it.Profession,
		Balance:    entities.Cents(it.Balance),
		Type:       entities.ProfileType(it.Type),
		Version:    it.Version,
		CreatedAt:  createdAt,
	}
}
