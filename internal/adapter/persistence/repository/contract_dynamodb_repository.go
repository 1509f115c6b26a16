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

const (
	defaultContractsTableName = "contracts"
	contractsClientIDIndex    = "client_id-index"
	contractsContractorIndex  = "contractor_id-index"
)

type contractItem struct {
	ID           string `dynamodbav:"id"`
	Terms        string `dynamodbav:"terms"`
	Status       string `dynamodbav:"status"`
	ClientID     string `dynamodbav:"client_id"`
	ContractorID string `dynamodbav:"contractor_id"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: contractor_id-index (PK: contractor_id)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	it := toContractItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// ListByProfileID unions both role indexes; a profile is never on both sides
// of the same contract, so no dedup is needed.
func (r *ContractDynamoRepository) ListByProfileID(ctx context.Context, profileID string) ([]entities.Contract, error) {
	asClient, err := r.queryIndex(ctx, contractsClientIDIndex, "client_id", profileID)
	if err != nil {
		return nil, err
	}
	asContractor, err := r.queryIndex(ctx, contractsContractorIndex, "contractor_id", profileID)
	if err != nil {
		return nil, err
	}
	return append(asClient, asContractor...), nil
}

func (r *ContractDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	contracts := make([]entities.Contract, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		contracts = append(contracts, fromContractItem(it))
	}
	return contracts, nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:           c.ID,
		Terms:        c.Terms,
		Status:       string(c.Status),
		ClientID:     c.ClientID,
		ContractorID: c.ContractorID,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Contract{
		ID:           it.ID,
		Terms:        it.Terms,
		Status:       entities.ContractStatus(it.Status),
		ClientID:     it.ClientID,
		ContractorID: it.ContractorID,
		CreatedAt:    createdAt,
	}
}
