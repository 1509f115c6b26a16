package repository

import (
	"context"
	"strconv"
	"time"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName = "jobs"
	jobsContractIDIndex  = "contract_id-index"
	jobsPaidIndex        = "paid-index"

	// paidFlagValue is the single partition value of the paid-index; the
	// attribute is only written when a job is paid, so the index holds exactly
	// the paid jobs keyed by payment_date.
	paidFlagValue = "PAID"

	// paymentDateLayout is fixed-width. RFC3339Nano trims trailing zeros, and
	// the paid-index BETWEEN compares sort keys byte-wise, so a variable-width
	// key would order "…00:00:00.5Z" before "…00:00:00Z" and drop sub-second
	// payments at the window edges.
	paymentDateLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// paymentDateKey renders the paid-index sort key; every payment_date write
// and query bound must go through it so byte order stays chronological.
func paymentDateKey(t time.Time) string {
	return t.UTC().Format(paymentDateLayout)
}

type jobItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Price       int64  `dynamodbav:"price"`
	Paid        bool   `dynamodbav:"paid"`
	PaidFlag    string `dynamodbav:"paid_flag,omitempty"`
	PaymentDate string `dynamodbav:"payment_date,omitempty"`
	ContractID  string `dynamodbav:"contract_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
//   - GSI: paid-index (PK: paid_flag, SK: payment_date)
//
// price is stored in cents. The paid flip itself happens in
// LedgerDynamoRepository as part of the payment transaction.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	it := toJobItem(j)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListUnpaidByContractIDs(ctx context.Context, contractIDs []string) ([]entities.Job, error) {
	var jobs []entities.Job
	for _, contractID := range contractIDs {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(jobsContractIDIndex),
			KeyConditionExpression: aws.String("contract_id = :cid"),
			FilterExpression:       aws.String("paid = :unpaid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid":    &types.AttributeValueMemberS{Value: contractID},
				":unpaid": &types.AttributeValueMemberBOOL{Value: false},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobItem(it))
		}
	}
	return jobs, nil
}

func (r *JobDynamoRepository) ListPaidBetween(ctx context.Context, start, end time.Time) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsPaidIndex),
		KeyConditionExpression: aws.String("paid_flag = :flag AND payment_date BETWEEN :start AND :end"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":flag":  &types.AttributeValueMemberS{Value: paidFlagValue},
			":start": &types.AttributeValueMemberS{Value: paymentDateKey(start)},
			":end":   &types.AttributeValueMemberS{Value: paymentDateKey(end)},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:          j.ID,
		Description: j.Description,
		Price:       int64(j.Price),
		Paid:        j.Paid,
		ContractID:  j.ContractID,
		CreatedAt:   j.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if j.Paid && j.PaymentDate != nil {
		it.PaidFlag = paidFlagValue
		it.PaymentDate = paymentDateKey(*j.PaymentDate)
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	j := entities.Job{
		ID:          it.ID,
		Description: it.Description,
		Price:       entities.Cents(it.Price),
		Paid:        it.Paid,
		ContractID:  it.ContractID,
		CreatedAt:   createdAt,
	}
	if it.PaymentDate != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.PaymentDate); err == nil {
			j.PaymentDate = &dt
		}
	}
	return j
}

func centsToString(c entities.Cents) string {
	return strconv.FormatInt(int64(c), 10)
}
