package repository

import (
	"context"
	"errors"
	"log"
	"strconv"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	cancellationConditionFailed = "ConditionalCheckFailed"
	cancellationConflict        = "TransactionConflict"
)

// LedgerDynamoRepository is the atomic money-movement implementation on
// DynamoDB.
//
// TransactWriteItems gives the serializable-transaction semantics the ledger
// needs: all items commit together or not at all, condition expressions are
// evaluated against the committed state, and conflicting concurrent
// transactions cancel with per-item reasons. Those reasons are decoded back
// into the typed errors of the ledger port.

type LedgerDynamoRepository struct {
	ddb               *dynamodb.Client
	jobsTableName     string
	profilesTableName string
}

var _ interfaces.ILedgerTransaction = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:               ddb,
		jobsTableName:     getenvDefault("JOBS_TABLE", defaultJobsTableName),
		profilesTableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

// ExecutePayment commits the three-legged payment write: job paid flip,
// client debit, contractor credit. Item order matters — decodePaymentFailure
// maps cancellation reasons back to the job (0) and client (1) legs.
func (r *LedgerDynamoRepository) ExecutePayment(ctx context.Context, ins entities.PaymentInstruction) error {
	price := &types.AttributeValueMemberN{Value: centsToString(ins.Price)}
	one := &types.AttributeValueMemberN{Value: "1"}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.jobsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: ins.JobID},
					},
					UpdateExpression:    aws.String("SET paid = :paid, paid_flag = :flag, payment_date = :pd"),
					ConditionExpression: aws.String("attribute_exists(#id) AND paid = :unpaid"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":paid":   &types.AttributeValueMemberBOOL{Value: true},
						":unpaid": &types.AttributeValueMemberBOOL{Value: false},
						":flag":   &types.AttributeValueMemberS{Value: paidFlagValue},
						":pd":     &types.AttributeValueMemberS{Value: paymentDateKey(ins.PaymentDate)},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.profilesTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: ins.ClientID},
					},
					UpdateExpression:    aws.String("SET balance = balance - :price, version = version + :one"),
					ConditionExpression: aws.String("attribute_exists(#id) AND balance >= :price"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":price": price,
						":one":   one,
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.profilesTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: ins.ContractorID},
					},
					UpdateExpression:    aws.String("SET balance = balance + :price, version = version + :one"),
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":price": price,
						":one":   one,
					},
				},
			},
		},
	})
	if err != nil {
		return decodePaymentFailure(err)
	}
	return nil
}

// CreditBalance adds the deposit amount to the profile, guarded by the
// version observed when the caller computed the deposit cap. A concurrent
// balance write bumps the version and fails the condition, so the caller's
// cap decision is never applied to a balance it did not see.
func (r *LedgerDynamoRepository) CreditBalance(ctx context.Context, profileID string, amount entities.Cents, expectedVersion int64) (entities.Cents, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.profilesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: profileID},
		},
		UpdateExpression:    aws.String("SET balance = balance + :amount, version = version + :one"),
		ConditionExpression: aws.String("attribute_exists(#id) AND version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":  &types.AttributeValueMemberN{Value: centsToString(amount)},
			":one":     &types.AttributeValueMemberN{Value: "1"},
			":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return 0, interfaces.ErrStaleProfileVersion
		}
		return 0, err
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return 0, err
	}
	return entities.Cents(it.Balance), nil
}

// decodePaymentFailure translates a cancelled payment transaction into the
// ledger port's typed errors. Reason order follows the transact item order.
func decodePaymentFailure(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}

	for i, reason := range tce.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case cancellationConditionFailed:
			switch i {
			case 0:
				// Job leg: paid = false no longer holds.
				return interfaces.ErrJobAlreadyPaid
			case 1:
				// Client leg: balance >= price no longer holds.
				return interfaces.ErrInsufficientBalance
			}
			return interfaces.ErrTransactionConflict
		case cancellationConflict:
			return interfaces.ErrTransactionConflict
		}
	}

	log.Printf("[ledger][repository] transaction cancelled without a decodable reason: %v", err)
	return interfaces.ErrTransactionConflict
}
