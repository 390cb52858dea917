package repository

import (
	"context"
	"errors"
	"time"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReferralsTableName = "referrals"

type referralItem struct {
	ID                string `dynamodbav:"id"`
	ClientID          string `dynamodbav:"client_id"`
	EstablishmentName string `dynamodbav:"establishment_name"`
	Address           string `dynamodbav:"address,omitempty"`
	City              string `dynamodbav:"city,omitempty"`
	State             string `dynamodbav:"state,omitempty"`
	Phone             string `dynamodbav:"phone,omitempty"`
	Notes             string `dynamodbav:"notes,omitempty"`
	Status            string `dynamodbav:"status"`
	RejectionReason   string `dynamodbav:"rejection_reason,omitempty"`
	EstablishmentID   string `dynamodbav:"establishment_id,omitempty"`
	ReviewedAt        string `dynamodbav:"reviewed_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ReferralDynamoRepository persists Referral entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id, SK: created_at)
//   - GSI: status-index (PK: status, SK: created_at)

type ReferralDynamoRepository struct {
	ddb                 DynamoDBAPI
	tableName           string
	establishmentsTable string
}

var _ interfaces.IReferralRepository = (*ReferralDynamoRepository)(nil)

func NewReferralDynamoRepository(ddb DynamoDBAPI) *ReferralDynamoRepository {
	return &ReferralDynamoRepository{
		ddb:                 ddb,
		tableName:           getenvDefault("REFERRALS_TABLE", defaultReferralsTableName),
		establishmentsTable: establishmentsTable(),
	}
}

func (r *ReferralDynamoRepository) Create(ctx context.Context, ref entities.Referral) (entities.Referral, error) {
	av, err := attributevalue.MarshalMap(toReferralItem(ref))
	if err != nil {
		return entities.Referral{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Referral{}, err
	}
	return ref, nil
}

func (r *ReferralDynamoRepository) GetByID(ctx context.Context, id string) (entities.Referral, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Referral{}, err
	}
	return decodeReferral(raw)
}

func (r *ReferralDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Referral, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, clientIDIndex, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	return decodeReferrals(raw)
}

func (r *ReferralDynamoRepository) ListByStatus(ctx context.Context, status entities.ReferralStatus) ([]entities.Referral, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, statusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	return decodeReferrals(raw)
}

func (r *ReferralDynamoRepository) Update(ctx context.Context, id string, expected []entities.ReferralStatus, upd entities.ReferralUpdate) (entities.Referral, error) {
	b := newUpdateBuilder()
	if upd.Status != nil {
		b.setString("status", string(*upd.Status))
	}
	if upd.RejectionReason != nil {
		b.setString("rejection_reason", *upd.RejectionReason)
	}
	if upd.ReviewedAt != nil {
		b.setTime("reviewed_at", *upd.ReviewedAt)
	}

	raw, err := guardedUpdate(ctx, r.ddb, r.tableName, id, b, statusStrings(expected))
	if err != nil || raw == nil {
		return entities.Referral{}, err
	}
	return decodeReferral(raw)
}

// ApproveWithEstablishment flips a pending referral to approved and inserts
// est in a single TransactWriteItems call. Either both writes land or none.
func (r *ReferralDynamoRepository) ApproveWithEstablishment(ctx context.Context, id string, est entities.Establishment, reviewedAt time.Time) (entities.Referral, error) {
	estAV, err := attributevalue.MarshalMap(toEstablishmentItem(est))
	if err != nil {
		return entities.Referral{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 idKey(id),
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
					UpdateExpression:    aws.String("SET #status = :approved, #establishment_id = :eid, #reviewed_at = :reviewed_at, #updated_at = :reviewed_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":               "id",
						"#status":           "status",
						"#establishment_id": "establishment_id",
						"#reviewed_at":      "reviewed_at",
						"#updated_at":       "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":     &types.AttributeValueMemberS{Value: string(entities.ReferralStatusPending)},
						":approved":    &types.AttributeValueMemberS{Value: string(entities.ReferralStatusApproved)},
						":eid":         &types.AttributeValueMemberS{Value: est.ID},
						":reviewed_at": &types.AttributeValueMemberS{Value: formatTime(reviewedAt)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.establishmentsTable),
					Item:                estAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if referralConditionFailed(err) {
			return entities.Referral{}, nil
		}
		return entities.Referral{}, err
	}
	return r.GetByID(ctx, id)
}

// referralConditionFailed reports whether the transaction was cancelled
// because the referral update condition did not hold.
func referralConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if len(tce.CancellationReasons) == 0 {
		return false
	}
	return aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed"
}

func decodeReferral(raw map[string]types.AttributeValue) (entities.Referral, error) {
	var it referralItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Referral{}, err
	}
	return fromReferralItem(it), nil
}

func decodeReferrals(raw []map[string]types.AttributeValue) ([]entities.Referral, error) {
	items := make([]entities.Referral, 0, len(raw))
	for _, av := range raw {
		ref, err := decodeReferral(av)
		if err != nil {
			return nil, err
		}
		items = append(items, ref)
	}
	return items, nil
}

func toReferralItem(ref entities.Referral) referralItem {
	return referralItem{
		ID:                ref.ID,
		ClientID:          ref.ClientID,
		EstablishmentName: ref.EstablishmentName,
		Address:           ref.Address,
		City:              ref.City,
		State:             ref.State,
		Phone:             ref.Phone,
		Notes:             ref.Notes,
		Status:            string(ref.Status),
		RejectionReason:   ref.RejectionReason,
		EstablishmentID:   ref.EstablishmentID,
		ReviewedAt:        formatTimePtr(ref.ReviewedAt),
		CreatedAt:         formatTime(ref.CreatedAt),
		UpdatedAt:         formatTime(ref.UpdatedAt),
	}
}

func fromReferralItem(it referralItem) entities.Referral {
	return entities.Referral{
		ID:                it.ID,
		ClientID:          it.ClientID,
		EstablishmentName: it.EstablishmentName,
		Address:           it.Address,
		City:              it.City,
		State:             it.State,
		Phone:             it.Phone,
		Notes:             it.Notes,
		Status:            entities.ReferralStatus(it.Status),
		RejectionReason:   it.RejectionReason,
		EstablishmentID:   it.EstablishmentID,
		ReviewedAt:        parseTimePtr(it.ReviewedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
