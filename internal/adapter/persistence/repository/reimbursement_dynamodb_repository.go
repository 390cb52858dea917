package repository

import (
	"context"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReimbursementsTableName = "reimbursements"

type reimbursementItem struct {
	ID              string   `dynamodbav:"id"`
	ClientID        string   `dynamodbav:"client_id"`
	ClientName      string   `dynamodbav:"client_name,omitempty"`
	ClientCPF       string   `dynamodbav:"client_cpf,omitempty"`
	ClientEmail     string   `dynamodbav:"client_email,omitempty"`
	ClaimType       string   `dynamodbav:"claim_type"`
	Status          string   `dynamodbav:"status"`
	Description     string   `dynamodbav:"description,omitempty"`
	ExpenseDate     string   `dynamodbav:"expense_date,omitempty"`
	EstimatedValue  float64  `dynamodbav:"estimated_value"`
	ApprovedValue   *float64 `dynamodbav:"approved_value,omitempty"`
	PixKey          string   `dynamodbav:"pix_key"`
	PixKeyType      string   `dynamodbav:"pix_key_type"`
	Documents       []string `dynamodbav:"documents,omitempty"`
	RejectionReason string   `dynamodbav:"rejection_reason,omitempty"`
	PaymentNotes    string   `dynamodbav:"payment_notes,omitempty"`
	ReviewStartedAt string   `dynamodbav:"review_started_at,omitempty"`
	ApprovedAt      string   `dynamodbav:"approved_at,omitempty"`
	PaidAt          string   `dynamodbav:"paid_at,omitempty"`
	CancelledAt     string   `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// ReimbursementDynamoRepository persists Reimbursement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id, SK: created_at)
//   - GSI: status-index (PK: status, SK: created_at)

type ReimbursementDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IReimbursementRepository = (*ReimbursementDynamoRepository)(nil)

func NewReimbursementDynamoRepository(ddb DynamoDBAPI) *ReimbursementDynamoRepository {
	return &ReimbursementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REIMBURSEMENTS_TABLE", defaultReimbursementsTableName),
	}
}

func (r *ReimbursementDynamoRepository) Create(ctx context.Context, e entities.Reimbursement) (entities.Reimbursement, error) {
	av, err := attributevalue.MarshalMap(toReimbursementItem(e))
	if err != nil {
		return entities.Reimbursement{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Reimbursement{}, err
	}
	return e, nil
}

func (r *ReimbursementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Reimbursement, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Reimbursement{}, err
	}
	return decodeReimbursement(raw)
}

func (r *ReimbursementDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Reimbursement, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, clientIDIndex, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	return decodeReimbursements(raw)
}

func (r *ReimbursementDynamoRepository) ListByStatus(ctx context.Context, status entities.ReimbursementStatus) ([]entities.Reimbursement, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, statusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	return decodeReimbursements(raw)
}

func (r *ReimbursementDynamoRepository) Update(ctx context.Context, id string, expected []entities.ReimbursementStatus, upd entities.ReimbursementUpdate) (entities.Reimbursement, error) {
	b := newUpdateBuilder()
	if upd.Status != nil {
		b.setString("status", string(*upd.Status))
	}
	switch {
	case upd.ClearApprovedValue:
		b.remove("approved_value")
	case upd.ApprovedValue != nil:
		b.setNumber("approved_value", *upd.ApprovedValue)
	}
	if upd.RejectionReason != nil {
		b.setString("rejection_reason", *upd.RejectionReason)
	}
	if upd.PaymentNotes != nil {
		b.setString("payment_notes", *upd.PaymentNotes)
	}
	if upd.ReviewStartedAt != nil {
		b.setTime("review_started_at", *upd.ReviewStartedAt)
	}
	if upd.ApprovedAt != nil {
		b.setTime("approved_at", *upd.ApprovedAt)
	}
	if upd.PaidAt != nil {
		b.setTime("paid_at", *upd.PaidAt)
	}
	if upd.CancelledAt != nil {
		b.setTime("cancelled_at", *upd.CancelledAt)
	}

	raw, err := guardedUpdate(ctx, r.ddb, r.tableName, id, b, statusStrings(expected))
	if err != nil || raw == nil {
		return entities.Reimbursement{}, err
	}
	return decodeReimbursement(raw)
}

func decodeReimbursement(raw map[string]types.AttributeValue) (entities.Reimbursement, error) {
	var it reimbursementItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Reimbursement{}, err
	}
	return fromReimbursementItem(it), nil
}

func decodeReimbursements(raw []map[string]types.AttributeValue) ([]entities.Reimbursement, error) {
	items := make([]entities.Reimbursement, 0, len(raw))
	for _, av := range raw {
		e, err := decodeReimbursement(av)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func toReimbursementItem(e entities.Reimbursement) reimbursementItem {
	return reimbursementItem{
		ID:              e.ID,
		ClientID:        e.ClientID,
		ClientName:      e.ClientName,
		ClientCPF:       e.ClientCPF,
		ClientEmail:     e.ClientEmail,
		ClaimType:       string(e.ClaimType),
		Status:          string(e.Status),
		Description:     e.Description,
		ExpenseDate:     formatTimePtr(e.ExpenseDate),
		EstimatedValue:  e.EstimatedValue,
		ApprovedValue:   e.ApprovedValue,
		PixKey:          e.PixKey,
		PixKeyType:      string(e.PixKeyType),
		Documents:       e.Documents,
		RejectionReason: e.RejectionReason,
		PaymentNotes:    e.PaymentNotes,
		ReviewStartedAt: formatTimePtr(e.ReviewStartedAt),
		ApprovedAt:      formatTimePtr(e.ApprovedAt),
		PaidAt:          formatTimePtr(e.PaidAt),
		CancelledAt:     formatTimePtr(e.CancelledAt),
		CreatedAt:       formatTime(e.CreatedAt),
		UpdatedAt:       formatTime(e.UpdatedAt),
	}
}

func fromReimbursementItem(it reimbursementItem) entities.Reimbursement {
	return entities.Reimbursement{
		ID:              it.ID,
		ClientID:        it.ClientID,
		ClientName:      it.ClientName,
		ClientCPF:       it.ClientCPF,
		ClientEmail:     it.ClientEmail,
		ClaimType:       entities.ClaimType(it.ClaimType),
		Status:          entities.ReimbursementStatus(it.Status),
		Description:     it.Description,
		ExpenseDate:     parseTimePtr(it.ExpenseDate),
		EstimatedValue:  it.EstimatedValue,
		ApprovedValue:   it.ApprovedValue,
		PixKey:          it.PixKey,
		PixKeyType:      entities.PixKeyType(it.PixKeyType),
		Documents:       it.Documents,
		RejectionReason: it.RejectionReason,
		PaymentNotes:    it.PaymentNotes,
		ReviewStartedAt: parseTimePtr(it.ReviewStartedAt),
		ApprovedAt:      parseTimePtr(it.ApprovedAt),
		PaidAt:          parseTimePtr(it.PaidAt),
		CancelledAt:     parseTimePtr(it.CancelledAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
