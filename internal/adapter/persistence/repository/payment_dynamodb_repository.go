package repository

import (
	"context"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "payments"
	paymentsAppointmentIDIndex  = "appointment_id-index"
)

type paymentItem struct {
	ID                string  `dynamodbav:"id"`
	AppointmentID     string  `dynamodbav:"appointment_id"`
	Amount            float64 `dynamodbav:"amount"`
	Status            string  `dynamodbav:"status"`
	ProviderLink      string  `dynamodbav:"provider_link,omitempty"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	PaidAt            string  `dynamodbav:"paid_at,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: appointment_id-index (PK: appointment_id)

type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

// GetByAppointmentID returns the payment of an appointment, or a zero-value
// Payment when none was created.
func (r *PaymentDynamoRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsAppointmentIDIndex),
		KeyConditionExpression: aws.String("appointment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: appointmentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, id string, upd entities.PaymentUpdate) (entities.Payment, error) {
	b := newUpdateBuilder()
	if upd.Status != nil {
		b.setString("status", string(*upd.Status))
	}
	if upd.PaidAt != nil {
		b.setTime("paid_at", *upd.PaidAt)
	}
	if upd.ProviderLink != nil {
		b.setString("provider_link", *upd.ProviderLink)
	}
	if upd.ProviderPaymentID != nil {
		b.setString("provider_payment_id", *upd.ProviderPaymentID)
	}

	raw, err := guardedUpdate(ctx, r.ddb, r.tableName, id, b, nil)
	if err != nil || raw == nil {
		return entities.Payment{}, err
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		AppointmentID:     p.AppointmentID,
		Amount:            p.Amount,
		Status:            string(p.Status),
		ProviderLink:      p.ProviderLink,
		ProviderPaymentID: p.ProviderPaymentID,
		CreatedAt:         formatTime(p.CreatedAt),
		PaidAt:            formatTimePtr(p.PaidAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.ID,
		AppointmentID:     it.AppointmentID,
		Amount:            it.Amount,
		Status:            entities.PaymentStatus(it.Status),
		ProviderLink:      it.ProviderLink,
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         parseTime(it.CreatedAt),
		PaidAt:            parseTimePtr(it.PaidAt),
	}
}
