package repository

import (
	"context"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID                   string  `dynamodbav:"id"`
	ClientID             string  `dynamodbav:"client_id"`
	ClientName           string  `dynamodbav:"client_name,omitempty"`
	ClientEmail          string  `dynamodbav:"client_email,omitempty"`
	SpecialtyID          string  `dynamodbav:"specialty_id"`
	EstablishmentID      string  `dynamodbav:"establishment_id,omitempty"`
	Status               string  `dynamodbav:"status"`
	PreferredDate        string  `dynamodbav:"preferred_date,omitempty"`
	ScheduledAt          string  `dynamodbav:"scheduled_at,omitempty"`
	CoparticipationValue float64 `dynamodbav:"coparticipation_value"`
	Paid                 bool    `dynamodbav:"paid"`
	PaidAt               string  `dynamodbav:"paid_at,omitempty"`
	ClientClaimedPayment bool    `dynamodbav:"client_claimed_payment"`
	ClientClaimedAt      string  `dynamodbav:"client_claimed_at,omitempty"`
	PixPayload           string  `dynamodbav:"pix_payload,omitempty"`
	PixQRImage           string  `dynamodbav:"pix_qr_image,omitempty"`
	PaymentLink          string  `dynamodbav:"payment_link,omitempty"`
	ClientNotes          string  `dynamodbav:"client_notes,omitempty"`
	StaffNotes           string  `dynamodbav:"staff_notes,omitempty"`
	CancellationReason   string  `dynamodbav:"cancellation_reason,omitempty"`
	ConfirmedAt          string  `dynamodbav:"confirmed_at,omitempty"`
	PerformedAt          string  `dynamodbav:"performed_at,omitempty"`
	CancelledAt          string  `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt            string  `dynamodbav:"created_at"`
	UpdatedAt            string  `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id, SK: created_at)
//   - GSI: status-index (PK: status, SK: created_at)

type AppointmentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoDBAPI) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Appointment{}, err
	}
	return decodeAppointment(raw)
}

func (r *AppointmentDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Appointment, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, clientIDIndex, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	return decodeAppointments(raw)
}

func (r *AppointmentDynamoRepository) ListByStatus(ctx context.Context, status entities.AppointmentStatus) ([]entities.Appointment, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, statusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	return decodeAppointments(raw)
}

func (r *AppointmentDynamoRepository) Update(ctx context.Context, id string, expected []entities.AppointmentStatus, upd entities.AppointmentUpdate) (entities.Appointment, error) {
	b := newUpdateBuilder()
	if upd.Status != nil {
		b.setString("status", string(*upd.Status))
	}
	if upd.ScheduledAt != nil {
		b.setTime("scheduled_at", *upd.ScheduledAt)
	}
	if upd.EstablishmentID != nil {
		b.setString("establishment_id", *upd.EstablishmentID)
	}
	if upd.StaffNotes != nil {
		b.setString("staff_notes", *upd.StaffNotes)
	}
	if upd.CancellationReason != nil {
		b.setString("cancellation_reason", *upd.CancellationReason)
	}
	if upd.ConfirmedAt != nil {
		b.setTime("confirmed_at", *upd.ConfirmedAt)
	}
	if upd.PerformedAt != nil {
		b.setTime("performed_at", *upd.PerformedAt)
	}
	if upd.CancelledAt != nil {
		b.setTime("cancelled_at", *upd.CancelledAt)
	}
	if upd.Paid != nil {
		b.setBool("paid", *upd.Paid)
	}
	if upd.PaidAt != nil {
		b.setTime("paid_at", *upd.PaidAt)
	}
	if upd.ClientClaimedPayment != nil {
		b.setBool("client_claimed_payment", *upd.ClientClaimedPayment)
	}
	if upd.ClientClaimedAt != nil {
		b.setTime("client_claimed_at", *upd.ClientClaimedAt)
	}
	if upd.PixPayload != nil {
		b.setString("pix_payload", *upd.PixPayload)
	}
	if upd.PixQRImage != nil {
		b.setString("pix_qr_image", *upd.PixQRImage)
	}
	if upd.PaymentLink != nil {
		b.setString("payment_link", *upd.PaymentLink)
	}

	raw, err := guardedUpdate(ctx, r.ddb, r.tableName, id, b, statusStrings(expected))
	if err != nil || raw == nil {
		return entities.Appointment{}, err
	}
	return decodeAppointment(raw)
}

func decodeAppointment(raw map[string]types.AttributeValue) (entities.Appointment, error) {
	var it appointmentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func decodeAppointments(raw []map[string]types.AttributeValue) ([]entities.Appointment, error) {
	items := make([]entities.Appointment, 0, len(raw))
	for _, av := range raw {
		a, err := decodeAppointment(av)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:                   a.ID,
		ClientID:             a.ClientID,
		ClientName:           a.ClientName,
		ClientEmail:          a.ClientEmail,
		SpecialtyID:          a.SpecialtyID,
		EstablishmentID:      a.EstablishmentID,
		Status:               string(a.Status),
		PreferredDate:        formatTimePtr(a.PreferredDate),
		ScheduledAt:          formatTimePtr(a.ScheduledAt),
		CoparticipationValue: a.CoparticipationValue,
		Paid:                 a.Paid,
		PaidAt:               formatTimePtr(a.PaidAt),
		ClientClaimedPayment: a.ClientClaimedPayment,
		ClientClaimedAt:      formatTimePtr(a.ClientClaimedAt),
		PixPayload:           a.PixPayload,
		PixQRImage:           a.PixQRImage,
		PaymentLink:          a.PaymentLink,
		ClientNotes:          a.ClientNotes,
		StaffNotes:           a.StaffNotes,
		CancellationReason:   a.CancellationReason,
		ConfirmedAt:          formatTimePtr(a.ConfirmedAt),
		PerformedAt:          formatTimePtr(a.PerformedAt),
		CancelledAt:          formatTimePtr(a.CancelledAt),
		CreatedAt:            formatTime(a.CreatedAt),
		UpdatedAt:            formatTime(a.UpdatedAt),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:                   it.ID,
		ClientID:             it.ClientID,
		ClientName:           it.ClientName,
		ClientEmail:          it.ClientEmail,
		SpecialtyID:          it.SpecialtyID,
		EstablishmentID:      it.EstablishmentID,
		Status:               entities.AppointmentStatus(it.Status),
		PreferredDate:        parseTimePtr(it.PreferredDate),
		ScheduledAt:          parseTimePtr(it.ScheduledAt),
		CoparticipationValue: it.CoparticipationValue,
		Paid:                 it.Paid,
		PaidAt:               parseTimePtr(it.PaidAt),
		ClientClaimedPayment: it.ClientClaimedPayment,
		ClientClaimedAt:      parseTimePtr(it.ClientClaimedAt),
		PixPayload:           it.PixPayload,
		PixQRImage:           it.PixQRImage,
		PaymentLink:          it.PaymentLink,
		ClientNotes:          it.ClientNotes,
		StaffNotes:           it.StaffNotes,
		CancellationReason:   it.CancellationReason,
		ConfirmedAt:          parseTimePtr(it.ConfirmedAt),
		PerformedAt:          parseTimePtr(it.PerformedAt),
		CancelledAt:          parseTimePtr(it.CancelledAt),
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
