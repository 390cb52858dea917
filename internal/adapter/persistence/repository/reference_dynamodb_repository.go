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
	defaultEstablishmentsTableName = "establishments"
	defaultSpecialtiesTableName    = "specialties"
)

type establishmentItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Address   string `dynamodbav:"address,omitempty"`
	City      string `dynamodbav:"city,omitempty"`
	State     string `dynamodbav:"state,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
}

type specialtyItem struct {
	ID                   string  `dynamodbav:"id"`
	Name                 string  `dynamodbav:"name"`
	CoparticipationValue float64 `dynamodbav:"coparticipation_value"`
	Active               bool    `dynamodbav:"active"`
}

// EstablishmentDynamoRepository reads the establishments table (PK: id).
// Writes happen only through ReferralDynamoRepository.ApproveWithEstablishment.

type EstablishmentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IEstablishmentRepository = (*EstablishmentDynamoRepository)(nil)

func NewEstablishmentDynamoRepository(ddb DynamoDBAPI) *EstablishmentDynamoRepository {
	return &EstablishmentDynamoRepository{
		ddb:       ddb,
		tableName: establishmentsTable(),
	}
}

func establishmentsTable() string {
	return getenvDefault("ESTABLISHMENTS_TABLE", defaultEstablishmentsTableName)
}

func (r *EstablishmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Establishment, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Establishment{}, err
	}
	var it establishmentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Establishment{}, err
	}
	return fromEstablishmentItem(it), nil
}

func (r *EstablishmentDynamoRepository) List(ctx context.Context, activeOnly bool) ([]entities.Establishment, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if activeOnly {
		input.FilterExpression = aws.String("#active = :true")
		input.ExpressionAttributeNames = map[string]string{"#active": "active"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		}
	}
	raw, err := scanAll(ctx, r.ddb, input)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Establishment, 0, len(raw))
	for _, av := range raw {
		var it establishmentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEstablishmentItem(it))
	}
	return items, nil
}

func toEstablishmentItem(e entities.Establishment) establishmentItem {
	return establishmentItem{
		ID:        e.ID,
		Name:      e.Name,
		Address:   e.Address,
		City:      e.City,
		State:     e.State,
		Phone:     e.Phone,
		Active:    e.Active,
		CreatedAt: formatTime(e.CreatedAt),
	}
}

func fromEstablishmentItem(it establishmentItem) entities.Establishment {
	return entities.Establishment{
		ID:        it.ID,
		Name:      it.Name,
		Address:   it.Address,
		City:      it.City,
		State:     it.State,
		Phone:     it.Phone,
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

// SpecialtyDynamoRepository reads the specialties table (PK: id).

type SpecialtyDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISpecialtyRepository = (*SpecialtyDynamoRepository)(nil)

func NewSpecialtyDynamoRepository(ddb DynamoDBAPI) *SpecialtyDynamoRepository {
	return &SpecialtyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SPECIALTIES_TABLE", defaultSpecialtiesTableName),
	}
}

func (r *SpecialtyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Specialty, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Specialty{}, err
	}
	var it specialtyItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Specialty{}, err
	}
	return entities.Specialty(it), nil
}

func (r *SpecialtyDynamoRepository) List(ctx context.Context) ([]entities.Specialty, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Specialty, 0, len(raw))
	for _, av := range raw {
		var it specialtyItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.Specialty(it))
	}
	return items, nil
}
