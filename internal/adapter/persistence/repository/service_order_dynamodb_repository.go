package repository

import (
	"context"
	"errors"
	"time"

	"mecanica_checklist/internal/domain/entities"
	"mecanica_checklist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceOrdersTableName = "service_orders"

type serviceOrderItem struct {
	ID           string `dynamodbav:"id"`
	Number       string `dynamodbav:"numero,omitempty"`
	Status       string `dynamodbav:"status"`
	StatusName   string `dynamodbav:"status_ordem_servico"`
	ClosingNotes string `dynamodbav:"observacoes_fechamento,omitempty"`
	ClosedAt     string `dynamodbav:"data_encerramento,omitempty"`
}

// ServiceOrderDynamoRepository reads and terminally closes ServiceOrder rows.
//
// Table requirements:
//   - PK: id (string)
//
// Rows are created by the upstream OS service; this repository never inserts.
// Close is conditional on the status name not being in the closed set, which
// makes a repeated or concurrent close fail the condition instead of
// overwriting the first terminal transition.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Close(ctx context.Context, id, statusFinal, closingNotes string, closedAt time.Time) (entities.ServiceOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND NOT (#status_name IN (:concluida, :cancelada, :finalizada))"),
		UpdateExpression:    aws.String("SET #status = :status_final, #status_name = :status_final, #notes = :notes, #closed_at = :closed_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status_final": &types.AttributeValueMemberS{Value: statusFinal},
			":notes":        &types.AttributeValueMemberS{Value: closingNotes},
			":closed_at":    &types.AttributeValueMemberS{Value: closedAt.UTC().Format(time.RFC3339Nano)},
			":concluida":    &types.AttributeValueMemberS{Value: entities.OrderStatusConcluida},
			":cancelada":    &types.AttributeValueMemberS{Value: entities.OrderStatusCancelada},
			":finalizada":   &types.AttributeValueMemberS{Value: entities.OrderStatusFinalizada},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#status_name": "status_ordem_servico",
			"#notes":       "observacoes_fechamento",
			"#closed_at":   "data_encerramento",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:           it.ID,
		Number:       it.Number,
		Status:       it.Status,
		StatusName:   it.StatusName,
		ClosingNotes: it.ClosingNotes,
	}
	if it.ClosedAt != "" {
		closedAt, err := time.Parse(time.RFC3339Nano, it.ClosedAt)
		if err == nil {
			o.ClosedAt = &closedAt
		}
	}
	return o
}
