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

const (
	defaultChecklistsTableName = "checklists"
	checklistsOSIDIndex        = "os_id-index"
)

type checklistItem struct {
	ID         string `dynamodbav:"id"`
	TemplateID string `dynamodbav:"template_id"`
	OSID       string `dynamodbav:"os_id,omitempty"`
	VehicleID  string `dynamodbav:"veiculo_id,omitempty"`
	EmployeeID string `dynamodbav:"funcionario_id,omitempty"`
	Status     string `dynamodbav:"status"`
	Notes      string `dynamodbav:"observacoes,omitempty"`
	StartedAt  string `dynamodbav:"data_inicio"`
	FinishedAt string `dynamodbav:"data_finalizacao,omitempty"`
}

// ChecklistDynamoRepository persists Checklist instances in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: os_id-index (PK: os_id)
//
// Lifecycle transitions are conditional updates, so two concurrent finalize
// calls can never both succeed: the condition fails for the second writer and
// the method reports it with a zero-value entity.

type ChecklistDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistRepository = (*ChecklistDynamoRepository)(nil)

func NewChecklistDynamoRepository(ddb *dynamodb.Client) *ChecklistDynamoRepository {
	return &ChecklistDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLISTS_TABLE", defaultChecklistsTableName),
	}
}

func (r *ChecklistDynamoRepository) Create(ctx context.Context, c entities.Checklist) (entities.Checklist, error) {
	it := toChecklistItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Checklist{}, err
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
		return entities.Checklist{}, err
	}
	return c, nil
}

func (r *ChecklistDynamoRepository) GetByID(ctx context.Context, id string) (entities.Checklist, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Checklist{}, err
	}
	if len(out.Item) == 0 {
		return entities.Checklist{}, nil
	}

	var it checklistItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Checklist{}, err
	}
	return fromChecklistItem(it), nil
}

func (r *ChecklistDynamoRepository) GetByOSID(ctx context.Context, osID string) (entities.Checklist, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checklistsOSIDIndex),
		KeyConditionExpression: aws.String("os_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: osID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Checklist{}, err
	}
	if len(out.Items) == 0 {
		return entities.Checklist{}, nil
	}

	var it checklistItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Checklist{}, err
	}
	return fromChecklistItem(it), nil
}

func (r *ChecklistDynamoRepository) AdvanceToInProgress(ctx context.Context, id string) (entities.Checklist, error) {
	c, err := r.update(ctx, id,
		"SET #status = :em_andamento",
		"#status = :iniciado",
		map[string]types.AttributeValue{
			":em_andamento": &types.AttributeValueMemberS{Value: string(entities.ChecklistStatusEmAndamento)},
			":iniciado":     &types.AttributeValueMemberS{Value: string(entities.ChecklistStatusIniciado)},
		},
		map[string]string{"#status": "status"},
	)
	if err != nil {
		return entities.Checklist{}, err
	}
	if c.ID == "" {
		// Already past iniciado; the transition is monotonic, so read back.
		return r.GetByID(ctx, id)
	}
	return c, nil
}

func (r *ChecklistDynamoRepository) Finalize(ctx context.Context, id string, finishedAt time.Time) (entities.Checklist, error) {
	return r.update(ctx, id,
		"SET #status = :finalizado, #data_finalizacao = :data_finalizacao",
		"attribute_exists(#id) AND #status <> :finalizado",
		map[string]types.AttributeValue{
			":finalizado":       &types.AttributeValueMemberS{Value: string(entities.ChecklistStatusFinalizado)},
			":data_finalizacao": &types.AttributeValueMemberS{Value: finishedAt.UTC().Format(time.RFC3339Nano)},
		},
		map[string]string{"#status": "status", "#data_finalizacao": "data_finalizacao"},
	)
}

func (r *ChecklistDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr, conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Checklist, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Checklist{}, nil
		}
		return entities.Checklist{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Checklist{}, nil
	}
	var it checklistItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Checklist{}, err
	}
	return fromChecklistItem(it), nil
}

func toChecklistItem(c entities.Checklist) checklistItem {
	it := checklistItem{
		ID:         c.ID,
		TemplateID: c.TemplateID,
		OSID:       c.OSID,
		VehicleID:  c.VehicleID,
		EmployeeID: c.EmployeeID,
		Status:     string(c.Status),
		Notes:      c.Notes,
		StartedAt:  c.StartedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.FinishedAt != nil {
		it.FinishedAt = c.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromChecklistItem(it checklistItem) entities.Checklist {
	startedAt, _ := time.Parse(time.RFC3339Nano, it.StartedAt)
	c := entities.Checklist{
		ID:         it.ID,
		TemplateID: it.TemplateID,
		OSID:       it.OSID,
		VehicleID:  it.VehicleID,
		EmployeeID: it.EmployeeID,
		Status:     entities.ChecklistStatus(it.Status),
		Notes:      it.Notes,
		StartedAt:  startedAt,
	}
	if it.FinishedAt != "" {
		finishedAt, err := time.Parse(time.RFC3339Nano, it.FinishedAt)
		if err == nil {
			c.FinishedAt = &finishedAt
		}
	}
	return c
}
