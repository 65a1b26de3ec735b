package repository

import (
	"context"
	"time"

	"mecanica_checklist/internal/domain/entities"
	"mecanica_checklist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTemplatesTableName = "checklist_templates"

type templateQuestionItem struct {
	ID       string   `dynamodbav:"id"`
	Question string   `dynamodbav:"pergunta"`
	Type     string   `dynamodbav:"tipo_resposta"`
	Required bool     `dynamodbav:"obrigatoria"`
	Options  []string `dynamodbav:"opcoes,omitempty"`
	Order    int      `dynamodbav:"ordem"`
}

type checklistTemplateItem struct {
	ID        string                 `dynamodbav:"id"`
	Name      string                 `dynamodbav:"nome"`
	Items     []templateQuestionItem `dynamodbav:"itens"`
	CreatedAt string                 `dynamodbav:"created_at"`
}

// ChecklistTemplateDynamoRepository persists ChecklistTemplate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Templates are write-once; there is no update path.

type ChecklistTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistTemplateRepository = (*ChecklistTemplateDynamoRepository)(nil)

func NewChecklistTemplateDynamoRepository(ddb *dynamodb.Client) *ChecklistTemplateDynamoRepository {
	return &ChecklistTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLIST_TEMPLATES_TABLE", defaultTemplatesTableName),
	}
}

func (r *ChecklistTemplateDynamoRepository) Create(ctx context.Context, t entities.ChecklistTemplate) (entities.ChecklistTemplate, error) {
	it := toChecklistTemplateItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChecklistTemplate{}, err
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
		return entities.ChecklistTemplate{}, err
	}
	return t, nil
}

func (r *ChecklistTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChecklistTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChecklistTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChecklistTemplate{}, nil
	}

	var it checklistTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChecklistTemplate{}, err
	}
	return fromChecklistTemplateItem(it), nil
}

func toChecklistTemplateItem(t entities.ChecklistTemplate) checklistTemplateItem {
	items := make([]templateQuestionItem, 0, len(t.Items))
	for _, q := range t.Items {
		items = append(items, templateQuestionItem{
			ID:       q.ID,
			Question: q.Question,
			Type:     string(q.Type),
			Required: q.Required,
			Options:  q.Options,
			Order:    q.Order,
		})
	}
	return checklistTemplateItem{
		ID:        t.ID,
		Name:      t.Name,
		Items:     items,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromChecklistTemplateItem(it checklistTemplateItem) entities.ChecklistTemplate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	items := make([]entities.ChecklistTemplateItem, 0, len(it.Items))
	for _, q := range it.Items {
		items = append(items, entities.ChecklistTemplateItem{
			ID:       q.ID,
			Question: q.Question,
			Type:     entities.AnswerType(q.Type),
			Required: q.Required,
			Options:  q.Options,
			Order:    q.Order,
		})
	}
	return entities.ChecklistTemplate{
		ID:        it.ID,
		Name:      it.Name,
		Items:     items,
		CreatedAt: createdAt,
	}
}
