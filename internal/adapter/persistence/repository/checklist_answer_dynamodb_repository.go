package repository

import (
	"context"
	"strconv"
	"time"

	"mecanica_checklist/internal/domain/entities"
	"mecanica_checklist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAnswersTableName = "checklist_answers"

type checklistAnswerItem struct {
	ChecklistID string  `dynamodbav:"checklist_id"`
	ItemID      string  `dynamodbav:"item_id"`
	Type        string  `dynamodbav:"tipo"`
	Bool        *bool   `dynamodbav:"valor_booleano,omitempty"`
	Text        *string `dynamodbav:"valor_texto,omitempty"`
	Number      string  `dynamodbav:"valor_numerico,omitempty"`
	Note        string  `dynamodbav:"observacao,omitempty"`
	AnsweredAt  string  `dynamodbav:"respondido_em"`
}

// ChecklistAnswerDynamoRepository persists ChecklistAnswer rows in DynamoDB.
//
// Table requirements:
//   - PK: checklist_id (string)
//   - SK: item_id (string)
//
// PutItem on the composite key is the upsert: resubmitting the same item
// replaces the row, which is exactly the uniqueness invariant the use case
// relies on.

type ChecklistAnswerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistAnswerRepository = (*ChecklistAnswerDynamoRepository)(nil)

func NewChecklistAnswerDynamoRepository(ddb *dynamodb.Client) *ChecklistAnswerDynamoRepository {
	return &ChecklistAnswerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLIST_ANSWERS_TABLE", defaultAnswersTableName),
	}
}

func (r *ChecklistAnswerDynamoRepository) Upsert(ctx context.Context, a entities.ChecklistAnswer) (entities.ChecklistAnswer, error) {
	it := toChecklistAnswerItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChecklistAnswer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ChecklistAnswer{}, err
	}
	return a, nil
}

func (r *ChecklistAnswerDynamoRepository) ListByChecklistID(ctx context.Context, checklistID string) ([]entities.ChecklistAnswer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("checklist_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: checklistID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	answers := make([]entities.ChecklistAnswer, 0, len(out.Items))
	for _, raw := range out.Items {
		var it checklistAnswerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		answers = append(answers, fromChecklistAnswerItem(it))
	}
	return answers, nil
}

func toChecklistAnswerItem(a entities.ChecklistAnswer) checklistAnswerItem {
	it := checklistAnswerItem{
		ChecklistID: a.ChecklistID,
		ItemID:      a.ItemID,
		Type:        string(a.Value.Type),
		Bool:        a.Value.Bool,
		Text:        a.Value.Text,
		Note:        a.Note,
		AnsweredAt:  a.AnsweredAt.UTC().Format(time.RFC3339Nano),
	}
	if a.Value.Number != nil {
		it.Number = floatToString(*a.Value.Number)
	}
	return it
}

func fromChecklistAnswerItem(it checklistAnswerItem) entities.ChecklistAnswer {
	answeredAt, _ := time.Parse(time.RFC3339Nano, it.AnsweredAt)
	value := entities.AnswerValue{
		Type: entities.AnswerType(it.Type),
		Bool: it.Bool,
		Text: it.Text,
	}
	if it.Number != "" {
		if n, err := strconv.ParseFloat(it.Number, 64); err == nil {
			value.Number = &n
		}
	}
	return entities.ChecklistAnswer{
		ChecklistID: it.ChecklistID,
		ItemID:      it.ItemID,
		Value:       value,
		Note:        it.Note,
		AnsweredAt:  answeredAt,
	}
}
