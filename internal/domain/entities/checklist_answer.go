package entities

import (
	"strings"
	"time"
)

// AnswerValue is the polymorphic answer payload, tagged by the template item
// type instead of carrying an untyped field.
//
// Emptiness rules (IsEmpty) are per variant on purpose: a numeric 0 and a
// boolean false are valid answers, only a missing pointer or a blank string
// counts as unanswered.
type AnswerValue struct {
	Type   AnswerType `json:"tipo"`
	Bool   *bool      `json:"valor_booleano,omitempty"`
	Text   *string    `json:"valor_texto,omitempty"`
	Number *float64   `json:"valor_numerico,omitempty"`
}

// IsEmpty reports whether the value carries no usable answer for its variant.
func (v AnswerValue) IsEmpty() bool {
	switch v.Type {
	case AnswerTypeSimNao:
		return v.Bool == nil
	case AnswerTypeNumerico:
		return v.Number == nil
	case AnswerTypeTexto, AnswerTypeMultiplaEscolha:
		return v.Text == nil || strings.TrimSpace(*v.Text) == ""
	default:
		return true
	}
}

// MatchesItem reports whether the value is acceptable for the given template
// item: same variant tag and, for multipla_escolha, a value among the item
// options.
func (v AnswerValue) MatchesItem(item ChecklistTemplateItem) bool {
	if v.Type != item.Type {
		return false
	}
	if v.IsEmpty() {
		return false
	}
	if item.Type == AnswerTypeMultiplaEscolha {
		chosen := strings.TrimSpace(*v.Text)
		for _, opt := range item.Options {
			if opt == chosen {
				return true
			}
		}
		return false
	}
	return true
}

// ChecklistAnswer is one stored answer row.
//
// Storage model (DynamoDB):
//   - PK: checklist_id
//   - SK: item_id
//
// The composite key makes resubmission an upsert, never a duplicate row.
type ChecklistAnswer struct {
	ChecklistID string      `json:"checklist_id"`
	ItemID      string      `json:"item_id"`
	Value       AnswerValue `json:"resposta"`
	Note        string      `json:"observacao,omitempty"`
	AnsweredAt  time.Time   `json:"respondido_em"`
}
