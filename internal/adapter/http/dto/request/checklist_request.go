package request

import (
	"mecanica_checklist/internal/domain/entities"
	"strings"
)

// StartChecklistRequest starts a checklist instance from a template,
// optionally linked to an OS, a vehicle and an employee.
type StartChecklistRequest struct {
	TemplateID  string `json:"template_id" binding:"required"`
	OSID        string `json:"os_id"`
	VehicleID   string `json:"veiculo_id"`
	EmployeeID  string `json:"funcionario_id"`
	Observacoes string `json:"observacoes"`
}

func (r StartChecklistRequest) ResolveTemplateID() string {
	return strings.TrimSpace(r.TemplateID)
}

// AnswerPayload is one answer inside a save/finalize batch. The value is
// tagged by `tipo`; exactly one of the valor_* fields is expected to be set,
// matching the template item's tipo_resposta.
type AnswerPayload struct {
	ItemID        string   `json:"item_id" binding:"required"`
	Tipo          string   `json:"tipo"`
	ValorBooleano *bool    `json:"valor_booleano"`
	ValorTexto    *string  `json:"valor_texto"`
	ValorNumerico *float64 `json:"valor_numerico"`
	Observacao    string   `json:"observacao"`
}

func (p AnswerPayload) ToAnswerValue() entities.AnswerValue {
	return entities.AnswerValue{
		Type:   entities.AnswerType(strings.TrimSpace(p.Tipo)),
		Bool:   p.ValorBooleano,
		Text:   p.ValorTexto,
		Number: p.ValorNumerico,
	}
}

// SaveAnswersRequest is the SaveChecklistProgress payload.
type SaveAnswersRequest struct {
	Respostas []AnswerPayload `json:"respostas" binding:"required"`
}

// FinalizeChecklistRequest optionally carries a last answer batch, persisted
// together with the finalize action.
type FinalizeChecklistRequest struct {
	Respostas []AnswerPayload `json:"respostas"`
}
