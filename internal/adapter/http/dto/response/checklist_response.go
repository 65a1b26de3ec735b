package response

import (
	"fmt"
	"mecanica_checklist/internal/domain/entities"
	"time"
)

type ChecklistAnswerResponse struct {
	ItemID        string    `json:"item_id"`
	Tipo          string    `json:"tipo"`
	ValorBooleano *bool     `json:"valor_booleano,omitempty"`
	ValorTexto    *string   `json:"valor_texto,omitempty"`
	ValorNumerico *float64  `json:"valor_numerico,omitempty"`
	Observacao    string    `json:"observacao,omitempty"`
	RespondidoEm  time.Time `json:"respondido_em"`
}

func FromChecklistAnswer(a entities.ChecklistAnswer) ChecklistAnswerResponse {
	return ChecklistAnswerResponse{
		ItemID:        a.ItemID,
		Tipo:          string(a.Value.Type),
		ValorBooleano: a.Value.Bool,
		ValorTexto:    a.Value.Text,
		ValorNumerico: a.Value.Number,
		Observacao:    a.Note,
		RespondidoEm:  a.AnsweredAt,
	}
}

type ChecklistResponse struct {
	ChecklistID     string                    `json:"checklist_id"`
	ID              string                    `json:"id"`
	TemplateID      string                    `json:"template_id"`
	OSID            string                    `json:"os_id,omitempty"`
	VehicleID       string                    `json:"veiculo_id,omitempty"`
	EmployeeID      string                    `json:"funcionario_id,omitempty"`
	Status          string                    `json:"status"`
	Observacoes     string                    `json:"observacoes,omitempty"`
	DataInicio      time.Time                 `json:"data_inicio"`
	DataFinalizacao *time.Time                `json:"data_finalizacao,omitempty"`
	Respostas       []ChecklistAnswerResponse `json:"respostas,omitempty"`
}

func FromChecklist(c entities.Checklist) ChecklistResponse {
	return ChecklistResponse{
		ChecklistID:     c.ID,
		ID:              c.ID,
		TemplateID:      c.TemplateID,
		OSID:            c.OSID,
		VehicleID:       c.VehicleID,
		EmployeeID:      c.EmployeeID,
		Status:          string(c.Status),
		Observacoes:     c.Notes,
		DataInicio:      c.StartedAt,
		DataFinalizacao: c.FinishedAt,
	}
}

func FromChecklistWithAnswers(c entities.Checklist, answers []entities.ChecklistAnswer) ChecklistResponse {
	resp := FromChecklist(c)
	resp.Respostas = make([]ChecklistAnswerResponse, 0, len(answers))
	for _, a := range answers {
		resp.Respostas = append(resp.Respostas, FromChecklistAnswer(a))
	}
	return resp
}

// RequiredAnswersResponse is the 422 body for a finalize attempt with pending
// required questions. ItensPendentes lets the UI highlight the exact items.
type RequiredAnswersResponse struct {
	Code           string   `json:"code"`
	Message        string   `json:"message"`
	Quantidade     int      `json:"quantidade"`
	ItensPendentes []string `json:"itens_pendentes"`
}

func FromRequiredAnswers(missingItemIDs []string) RequiredAnswersResponse {
	return RequiredAnswersResponse{
		Code:           "REQUIRED_ANSWERS_PENDING",
		Message:        fmt.Sprintf("%d required question(s) still need a response", len(missingItemIDs)),
		Quantidade:     len(missingItemIDs),
		ItensPendentes: missingItemIDs,
	}
}
