package response

import (
	"mecanica_checklist/internal/domain/entities"
	"strings"
	"time"
)

type ServiceOrderResponse struct {
	OSID                  string     `json:"os_id"`
	ID                    string     `json:"id"`
	Numero                string     `json:"numero,omitempty"`
	Status                string     `json:"status"`
	StatusOrdemServico    string     `json:"status_ordem_servico"`
	ObservacoesFechamento string     `json:"observacoes_fechamento,omitempty"`
	DataEncerramento      *time.Time `json:"data_encerramento,omitempty"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		OSID:                  o.ID,
		ID:                    o.ID,
		Numero:                o.Number,
		Status:                o.Status,
		StatusOrdemServico:    o.StatusName,
		ObservacoesFechamento: o.ClosingNotes,
		DataEncerramento:      o.ClosedAt,
	}
}

type ClosingDecisionResponse struct {
	Resultado           string   `json:"resultado"`
	PodeFechar          bool     `json:"pode_fechar"`
	TemChecklist        bool     `json:"tem_checklist"`
	ChecklistFinalizado *bool    `json:"checklist_finalizado"`
	StatusAtual         string   `json:"status_atual"`
	MotivosImpedimento  []string `json:"motivos_impedimento"`
}

func FromClosingDecision(d entities.ClosingDecision) ClosingDecisionResponse {
	return ClosingDecisionResponse{
		Resultado:           string(d.Outcome),
		PodeFechar:          d.CanClose,
		TemChecklist:        d.HasChecklist,
		ChecklistFinalizado: d.ChecklistFinished,
		StatusAtual:         d.CurrentStatus,
		MotivosImpedimento:  d.BlockingReasons,
	}
}

// ClosingBlockedResponse is the 409 body for a close attempt rejected because
// the gate reported impediments that were not acknowledged.
type ClosingBlockedResponse struct {
	Code               string   `json:"code"`
	Message            string   `json:"message"`
	MotivosImpedimento []string `json:"motivos_impedimento"`
}

func FromClosingBlocked(reasons []string) ClosingBlockedResponse {
	return ClosingBlockedResponse{
		Code:               "CLOSING_BLOCKED",
		Message:            "Service order closing blocked: " + strings.Join(reasons, "; "),
		MotivosImpedimento: reasons,
	}
}
