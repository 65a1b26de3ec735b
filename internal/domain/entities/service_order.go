package entities

import "time"

// Terminal status labels for a service order. The order's statusOrdemServico
// name is authoritative: an order is closed iff its name is in the closed set.
//
// Only Concluída and Cancelada are accepted as close targets; Finalizada is a
// legacy label that still counts as closed when read back.
const (
	OrderStatusConcluida  = "Concluída"
	OrderStatusCancelada  = "Cancelada"
	OrderStatusFinalizada = "Finalizada"
)

// IsTerminalOrderStatus reports whether the status name belongs to the closed set.
func IsTerminalOrderStatus(name string) bool {
	switch name {
	case OrderStatusConcluida, OrderStatusCancelada, OrderStatusFinalizada:
		return true
	}
	return false
}

// IsAcceptedCloseStatus reports whether the label is a valid close target.
func IsAcceptedCloseStatus(name string) bool {
	return name == OrderStatusConcluida || name == OrderStatusCancelada
}

// ServiceOrder is the order aggregate as seen by this service. Orders are
// owned by the upstream OS service; here they are read and terminally closed,
// never created.
//
// Storage model (DynamoDB):
//   - PK: id
type ServiceOrder struct {
	ID           string     `json:"id"`
	Number       string     `json:"numero,omitempty"`
	Status       string     `json:"status"`
	StatusName   string     `json:"status_ordem_servico"`
	ClosingNotes string     `json:"observacoes_fechamento,omitempty"`
	ClosedAt     *time.Time `json:"data_encerramento,omitempty"`
}

// Closed reports whether the order already reached a terminal status.
func (o ServiceOrder) Closed() bool {
	return IsTerminalOrderStatus(o.StatusName)
}

// ClosingOutcome is the tri-state result of a closing-eligibility evaluation.

type ClosingOutcome string

const (
	ClosingOutcomeAlreadyClosed ClosingOutcome = "ja_encerrada"
	ClosingOutcomeBlocked       ClosingOutcome = "bloqueada"
	ClosingOutcomeEligible      ClosingOutcome = "elegivel"
)

// ClosingDecision is a derived value, recomputed on every evaluation and never
// persisted. ChecklistFinished is nil when the order has no linked checklist.
type ClosingDecision struct {
	Outcome           ClosingOutcome `json:"resultado"`
	CanClose          bool           `json:"pode_fechar"`
	HasChecklist      bool           `json:"tem_checklist"`
	ChecklistFinished *bool          `json:"checklist_finalizado"`
	CurrentStatus     string         `json:"status_atual"`
	BlockingReasons   []string       `json:"motivos_impedimento"`
}
