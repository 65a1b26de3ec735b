package entities

import "time"

// ChecklistStatus represents the lifecycle of a checklist instance.
//
// Domain notes:
//   - The lifecycle is strictly forward: iniciado -> em_andamento -> finalizado.
//   - em_andamento is derived server-side (first saved answer), never set by clients.
//   - finalizado is terminal: the instance and its answers become immutable.

type ChecklistStatus string

const (
	ChecklistStatusIniciado    ChecklistStatus = "iniciado"
	ChecklistStatusEmAndamento ChecklistStatus = "em_andamento"
	ChecklistStatusFinalizado  ChecklistStatus = "finalizado"
)

// AnswerType is the variant tag of a template question. It drives both the
// accepted answer value shape and the emptiness rules (see AnswerValue).

type AnswerType string

const (
	AnswerTypeSimNao          AnswerType = "sim_nao"
	AnswerTypeTexto           AnswerType = "texto"
	AnswerTypeNumerico        AnswerType = "numerico"
	AnswerTypeMultiplaEscolha AnswerType = "multipla_escolha"
)

// ChecklistTemplateItem is a single question definition inside a template.
// Options is non-empty only for multipla_escolha items.
type ChecklistTemplateItem struct {
	ID       string     `json:"id"`
	Question string     `json:"pergunta"`
	Type     AnswerType `json:"tipo_resposta"`
	Required bool       `json:"obrigatoria"`
	Options  []string   `json:"opcoes,omitempty"`
	Order    int        `json:"ordem"`
}

// ChecklistTemplate is the immutable, externally authored question set.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Templates are write-once: administration creates them, the checklist core
// only reads them.
type ChecklistTemplate struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"nome"`
	Items     []ChecklistTemplateItem `json:"itens"`
	CreatedAt time.Time               `json:"created_at"`
}

// RequiredItems returns the subset of items that must be answered before the
// checklist can be finalized, preserving template order.
func (t ChecklistTemplate) RequiredItems() []ChecklistTemplateItem {
	var req []ChecklistTemplateItem
	for _, it := range t.Items {
		if it.Required {
			req = append(req, it)
		}
	}
	return req
}

// ItemByID returns the template item with the given id, or false when the id
// does not belong to this template.
func (t ChecklistTemplate) ItemByID(id string) (ChecklistTemplateItem, bool) {
	for _, it := range t.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ChecklistTemplateItem{}, false
}

// Checklist is a single run of a template, optionally linked to a service
// order, a vehicle and an employee.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (os_id-index): os_id — resolves the explicit order<->checklist link.
//
// StartedAt is set at creation and never changes. FinishedAt is set exactly
// once, by the finalize transition.
type Checklist struct {
	ID         string          `json:"id"`
	TemplateID string          `json:"template_id"`
	OSID       string          `json:"os_id,omitempty"`
	VehicleID  string          `json:"veiculo_id,omitempty"`
	EmployeeID string          `json:"funcionario_id,omitempty"`
	Status     ChecklistStatus `json:"status"`
	Notes      string          `json:"observacoes,omitempty"`
	StartedAt  time.Time       `json:"data_inicio"`
	FinishedAt *time.Time      `json:"data_finalizacao,omitempty"`
}

// Finalized reports whether the instance reached its terminal state.
func (c Checklist) Finalized() bool {
	return c.Status == ChecklistStatusFinalizado
}
