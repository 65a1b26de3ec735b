package request

import (
	"mecanica_checklist/internal/domain/entities"
	"strings"
)

type TemplateItemRequest struct {
	ID           string   `json:"id"`
	Pergunta     string   `json:"pergunta" binding:"required"`
	TipoResposta string   `json:"tipo_resposta" binding:"required"`
	Obrigatoria  bool     `json:"obrigatoria"`
	Opcoes       []string `json:"opcoes"`
}

// CreateTemplateRequest is the template administration payload. Item order is
// positional; templates are immutable after creation.
type CreateTemplateRequest struct {
	Nome  string                `json:"nome" binding:"required"`
	Itens []TemplateItemRequest `json:"itens"`
}

func (r CreateTemplateRequest) ResolveName() string {
	return strings.TrimSpace(r.Nome)
}

func (r CreateTemplateRequest) ToItems() []entities.ChecklistTemplateItem {
	items := make([]entities.ChecklistTemplateItem, 0, len(r.Itens))
	for _, it := range r.Itens {
		items = append(items, entities.ChecklistTemplateItem{
			ID:       strings.TrimSpace(it.ID),
			Question: it.Pergunta,
			Type:     entities.AnswerType(strings.TrimSpace(it.TipoResposta)),
			Required: it.Obrigatoria,
			Options:  it.Opcoes,
		})
	}
	return items
}
