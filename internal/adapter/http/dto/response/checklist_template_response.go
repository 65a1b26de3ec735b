package response

import (
	"mecanica_checklist/internal/domain/entities"
	"time"
)

type TemplateItemResponse struct {
	ID           string   `json:"id"`
	Pergunta     string   `json:"pergunta"`
	TipoResposta string   `json:"tipo_resposta"`
	Obrigatoria  bool     `json:"obrigatoria"`
	Opcoes       []string `json:"opcoes,omitempty"`
	Ordem        int      `json:"ordem"`
}

type ChecklistTemplateResponse struct {
	TemplateID string                 `json:"template_id"`
	ID         string                 `json:"id"`
	Nome       string                 `json:"nome"`
	Itens      []TemplateItemResponse `json:"itens"`
	CreatedAt  time.Time              `json:"created_at"`
}

func FromChecklistTemplate(t entities.ChecklistTemplate) ChecklistTemplateResponse {
	items := make([]TemplateItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, TemplateItemResponse{
			ID:           it.ID,
			Pergunta:     it.Question,
			TipoResposta: string(it.Type),
			Obrigatoria:  it.Required,
			Opcoes:       it.Options,
			Ordem:        it.Order,
		})
	}
	return ChecklistTemplateResponse{
		TemplateID: t.ID,
		ID:         t.ID,
		Nome:       t.Name,
		Itens:      items,
		CreatedAt:  t.CreatedAt,
	}
}
