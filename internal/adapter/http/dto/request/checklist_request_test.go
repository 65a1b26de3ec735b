package request

import (
	"testing"

	"mecanica_checklist/internal/domain/entities"
)

func TestStartChecklistRequest_ResolveTemplateID(t *testing.T) {
	r := StartChecklistRequest{TemplateID: " tpl-1 "}
	if got := r.ResolveTemplateID(); got != "tpl-1" {
		t.Fatalf("expected tpl-1, got %q", got)
	}

	r2 := StartChecklistRequest{TemplateID: "   "}
	if got := r2.ResolveTemplateID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestAnswerPayload_ToAnswerValue(t *testing.T) {
	yes := true
	p := AnswerPayload{ItemID: "item-1", Tipo: " sim_nao ", ValorBooleano: &yes}
	v := p.ToAnswerValue()
	if v.Type != entities.AnswerTypeSimNao {
		t.Fatalf("expected sim_nao, got %q", v.Type)
	}
	if v.Bool == nil || !*v.Bool || v.Text != nil || v.Number != nil {
		t.Fatalf("unexpected value: %+v", v)
	}

	km := 123456.0
	p2 := AnswerPayload{ItemID: "item-2", Tipo: "numerico", ValorNumerico: &km}
	v2 := p2.ToAnswerValue()
	if v2.Type != entities.AnswerTypeNumerico || v2.Number == nil || *v2.Number != km {
		t.Fatalf("unexpected value: %+v", v2)
	}

	zero := 0.0
	p3 := AnswerPayload{ItemID: "item-2", Tipo: "numerico", ValorNumerico: &zero}
	if p3.ToAnswerValue().IsEmpty() {
		t.Fatalf("numeric zero must count as answered")
	}
}

func TestCreateTemplateRequest_ToItems(t *testing.T) {
	r := CreateTemplateRequest{
		Nome: "Inspeção",
		Itens: []TemplateItemRequest{
			{ID: " item-1 ", Pergunta: "Freios OK?", TipoResposta: " sim_nao ", Obrigatoria: true},
			{Pergunta: "Nível de combustível", TipoResposta: "multipla_escolha", Opcoes: []string{"vazio", "meio", "cheio"}},
		},
	}

	items := r.ToItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "item-1" || items[0].Type != entities.AnswerTypeSimNao || !items[0].Required {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ID != "" || items[1].Type != entities.AnswerTypeMultiplaEscolha || len(items[1].Options) != 3 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}
