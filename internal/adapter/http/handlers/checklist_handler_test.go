package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanica_checklist/internal/adapter/http/handlers/mocks"
	"mecanica_checklist/internal/domain/entities"
	"mecanica_checklist/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChecklistHandler_StartChecklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.POST("/v1/checklists", h.StartChecklist)

		req := httptest.NewRequest(http.MethodPost, "/v1/checklists", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing template id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.POST("/v1/checklists", h.StartChecklist)

		req := httptest.NewRequest(http.MethodPost, "/v1/checklists", bytes.NewBufferString(`{"os_id":"os-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate checklist for OS", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.POST("/v1/checklists", h.StartChecklist)

		uc.EXPECT().Start(gomock.Any(), "tpl-1", "os-1", "", "", "").Return(entities.Checklist{}, usecase.ErrChecklistAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/checklists", bytes.NewBufferString(`{"template_id":"tpl-1","os_id":"os-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.POST("/v1/checklists", h.StartChecklist)

		uc.EXPECT().Start(gomock.Any(), "tpl-1", "os-1", "veic-1", "func-1", "entrada").Return(entities.Checklist{
			ID:         "chk-1",
			TemplateID: "tpl-1",
			OSID:       "os-1",
			Status:     entities.ChecklistStatusIniciado,
			StartedAt:  time.Now().UTC(),
		}, nil)

		body := `{"template_id":"tpl-1","os_id":"os-1","veiculo_id":"veic-1","funcionario_id":"func-1","observacoes":"entrada"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checklists", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["checklist_id"] != "chk-1" || resp["status"] != "iniciado" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestChecklistHandler_GetChecklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.GET("/v1/checklists/:checklist_id", h.GetChecklist)

		uc.EXPECT().GetByID(gomock.Any(), "chk-x").Return(entities.Checklist{}, usecase.ErrChecklistNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists/chk-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with answers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.GET("/v1/checklists/:checklist_id", h.GetChecklist)

		yes := true
		uc.EXPECT().GetByID(gomock.Any(), "chk-1").Return(entities.Checklist{
			ID:         "chk-1",
			TemplateID: "tpl-1",
			Status:     entities.ChecklistStatusEmAndamento,
			StartedAt:  time.Now().UTC(),
		}, nil)
		uc.EXPECT().ListAnswers(gomock.Any(), "chk-1").Return([]entities.ChecklistAnswer{
			{ChecklistID: "chk-1", ItemID: "item-1", Value: entities.AnswerValue{Type: entities.AnswerTypeSimNao, Bool: &yes}, AnsweredAt: time.Now().UTC()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/checklists/chk-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Status    string `json:"status"`
			Respostas []struct {
				ItemID        string `json:"item_id"`
				ValorBooleano *bool  `json:"valor_booleano"`
			} `json:"respostas"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Status != "em_andamento" || len(resp.Respostas) != 1 || resp.Respostas[0].ItemID != "item-1" {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})
}

func TestChecklistHandler_SaveAnswers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.PUT("/v1/checklists/:checklist_id/answers", h.SaveAnswers)

		req := httptest.NewRequest(http.MethodPut, "/v1/checklists/chk-1/answers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("finalized checklist rejects writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.PUT("/v1/checklists/:checklist_id/answers", h.SaveAnswers)

		uc.EXPECT().SaveAnswers(gomock.Any(), "chk-1", gomock.Any()).Return(entities.Checklist{}, usecase.ErrChecklistFinalizado)

		body := `{"respostas":[{"item_id":"item-1","tipo":"sim_nao","valor_booleano":true}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/checklists/chk-1/answers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.PUT("/v1/checklists/:checklist_id/answers", h.SaveAnswers)

		uc.EXPECT().SaveAnswers(gomock.Any(), "chk-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, subs []usecase.AnswerSubmission) (entities.Checklist, error) {
				if len(subs) != 1 || subs[0].ItemID != "item-1" || subs[0].Value.Bool == nil || *subs[0].Value.Bool {
					t.Fatalf("unexpected submissions: %+v", subs)
				}
				return entities.Checklist{ID: "chk-1", Status: entities.ChecklistStatusEmAndamento, StartedAt: time.Now().UTC()}, nil
			},
		)

		body := `{"respostas":[{"item_id":"item-1","tipo":"sim_nao","valor_booleano":false,"observacao":"pastilha gasta"}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/checklists/chk-1/answers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "em_andamento" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestChecklistHandler_FinalizeChecklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pending required answers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.POST("/v1/checklists/:checklist_id/finalize", h.FinalizeChecklist)

		uc.EXPECT().Finalize(gomock.Any(), "chk-1", gomock.Any()).Return(entities.Checklist{}, &usecase.RequiredAnswersError{MissingItemIDs: []string{"item-1", "item-3"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/checklists/chk-1/finalize", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		var resp struct {
			Code           string   `json:"code"`
			Quantidade     int      `json:"quantidade"`
			ItensPendentes []string `json:"itens_pendentes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Code != "REQUIRED_ANSWERS_PENDING" || resp.Quantidade != 2 || len(resp.ItensPendentes) != 2 {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})

	t.Run("already finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.POST("/v1/checklists/:checklist_id/finalize", h.FinalizeChecklist)

		uc.EXPECT().Finalize(gomock.Any(), "chk-1", gomock.Any()).Return(entities.Checklist{}, usecase.ErrChecklistFinalizado)

		req := httptest.NewRequest(http.MethodPost, "/v1/checklists/chk-1/finalize", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChecklistUseCase(ctrl)
		h := NewChecklistHandler(uc)

		r := gin.New()
		r.POST("/v1/checklists/:checklist_id/finalize", h.FinalizeChecklist)

		now := time.Now().UTC()
		uc.EXPECT().Finalize(gomock.Any(), "chk-1", gomock.Any()).Return(entities.Checklist{
			ID:         "chk-1",
			TemplateID: "tpl-1",
			Status:     entities.ChecklistStatusFinalizado,
			StartedAt:  now.Add(-time.Hour),
			FinishedAt: &now,
		}, nil)

		body := `{"respostas":[{"item_id":"item-2","tipo":"texto","valor_texto":"tudo certo"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checklists/chk-1/finalize", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "finalizado" || resp["data_finalizacao"] == nil {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}
