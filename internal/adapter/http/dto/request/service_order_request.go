package request

import "strings"

// CloseOrderRequest is the CloseOrder payload. ConfirmarImpedimentos is the
// operator's explicit acknowledgement that the order is being closed despite
// gate impediments; without it a blocked close is rejected.
type CloseOrderRequest struct {
	StatusFinal           string `json:"status_final" binding:"required"`
	ObservacoesFechamento string `json:"observacoes_fechamento"`
	ConfirmarImpedimentos bool   `json:"confirmar_impedimentos"`
}

func (r CloseOrderRequest) ResolveStatusFinal() string {
	return strings.TrimSpace(r.StatusFinal)
}
