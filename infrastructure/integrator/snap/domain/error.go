package snapdomain

import "strings"

// Mensagem documentada para consultas DAY maiores que o limite da API
const statsWindowTooLargeMessage = "cannot query time intervals of more than 32 days"

// ErrorResponse representa o corpo de erro da Snap Marketing API
type ErrorResponse struct {
	RequestStatus  string `json:"request_status"`
	RequestID      string `json:"request_id"`
	DebugMessage   string `json:"debug_message"`
	DisplayMessage string `json:"display_message"`
	ErrorCode      string `json:"error_code"`
}

func (e *ErrorResponse) IsStatsWindowTooLarge() bool {
	return strings.Contains(e.DebugMessage, statsWindowTooLargeMessage)
}
