package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrOrgIDRequired     = errors.New("organization ID is not configured")
	ErrAccessToken       = errors.New("error obtaining snap access token")
	ErrSnapIntegration   = errors.New("error fetching data from snap")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err       error  // Erro base
	Cause     error  // Erro original da integração
	AccountID string // ID da conta envolvida (quando aplicável)
	Step      string // Etapa do relatório que falhou
}

func (e *ReportError) Error() string {
	msg := e.Err.Error()
	if e.Step != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Step)
	}
	if e.AccountID != "" {
		msg = fmt.Sprintf("%s [account %s]", msg, e.AccountID)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap expõe o erro base e a causa para errors.Is/As
func (e *ReportError) Unwrap() []error {
	return []error{e.Err, e.Cause}
}

func newReportError(err, cause error, accountID, step string) *ReportError {
	return &ReportError{
		Err:       err,
		Cause:     cause,
		AccountID: accountID,
		Step:      step,
	}
}
