package lifecycle

// Confirmation names the question an operator must answer before an operation runs.
type Confirmation string

const (
	ConfirmNone            Confirmation = ""
	ConfirmUnmarkPayment   Confirmation = "unmark_payment"
	ConfirmCancel          Confirmation = "cancel"
	ConfirmRefundAndCancel Confirmation = "refund_and_cancel"
)

// RequiredConfirmation returns which confirmation op needs in state s.
func RequiredConfirmation(s State, op Operation) Confirmation {
	switch op {
	case OpUnmarkPaid:
		return ConfirmUnmarkPayment
	case OpCancel:
		if s.Paid() {
			return ConfirmRefundAndCancel
		}
		return ConfirmCancel
	}
	return ConfirmNone
}

// Prompt is the question shown to the operator.
func (c Confirmation) Prompt() string {
	switch c {
	case ConfirmUnmarkPayment:
		return "Deseja desconfirmar o pagamento?"
	case ConfirmCancel:
		return "Tem certeza que deseja cancelar esta inscrição?"
	case ConfirmRefundAndCancel:
		return "Esta inscrição está paga. Deseja estornar o valor e cancelar?"
	}
	return ""
}
