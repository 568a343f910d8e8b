package request

type VerificationDecisionRequest struct {
	Decision string  `json:"decision" validate:"required,oneof=approved rejected"`
	Reason   *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}
