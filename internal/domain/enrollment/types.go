package enrollment

type Plan string

const (
	PlanFull    Plan = "FULL"
	PlanDeposit Plan = "DEPOSIT"
)

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	switch p {
	case PlanFull, PlanDeposit:
		return true
	default:
		return false
	}
}

func NewPlan(s string) (Plan, error) {
	p := Plan(s)
	if !p.IsValid() {
		return "", ErrInvalidPlan
	}
	return p, nil
}

type PaymentStatus string

const (
	StatusCompleted  PaymentStatus = "COMPLETED"
	StatusWaitlisted PaymentStatus = "WAITLISTED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusCompleted, StatusWaitlisted:
		return true
	default:
		return false
	}
}
