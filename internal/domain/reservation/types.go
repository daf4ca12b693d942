package reservation

type Status string

const (
	StatusPending    Status = "pending"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCanceled   Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCheckedIn, StatusCheckedOut, StatusCanceled:
		return true
	default:
		return false
	}
}

// Terminal states admit no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCanceled
}

// IsActive reports whether the reservation still blocks its room's calendar.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusCheckedIn
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentPix:
		return true
	default:
		return false
	}
}
