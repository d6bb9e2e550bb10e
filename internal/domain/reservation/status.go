package reservation

// Status is the backend's reservation status taxonomy. Values arrive as
// strings; anything unrecognized renders as the generic unknown label
// instead of failing.
type Status string

const (
	StatusPendingUser             Status = "pending_user"
	StatusPendingCast             Status = "pending_cast"
	StatusPendingCastModification Status = "pending_cast_modification"
	StatusPendingUserConfirmation Status = "pending_user_confirmation"
	StatusPendingUserDeposit      Status = "pending_user_deposit"
	StatusConfirmed               Status = "confirmed"
	StatusCanceledByUser          Status = "canceled_by_user"
	StatusCanceledByCast          Status = "canceled_by_cast"
	StatusCanceledMutual          Status = "canceled_mutual"
	StatusCanceledByCastNG        Status = "canceled_by_cast_ng"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsKnown() bool {
	switch s {
	case StatusPendingUser, StatusPendingCast, StatusPendingCastModification,
		StatusPendingUserConfirmation, StatusPendingUserDeposit, StatusConfirmed,
		StatusCanceledByUser, StatusCanceledByCast, StatusCanceledMutual,
		StatusCanceledByCastNG:
		return true
	default:
		return false
	}
}

// Viewer selects which side of the marketplace is reading a status.
type Viewer string

const (
	ViewerGuest Viewer = "guest"
	ViewerCast  Viewer = "cast"
)

const UnknownStatusLabel = "Unknown status"

// Label returns the display string for a status as seen by the viewer.
// Each role reads the same status differently: "pending_user" tells the
// cast to act and tells the guest to wait.
func (s Status) Label(v Viewer) string {
	if v == ViewerCast {
		switch s {
		case StatusPendingUser:
			return "Please review the request"
		case StatusPendingCast:
			return "Waiting for the guest's approval"
		case StatusPendingCastModification:
			return "Reservation being revised"
		case StatusPendingUserConfirmation:
			return "Waiting for guest confirmation"
		case StatusPendingUserDeposit:
			return "Waiting for the guest's deposit"
		case StatusConfirmed:
			return "Reservation confirmed"
		case StatusCanceledByUser:
			return "The guest canceled"
		case StatusCanceledByCast:
			return "Canceled"
		case StatusCanceledMutual:
			return "Canceled by both sides"
		case StatusCanceledByCastNG:
			return "Canceled as unserviceable"
		default:
			return UnknownStatusLabel
		}
	}
	switch s {
	case StatusPendingUser:
		return "Waiting for approval"
	case StatusPendingCast:
		return "Confirm or request changes"
	case StatusPendingCastModification:
		return "The cast is revising the reservation"
	case StatusPendingUserConfirmation:
		return "Review the cast's changes"
	case StatusPendingUserDeposit:
		return "Please place your deposit"
	case StatusConfirmed:
		return "Reservation confirmed"
	case StatusCanceledByUser:
		return "Canceled by you"
	case StatusCanceledByCast:
		return "Canceled by the cast"
	case StatusCanceledMutual:
		return "Canceled by mutual agreement"
	case StatusCanceledByCastNG:
		return "The cast canceled as unserviceable"
	default:
		return UnknownStatusLabel
	}
}

// ProgressStatus tracks fulfilment separately from approval state.
type ProgressStatus string

const (
	ProgressPending    ProgressStatus = "pending"
	ProgressDispatched ProgressStatus = "dispatched"
)
