package constant

// RequestStatus is the lifecycle state of a pickup request as reported by the
// backend. The backend owns every transition except pending -> cancelled,
// which the user may trigger from the client.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusCompleted RequestStatus = "completed"
	StatusCancelled RequestStatus = "cancelled"
)

// Known reports whether the status is one of the enumerated lifecycle states.
// Unknown values still render (as themselves) but get no lifecycle actions.
func (s RequestStatus) Known() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether the user may cancel a request in this state.
// Only pending requests are, everything else is read-only here.
func (s RequestStatus) Cancellable() bool {
	return s == StatusPending
}
