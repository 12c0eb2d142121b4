package domain

// ApplicationStatus is persisted as a small positive integer.
type ApplicationStatus int

const (
	StatusNew      ApplicationStatus = 1
	StatusSent     ApplicationStatus = 2
	StatusReceived ApplicationStatus = 3
	StatusApproved ApplicationStatus = 4
	StatusRefused  ApplicationStatus = 5
	StatusFunded   ApplicationStatus = 6
)

var statusNames = map[ApplicationStatus]string{
	StatusNew:      "new",
	StatusSent:     "sent",
	StatusReceived: "received",
	StatusApproved: "approved",
	StatusRefused:  "refused",
	StatusFunded:   "funded",
}

var statusLabels = map[ApplicationStatus]string{
	StatusNew:      "New",
	StatusSent:     "Sent",
	StatusReceived: "Received",
	StatusApproved: "Approved",
	StatusRefused:  "Refused",
	StatusFunded:   "Funded",
}

func (s ApplicationStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s ApplicationStatus) String() string {
	return statusNames[s]
}

func (s ApplicationStatus) Label() string {
	return statusLabels[s]
}

// statusTransitions is the intended lifecycle path. It is only enforced when the
// lifecycle runs in strict mode; otherwise lenders may set any status.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusNew:      {StatusSent},
	StatusSent:     {StatusReceived},
	StatusReceived: {StatusApproved, StatusRefused},
	StatusApproved: {StatusFunded},
}

// CanTransition reports whether from -> to follows the intended lifecycle.
// Keeping the current status is always allowed.
func CanTransition(from, to ApplicationStatus) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
