package enum

// JobStatus tracks a lab order through its fixed fulfillment sequence.
// Progression is linear and one-directional: Pending -> Processing -> Ready
// -> Delivered.
type JobStatus string

const (
	JobStatusPending    JobStatus = "Pending"
	JobStatusProcessing JobStatus = "Processing"
	JobStatusReady      JobStatus = "Ready"
	JobStatusDelivered  JobStatus = "Delivered"
)

var jobStatusOrder = map[JobStatus]int{
	JobStatusPending:    0,
	JobStatusProcessing: 1,
	JobStatusReady:      2,
	JobStatusDelivered:  3,
}

func (s JobStatus) Valid() bool {
	_, ok := jobStatusOrder[s]
	return ok
}

// Next returns the following status in the sequence, or the status itself
// when it is terminal.
func (s JobStatus) Next() JobStatus {
	switch s {
	case JobStatusPending:
		return JobStatusProcessing
	case JobStatusProcessing:
		return JobStatusReady
	case JobStatusReady:
		return JobStatusDelivered
	default:
		return s
	}
}

// CanTransitionTo reports whether moving from s to target respects the
// one-directional sequence. Skipping ahead is allowed; moving backwards is
// not.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	from, okFrom := jobStatusOrder[s]
	to, okTo := jobStatusOrder[target]
	if !okFrom || !okTo {
		return false
	}
	return to > from
}
