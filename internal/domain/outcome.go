package domain

// CreateStatus tags the result of a create call.
type CreateStatus int

const (
	// Created means a new entry was stored.
	Created CreateStatus = iota + 1

	// DuplicateDate means an entry for the date already existed and nothing was written.
	DuplicateDate
)

// String implements fmt.Stringer.
func (s CreateStatus) String() string {
	switch s {
	case Created:
		return "created"
	case DuplicateDate:
		return "duplicate_date"
	default:
		return "unknown"
	}
}

// CreateOutcome is the value returned by a create call. A duplicate date is
// an expected outcome, not an error, so callers branch on Status.
type CreateOutcome struct {
	Status CreateStatus

	// Entry holds the stored entry, including its ID, when Status is Created.
	// For DuplicateDate only Entry.Date is set.
	Entry MoodEntry
}

// CreatedOutcome builds a Created outcome for a stored entry.
func CreatedOutcome(entry MoodEntry) CreateOutcome {
	return CreateOutcome{Status: Created, Entry: entry}
}

// DuplicateDateOutcome builds a DuplicateDate outcome for date.
func DuplicateDateOutcome(date string) CreateOutcome {
	return CreateOutcome{Status: DuplicateDate, Entry: MoodEntry{Date: date}}
}

// IsCreated reports whether the entry was stored.
func (o CreateOutcome) IsCreated() bool {
	return o.Status == Created
}

// IsDuplicate reports whether the date was already taken.
func (o CreateOutcome) IsDuplicate() bool {
	return o.Status == DuplicateDate
}

// Err converts the outcome to an error for callers that prefer one.
// It returns nil for Created.
func (o CreateOutcome) Err() error {
	if o.Status == DuplicateDate {
		return NewDuplicateDateError(o.Entry.Date)
	}

	return nil
}
