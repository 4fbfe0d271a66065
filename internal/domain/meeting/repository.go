package meeting

// Repository is a read-only view over one loaded cache snapshot.
type Repository interface {
	// Get returns the meeting with the given id, or false if it is unknown.
	Get(id string) (Meeting, bool)
	// List returns all meetings in storage order.
	List() []Meeting
	// Panels returns the notes panels of a meeting in storage order.
	Panels(meetingID string) []Panel
	// TranscriptSegments returns the unsorted transcript of a meeting.
	TranscriptSegments(meetingID string) []TranscriptSegment
}

// Source loads a fresh snapshot each time Open is called.
type Source interface {
	Open() (Repository, error)
}
