package events

const (
	StreamName     = "DRAVITA_EVENTS"
	StreamSubjects = "dravita.>"
	StreamMaxAge   = "720h" // 30 days
)

func SubjectAssessmentCompleted(assessmentID string) string {
	return "dravita.assessment." + assessmentID + ".completed"
}
