package service

// Recorder counts invariant rejections and reconciled invites.
// *metrics.AuthzCollector satisfies it.
type Recorder interface {
	RecordInvariantRejection(invariant string)
	RecordInvite(kind, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordInvariantRejection(string) {}
func (noopRecorder) RecordInvite(string, string)     {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
