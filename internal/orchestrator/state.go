package orchestrator

// State is the position of an Orchestrator in its upload lifecycle.
type State int

const (
	Idle State = iota
	Selecting
	Uploading
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Uploading:
		return "uploading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes a finished upload as shown to the user.
type Result struct {
	Success  bool
	VideoURL string
	Message  string
	Filename string
	Size     int64
	Type     string
}

// Snapshot is a copy of the observable state.
type Snapshot struct {
	State    State
	FileName string
	Progress int
	Status   string
	Result   *Result
	Error    string
}

func (s Snapshot) Uploading() bool {
	return s.State == Uploading
}
