package models

const (
	TaskGenerate = "generate"
	TaskPlay     = "play"
)

// StudyTask is the message consumed by the study worker.
type StudyTask struct {
	Kind      string             `json:"kind"`
	AccountId string             `json:"account_id"`
	SessionId string             `json:"session_id,omitempty"`
	Request   *GenerationRequest `json:"request,omitempty"`
}

// StudyTaskReply is published back on the task's reply queue.
type StudyTaskReply struct {
	Session   *StudySession `json:"session,omitempty"`
	Cached    bool          `json:"cached,omitempty"`
	Audio     []byte        `json:"audio,omitempty"`
	Marks     []SpeechMark  `json:"marks,omitempty"`
	ErrorKind string        `json:"error_kind,omitempty"`
	Message   string        `json:"message,omitempty"`
}

type UpgradeTask struct {
	AccountId string `json:"account_id"`
	RunID     string `json:"run_id"`
}

type ArchiveTask struct {
	SessionId string `json:"session_id"`
	AccountId string `json:"account_id"`
	RunID     string `json:"run_id"`
}
