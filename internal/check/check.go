// Package check defines the validation check catalogue and the runner that
// executes it against the binary under test.
package check

import "github.com/five82/ffcheck/internal/capability"

// Kind selects the execution strategy for a check.
type Kind int

const (
	// KindCapability inspects what the executable reports about itself.
	KindCapability Kind = iota
	// KindBehavioral performs a real transcode to validate functional correctness.
	KindBehavioral
	// KindLinkage inspects the dynamic libraries the executable links against.
	KindLinkage
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindCapability:
		return "capability"
	case KindBehavioral:
		return "behavioral"
	case KindLinkage:
		return "linkage"
	default:
		return "unknown"
	}
}

// Outcome classifies a completed check.
type Outcome int

const (
	// OutcomePass means the check ran and met its success criterion.
	OutcomePass Outcome = iota
	// OutcomeFail means the check ran and did not meet its success criterion,
	// or its output could not be captured at all.
	OutcomeFail
	// OutcomeSkip means the check's precondition was unmet in this environment.
	OutcomeSkip
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeFail:
		return "fail"
	case OutcomeSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Check is a declarative description of one unit of verification. The fields
// used depend on Kind: capability probes carry Category (and Token for
// substring checks), behavioral probes carry Encoder and an optional
// GateToken that must appear in the encoder listing before the hardware
// path is attempted.
type Check struct {
	Name      string
	Kind      Kind
	Category  capability.Category
	Token     string
	Encoder   string
	GateToken string
}

// Result is the recorded outcome of one check. It is written exactly once
// and retained for the final report.
type Result struct {
	Name       string
	Kind       Kind
	Outcome    Outcome
	Detail     string
	SkipReason string
	LogPath    string
}

// Skip reasons for unmet preconditions.
const (
	SkipNoSampleTool        = "no tool to generate test media"
	SkipEncoderNotAvailable = "encoder not available"
	SkipIncompatibleDevice  = "incompatible device or driver"
	SkipNoIntrospectionTool = "introspection tool not available"
)

// Observer receives check lifecycle events as the runner progresses.
type Observer interface {
	CheckStarted(name string)
	CheckComplete(result Result)
}
