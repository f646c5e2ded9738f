package hook

// State is a stage of the notification-dispatch pipeline
type State string

const (
	StateStart           State = "start"
	StateConfigLoaded    State = "config_loaded"
	StateBootstrapped    State = "bootstrapped"
	StateConfigError     State = "config_error"
	StateDependencyReady State = "dependency_ready"
	StateDependencyFatal State = "dependency_fatal"
	StateDelivered       State = "delivered"
	StateDeliveryPartial State = "delivery_partial"
	StateFault           State = "fault"
)

// Process exit codes. Delivery-partial still exits zero: channel failure is
// reported in the log, never escalated to process failure.
const (
	ExitDelivered       = 0
	ExitFault           = 1
	ExitBootstrapped    = 2
	ExitConfigError     = 3
	ExitDependencyFatal = 4
)

// Outcome is the terminal state of one invocation plus its exit code
type Outcome struct {
	State State
	Code  int
}
