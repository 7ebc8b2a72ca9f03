package provisioner

// Kind tags the result of one provisioning attempt.
type Kind int

const (
	KindCreated Kind = iota + 1
	KindSkipped
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindCreated:
		return "created"
	case KindSkipped:
		return "skipped"
	case KindFailed:
		return "failed"
	}
	return "unknown"
}

// Reason explains a skipped attempt.
type Reason string

const (
	ReasonExistsByUsername     Reason = "exists-by-username"
	ReasonPrivilegedRoleExists Reason = "privileged-role-exists"
)

// Outcome is the result of EnsureAdmin. Reason is set only for KindSkipped,
// Message only for KindFailed.
type Outcome struct {
	Kind     Kind
	Reason   Reason
	UserName string
	Email    string
	Message  string
}

func Created(userName, email string) Outcome {
	return Outcome{Kind: KindCreated, UserName: userName, Email: email}
}

func Skipped(reason Reason, userName string) Outcome {
	return Outcome{Kind: KindSkipped, Reason: reason, UserName: userName}
}

func Failed(message string) Outcome {
	return Outcome{Kind: KindFailed, Message: message}
}
