package editor

// Confirmer is the confirmation collaborator: given the diff text and the
// display path, it returns whether the user approved the change. The engine
// treats any panic recovered from Confirm, or a false return, as a decline —
// it never distinguishes "declined" from "aborted" at this layer.
type Confirmer interface {
	Confirm(diffText, displayPath string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(diffText, displayPath string) bool

func (f ConfirmFunc) Confirm(diffText, displayPath string) bool {
	return f(diffText, displayPath)
}

// AlwaysConfirm is a non-interactive bypass: it approves unconditionally.
// Used by callers that already have consent (e.g. a --yes flag) and by
// tests that don't want to drive a real prompt.
var AlwaysConfirm Confirmer = ConfirmFunc(func(string, string) bool { return true })

// safeConfirm calls c.Confirm, converting a panic into a decline so a
// misbehaving collaborator can never leave the caller uncertain whether the
// change was approved. loom's engine/approval_handler.go instead
// models asynchronous approval with per-request channels keyed by a call id
// (useful when many tool calls are outstanding at once); a single edit call
// only ever has one outstanding confirmation, so that machinery collapses to
// a direct, synchronous call guarded against panics.
func safeConfirm(c Confirmer, diffText, displayPath string) (approved bool) {
	if c == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			approved = false
		}
	}()
	return c.Confirm(diffText, displayPath)
}
