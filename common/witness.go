package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// Caller returns the sender of the transaction being executed. It identifies
// the participant only: the sender's witness must be checked separately for
// the current call, since the transaction can invoke the contract through
// other contracts.
func Caller() interop.Hash160 {
	return runtime.GetScriptContainer().Sender
}
