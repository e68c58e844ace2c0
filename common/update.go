package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// HasUpdateAccess returns true if the transaction is witnessed by the
// contract administrator.
func HasUpdateAccess(admin interop.Hash160) bool {
	return runtime.CheckWitness(admin)
}
