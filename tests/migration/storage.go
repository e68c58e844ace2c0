package migration

import (
	"encoding/binary"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/core"
	"github.com/nspcc-dev/neo-go/pkg/core/dao"
	"github.com/nspcc-dev/neo-go/pkg/core/native"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/skillhours/skillmarket-contract/tests/dump"
	"github.com/stretchr/testify/require"
)

// Contract provides part of Neo blockchain services primarily related to the
// SkillMarket contract being tested. Initial state of the tested contract is
// initialized from the dump of the blockchain in which it has already been
// deployed. After preparing the test shell of the blockchain from the input
// data, the contract can be updated using the appropriate methods. Contract
// also provides data access interfaces that can be used to ensure that data
// is migrated correctly.
//
// Contract instances must be constructed using NewContract.
type Contract struct {
	id int32

	exec *neotest.Executor

	invoker *neotest.ContractInvoker

	bNEF      []byte
	jManifest []byte
}

// ContractOptions groups various options of NewContract.
type ContractOptions struct {
	// Path to the directory containing source code of the tested contract.
	// Defaults to '../contracts/skillmarket' relative to the repository root
	// reached from the test package.
	SourceCodeDir string

	// Listener of storage dump of the tested contract. Useful for working with
	// raw values that can not be accessed by the contract API.
	StorageDumpHandler func(key, value []byte)
}

// NewContract constructs Contract from provided dump.Reader.
//
// The Contract is initialized with the contract state and data from the
// dump.Reader. If you need to process storage items of the tested contract
// before the chain is initialized, use ContractOptions.StorageDumpHandler. If
// set, NewContract passes each key-value item into the function.
//
// Transactions are signed by the single committee member of the test chain,
// so the dump is expected to be made on a chain with the same committee for
// administrator methods to succeed.
func NewContract(tb testing.TB, d *dump.Reader, opts ContractOptions) *Contract {
	lowLevelStore := storage.NewMemoryStore()
	cachedStore := storage.NewMemCachedStore(lowLevelStore) // mem-cached store has sweeter interface
	_dao := dao.NewSimple(lowLevelStore, false)

	nativeContracts := native.NewContracts(config.ProtocolConfiguration{})

	err := nativeContracts.Management.InitializeCache(0, _dao)
	require.NoError(tb, err)

	_state := d.ContractState()
	_state.UpdateCounter = 0 // contract could be dumped as already updated

	err = native.PutContractState(_dao, &_state)
	require.NoError(tb, err)

	err = d.IterateStorage(func(key, value []byte) error {
		if opts.StorageDumpHandler != nil {
			opts.StorageDumpHandler(key, value)
		}

		storageKey := make([]byte, 5+len(key))
		storageKey[0] = byte(_dao.Version.StoragePrefix)
		binary.LittleEndian.PutUint32(storageKey[1:], uint32(_state.ID))
		copy(storageKey[5:], key)

		cachedStore.Put(storageKey, value)

		return nil
	})
	require.NoError(tb, err)

	_, err = _dao.PersistSync()
	require.NoError(tb, err)

	_, err = cachedStore.PersistSync()
	require.NoError(tb, err)

	// init test blockchain
	useDefaultConfig := func(*config.Blockchain) {}
	var blockChain *core.Blockchain

	{ // FIXME: hack area, track neo-go#2926
		// contracts embedded in the blockchain the moment before are not visible unless
		// the blockchain is run twice. At the same time, in order not to clear the
		// storage, method Close is overridden.
		var run bool // otherwise on tb.Cleanup will panic which is not critical, but not pleasant either
		blockChain, _ = chain.NewSingleWithCustomConfigAndStore(tb, useDefaultConfig, nopCloseStore{lowLevelStore}, run)
		go blockChain.Run()
		blockChain.Close()
	}

	blockChain, committee := chain.NewSingleWithCustomConfigAndStore(tb, useDefaultConfig, lowLevelStore, true)

	exec := neotest.NewExecutor(tb, blockChain, committee, committee)

	// compile new contract version
	if opts.SourceCodeDir == "" {
		opts.SourceCodeDir = filepath.Join("..", "..", "contracts", "skillmarket")
	}

	ctr := neotest.CompileFile(tb, exec.CommitteeHash, opts.SourceCodeDir, filepath.Join(opts.SourceCodeDir, "config.yml"))

	bNEF, err := ctr.NEF.Bytes()
	require.NoError(tb, err)

	jManifest, err := json.Marshal(ctr.Manifest)
	require.NoError(tb, err)

	return &Contract{
		id:        _state.ID,
		exec:      exec,
		invoker:   exec.NewInvoker(exec.ContractHash(tb, _state.ID), committee),
		bNEF:      bNEF,
		jManifest: jManifest,
	}
}

func (x *Contract) checkUpdate(tb testing.TB, faultException string, args ...any) {
	const updateMethod = "update"

	if faultException != "" {
		x.invoker.InvokeFail(tb, faultException, updateMethod, x.bNEF, x.jManifest, args)
		return
	}

	var noResult stackitem.Null
	x.invoker.Invoke(tb, noResult, updateMethod, x.bNEF, x.jManifest, args)
}

// CheckUpdateSuccess tests that contract update with given arguments succeeds.
// Contract executable (NEF and manifest) is compiled from source code (see
// NewContract for details).
func (x *Contract) CheckUpdateSuccess(tb testing.TB, args ...any) {
	x.checkUpdate(tb, "", args...)
}

// CheckUpdateFail tests that contract update with given arguments fails with
// fault exception containing the given substring.
//
// See also CheckUpdateSuccess.
func (x *Contract) CheckUpdateFail(tb testing.TB, faultException string, args ...any) {
	x.checkUpdate(tb, faultException, args...)
}

// Call tests that calling the contract method with optional arguments succeeds
// and result contains single value. The resulting value is returned as
// stackitem.Item.
//
// Note that Call doesn't change the chain state, so only read (aka safe)
// methods should be used.
func (x *Contract) Call(tb testing.TB, method string, args ...any) stackitem.Item {
	vmStack, err := x.invoker.TestInvoke(tb, method, args...)
	require.NoError(tb, err, "method '%s'", method)

	res, err := unwrap.Item(&result.Invoke{
		State: vmstate.Halt.String(),
		Stack: vmStack.ToArray(),
	}, nil)
	require.NoError(tb, err)

	return res
}

// GetStorageItem returns value stored in the tested contract by key.
func (x *Contract) GetStorageItem(key []byte) []byte {
	return x.exec.Chain.GetStorageItem(x.id, key)
}

// Committee returns script hash of the test chain committee which signs all
// transactions of the Contract.
func (x *Contract) Committee() util.Uint160 {
	return x.exec.CommitteeHash
}
