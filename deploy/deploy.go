package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/skillhours/skillmarket-contract/contracts"
	"github.com/skillhours/skillmarket-contract/rpc/skillmarket"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the SkillMarket contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups all parameters of the SkillMarket deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy the contract to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// For updates, it must be the contract administrator.
	LocalAccount *wallet.Account

	// Compiled contract to be deployed.
	Contract contracts.Contract

	// Address of the already deployed contract to be updated. If zero, the
	// address is derived from the local account and the contract NEF and
	// name, and the contract is deployed there if missing.
	Address util.Uint160

	// Initial settings of the contract. Used for deployment only.
	Config Configuration
}

// Deploy synchronizes the SkillMarket contract on the chain with the local
// one. Missing contract is deployed with Prm.Config, outdated contract is
// updated, up-to-date contract is left as is. Deploy returns the contract
// address.
//
// Deploy waits for the transaction to be accepted and fails if it has not
// succeeded. Contract failures are returned as *skillmarket.Error.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	err := prm.Config.Validate()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid contract configuration: %w", err)
	}

	addr := prm.Address
	explicitAddr := !addr.Equals(util.Uint160{})
	if !explicitAddr {
		addr = state.CreateContractHash(prm.LocalAccount.ScriptHash(), prm.Contract.NEF.Checksum, prm.Contract.Manifest.Name)
	}

	l := prm.Logger.With(zap.Stringer("address", addr))

	onChain, err := prm.Blockchain.GetContractStateByHash(addr)
	if err != nil {
		if !isErrContractNotFound(err) {
			return util.Uint160{}, fmt.Errorf("get state of the contract '%s': %w", addr.StringLE(), err)
		}
		if explicitAddr {
			return util.Uint160{}, fmt.Errorf("contract '%s' is missing on the chain", addr.StringLE())
		}
		onChain = nil
	}

	if onChain != nil && onChain.NEF.Checksum == prm.Contract.NEF.Checksum {
		l.Info("contract is already deployed and up-to-date")
		return addr, nil
	}

	err = ctx.Err()
	if err != nil {
		return util.Uint160{}, err
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	var (
		txHash util.Uint256
		vub    uint32
	)

	if onChain == nil {
		l.Info("contract is missing on the chain, deploying...")

		txHash, vub, err = management.New(act).Deploy(&prm.Contract.NEF, &prm.Contract.Manifest, prm.Config.deployData())
		if err != nil {
			return util.Uint160{}, fmt.Errorf("send contract deployment transaction: %w", err)
		}
	} else {
		l.Info("contract is outdated, updating...")

		bNEF, err := prm.Contract.NEF.Bytes()
		if err != nil {
			return util.Uint160{}, fmt.Errorf("encode NEF: %w", err)
		}

		jManifest, err := json.Marshal(prm.Contract.Manifest)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("encode manifest: %w", err)
		}

		txHash, vub, err = skillmarket.New(act, addr).Update(bNEF, jManifest, nil)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("send contract update transaction: %w", err)
		}
	}

	l.Info("transaction sent, waiting for acceptance...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	res, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for transaction '%s': %w", txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("transaction '%s' failed: %w", txHash.StringLE(), faultError(res.FaultException))
	}

	l.Info("contract successfully synchronized")

	return addr, nil
}

func faultError(exception string) error {
	if e := skillmarket.ParseException(exception); e != nil {
		return e
	}
	return errors.New(exception)
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}
