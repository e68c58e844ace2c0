package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skillhours/skillmarket-contract/tests/dump"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var dumpCommand = cli.Command{
	Name:  "dump",
	Usage: "Dump state and storage of the deployed contract into local files",
	Flags: []cli.Flag{
		rpcFlag,
		contractFlag,
		dirFlag,
		cli.StringFlag{
			Name:  "label",
			Usage: "Label of the blockchain environment (e.g. 'testnet')",
		},
	},
	Action: dumpAction,
}

func dumpAction(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	label := c.String("label")
	if label == "" {
		return cli.NewExitError("missing --label flag", 1)
	}

	addr, err := contractAddress(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	rootDir := c.String(dirFlag.Name)

	err = os.MkdirAll(rootDir, 0700)
	if err != nil {
		return fmt.Errorf("create root dir: %w", err)
	}

	ctx := context.Background()

	rpc, err := dialRPC(ctx, c)
	if err != nil {
		return err
	}
	defer rpc.Close()

	nBlocks, err := rpc.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get number of the latest block: %w", err)
	}

	// state root of the latest block may be not ready yet
	height := nBlocks - 1
	if height > 0 {
		height--
	}

	ctr, err := rpc.GetContractStateByHash(addr)
	if err != nil {
		return fmt.Errorf("get state of the contract '%s': %w", addr.StringLE(), err)
	}

	id := dump.ID{Label: label, Block: height}

	d, err := dump.NewCreator(rootDir, id)
	if err != nil {
		return fmt.Errorf("init local dumper: %w", err)
	}
	defer d.Close()

	d.SetContract(*ctr)

	var n int
	err = iterateContractStorage(rpc, height, addr, func(key, value []byte) error {
		n++
		return d.Write(key, value)
	})
	if err != nil {
		return fmt.Errorf("iterate contract storage: %w", err)
	}

	err = d.Flush()
	if err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}

	log.Info("contract is successfully dumped",
		zap.String("dir", rootDir), zap.Stringer("dump", id), zap.Int("items", n))

	return nil
}
