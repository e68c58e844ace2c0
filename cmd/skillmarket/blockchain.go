package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli"
)

const rpcTimeout = 15 * time.Second

var (
	rpcFlag = cli.StringFlag{
		Name:  "rpc",
		Usage: "Network address of the Neo RPC server",
	}
	contractFlag = cli.StringFlag{
		Name:  "contract",
		Usage: "SkillMarket contract address (Neo address or LE hex)",
	}
	dirFlag = cli.StringFlag{
		Name:  "dir",
		Usage: "Directory of contract dumps",
		Value: "testdata",
	}
)

// dialRPC connects to the Neo RPC server from --rpc flag. Connection and all
// requests are done within rpcTimeout.
func dialRPC(ctx context.Context, c *cli.Context) (*rpcclient.Client, error) {
	endpoint := c.String(rpcFlag.Name)
	if endpoint == "" {
		return nil, fmt.Errorf("missing --%s flag", rpcFlag.Name)
	}

	client, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    rpcTimeout,
		RequestTimeout: rpcTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	return client, nil
}

// contractAddress decodes required --contract flag.
func contractAddress(c *cli.Context) (util.Uint160, error) {
	s := c.String(contractFlag.Name)
	if s == "" {
		return util.Uint160{}, fmt.Errorf("missing --%s flag", contractFlag.Name)
	}
	return parseUint160(s)
}

// parseUint160 accepts both Neo address and hex-encoded LE script hash.
func parseUint160(s string) (util.Uint160, error) {
	if u, err := address.StringToUint160(s); err == nil {
		return u, nil
	}

	u, err := util.Uint160DecodeStringLE(s)
	if err != nil {
		return u, fmt.Errorf("invalid account '%s': neither Neo address nor LE hex", s)
	}

	return u, nil
}

// iterateContractStorage iterates over all storage items of the Neo smart
// contract referenced by given address at the latest state root and passes
// them into f. iterateContractStorage breaks on any f's error and returns it.
func iterateContractStorage(c *rpcclient.Client, height uint32, contract util.Uint160, f func(key, value []byte) error) error {
	stateRoot, err := c.GetStateRootByHeight(height)
	if err != nil {
		return fmt.Errorf("get state root at block #%d: %w", height, err)
	}

	var start []byte

	for {
		res, err := c.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
