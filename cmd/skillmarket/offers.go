package main

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/skillhours/skillmarket-contract/rpc/skillmarket"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var offersCommand = cli.Command{
	Name:  "offers",
	Usage: "List skill offers of the deployed contract",
	Flags: []cli.Flag{
		rpcFlag,
		contractFlag,
		cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum number of offers to list",
			Value: 100,
		},
		cli.BoolFlag{
			Name:  "all",
			Usage: "Include offers with no hours left",
		},
	},
	Action: offersAction,
}

func offersAction(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	addr, err := contractAddress(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	rpc, err := dialRPC(context.Background(), c)
	if err != nil {
		return err
	}
	defer rpc.Close()

	offers, err := skillmarket.NewReader(invoker.New(rpc, nil), addr).Offers(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("list offers: %w", err)
	}

	var n int
	for i := range offers {
		if offers[i].HoursOffered.Sign() == 0 && !c.Bool("all") {
			continue
		}
		n++
		fmt.Fprintf(c.App.Writer, "%s\t%s hours\t%s per hour\n",
			address.Uint160ToString(offers[i].Participant), offers[i].HoursOffered, offers[i].PricePerHour)
	}

	log.Debug("offers listed", zap.Int("received", len(offers)), zap.Int("printed", n))

	return nil
}
