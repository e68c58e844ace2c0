package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillhours/skillmarket-contract/rpc/skillmarket"
	"github.com/skillhours/skillmarket-contract/snapshot"
	"github.com/skillhours/skillmarket-contract/tests/dump"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var exportCommand = cli.Command{
	Name:  "export",
	Usage: "Decode contract dump and export the ledger into SQLite database",
	Flags: []cli.Flag{
		dirFlag,
		cli.StringFlag{
			Name:  "label",
			Usage: "Label of the dump to export",
		},
		cli.UintFlag{
			Name:  "block",
			Usage: "Block of the dump to export (latest dump of the label if omitted)",
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "Path to the SQLite database",
			Value: "skillmarket.db",
		},
	},
	Action: exportAction,
}

func exportAction(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	label := c.String("label")
	if label == "" {
		return cli.NewExitError("missing --label flag", 1)
	}

	rootDir := c.String(dirFlag.Name)

	id, err := selectDump(rootDir, label, c.IsSet("block"), uint32(c.Uint("block")))
	if err != nil {
		return err
	}

	r, err := dump.Open(rootDir, id)
	if err != nil {
		return fmt.Errorf("open dump '%s': %w", id, err)
	}

	l, err := skillmarket.DecodeLedger(r.IterateStorage)
	if err != nil {
		return fmt.Errorf("decode ledger from dump '%s': %w", id, err)
	}

	s, err := snapshot.Open(c.String("out"))
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	sum, err := s.Export(context.Background(), l)
	if err != nil {
		return fmt.Errorf("export ledger: %w", err)
	}

	log.Info("ledger is successfully exported",
		zap.Stringer("dump", id),
		zap.String("out", c.String("out")),
		zap.Int("participants", sum.Participants),
		zap.Int("offers", sum.Offers),
		zap.Stringer("total reserve", l.TotalReserve))

	return nil
}

// selectDump returns ID of the dump with given label and block. Without block
// the latest dump of the label is returned.
func selectDump(rootDir, label string, withBlock bool, block uint32) (dump.ID, error) {
	ids, err := dump.List(rootDir)
	if err != nil {
		return dump.ID{}, fmt.Errorf("list dumps in '%s': %w", rootDir, err)
	}

	var (
		res   dump.ID
		found bool
	)

	for i := range ids {
		if ids[i].Label != label {
			continue
		}
		if withBlock {
			if ids[i].Block == block {
				return ids[i], nil
			}
			continue
		}
		if !found || ids[i].Block > res.Block {
			res, found = ids[i], true
		}
	}

	if !found {
		return res, errors.New("dump not found")
	}

	return res, nil
}
