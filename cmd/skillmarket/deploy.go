package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/skillhours/skillmarket-contract/contracts"
	"github.com/skillhours/skillmarket-contract/deploy"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var deployCommand = cli.Command{
	Name:  "deploy",
	Usage: "Deploy SkillMarket contract or update the deployed one",
	Flags: []cli.Flag{
		rpcFlag,
		cli.StringFlag{
			Name:  "wallet",
			Usage: "Path to the NEP-6 wallet with the deploying account",
		},
		cli.StringFlag{
			Name:  "account",
			Usage: "Address of the wallet account (default account if omitted)",
		},
		cli.StringFlag{
			Name:   "password",
			Usage:  "Password of the wallet account",
			EnvVar: "SKILLMARKET_WALLET_PASSWORD",
		},
		cli.StringFlag{
			Name:  "contracts",
			Usage: "Directory with compiled contracts",
			Value: "contracts",
		},
		cli.StringFlag{
			Name:  "update",
			Usage: "Address of the deployed contract to update",
		},
		cli.StringFlag{
			Name:  "admin",
			Usage: "Contract administrator (deploying account if omitted)",
		},
		cli.Int64Flag{
			Name:  "skill-rate",
			Usage: "Initial skill rate",
			Value: deploy.DefaultConfiguration().SkillRate,
		},
		cli.Int64Flag{
			Name:  "service-fee",
			Usage: "Initial service fee percentage",
			Value: deploy.DefaultConfiguration().ServiceFee,
		},
		cli.Int64Flag{
			Name:  "max-skills",
			Usage: "Initial max skills per user",
			Value: deploy.DefaultConfiguration().MaxSkillsPerUser,
		},
		cli.Int64Flag{
			Name:  "reserve-limit",
			Usage: "Initial skill reserve limit",
			Value: deploy.DefaultConfiguration().ReserveLimit,
		},
		cli.StringSliceFlag{
			Name:  "alloc",
			Usage: "Initial balance of the participant in 'address:skills:currency' format (repeatable)",
		},
	},
	Action: deployAction,
}

func deployAction(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := configurationFromFlags(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	var prm deploy.Prm

	if s := c.String("update"); s != "" {
		prm.Address, err = parseUint160(s)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	prm.LocalAccount, err = openAccount(c)
	if err != nil {
		return err
	}

	prm.Contract, err = contracts.GetSkillMarket(os.DirFS(c.String("contracts")))
	if err != nil {
		return err
	}

	ctx := context.Background()

	rpc, err := dialRPC(ctx, c)
	if err != nil {
		return err
	}
	defer rpc.Close()

	prm.Logger = log
	prm.Blockchain = rpc
	prm.Config = cfg

	addr, err := deploy.Deploy(ctx, prm)
	if err != nil {
		return fmt.Errorf("deploy contract: %w", err)
	}

	log.Info("SkillMarket contract is ready", zap.Stringer("address", addr))

	return nil
}

func configurationFromFlags(c *cli.Context) (deploy.Configuration, error) {
	cfg := deploy.Configuration{
		SkillRate:        c.Int64("skill-rate"),
		ServiceFee:       c.Int64("service-fee"),
		MaxSkillsPerUser: c.Int64("max-skills"),
		ReserveLimit:     c.Int64("reserve-limit"),
	}

	if s := c.String("admin"); s != "" {
		admin, err := parseUint160(s)
		if err != nil {
			return cfg, fmt.Errorf("administrator: %w", err)
		}
		cfg.Administrator = admin
	}

	for _, s := range c.StringSlice("alloc") {
		a, err := deploy.ParseAllocation(s)
		if err != nil {
			return cfg, fmt.Errorf("allocation '%s': %w", s, err)
		}
		cfg.Allocations = append(cfg.Allocations, a)
	}

	return cfg, cfg.Validate()
}

// openAccount reads the wallet and decrypts the selected account.
func openAccount(c *cli.Context) (*wallet.Account, error) {
	path := c.String("wallet")
	if path == "" {
		return nil, cli.NewExitError("missing --wallet flag", 1)
	}

	w, err := wallet.NewWalletFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account

	if s := c.String("account"); s != "" {
		h, err := parseUint160(s)
		if err != nil {
			return nil, cli.NewExitError(err, 1)
		}
		acc = w.GetAccount(h)
	} else if h := w.GetChangeAddress(); !h.Equals(util.Uint160{}) {
		acc = w.GetAccount(h)
	}

	if acc == nil {
		return nil, fmt.Errorf("account is missing in wallet '%s'", path)
	}

	err = acc.Decrypt(c.String("password"), w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}
