package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/config"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/contractCaller"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/logger"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence"
	badgerLog "github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence/badger"
	memoryLog "github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence/memory"
	redisLog "github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence/redis"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/relay"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/replayGuard"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/server"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/transactionSigner"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "relay-server",
		Usage: "Gasless relay server for the budget ledger contract",
		Description: `An HTTP server that relays wallet-signed ledger writes on-chain.

Clients sign an addTransaction payload off-chain with their own wallet
(personal message signature) and POST it here. The server verifies the
signature and timestamp, then submits the write from its own funded
account so clients never need gas. Owner operations (approvals,
ownership transfer) and read endpoints are exposed as well.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   7569,
				Usage:   "HTTP server port",
				EnvVars: []string{config.EnvRelayPort},
			},
			&cli.Uint64Flag{
				Name:     "chain-id",
				Aliases:  []string{"chain"},
				Usage:    fmt.Sprintf("Ethereum chain ID: %s", config.GetSupportedChainIDsString()),
				EnvVars:  []string{config.EnvRelayChainID},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "rpc-url",
				Aliases: []string{"rpc"},
				Usage:   "Ethereum RPC endpoint URL",
				Value:   "http://localhost:8545",
				EnvVars: []string{config.EnvRelayRPCURL},
			},
			&cli.StringFlag{
				Name:     "private-key",
				Aliases:  []string{"key"},
				Usage:    "Funded relayer private key (hex string); pays gas for every relayed write",
				EnvVars:  []string{config.EnvRelayPrivateKey},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "contract-address",
				Aliases:  []string{"contract"},
				Usage:    "Deployed budget ledger contract address",
				EnvVars:  []string{config.EnvRelayContractAddress},
				Required: true,
			},
			&cli.Int64Flag{
				Name:    "replay-window-seconds",
				Usage:   "Maximum allowed clock skew between payload timestamp and server time",
				Value:   int64(replayGuard.DefaultWindow / time.Second),
				EnvVars: []string{config.EnvRelayReplayWindow},
			},
			&cli.StringFlag{
				Name:    "persistence-type",
				Usage:   "Transaction log backend: memory, badger or redis",
				Value:   string(config.PersistenceTypeMemory),
				EnvVars: []string{config.EnvRelayPersistenceType},
			},
			&cli.StringFlag{
				Name:    "badger-path",
				Usage:   "Data directory for the badger transaction log",
				EnvVars: []string{config.EnvRelayBadgerPath},
			},
			&cli.StringFlag{
				Name:    "redis-address",
				Usage:   "Redis address for the redis transaction log",
				EnvVars: []string{config.EnvRelayRedisAddress},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvRelayVerbose},
			},
		},
		Action: runRelayServer,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func runRelayServer(c *cli.Context) error {
	loggerConfig := &logger.LoggerConfig{
		Debug: c.Bool("verbose"),
	}
	l, err := logger.NewLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	relayConfig := parseRelayConfig(c)
	if err := relayConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	l.Sugar().Infow("Using chain", "name", relayConfig.ChainName, "chain_id", relayConfig.ChainID)

	ethClient, err := ethclient.Dial(relayConfig.RpcUrl)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC at %s: %w", relayConfig.RpcUrl, err)
	}
	defer ethClient.Close()

	signer, err := transactionSigner.NewTransactionSigner(&transactionSigner.SignerConfig{
		PrivateKey: relayConfig.PrivateKey,
	}, ethClient, l)
	if err != nil {
		return fmt.Errorf("failed to create transaction signer: %w", err)
	}

	confirmTimeout := config.GetConfirmationTimeoutForChain(relayConfig.ChainID)
	gateway, err := contractCaller.NewContractCaller(
		common.HexToAddress(relayConfig.ContractAddress),
		ethClient,
		signer,
		confirmTimeout,
		l,
	)
	if err != nil {
		return fmt.Errorf("failed to create ledger gateway: %w", err)
	}

	txLog, err := buildTransactionLog(relayConfig, l)
	if err != nil {
		return fmt.Errorf("failed to create transaction log: %w", err)
	}
	defer func() {
		if err := txLog.Close(); err != nil {
			l.Sugar().Errorw("Failed to close transaction log", "error", err)
		}
	}()

	orchestrator := relay.NewOrchestrator(
		gateway,
		txLog,
		time.Duration(relayConfig.ReplayWindowSeconds)*time.Second,
		l,
	)

	srv := server.NewServer(orchestrator, gateway, txLog, relayConfig.Port, l)

	if c.Bool("verbose") {
		l.Sugar().Infow("Relay Server Configuration",
			"port", relayConfig.Port,
			"chain", relayConfig.ChainName,
			"contract_address", relayConfig.ContractAddress,
			"relayer_address", gateway.GetFromAddress().Hex(),
			"replay_window_seconds", relayConfig.ReplayWindowSeconds,
			"confirmation_timeout", confirmTimeout,
			"persistence_type", relayConfig.PersistenceType)
	}

	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	l.Sugar().Infow("Relay server running",
		"port", relayConfig.Port,
		"relayer_address", gateway.GetFromAddress().Hex())
	l.Sugar().Infow("Available endpoints",
		"relay", "POST /api/ledger/relay-add-transaction",
		"owner_writes", "POST /api/ledger/{approve-sender,approve-recipient,add-transaction,transfer-ownership}",
		"reads", "GET /api/ledger/{transactions,transaction/{index},transaction-count,approved-senders,approved-recipients}")
	l.Sugar().Info("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	l.Sugar().Info("Shutting down relay server")

	// In-flight confirmation waits get until the deadline; broadcast writes
	// are never abandoned mid-submit.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), confirmTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		l.Sugar().Errorw("Server shutdown error", "error", err)
	}

	return nil
}

func parseRelayConfig(c *cli.Context) *config.RelayServerConfig {
	return &config.RelayServerConfig{
		Port:                c.Int("port"),
		ChainID:             config.ChainId(c.Uint64("chain-id")),
		RpcUrl:              c.String("rpc-url"),
		PrivateKey:          c.String("private-key"),
		ContractAddress:     c.String("contract-address"),
		ReplayWindowSeconds: c.Int64("replay-window-seconds"),
		PersistenceType:     config.PersistenceType(c.String("persistence-type")),
		BadgerPath:          c.String("badger-path"),
		RedisAddress:        c.String("redis-address"),
		Verbose:             c.Bool("verbose"),
	}
}

func buildTransactionLog(cfg *config.RelayServerConfig, l *zap.Logger) (persistence.ITransactionLog, error) {
	switch cfg.PersistenceType {
	case config.PersistenceTypeBadger:
		return badgerLog.NewBadgerLog(cfg.BadgerPath, l)
	case config.PersistenceTypeRedis:
		return redisLog.NewRedisLog(&redisLog.RedisConfig{
			Address: cfg.RedisAddress,
		}, l)
	default:
		l.Sugar().Warnw("⚠️ Using in-memory transaction log - records are lost on restart",
			"hint", "set "+config.EnvRelayPersistenceType+"=badger for durable records")
		return memoryLog.NewMemoryLog(), nil
	}
}
