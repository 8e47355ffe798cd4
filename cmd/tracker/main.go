package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet_tracker/internal/app/normalizer"
	"wallet_tracker/internal/app/provider"
	"wallet_tracker/internal/app/service"
	"wallet_tracker/internal/client"
	"wallet_tracker/internal/infrastructure/configloader"
	"wallet_tracker/internal/infrastructure/restapi"
	"wallet_tracker/internal/infrastructure/telemetry"
	"wallet_tracker/internal/infrastructure/walletstore"
	"wallet_tracker/internal/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath := configloader.Path()
	cfg, err := configloader.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	zapLogger, err := logger.Init(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()

	logger.Info("Wallet tracker starting", "config", configPath, "logLevel", cfg.Logging.Level)

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", "error", err)
	}

	appLogger := logger.NewSlogAdapter()

	explorer := client.NewEtherscanClient(client.EtherscanOptions{
		BaseURL:        cfg.Etherscan.BaseURL,
		APIKey:         cfg.Etherscan.APIKey,
		BalanceTimeout: configloader.Millis(cfg.Etherscan.BalanceTimeoutMillis),
		TxListTimeout:  configloader.Millis(cfg.Etherscan.TxListTimeoutMillis),
		TokenTxTimeout: configloader.Millis(cfg.Etherscan.TokenTxTimeoutMillis),
	}, zapLogger)

	indexer := client.NewMoralisClient(client.MoralisOptions{
		BaseURL: cfg.Moralis.BaseURL,
		APIKey:  cfg.Moralis.APIKey,
		Chain:   cfg.Moralis.Chain,
		Timeout: configloader.Millis(cfg.Moralis.RequestTimeoutMillis),
	}, zapLogger)

	oracle := client.NewCoinGeckoClient(client.CoinGeckoOptions{
		BaseURL: cfg.CoinGecko.BaseURL,
		APIKey:  cfg.CoinGecko.APIKey,
		Timeout: configloader.Millis(cfg.CoinGecko.RequestTimeoutMillis),
	}, zapLogger)
	logger.Info("Upstream clients initialized")

	priceTable := provider.NewPriceTable(cfg.Prices.SymbolIDs, appLogger)
	norm := normalizer.New(appLogger.With("component", "normalizer"), cfg.NFT.IPFSGateway, cfg.NFT.PlaceholderImage)

	store := walletstore.NewFileStore(cfg.Wallets.FilePath, appLogger.Info)
	wallets := provider.NewWalletProvider(store, cfg.Wallets.MaxRecent, appLogger.With("component", "wallets"))

	dashboard := service.NewDashboardService(
		explorer,
		indexer,
		oracle,
		priceTable,
		norm,
		wallets,
		appLogger.With("component", "dashboard"),
		cfg.Dashboard.TopTransactions,
	)

	router := restapi.NewRouter(dashboard, wallets, zapLogger, restapi.RouterOptions{
		SwaggerEnabled:  cfg.Swagger.Enabled,
		SwaggerSpecFile: cfg.Swagger.SpecFile,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", "error", err)
	} else {
		logger.Info("HTTP server stopped")
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Warn("Tracer shutdown failed", "error", err)
	}

	logger.Info("Wallet tracker stopped")
}
