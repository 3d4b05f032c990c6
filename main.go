package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Fahad-kn/bot-binance/handlers"
	"github.com/Fahad-kn/bot-binance/services"
	"github.com/Fahad-kn/bot-binance/storage"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := log.New()
	logger.SetLevel(log.DebugLevel)

	credentials := storage.NewCredentialsStorage(logger)

	// Every log line also lands in the plain-text activity log
	logFile, err := os.OpenFile(credentials.GetTradingLogFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Panicf("%v", err)
	}
	defer logFile.Close()
	logger.SetOutput(io.MultiWriter(os.Stdout, logFile))

	storage := storage.New(credentials, logger)

	userService := services.NewUsersService(storage)
	telegramBot := services.NewTelegramBot(userService, credentials, logger)

	httpclient := services.NewHTTPClient(credentials, logger)
	serverTime, err := httpclient.ServerTime()
	if err != nil {
		logger.Panicf("Exchange is unreachable: %v", err)
	}
	logger.Printf("Connected to Binance Futures Testnet, server time %d", serverTime)

	instrumentService := services.NewInstrumentService(storage)
	orderInfosService := services.NewOrderInfosService(storage)

	websocketClient := services.NewWebsocketClient(ctx, credentials, logger)
	handlers.NewServer(instrumentService, orderInfosService, websocketClient, logger).Run(":5000")

	algorithm := services.NewAlgorithm(websocketClient, instrumentService)
	services.NewTradeBot(algorithm, instrumentService, httpclient, orderInfosService, userService, telegramBot, logger)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	cancel()
}
