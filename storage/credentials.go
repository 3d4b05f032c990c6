package storage

import (
	"os"

	"github.com/joho/godotenv"
)

type credentialsLogger interface {
	Panicf(format string, args ...interface{})
}

const (
	testnetHTTPUrl      = "https://testnet.binancefuture.com"
	testnetWebsocketURL = "wss://stream.binancefuture.com/ws"

	defaultTradingLogFile = "trading_log.txt"
)

type Credentials struct {
	binanceAPIKey       string
	binanceSecretKey    string
	telegramBotAPIToken string
	databaseDSN         string
	tradingLogFile      string
	websocketURL        string
	httpUrl             string
	logger              credentialsLogger
}

// NewCredentialsStorage reads the exchange credentials from the
// environment, honoring a .env file in the working directory.
// DATABASE_DSN and TRADING_LOG_FILE are optional.
func NewCredentialsStorage(credentialsLogger credentialsLogger) *Credentials {
	// Missing .env is fine, variables may come from the environment itself
	_ = godotenv.Load()

	credentials := Credentials{logger: credentialsLogger}

	credentials.binanceAPIKey = credentials.getKeyFromEnv("BINANCE_API_KEY")
	credentials.binanceSecretKey = credentials.getKeyFromEnv("BINANCE_API_SECRET")
	credentials.telegramBotAPIToken = credentials.getKeyFromEnv("TELEGRAM_BOT_API_TOKEN")
	credentials.databaseDSN = os.Getenv("DATABASE_DSN")
	credentials.tradingLogFile = os.Getenv("TRADING_LOG_FILE")
	if credentials.tradingLogFile == "" {
		credentials.tradingLogFile = defaultTradingLogFile
	}
	credentials.websocketURL = testnetWebsocketURL
	credentials.httpUrl = testnetHTTPUrl

	return &credentials
}

func (credentials *Credentials) GetBinanceAPIKey() string {
	return credentials.binanceAPIKey
}

func (credentials *Credentials) GetBinanceSecretKey() string {
	return credentials.binanceSecretKey
}

func (credentials *Credentials) GetTelegramBotAPIToken() string {
	return credentials.telegramBotAPIToken
}

func (credentials *Credentials) GetDatabaseDSN() string {
	return credentials.databaseDSN
}

func (credentials *Credentials) GetTradingLogFile() string {
	return credentials.tradingLogFile
}

func (credentials *Credentials) GetWebsocketURL() string {
	return credentials.websocketURL
}

func (credentials *Credentials) GetHTTPUrl() string {
	return credentials.httpUrl
}

func (credentials *Credentials) getKeyFromEnv(keyName string) string {
	key := os.Getenv(keyName)
	if key == "" {
		credentials.logger.Panicf("Please set %s in system environment variables", keyName)
	}
	return key
}
