package storage

import (
	"errors"

	"github.com/Fahad-kn/bot-binance/domain"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type databaseDSNStorage interface {
	GetDatabaseDSN() string
}

type storageLogger interface {
	Panicf(format string, args ...interface{})
}

// sqliteFile is the fallback database when no DATABASE_DSN is set,
// so the testnet bot runs without external infrastructure.
const sqliteFile = "bot-binance.db"

type Storage struct {
	dataBase *gorm.DB
	logger   storageLogger
}

func New(databaseDSNStorage databaseDSNStorage, storageLogger storageLogger) *Storage {
	var dialector gorm.Dialector
	if dsn := databaseDSNStorage.GetDatabaseDSN(); dsn != "" {
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	} else {
		dialector = sqlite.Open(sqliteFile)
	}

	return newStorage(dialector, storageLogger)
}

func newStorage(dialector gorm.Dialector, storageLogger storageLogger) *Storage {
	dataBase, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		storageLogger.Panicf("%v", err)
	}

	storage := Storage{dataBase: dataBase, logger: storageLogger}
	storage.dataBase.AutoMigrate(&domain.OrderInfo{}, &domain.User{}, &domain.InstrumentConfig{})

	return &storage
}

func (storage *Storage) NewOrderInfo(orderInfo *domain.OrderInfo) {
	result := storage.dataBase.Create(orderInfo)

	if result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}
}

func (storage *Storage) GetOrderInfos() []domain.OrderInfo {
	var orderInfos []domain.OrderInfo

	result := storage.dataBase.Order("update_time").Find(&orderInfos)

	if result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}

	return orderInfos
}

func (storage *Storage) NewUser(newUser *domain.User) {
	result := storage.dataBase.Create(&newUser)

	if result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}
}

func (storage *Storage) FindUser(findUser *domain.User) (domain.User, bool) {
	var user domain.User

	result := storage.dataBase.Where(findUser).Take(&user)

	isFound := !errors.Is(result.Error, gorm.ErrRecordNotFound)
	if isFound && result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}

	return user, isFound
}

func (storage *Storage) GetUsers() []domain.User {
	var users []domain.User

	result := storage.dataBase.Find(&users)

	if result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}

	return users
}

// SaveInstrument replaces the single traded instrument.
func (storage *Storage) SaveInstrument(newInstrument domain.InstrumentConfig) {
	var instrument domain.InstrumentConfig
	result := storage.dataBase.Take(&instrument)

	isFound := !errors.Is(result.Error, gorm.ErrRecordNotFound)
	if isFound && result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}

	if isFound {
		storage.dataBase.Where("symbol = ?", instrument.Symbol).Delete(&instrument)
	}

	storage.dataBase.Create(&newInstrument)
}

func (storage *Storage) GetInstrument() (domain.InstrumentConfig, bool) {
	var instrument domain.InstrumentConfig

	result := storage.dataBase.Take(&instrument)

	isFound := !errors.Is(result.Error, gorm.ErrRecordNotFound)

	if isFound && result.Error != nil {
		storage.logger.Panicf("%v", result.Error)
	}

	return instrument, isFound
}
