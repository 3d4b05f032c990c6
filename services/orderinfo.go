package services

import (
	"github.com/Fahad-kn/bot-binance/domain"
)

type orderInfosStorage interface {
	NewOrderInfo(orderInfo *domain.OrderInfo)
	GetOrderInfos() []domain.OrderInfo
}

type OrderInfosService struct {
	storage orderInfosStorage
}

func NewOrderInfosService(orderInfosStorage orderInfosStorage) *OrderInfosService {
	return &OrderInfosService{storage: orderInfosStorage}
}

func (orderInfosService *OrderInfosService) NewOrderInfo(orderInfo *domain.OrderInfo) {
	orderInfosService.storage.NewOrderInfo(orderInfo)
}

func (orderInfosService *OrderInfosService) GetOrderInfos() []domain.OrderInfo {
	return orderInfosService.storage.GetOrderInfos()
}
