package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Fahad-kn/bot-binance/domain"
)

type instrumentService interface {
	SaveInstrument(newInstrument domain.InstrumentConfig)
	GetInstrument() (domain.InstrumentConfig, bool)
}

type orderInfosService interface {
	GetOrderInfos() []domain.OrderInfo
}

type websocketClientService interface {
	SubscribeToTicker(symbols []string)
	UnsubscribeFromTicker(symbols []string)
}

type serverLogger interface {
	Panic(args ...interface{})
}

type Server struct {
	instrumentService instrumentService
	orderInfosService orderInfosService
	websocketClient   websocketClientService
	logger            serverLogger
}

func NewServer(instrumentService instrumentService, orderInfosService orderInfosService, websocketClient websocketClientService, serverLogger serverLogger) *Server {
	return &Server{
		instrumentService: instrumentService,
		orderInfosService: orderInfosService,
		websocketClient:   websocketClient,
		logger:            serverLogger,
	}
}

// Run serves the control surface and subscribes the stream to the
// stored instrument, if any.
func (server *Server) Run(addr string) {
	go func() {
		server.logger.Panic(http.ListenAndServe(addr, server.Routes()))
	}()

	instrument, ok := server.instrumentService.GetInstrument()
	if ok {
		server.websocketClient.SubscribeToTicker([]string{instrument.Symbol})
	}
}

func (server *Server) Routes() chi.Router {
	root := chi.NewRouter()

	root.Use(middleware.Logger)
	root.Put("/instrument", server.instrumentUpdate)
	root.Get("/instrument", server.instrumentGet)
	root.Get("/orders", server.ordersList)
	root.Handle("/metrics", promhttp.Handler())

	return root
}

func (server *Server) instrumentUpdate(w http.ResponseWriter, r *http.Request) {
	d, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	var instrumentConfig domain.InstrumentConfig
	err = json.Unmarshal(d, &instrumentConfig)
	if err != nil || instrumentConfig.Symbol == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	oldInstrument, ok := server.instrumentService.GetInstrument()
	if ok {
		server.websocketClient.UnsubscribeFromTicker([]string{oldInstrument.Symbol})
	}
	server.instrumentService.SaveInstrument(instrumentConfig)
	server.websocketClient.SubscribeToTicker([]string{instrumentConfig.Symbol})

	w.WriteHeader(http.StatusOK)
}

func (server *Server) instrumentGet(w http.ResponseWriter, r *http.Request) {
	instrument, ok := server.instrumentService.GetInstrument()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(instrument)
}

func (server *Server) ordersList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(server.orderInfosService.GetOrderInfos())
}
