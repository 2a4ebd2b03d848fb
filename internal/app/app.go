package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/adapter/fetcher"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/adapter/parser"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/adapter/renderer"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/config"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/logger"
	server "github.com/mhmdxsadk/iraqinews-rss-proxy/internal/transport/http"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/usecase"
)

// App представляет приложение прокси RSS-ленты.
// Связывает компоненты конвейера обработки с HTTP-сервером и системой
// логирования. Обеспечивает graceful startup и shutdown.
type App struct {
	config   *config.Config
	logger   *slog.Logger
	server   *http.Server
	stopChan chan os.Signal
	wg       sync.WaitGroup
}

// New создает и инициализирует новый экземпляр приложения.
// Выполняет настройку логгера и сборку конвейера обработки:
// загрузчик, парсер, фильтр и рендерер за общим use case.
func New(cfg *config.Config) *App {
	appLogger := logger.New(cfg.LogLevel)
	slog.SetDefault(appLogger)

	httpFetcher := fetcher.NewHTTPFetcher(cfg.FetchTimeout, appLogger)

	rssParser := parser.NewRSSParser(appLogger)

	rssRenderer := renderer.NewRSSRenderer(appLogger)

	feedProxy := usecase.NewProxyFeedUseCase(
		httpFetcher,
		rssParser,
		rssRenderer,
		appLogger,
		cfg.UpstreamURL,
		cfg.FilterPrefix,
	)

	handler := server.NewHandler(appLogger, feedProxy)

	router := server.NewServer(appLogger, handler, cfg.RateLimit, cfg.RateBurst)

	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: router,
	}
	return &App{
		config:   cfg,
		logger:   appLogger,
		server:   srv,
		stopChan: make(chan os.Signal, 1),
	}
}

// Run запускает приложение прокси.
// Открывает слушающий сокет, запускает HTTP-сервер в отдельной горутине
// и блокируется до получения сигнала завершения.
func (a *App) Run() error {
	a.logger.Info("Starting RSS proxy",
		slog.String("component", "app"),
		slog.String("upstream", a.config.UpstreamURL),
		slog.String("prefix", a.config.FilterPrefix),
	)
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	defer listener.Close()
	a.logger.Info("HTTP server ready",
		slog.String("component", "server"),
		slog.String("address", listener.Addr().String()),
	)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server failed", slog.Any("error", err))
		}
	}()
	signal.Notify(a.stopChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-a.stopChan
	a.logger.Info("Shutdown signal received",
		slog.String("component", "app"),
		slog.String("signal", sig.String()),
	)
	return a.Shutdown()
}

// Shutdown выполняет graceful shutdown приложения.
// Завершает HTTP-сервер с таймаутом 10 секунд и ожидает завершения всех горутин.
func (a *App) Shutdown() error {
	a.logger.Info("Starting graceful shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown failed", slog.Any("error", err))
	}
	a.wg.Wait()
	a.logger.Info("Application stopped gracefully")
	return nil
}
