package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	cons "github.com/tonatiuh19/intelipadel-sub001/internal/consumer"
	"github.com/tonatiuh19/intelipadel-sub001/internal/events"
	"github.com/tonatiuh19/intelipadel-sub001/internal/notify"
	"github.com/tonatiuh19/intelipadel-sub001/internal/repository"
	"github.com/tonatiuh19/intelipadel-sub001/internal/service"
	thttp "github.com/tonatiuh19/intelipadel-sub001/internal/transport/http"
	"github.com/tonatiuh19/intelipadel-sub001/internal/transport/http/handlers"
	"github.com/tonatiuh19/intelipadel-sub001/pkg/config"
	"github.com/tonatiuh19/intelipadel-sub001/pkg/db"
	"github.com/tonatiuh19/intelipadel-sub001/pkg/mq"
	"github.com/tonatiuh19/intelipadel-sub001/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	if cfg.TracingOn {
		shutdown := obs.InitTracer(cfg.ServiceName)
		defer func() {
			_ = shutdown(context.Background())
		}()
	}

	// DB
	gdb := db.Open(cfg.PGDSN)
	must(0, repository.Migrate(gdb))

	clubRepo := repository.NewClubRepo(gdb)
	courtRepo := repository.NewCourtRepo(gdb)
	ruleRepo := repository.NewPriceRuleRepo(gdb)
	blockRepo := repository.NewBlockedRepo(gdb)
	eventRepo := repository.NewEventRepo(gdb)
	classRepo := repository.NewClassRepo(gdb)
	bookingRepo := repository.NewBookingRepo(gdb)
	availRepo := repository.NewAvailabilityRepo(gdb)

	// Publisher for booking.* events
	bookingPub := must(mq.NewPublisher(cfg.RabbitURL, cfg.BookingExchange))
	defer bookingPub.Close()

	// Services
	bookingSvc := service.NewBookingSvc(bookingRepo, availRepo, ruleRepo, clubRepo, courtRepo, bookingPub)
	pricingSvc := service.NewPricingSvc(ruleRepo, clubRepo)
	availSvc := service.NewAvailabilitySvc(availRepo, clubRepo)
	clubSvc := service.NewClubSvc(clubRepo, blockRepo)
	courtSvc := service.NewCourtSvc(courtRepo)
	eventSvc := service.NewEventSvc(eventRepo)
	classSvc := service.NewClassSvc(classRepo)

	// Consumer for payment.paid
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	paymentCons := must(mq.NewConsumer(cfg.RabbitURL, cfg.PaymentExchange, cfg.PaymentQueue, []string{events.RKPaymentPaid}))
	defer paymentCons.Close()
	pc := cons.NewPaymentConsumer(bookingRepo, paymentCons)
	must(0, pc.Run(ctx))
	log.Println("[server] payment consumer started")

	// Notification worker over booking.* and payment.* events
	nw := notify.NewWorker(notify.Config{
		RabbitURL: cfg.RabbitURL,
		Exchanges: []string{cfg.BookingExchange, cfg.PaymentExchange},
		Queue:     cfg.NotifyQueue,
		Bindings:  []string{"booking.*", "payment.*"},
		Prefetch:  16,
		UseDLX:    true,
		DLXName:   cfg.NotifyDLX,
		DLXQueue:  cfg.NotifyDLQ,
		Consumer:  cfg.ServiceName + "-notify",
	}, notify.NewConsole())
	must(0, nw.Connect())
	defer nw.Close()
	go func() {
		if err := nw.Run(ctx); err != nil {
			log.Printf("[server] notify worker stopped: %v", err)
		}
	}()

	// HTTP
	router := thttp.NewRouter(thttp.Handlers{
		Clubs:        handlers.NewClubHandler(clubSvc),
		Courts:       handlers.NewCourtHandler(courtSvc),
		Pricing:      handlers.NewPricingHandler(pricingSvc),
		Availability: handlers.NewAvailabilityHandler(availSvc),
		Bookings:     handlers.NewBookingHandler(bookingSvc),
		Events:       handlers.NewEventHandler(eventSvc),
		Classes:      handlers.NewClassHandler(classSvc),
	})
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Println("[server] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	_ = srv.Shutdown(shutdownCtx)
	log.Println("[server] stopped")
}
