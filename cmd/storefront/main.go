package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shamisthub/storefront/config"
	"github.com/shamisthub/storefront/internal/adminapi"
	"github.com/shamisthub/storefront/internal/app"
	"github.com/shamisthub/storefront/internal/mailer"
	"github.com/shamisthub/storefront/internal/shop"
	"github.com/shamisthub/storefront/internal/shop/store"
	"github.com/shamisthub/storefront/internal/storeapi"
	"github.com/shamisthub/storefront/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "storefront.yml", "config file")
	initdb   = flag.Bool("initdb", false, "drop and re-create all tables, then seed")
)

var (
	BuildVersion = "dev"
)

func printHelp() {
	if *h {
		ustr := fmt.Sprintf("storefront version: %s \nUsage: storefront -h\nOptions:", BuildVersion)
		fmt.Fprintf(os.Stderr, "%s\n", ustr)
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	if *showVer {
		fmt.Println(BuildVersion)
		os.Exit(0)
	}

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)

	if *initdb {
		application.InitDb()
		zap.S().Info("database initialized")
		os.Exit(0)
	}

	webserver.Init(application)
	adminapi.Init()

	session, closeStore, err := buildShopSession(cfg)
	if err != nil {
		zap.S().Fatalf("shop session init failed: %v", err)
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session.Start(ctx)
	storeapi.Init(session)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return webserver.Listen()
	})
	g.Go(func() error {
		<-ctx.Done()
		return webserver.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("server stopped: %v", err)
	}
}

// buildShopSession wires the storefront core to its data source: the
// local key-value store, or the REST API with the store kept for cart
// and admin-flag records.
func buildShopSession(cfg *config.AppConfig) (*shop.Session, func(), error) {
	st, err := store.OpenBolt(cfg.Shop.StorePath)
	if err != nil {
		return nil, nil, err
	}

	var source shop.DataSource
	if cfg.Shop.Mode == "local" {
		source = shop.NewLocalSource(st)
	} else {
		source = shop.NewRemoteSource(cfg.Shop.ApiUrl)
	}

	session := shop.NewSession(shop.Options{
		Store:         st,
		Source:        source,
		WhatsAppPhone: cfg.Shop.WhatsappPhone,
		AdminUsername: cfg.Shop.AdminUsername,
		AdminPassword: cfg.Shop.AdminPassword,
		Mailer:        shopMailer(cfg),
	})
	return session, func() { _ = st.Close() }, nil
}

// shopMailer returns nil when mail is disabled; a typed nil must not
// leak into the Mailer interface.
func shopMailer(cfg *config.AppConfig) shop.Mailer {
	if m := mailer.New(cfg.Mail); m != nil {
		return m
	}
	return nil
}
