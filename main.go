package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samcodingcoach/toko2025/internal/api"
	"github.com/samcodingcoach/toko2025/internal/catalog"
	"github.com/samcodingcoach/toko2025/internal/config"
	"github.com/samcodingcoach/toko2025/internal/connection"
	"github.com/samcodingcoach/toko2025/internal/database"
	"github.com/samcodingcoach/toko2025/internal/migrations"
	"github.com/samcodingcoach/toko2025/internal/prefs"
	"github.com/samcodingcoach/toko2025/internal/session"
)

// app bundles the wired services so subcommands share one client, one
// database, and one logger.
type app struct {
	cfg      config.Config
	log      *logrus.Logger
	client   *api.Client
	prefs    *prefs.Store
	catalog  *catalog.Store
	syncer   *catalog.Syncer
	sessions *session.Manager
	conn     *connection.Service
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.WithError(err).Fatal("open local database")
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		log.WithError(err).Fatal("migrate local database")
	}

	store := prefs.New(db)
	client := api.NewClient(
		store.ServerURL(cfg.ServerURL),
		&http.Client{Timeout: cfg.HTTPTimeout},
		log,
	)

	a := &app{
		cfg:      cfg,
		log:      log,
		client:   client,
		prefs:    store,
		catalog:  catalog.NewStore(db),
		syncer:   catalog.NewSyncer(db, client, log),
		sessions: session.NewManager(client, store, log),
		conn:     connection.NewService(store, cfg.HTTPTimeout, log),
	}

	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.status(ctx)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "sync":
		return a.syncer.SyncAll(ctx)
	case "refresh":
		return a.syncer.ForceRefresh(ctx)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.sessions.Logout(ctx)
	case "products":
		return a.products(ctx)
	case "search":
		return a.search(ctx, rest)
	case "categories":
		return a.categories(ctx)
	case "brands":
		return a.brands(ctx)
	case "history":
		return a.history(ctx, rest)
	case "server":
		return a.selectServer(ctx, rest)
	case "status":
		return a.status(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <username> <password>")
	}
	u, err := a.sessions.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", u.Username, u.FullName)
	return nil
}

func (a *app) products(ctx context.Context) error {
	rows, err := a.client.Products(ctx)
	if err != nil {
		return err
	}
	for _, p := range rows {
		fmt.Printf("%-8d %-32s %10d %6d %s\n", p.ID, p.Name, p.Price, p.Stock, p.UnitSymbol)
	}
	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: search <name-or-barcode>")
	}
	rows, err := a.client.SearchProducts(ctx, args[0])
	if err != nil {
		return err
	}
	for _, p := range rows {
		fmt.Printf("%-8d %-32s %10d %6d %s\n", p.ID, p.Name, p.Price, p.Stock, p.UnitSymbol)
	}
	return nil
}

func (a *app) categories(ctx context.Context) error {
	if err := a.syncer.SyncCategories(ctx); err != nil {
		a.log.WithError(err).Warn("sync skipped, serving cached rows")
	}
	rows, err := a.catalog.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range rows {
		fmt.Printf("%-6d %-24s %d\n", c.ID, c.Name, c.ProductCount)
	}
	return nil
}

func (a *app) brands(ctx context.Context) error {
	if err := a.syncer.SyncBrands(ctx); err != nil {
		a.log.WithError(err).Warn("sync skipped, serving cached rows")
	}
	rows, err := a.catalog.Brands(ctx)
	if err != nil {
		return err
	}
	for _, b := range rows {
		fmt.Printf("%-6d %-24s %d\n", b.ID, b.Name, b.ProductCount)
	}
	return nil
}

func (a *app) history(ctx context.Context, args []string) error {
	u, err := a.sessions.Current()
	if err != nil {
		return err
	}
	start := ""
	if len(args) > 0 {
		start = args[0]
	}
	list, err := a.client.History(ctx, start, u.UserID)
	if err != nil {
		return err
	}
	for _, h := range list.Data {
		marker := " "
		if h.IsDebt() {
			marker = "H"
		}
		fmt.Printf("%s %-16s %-10s %12d %s\n", marker, h.Faktur, h.Date, h.GrandTotal, h.Payment)
	}
	fmt.Printf("%d transactions, total %d\n", list.Summary.Count, list.Summary.GrandTotal)
	return nil
}

func (a *app) selectServer(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: server <base-url>")
	}
	cfg := a.prefs.NetworkConfig()
	cfg.SelectedURL = args[0]
	return a.conn.Select(ctx, cfg)
}

func (a *app) status(ctx context.Context) error {
	fmt.Printf("server: %s\n", a.client.BaseURL())
	if err := a.client.Ping(ctx); err != nil {
		fmt.Println("reachable: no")
	} else {
		fmt.Println("reachable: yes")
	}
	if u, err := a.sessions.Current(); err == nil {
		fmt.Printf("cashier: %s (%s)\n", u.Username, strconv.FormatInt(u.UserID, 10))
	} else {
		fmt.Println("cashier: not logged in")
	}
	for _, table := range []string{catalog.TableCategories, catalog.TableBrands} {
		ts, err := a.catalog.LastSync(ctx, table)
		if err != nil {
			return err
		}
		if ts.IsZero() {
			fmt.Printf("%s: never synced\n", table)
		} else {
			fmt.Printf("%s: synced %s\n", table, ts.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
