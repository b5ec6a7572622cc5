package main

import (
	"bufio"
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fasterpost/internal/entities"
	"fasterpost/internal/gateway/rest/courierapi"
	"fasterpost/internal/pkg/config"
	"fasterpost/internal/pkg/dotenv"
	"fasterpost/internal/service/lockerinteraction"
	"fasterpost/internal/service/routelifecycle"
	"fasterpost/internal/service/routeprogress"
	"fasterpost/pkg/logger"
	"fasterpost/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	}

	cfg, err := config.LoadClient()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	err = run(ctx, cfg)
	if err != nil {
		mainLog.Error("terminal failed", logger.NewField("error", err))
	}
}

// consoleUI реализует Notifier и Confirmer поверх stdin/stdout.
type consoleUI struct {
	in *bufio.Reader
}

func (u *consoleUI) Notify(msg string) {
	fmt.Printf("  ! %s\n", msg)
}

func (u *consoleUI) Confirm(prompt string) bool {
	fmt.Printf("%s [y/n]: ", prompt)
	line, err := u.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func run(ctx context.Context, cfg *config.CourierAPI) error {
	client := courierapi.New(cfg.BaseURL, cfg.Token, cfg.RequestTimeout)
	progress := routeprogress.New(client)
	ui := &consoleUI{in: bufio.NewReader(os.Stdin)}
	lifecycle := routelifecycle.New(client, progress, ui, ui)

	if err := progress.Reload(ctx); err != nil {
		return fmt.Errorf("load current route: %w", err)
	}
	printRoute(progress.Current())

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(`commands: route, routes, start, stop, tab <drop|pick>, scan <id>, scanall, complete, finish, quit`)

	// интерактор живет пока курьер обслуживает текущий стоп
	var locker *lockerinteraction.Controller

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return nil

		case "route":
			if err := progress.Reload(ctx); err != nil {
				ui.Notify(err.Error())
				continue
			}
			locker = nil
			printRoute(progress.Current())

		case "routes":
			routes, err := client.ListRoutes(ctx)
			if err != nil {
				ui.Notify(err.Error())
				continue
			}
			for i := range routes {
				r := &routes[i]
				fmt.Printf("  %s  %s  %s  %d stops\n",
					r.ScheduledDate.Format("2006-01-02"), r.RouteType, r.Status, len(r.Stops))
			}

		case "start":
			if err := lifecycle.Start(ctx); err != nil {
				ui.Notify(err.Error())
				continue
			}
			printRoute(progress.Current())

		case "stop":
			stop := progress.NextStop()
			route := progress.Current()
			if stop == nil || route == nil {
				ui.Notify("no pending stop")
				continue
			}
			locker = lockerinteraction.New(client, progress, ui, ui, route.ID, stop.ID)
			printStop(stop, locker)

		case "tab":
			if locker == nil {
				ui.Notify("open a stop first")
				continue
			}
			if len(args) == 1 && args[0] == "pick" {
				locker.SelectTab(lockerinteraction.TabPickup)
			} else {
				locker.SelectTab(lockerinteraction.TabDropoff)
			}
			printStop(progress.StopByID(locker.StopID()), locker)

		case "scan":
			if locker == nil || len(args) != 1 {
				ui.Notify("usage: scan <package_id>")
				continue
			}
			if err := locker.Scan(ctx, args[0]); err != nil {
				ui.Notify(err.Error())
				continue
			}
			printStop(progress.StopByID(locker.StopID()), locker)

		case "scanall":
			if locker == nil {
				ui.Notify("open a stop first")
				continue
			}
			if err := locker.ScanAll(ctx); err != nil {
				ui.Notify(err.Error())
			}
			printStop(progress.StopByID(locker.StopID()), locker)

		case "complete":
			if locker == nil {
				ui.Notify("open a stop first")
				continue
			}
			if err := locker.ConfirmStopCompletion(ctx); err != nil {
				ui.Notify(err.Error())
				continue
			}
			locker = nil
			printRoute(progress.Current())

		case "finish":
			if err := lifecycle.Finish(ctx); err != nil {
				ui.Notify(err.Error())
				continue
			}
			locker = nil
			printRoute(progress.Current())

		default:
			ui.Notify("unknown command: " + cmd)
		}
	}
}

func printRoute(route *entities.Route) {
	if route == nil {
		fmt.Println("no active route for today")
		return
	}

	fmt.Printf("route %s (%s), %s, progress %.0f%%\n",
		route.ID, route.RouteType, route.Status, route.Progress())

	for _, stop := range route.Stops {
		mark := " "
		if stop.CompletedAt != nil {
			mark = "x"
		}
		fmt.Printf("  [%s] %d. %s (%s): drop %d left, pick %d left\n",
			mark, stop.Order, stop.Location().Name, stop.LocationKind(),
			stop.DropsLeft(), stop.PicksLeft())
	}
}

func printStop(stop *entities.Stop, locker *lockerinteraction.Controller) {
	if stop == nil || locker == nil {
		return
	}

	fmt.Printf("stop %d: %s [%s tab]\n", stop.Order, stop.Location().Name, locker.ActiveTab())
	for _, item := range locker.ActiveItems() {
		fmt.Printf("  %-12s %-8s %s\n", item.DisplayCode(), item.Size, locker.ItemState(item.ID))
	}
}
