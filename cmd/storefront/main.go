package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/api"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/config"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/session"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/store"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/view"
)

func main() {
	configPath := flag.String("config", "storefront.yml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	tokens, err := session.OpenTokenStore(cfg.TokenPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not open token store")
	}
	defer tokens.Close()

	client := api.NewClient(api.Config{
		BaseURL: cfg.BaseURL,
		Tokens:  tokens,
		Logger:  logger.With().Str("component", "api").Logger(),
	})

	st := store.New(store.Config{
		Backend:         client,
		Tokens:          tokens,
		Logger:          logger.With().Str("component", "store").Logger(),
		NotificationTTL: cfg.NotificationTTL,
	})

	renderer := view.New(st, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	st.FetchProducts(ctx)
	cancel()

	renderer.Render(context.Background())
	repl(cfg, st, renderer)
}

func repl(cfg config.Config, st *store.Store, renderer *view.Renderer) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(`type "help" for commands`)

	for {
		fmt.Printf("%s> ", st.Page())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		if quit := dispatch(ctx, st, fields); quit {
			cancel()
			return
		}
		renderer.Render(ctx)
		cancel()
	}
}

func dispatch(ctx context.Context, st *store.Store, fields []string) (quit bool) {
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		return true

	case "help":
		fmt.Println("go <page> | login <email> <pw> | register <name> <email> <pw> [photo]")
		fmt.Println("add <id> | rm <id> | qty <id> <n> | order <name> <number> <MM/YY> <cvv> [coupon]")
		fmt.Println("comment <id> <text...> | approve <user-id> | newproduct <name> <price> <desc...>")
		fmt.Println("refresh | orders | pending | logout | quit")

	case "go":
		if len(args) == 1 {
			st.Navigate(args[0])
		}

	case "login":
		if len(args) == 2 {
			st.Login(ctx, args[0], args[1])
		}

	case "logout":
		st.Logout()

	case "register":
		if len(args) < 3 {
			fmt.Println("usage: register <name> <email> <password> [photo-file]")
			break
		}
		var photo *api.Upload
		if len(args) > 3 {
			content, err := os.ReadFile(args[3])
			if err != nil {
				fmt.Println("could not read photo:", err)
				break
			}
			photo = &api.Upload{Filename: args[3], Content: content}
		}
		st.Register(ctx, args[0], args[1], args[2], photo)

	case "add":
		if id, ok := parseID(args); ok {
			st.AddToCart(id)
		}

	case "rm":
		if id, ok := parseID(args); ok {
			st.RemoveFromCart(id)
		}

	case "qty":
		if len(args) == 2 {
			id, err1 := strconv.ParseInt(args[0], 10, 64)
			q, err2 := strconv.Atoi(args[1])
			if err1 == nil && err2 == nil {
				st.UpdateCartQuantity(id, q)
			}
		}

	case "order":
		if len(args) < 4 {
			fmt.Println("usage: order <card-name> <card-number> <MM/YY> <cvv> [coupon]")
			break
		}
		coupon := ""
		if len(args) > 4 {
			coupon = args[4]
		}
		st.PlaceOrder(ctx, domain.PaymentInfo{
			CardName:   args[0],
			CardNumber: args[1],
			Expiry:     args[2],
			CVV:        args[3],
		}, coupon)

	case "comment":
		if len(args) >= 2 {
			if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				st.AddProductComment(ctx, id, strings.Join(args[1:], " "))
			}
		}

	case "approve":
		if len(args) == 1 {
			st.ApproveUser(ctx, args[0])
		}

	case "pending":
		st.FetchPendingUsers(ctx)

	case "newproduct":
		if len(args) < 2 {
			fmt.Println("usage: newproduct <name> <price> <description...>")
			break
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Println("bad price:", args[1])
			break
		}
		st.CreateProduct(ctx, api.ProductRequest{
			Name:        args[0],
			Price:       price,
			Description: strings.Join(args[2:], " "),
		}, nil)

	case "refresh":
		st.FetchProducts(ctx)

	case "orders":
		if sess := st.Session(); sess != nil {
			st.FetchOrderHistory(ctx, sess.UserID)
		}

	default:
		fmt.Println("unknown command:", cmd)
	}
	return false
}

func parseID(args []string) (int64, bool) {
	if len(args) != 1 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	return id, err == nil
}
