package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"tripay-go/internal/config"
	"tripay-go/internal/logger"
	"tripay-go/pkg/tripay"

	"go.uber.org/zap"
)

const usage = `usage: tripay <command> [flags]

commands:
  channels                                   list payment channels
  fee -amount N [-code CODE]                 calculate fees
  instruction -code CODE [-pay-code X] [-amount N] [-html]
  transactions [-page N] [-per-page N]       list merchant transactions
  detail -reference REF                      closed transaction detail
  create -file payload.json                  create a closed transaction (- reads stdin)
  open-create -method CODE -name NAME [-ref REF]
  open-detail -uuid UUID
  open-transactions -uuid UUID
`

var (
	loadConfigFunc = config.LoadConfig
	newClientFunc  = func(cfg *config.Config) *tripay.Client {
		return tripay.New(cfg.Tripay(),
			tripay.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			tripay.WithChannelCache(cfg.ChannelCacheTTL),
		)
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.L().Error("tripay command failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Sync()
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cfg, err := loadConfigFunc()
	if err != nil {
		return err
	}
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	client := newClientFunc(cfg)
	resp, err := dispatch(ctx, client, args[0], args[1:])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func dispatch(ctx context.Context, c *tripay.Client, cmd string, args []string) (*tripay.Response, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch cmd {
	case "channels":
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return c.PaymentChannels(ctx)

	case "fee":
		amount := fs.Int64("amount", 0, "amount in rupiah")
		code := fs.String("code", "", "closed payment code")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return c.FeeCalculator(ctx, tripay.FeeCalculatorRequest{
			Code:   tripay.ClosedPaymentCode(strings.ToUpper(*code)),
			Amount: *amount,
		})

	case "instruction":
		code := fs.String("code", "", "closed payment code")
		payCode := fs.String("pay-code", "", "virtual account number or payment code")
		amount := fs.Int64("amount", 0, "amount in rupiah")
		html := fs.Bool("html", false, "allow html in steps")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return c.Instruction(ctx, tripay.InstructionRequest{
			Code:      tripay.ClosedPaymentCode(strings.ToUpper(*code)),
			PayCode:   *payCode,
			Amount:    *amount,
			AllowHTML: *html,
		})

	case "transactions":
		page := fs.Int("page", 1, "page number")
		perPage := fs.Int("per-page", 25, "records per page")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return c.Transactions(ctx, tripay.TransactionsRequest{Page: *page, PerPage: *perPage})

	case "detail":
		ref := fs.String("reference", "", "Tripay reference")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		return c.ClosedTransactionDetail(ctx, *ref)

	case "create":
		file := fs.String("file", "", "JSON closed transaction request, - for stdin")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		req, err := readClosedRequest(*file)
		if err != nil {
			return nil, err
		}
		if req.MerchantRef == "" {
			req.MerchantRef = tripay.NewMerchantRef("INV")
		}
		return c.CreateClosedTransaction(ctx, req)

	case "open-create":
		method := fs.String("method", "", "open payment code")
		ref := fs.String("ref", "", "merchant reference, generated when empty")
		name := fs.String("name", "", "customer name")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if *ref == "" {
			*ref = tripay.NewMerchantRef("OP")
		}
		return c.CreateOpenTransaction(ctx, tripay.OpenTransactionRequest{
			Method:       tripay.OpenPaymentCode(strings.ToUpper(*method)),
			MerchantRef:  *ref,
			CustomerName: *name,
		})

	case "open-detail", "open-transactions":
		uuid := fs.String("uuid", "", "open payment uuid")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if cmd == "open-detail" {
			return c.OpenTransactionDetail(ctx, *uuid)
		}
		return c.OpenTransactions(ctx, *uuid)
	}

	return nil, fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
}

var stdin io.Reader = os.Stdin

func readClosedRequest(path string) (tripay.ClosedTransactionRequest, error) {
	var req tripay.ClosedTransactionRequest

	var r io.Reader
	switch path {
	case "":
		return req, errors.New("create: -file is required")
	case "-":
		r = stdin
	default:
		f, err := os.Open(path)
		if err != nil {
			return req, err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("create: decode %s: %w", path, err)
	}
	return req, nil
}
