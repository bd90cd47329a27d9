package main

import (
	"Fintar/internal/api/chat"
	chatService "Fintar/internal/api/chat/service"
	"Fintar/internal/config"
	"Fintar/internal/entity"
	"Fintar/pkg/completion"
	"Fintar/pkg/currency"
	jwtPkg "Fintar/pkg/jwt"
	"Fintar/pkg/log"
	"Fintar/pkg/nlp"
	"fmt"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	netContext "golang.org/x/net/context"
)

type parseCmd struct {
	Message []string `arg:"" help:"Message text."`
	LLM     bool     `name:"llm" help:"Enable the completion fallback using the provider from the environment."`
}

func (c *parseCmd) Run(g *context) error {
	logger := log.NewLogger()
	validate := config.NewValidator()

	cfg := chat.DefaultConfig()
	cfg.Timezone = g.Timezone

	var client completion.Client
	if c.LLM {
		loaded, err := config.LoadChatConfig(validate)
		if err != nil {
			return err
		}
		loaded.Timezone = g.Timezone
		cfg = loaded

		client, err = config.NewCompletionClient(netContext.Background(), cfg, nil, logger)
		if err != nil {
			return err
		}
	}

	store := newMemoryStore()
	svc := chatService.NewChatService(logger, cfg, store, client, validate)

	result, err := svc.ProcessMessage(netContext.Background(), chat.ProcessMessageRequest{
		UserID:  "cli",
		Message: strings.Join(c.Message, " "),
	})
	if err != nil {
		return err
	}

	if err := printJSON(result); err != nil {
		return err
	}
	for _, tx := range store.transactions {
		fmt.Printf("%s\t%s\t%s\t%s\n",
			tx.OccurredOn().Format(entity.DateLayout), tx.Kind(), currency.FormatRupiah(tx.Value()), entity.Description(tx))
	}
	return nil
}

type rangeCmd struct {
	Phrase []string `arg:"" help:"Date phrase, e.g. 'bulan lalu' or '1-15 oktober 2026'."`
}

func (c *rangeCmd) Run(g *context) error {
	loc, err := nlp.LoadLocation(g.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "timezone %s not found, using UTC+7\n", g.Timezone)
	}

	resolver := nlp.NewDateRangeResolver(nlp.Indonesian(), loc, time.Now)
	dateRange, ok := resolver.Resolve(strings.Join(c.Phrase, " "))
	if !ok {
		return nlp.ErrNoDateRange
	}

	return printJSON(map[string]interface{}{
		"label": dateRange.Label,
		"start": dateRange.Start.Format(entity.DateLayout),
		"end":   dateRange.End.Format(entity.DateLayout),
		"days":  dateRange.Days(),
	})
}

type amountCmd struct {
	Token string `arg:"" help:"Amount token."`
}

func (c *amountCmd) Run(_ *context) error {
	amount, err := nlp.NormalizeAmount(c.Token)
	if err != nil {
		return err
	}
	fmt.Printf("%d\t%s\n", amount, currency.FormatRupiah(amount))
	return nil
}

type tokenCmd struct {
	UserID string `name:"user-id" required:"" help:"Value of the id claim."`
	Email  string `help:"Optional email claim."`
	TTL    string `name:"ttl" default:"24h" help:"Token lifetime, e.g. 24h or 30m."`
}

func (c *tokenCmd) Run(_ *context) error {
	claims := map[string]interface{}{"id": c.UserID}
	if c.Email != "" {
		claims["email"] = c.Email
	}

	ttl, err := time.ParseDuration(c.TTL)
	if err != nil {
		return err
	}

	token, expiresAt, err := jwtPkg.Sign(claims, ttl)
	if err != nil {
		return err
	}

	return printJSON(map[string]interface{}{
		"access_token": token,
		"expires_at":   time.Unix(expiresAt, 0).Format(time.RFC3339),
	})
}

func printJSON(v interface{}) error {
	out, err := jsoniter.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
