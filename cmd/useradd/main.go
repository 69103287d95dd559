// Command useradd registers a user allowed to call the write routes of the
// API with Basic auth.
//
// The password is read from USERADD_PASSWORD when -p is not given so that it
// does not end up in shell history.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-nft-market/internal/config"
	"github.com/MKhiriev/go-nft-market/internal/crypto"
	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/service"
	"github.com/MKhiriev/go-nft-market/internal/store"
	"github.com/MKhiriev/go-nft-market/internal/workers"
	"github.com/MKhiriev/go-nft-market/models"
	"github.com/caarlos0/env/v11"
)

type options struct {
	DSN      string `env:"DATABASE_URI"`
	Username string `env:"USERADD_USERNAME"`
	Password string `env:"USERADD_PASSWORD"`
}

func main() {
	log := logger.NewLogger("nft-market-useradd")

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	storages, err := store.NewStorages(ctx, config.DB{DSN: opts.DSN}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	pool, err := workers.NewPool(1, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating hashing pool")
	}
	defer pool.Shutdown(context.Background())

	auth := service.NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(crypto.DefaultParams), pool, log)
	user, err := auth.RegisterUser(ctx, models.Credentials{
		Username: opts.Username,
		Password: models.Secret(opts.Password),
	})
	if err != nil {
		log.Error().Err(err).Str("username", opts.Username).Msg("error registering user")
		os.Exit(1)
	}

	fmt.Printf("user %s registered with id %s\n", user.Username, user.UserID)
}

// parseOptions reads the environment first; flags override it.
func parseOptions(args []string) (options, error) {
	var opts options
	if err := env.Parse(&opts); err != nil {
		return options{}, fmt.Errorf("error parsing env: %w", err)
	}

	fs := flag.NewFlagSet("useradd", flag.ContinueOnError)
	fs.StringVar(&opts.DSN, "d", opts.DSN, "Database DSN")
	fs.StringVar(&opts.Username, "u", opts.Username, "Username")
	fs.StringVar(&opts.Password, "p", opts.Password, "Password")
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("error parsing flags: %w", err)
	}

	if opts.DSN == "" {
		return options{}, fmt.Errorf("database DSN is required (-d or DATABASE_URI)")
	}
	if opts.Username == "" || opts.Password == "" {
		return options{}, fmt.Errorf("username and password are required")
	}

	return opts, nil
}
