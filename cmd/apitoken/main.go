package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/internal/usecases/authenticating"
)

// Emite um JWT para um cliente da API de relatórios
func main() {
	client := pflag.String("client", "", "name of the API client")
	ttl := pflag.Duration("ttl", 24*time.Hour, "token lifetime")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).GenerateToken(*client, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("apitoken: could not generate token")
	}

	fmt.Println(token)
}
