package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/snap-ads-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snap-ads-api/internal/config"
	"github.com/vfg2006/snap-ads-api/pkg/log"
	"github.com/vfg2006/snap-ads-api/pkg/utils"
)

// Fluxo interativo: imprime a URL de autorização, lê o callback colado no
// terminal e mostra os tokens para serem gravados no .env
func main() {
	refreshOnly := pflag.Bool("refresh", false, "only refresh the access token using SNAP_REFRESH_TOKEN")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := snapclient.NewClient(cfg)

	if *refreshOnly {
		tokens := snapclient.NewTokenManager(cfg, client)
		creds, err := tokens.Refresh(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("authorize: refresh failed")
		}
		fmt.Println(utils.PrettyJson(creds))
		return
	}

	tokenSet, err := client.Authorize(ctx, &snapclient.ConsoleCallbackProvider{In: os.Stdin, Out: os.Stdout})
	if err != nil {
		logrus.WithError(err).Fatal("authorize: authorization failed")
	}

	fmt.Println(utils.PrettyJson(tokenSet))
}
