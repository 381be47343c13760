package main

import (
	"os"

	api "github.com/bruno-anjos/cluster-harness/api/marathon"
	"github.com/bruno-anjos/cluster-harness/internal/fakemarathon"
	"github.com/bruno-anjos/cluster-harness/internal/utils"
	"github.com/bruno-anjos/cluster-harness/pkg/marathon"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	serviceName = "FAKE_MARATHON"
)

func main() {
	app := &cli.App{
		Name:  "fake-marathon",
		Usage: "serve an in-memory Marathon apps API",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "add debug logs"},
			&cli.StringFlag{Name: "listen", Aliases: []string{"l"}, Value: utils.LocalhostAddr,
				Usage: "address to listen on"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: marathon.Port, Usage: "port to listen on"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("debug") {
				log.SetLevel(log.DebugLevel)
			}

			server := fakemarathon.NewServer()

			return utils.StartServer(serviceName, c.String("listen"), c.Int("port"), api.PrefixPath,
				server.Routes())
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
