package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/historian"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/urfave/cli/v3"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cmd := &cli.Command{
		Name:  "uno",
		Usage: "play UNO in the terminal or host tables for remote players",
		Commands: []*cli.Command{
			playCommand(),
			serveCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play a local game against bots",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "players", Usage: "number of seats, yours included"},
			&cli.StringFlag{Name: "name", Usage: "your name at the table"},
			&cli.Int64Flag{Name: "seed", Usage: "shuffle seed, random when 0"},
			&cli.IntFlag{Name: "turn-limit", Usage: "abort after this many turns, 0 for no limit"},
			&cli.BoolFlag{Name: "bots", Usage: "only bots play, you watch"},
			&cli.DurationFlag{Name: "delay", Value: 300 * time.Millisecond, Usage: "pause after every printed line"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			seed := conf.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			terminal := ui.NewTerminal(os.Stdin, color.Stdout).WithDelay(cmd.Duration("delay"))
			terminal.Print(msg.Message.Welcome())

			var players map[int]game.Player
			opts := []game.MatchOption{game.WithTurnLimit(conf.TurnLimit)}
			if cmd.Bool("bots") {
				players = player.CreateBots(conf.Players, rng)
				opts = append(opts, game.WithListener(player.NewSpectator(terminal)))
			} else {
				players = player.CreatePlayers(conf.Players, conf.Name, terminal, rng)
			}

			listeners, closeHistorian := connectHistorian(ctx, conf)
			defer closeHistorian()
			for _, listener := range listeners {
				opts = append(opts, game.WithListener(listener))
			}

			g, err := game.New(conf.Players, rng)
			if err != nil {
				return err
			}
			m, err := game.NewMatch(g, players, opts...)
			if err != nil {
				return err
			}
			log.Infof("match %s seeded with %d\n", m.ID(), seed)
			_, err = m.Run()
			return err
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "host tables for remote players over tcp and websocket",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "players", Usage: "seats per table"},
			&cli.Int64Flag{Name: "seed", Usage: "shuffle seed, random when 0"},
			&cli.IntFlag{Name: "turn-limit", Usage: "abort a match after this many turns, 0 for the default"},
			&cli.StringFlag{Name: "tcp", Usage: "tcp listen address"},
			&cli.StringFlag{Name: "ws", Usage: "websocket listen address, disabled when empty"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("tcp") {
				conf.TcpAddr = cmd.String("tcp")
			}
			if cmd.IsSet("ws") {
				conf.WsAddr = cmd.String("ws")
			}

			listeners, closeHistorian := connectHistorian(ctx, conf)
			defer closeHistorian()
			lobby, err := database.NewLobby(conf, listeners...)
			if err != nil {
				return err
			}
			servers := []network.Network{network.NewTcpServer(conf.TcpAddr, lobby)}
			if conf.WsAddr != "" {
				servers = append(servers, network.NewWebsocketServer(conf.WsAddr, lobby))
			}
			return network.Serve(servers...)
		},
	}
}

// loadConfig reads the environment and lets flags win over it.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	conf, err := config.Decode()
	if err != nil {
		return conf, err
	}
	if cmd.IsSet("players") {
		conf.Players = cmd.Int("players")
	}
	if cmd.IsSet("name") {
		conf.Name = cmd.String("name")
	}
	if cmd.IsSet("seed") {
		conf.Seed = cmd.Int64("seed")
	}
	if cmd.IsSet("turn-limit") {
		conf.TurnLimit = cmd.Int("turn-limit")
	}
	return conf, conf.Validate()
}

// connectHistorian returns no listeners when Redis is not configured or not
// reachable; the game is played either way.
func connectHistorian(ctx context.Context, conf config.Config) ([]event.Listener, func()) {
	if conf.RedisAddr == "" {
		return nil, func() {}
	}
	h, err := historian.Connect(ctx, conf.RedisAddr, conf.RedisDB, conf.RedisQueue)
	if err != nil {
		log.Error(err)
		return nil, func() {}
	}
	return []event.Listener{h}, func() {
		if err := h.Close(); err != nil {
			log.Error(err)
		}
	}
}
