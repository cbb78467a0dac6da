package main

import (
	"context"
	"flag"
	"log"
	"sync"

	"raceboard/app"
	"raceboard/config"
	"raceboard/console"
	"raceboard/leaderboard"
	"raceboard/mlog"
)

func main() {
	confFile := flag.String("config", "", "配置文件路径，缺省使用默认配置")
	flag.Parse()

	if err := config.LoadConfig(*confFile, nil); err != nil {
		log.Fatalf("load config error: %v", err)
	}
	cfg := config.Config

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}
	if cfg.LogPath != "" || cfg.LogName != "" {
		if err := mlog.UseDefaultLogger(ctx, wg, cfg.LogPath, cfg.LogName, mlog.Level(cfg.LogLevel), cfg.LogStdOut); err != nil {
			log.Fatalf("init logger error: %v", err)
		}
	} else {
		_ = mlog.UseStdLogger(mlog.Level(cfg.LogLevel))
	}
	mlog.Infof("raceboard starting, config: %s", cfg.JsonFormat())

	a := app.DefaultApp()
	board := leaderboard.New()
	a.Run(console.New(cfg, board, a.Stop))

	cancel()
	wg.Wait()
}
