package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"termsnake/game"
	"termsnake/server"
	"termsnake/session"
	"termsnake/terminal"
)

// termsnake 入口：终端贪吃蛇，可选开启只读观战服务
func main() {
	os.Exit(run())
}

func run() int {
	var logPath, watchAddr string
	flag.StringVar(&logPath, "log", "termsnake.log", "log file path (rotated)")
	flag.StringVar(&watchAddr, "watch", "", "spectator HTTP address, e.g. :8080 (disabled when empty)")
	flag.Parse()

	// 终端被游戏占用，日志写入文件
	if err := server.InitLogger(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 1
	}
	defer server.SyncLogger()

	metrics := server.NewGameMetrics()
	hub := server.NewHub(metrics)
	if watchAddr != "" {
		srv := &http.Server{Addr: watchAddr, Handler: server.NewMux(hub, metrics)}
		go func() {
			server.Log.Infof("spectator server listening on %s", watchAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				server.Log.Errorf("listen: %v", err)
			}
		}()
		defer func() {
			hub.Close()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	con, err := terminal.NewConsole(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return 1
	}

	// SIGINT/SIGTERM 与 Ctrl+C 组合键都走同一条有序退出路径
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	engine, err := game.New(game.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return 1
	}

	err = terminal.WithRawMode(con, func() error {
		latch := game.NewLatch(engine.Direction())
		listener := &terminal.Listener{Events: con, Latch: latch, Interrupt: cancel, Metrics: metrics}
		inputDone := make(chan error, 1)
		go func() { inputDone <- listener.Run(ctx) }()

		loop := session.NewLoop(engine, latch, terminal.NewScreen(con), hub, metrics)
		return loop.Run(ctx, inputDone)
	})
	// 此时终端已恢复，可以安全输出

	switch {
	case err == nil:
		server.Log.Infow("exit", "score", engine.Score())
		return 0
	case errors.Is(err, game.ErrSelfCollision), errors.Is(err, game.ErrBoardFull):
		fmt.Printf("game over (%v): score %d, length %d\n", err, engine.Score(), engine.Length())
		return 0
	default:
		server.Log.Errorw("fatal", "error", err, "metrics", metrics.Snapshot())
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return 1
	}
}
