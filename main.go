package main

import (
	"flag"
	"log"

	"github.com/decker502/mascot/pkg/app"
	"github.com/decker502/mascot/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging and the debug overlay")
	configFlag  = flag.String("config", "", "Path to a mascot tuning file (default: embedded data/mascot.yaml)")
)

func main() {
	flag.Parse()

	// 注册嵌入的配置（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	mascotApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer mascotApp.Close()

	w, h := mascotApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowSizeLimits(mascotApp.WindowSizeLimits())
	ebiten.SetWindowTitle(mascotApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(mascotApp); err != nil {
		log.Fatal(err)
	}
}
