package main

import (
	"flag"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/MarongHappy/Uranium/config"
	"github.com/MarongHappy/Uranium/operations"
	"github.com/MarongHappy/Uranium/scene"
	"github.com/MarongHappy/Uranium/status"
	"github.com/MarongHappy/Uranium/utils"
	"github.com/MarongHappy/Uranium/web"
)

func buildDemoScene() *scene.SceneNode {
	var names utils.RandomNameGenerator

	root := scene.NewSceneNode("root")

	platform := scene.NewSceneNode(names.RandomName())
	platform.SetScale(mgl64.Vec3{4, 0.5, 4}, scene.TransformSpaceParent)
	root.AddChild(platform)

	for i := 0; i < 3; i++ {
		box := scene.NewSceneNode(names.RandomName())
		box.SetPosition(mgl64.Vec3{float64(i)*2 - 2, 1, 0})
		box.SetScale(mgl64.Vec3{1, float64(i) + 1, 1}, scene.TransformSpaceParent)
		platform.AddChild(box)
	}

	mirrored := scene.NewSceneNode(names.RandomName())
	mirrored.SetPosition(mgl64.Vec3{0, 1, 2})
	mirrored.SetScale(mgl64.Vec3{-1, 1, 1}, scene.TransformSpaceParent)
	root.AddChild(mirrored)

	return root
}

func main() {
	var addr, configPath string
	var history int
	flag.StringVar(&addr, "i", "", "Address of server (overrides config)")
	flag.StringVar(&configPath, "config", "", "Path to yaml settings file")
	flag.IntVar(&history, "history", 0, "Undo history limit (overrides config)")
	flag.Parse()

	if configPath != "" {
		if err := config.Load(configPath); err != nil {
			log.Fatal(err)
		}
	}
	settings := config.Get()
	if addr == "" {
		addr = settings.Listen
	}
	if history == 0 {
		history = settings.HistoryLimit
	}

	root := buildDemoScene()
	stack := operations.NewOperationStack(history)
	stack.OnChange(func() {
		undoDepth, redoDepth := stack.Depths()
		msg := ""
		if top := stack.Top(); top != nil {
			msg = top.String()
		}
		status.StackChanged(undoDepth, redoDepth, msg)
	})

	if err := web.StartServer(addr, root, stack); err != nil {
		log.Fatal(err)
	}
}
