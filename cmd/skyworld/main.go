// Skyworld is the day/night demo: clouds drift across a sky that fades
// between day and night while the sun and moon take turns overhead and a
// planet turns in the middle of the window.
//
// Run it from the repository root so the assets/ directory resolves. A
// skyworld.yaml in the working directory overrides the built-in settings.
package main

import (
	"log"
	"math/rand/v2"
	"os"

	"github.com/skyworld/skyworld"
	"github.com/skyworld/skyworld/internal/assets"
	"github.com/skyworld/skyworld/internal/config"
	"github.com/skyworld/skyworld/internal/sky"
	"github.com/skyworld/skyworld/internal/world"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	cfg, fromFile, err := config.LoadOrDefault(config.DefaultPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if fromFile {
		log.Printf("[skyworld] using %s", config.DefaultPath)
	}

	loader := assets.NewLoader(os.DirFS(cfg.Assets.Dir))
	clouds, err := loader.Images(cfg.Assets.Clouds)
	if err != nil {
		log.Fatalf("load clouds: %v", err)
	}
	sunImg, err := loader.Image(cfg.Assets.Sun)
	if err != nil {
		log.Fatalf("load sun: %v", err)
	}
	moonImg, err := loader.Image(cfg.Assets.Moon)
	if err != nil {
		log.Fatalf("load moon: %v", err)
	}
	planetImg, err := loader.Image(cfg.Assets.Planet)
	if err != nil {
		log.Fatalf("load planet: %v", err)
	}

	font, err := skyworld.LoadTTFFont(goregular.TTF, cfg.Label.FontSize)
	if err != nil {
		log.Fatalf("load font: %v", err)
	}

	scene := skyworld.NewScene()

	sprites := sky.Sprites{
		Sun:   skyworld.NewSprite("sun", sunImg),
		Moon:  skyworld.NewSprite("moon", moonImg),
		Label: skyworld.NewText("day-counter", "", font),
	}
	for _, img := range clouds {
		sprites.Clouds = append(sprites.Clouds, skyworld.NewSprite("cloud", img))
	}
	sprites.Label.TextBlock.Color = sky.RGB(cfg.Label.Color).Color()
	sprites.Label.SetPosition(cfg.Label.X, cfg.Label.Y)

	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	background, err := sky.New(sky.Config{
		Width:              w,
		Height:             h,
		DayLength:          cfg.Sky.DayLength,
		CloudMin:           cfg.Sky.CloudMin,
		CloudMax:           cfg.Sky.CloudMax,
		CloudCheckInterval: cfg.Sky.CloudCheckInterval,
		OrbitY:             cfg.Sky.OrbitY,
		Elevation:          cfg.Sky.SunElevation,
		NudgeDuration:      cfg.Sky.NudgeDuration,
		DayColor:           sky.RGB(cfg.Sky.DayColor),
		NightColor:         sky.RGB(cfg.Sky.NightColor),
	}, sprites, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if err != nil {
		log.Fatalf("build sky: %v", err)
	}
	background.Attach(scene)

	planet := world.New(skyworld.NewSprite("planet", planetImg), w, h, cfg.Sky.DayLength)
	planet.Attach(scene)

	if err := skyworld.Run(scene, skyworld.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		TPS:     cfg.Window.TPS,
		ShowFPS: cfg.Window.ShowFPS,
		Debug:   cfg.Window.Debug,
	}); err != nil {
		log.Fatal(err)
	}
}
