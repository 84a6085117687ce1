// Package skyworld is a small retained-mode 2D scene graph for [Ebitengine],
// built to host the day/night sky demo in cmd/skyworld.
//
// # Quick start
//
//	scene := skyworld.NewScene()
//	sun := skyworld.NewSprite("sun", img)
//	sun.SetPosition(0, 80)
//	scene.Root().AddChild(sun)
//	sun.RunAction(skyworld.MoveBy(320, -50, 30))
//	skyworld.Run(scene, skyworld.RunConfig{
//		Title: "Sky", Width: 640, Height: 480,
//	})
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]; children inherit their parent's transform and alpha, and
// siblings draw in ZIndex order. Sprites are centered on their position,
// text nodes are anchored at their top-left corner.
//
// # Ticks
//
// Each tick [Scene.Step] advances node actions, then runs callbacks
// registered with [Scene.Schedule] and [Scene.ScheduleInterval] in
// registration order. Everything runs on Ebitengine's update goroutine.
//
// # Actions
//
// Actions ([MoveBy], [MoveTo], [Place], [RotateBy], [Delay], [Sequence],
// [Repeat], [RepeatForever]) are tweens driven by [gween]. Interval actions
// land exactly on their target when they finish.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package skyworld
