package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func main() {
	runtime.LockOSThread()

	cfg, err := LoadConfig(configFile)
	if err != nil {
		log.Fatalln(err)
	}

	mesh, err := LoadMesh(cfg.Mesh)
	if err != nil {
		log.Fatalln(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	win, err := createWindow(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	dev, err := newGLDevice()
	if err != nil {
		log.Fatalln(err)
	}

	renderer, err := NewRenderer(dev, mesh, cfg)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println("OpenGL version", dev.Version())

	fbWidth, fbHeight := win.GetFramebufferSize()
	renderer.Resize(fbWidth, fbHeight)
	watchResize(win, renderer)

	runLoop(glfwWindow{win}, renderer, cfg.TargetWidth, cfg.TargetHeight)
}
