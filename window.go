package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// window is what the render loop needs from the windowing system.
type window interface {
	PollEvents()
	ShouldClose() bool
	SetSize(width, height int)
	SwapBuffers()
}

// runLoop draws frames until the window asks to close. A close request
// seen while polling stops the loop after that iteration's frame is
// presented. The first iteration forces the window to the target size.
func runLoop(win window, r *Renderer, targetWidth, targetHeight int) {
	first := true
	running := true
	for running {
		win.PollEvents()
		if win.ShouldClose() {
			running = false
		}

		if first {
			first = false
			win.SetSize(targetWidth, targetHeight)
		}

		r.DrawFrame()
		win.SwapBuffers()
	}
}

// glfwWindow adapts a GLFW window to the render loop.
type glfwWindow struct {
	*glfw.Window
}

func (glfwWindow) PollEvents() {
	glfw.PollEvents()
}

// createWindow opens a resizable window with a current OpenGL 4.1 core
// context.
func createWindow(cfg Config) (*glfw.Window, error) {
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return win, nil
}

// watchResize keeps the viewport in step with the window's back buffer.
func watchResize(win *glfw.Window, r *Renderer) {
	win.SetFramebufferSizeCallback(framebufferSizeCallback(r))
}

// framebufferSizeCallback receives sizes in pixels, already scaled for the
// display density.
func framebufferSizeCallback(r *Renderer) glfw.FramebufferSizeCallback {
	return func(_ *glfw.Window, width, height int) {
		r.Resize(width, height)
	}
}
