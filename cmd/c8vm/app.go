package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/control"
	"github.com/hexaflex/c8vm/devices"
	"github.com/hexaflex/c8vm/devices/c8/cpu"
	"github.com/hexaflex/c8vm/devices/c8/display"
	"github.com/hexaflex/c8vm/devices/host/beeper"
	"github.com/hexaflex/c8vm/devices/host/clock"
	"github.com/hexaflex/c8vm/devices/host/gamepad"
	"github.com/hexaflex/c8vm/devices/host/keyboard"
	"github.com/hexaflex/c8vm/devices/host/screen"
	"github.com/hexaflex/c8vm/devices/host/wavrec"
)

// App defines application context.
type App struct {
	config       *Config             // Application configuration.
	window       *glfw.Window        // OpenGL/GLFW context.
	machine      *cpu.Machine        // VM with program to be run.
	ctl          *control.Controller // Drives machine and peripherals.
	clock        *clock.Device       // Frame pacer.
	screen       *screen.Device      // Framebuffer renderer.
	titleUpdated time.Time           // Value used to periodically update window title.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.machine = cpu.New(config.Machine, a.printTrace)
	a.clock = clock.New(clock.DefaultRate)
	a.screen = screen.New(display.Palette)

	for _, addr := range config.Breakpoints {
		a.machine.SetBreakpoint(addr)
	}

	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	devs := []devices.Device{
		a.clock,
		a.screen,
		keyboard.New(a.window, a.config.Layout),
		gamepad.New(nil),
		beeper.New(a.config.Tone),
	}

	if a.config.Wav != "" {
		devs = append(devs, wavrec.New(a.config.Wav, a.config.Tone))
	}

	a.ctl = control.New(a.machine, devs...)
	if err := a.ctl.Startup(); err != nil {
		return err
	}

	log.Println(Version())
	printHelp()

	if err := a.loadProgram(); err != nil {
		return err
	}

	if !a.config.Paused {
		a.ctl.Start()
	}

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop performs all main loop operations.
func (a *App) mainLoop() {
	glfw.PollEvents()

	if a.ctl.Running() {
		if err := a.ctl.Frame(); err != nil {
			a.reportError(err)
		}
	} else {
		a.ctl.Update()
	}

	gl.Clear(gl.COLOR_BUFFER_BIT)
	a.screen.Draw()
	a.window.SwapBuffers()

	// Periodically update the window title to show the current frame and instruction rate.
	if time.Since(a.titleUpdated) >= time.Second*2 {
		a.titleUpdated = time.Now()
		a.window.SetTitle(fmt.Sprintf("%s %s - %.1f fps, %s", AppName, AppVersion,
			a.clock.FPS(), prettyFrequency(a.ctl.Frequency())))
		a.clock.Reset()
	}

	a.clock.Wait()
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	if a.ctl != nil {
		a.ctl.Stop()
		if err := a.ctl.Shutdown(); err != nil {
			log.Println(err)
		}
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	var err error

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF2:
		a.config.PrintTrace = !a.config.PrintTrace
	case glfw.KeyF5:
		err = a.loadProgram()
	case glfw.KeySpace:
		a.ctl.ToggleRun()
		log.Println(a.machine.Metrics())
	case glfw.KeyF10:
		if !a.ctl.Running() {
			err = a.ctl.Frame()
			log.Println(a.machine.Metrics())
		}
	case glfw.KeyF12:
		err = a.screenshot()
	}

	if err != nil {
		a.reportError(err)
	}
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := display.Width * a.config.ScaleFactor
	height := display.Height * a.config.ScaleFactor

	if a.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	a.window, err = glfw.CreateWindow(width, height, AppName, monitor, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)

	// Frames are paced by the clock device.
	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	return nil
}

// loadProgram loads the current program from disk and resets the machine.
func (a *App) loadProgram() error {
	log.Println("loading", a.config.Program)
	return a.ctl.Load(a.config.Program)
}

// screenshot writes the current display contents to a PNG file in the
// working directory.
func (a *App) screenshot() error {
	file := fmt.Sprintf("%s-%s.png", AppName, time.Now().Format("20060102-150405"))

	fd, err := os.Create(file)
	if err != nil {
		return err
	}

	defer fd.Close()

	snap := a.machine.Snapshot()
	if err := snap.WritePNG(fd, a.config.ScaleFactor); err != nil {
		return err
	}

	log.Println("screenshot written to", file)
	return nil
}

// reportError logs the given runtime error. Execution has already been
// paused by the controller.
func (a *App) reportError(err error) {
	log.Println(err)

	if errors.Cause(err) == cpu.ErrBreakpoint {
		log.Println(a.machine.Metrics())
		log.Println("paused; press SPACE to resume or F10 to run a single frame")
	}
}

// printTrace prints instruction trace data. This can be toggled
// on off through a.config.PrintTrace.
func (a *App) printTrace(i *cpu.Instruction) {
	if a.config.PrintTrace {
		fmt.Println(i)
	}
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the program.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" F2       Enable/Disable debug trace output.\n")
	sb.WriteString(" F5       (re)load the program from disk and reset the machine.\n")
	sb.WriteString(" SPACE    Pause/Resume program execution.\n")
	sb.WriteString(" F10      Run a single frame while paused.\n")
	sb.WriteString(" F12      Save a screenshot.")
	log.Println(sb.String())
}

// prettyFrequency returns a human-readable version of the given instruction rate in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
