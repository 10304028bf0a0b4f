package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/vanderheijden86/tsguide/pkg/config"
	"github.com/vanderheijden86/tsguide/pkg/debug"
	"github.com/vanderheijden86/tsguide/pkg/lesson"
	"github.com/vanderheijden86/tsguide/pkg/ui"
	"github.com/vanderheijden86/tsguide/pkg/version"
	"github.com/vanderheijden86/tsguide/pkg/watcher"
)

// options are the command-line overrides applied on top of the config file.
type options struct {
	lesson     int
	noExamples bool
	noAlt      bool
}

func main() {
	cpuProfile := flag.String("cpu-profile", "", "Write CPU profile to file")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	lessonFlag := flag.Int("lesson", 0, "Start at lesson N (1-6)")
	pickFlag := flag.Bool("pick", false, "Choose the start lesson from a menu")
	noExamples := flag.Bool("no-examples", false, "Hide the example components pane")
	noAlt := flag.Bool("no-alt-screen", false, "Render inline instead of in the alternate screen")
	printFlag := flag.Bool("print", false, "Print one frame to stdout and exit")
	dumpLessons := flag.Bool("dump-lessons", false, "Print the lesson catalog as JSON and exit")
	flag.Parse()
	defer debug.Sync()

	// CPU profiling support
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *help {
		fmt.Println("Usage: tsg [options]")
		fmt.Println("\nAn interactive TypeScript tutorial for the terminal.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("tsg %s\n", version.Version)
		os.Exit(0)
	}

	if *dumpLessons {
		if err := writeCatalog(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		// Non-fatal: continue with defaults
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	opts := options{lesson: *lessonFlag, noExamples: *noExamples, noAlt: *noAlt}
	if *pickFlag {
		n, err := pickLesson(cfg.UI.StartLesson)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				os.Exit(0)
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.lesson = n
	}

	cfg, err = applyOptions(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	m := ui.NewModel(cfg)

	if *printFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(m.View())
		os.Exit(0)
	}

	if w := startConfigWatcher(); w != nil {
		m = m.WithWatcher(w)
	}
	defer m.Stop()

	if err := runTUIProgram(m, cfg.UI.AltScreen); err != nil {
		fmt.Printf("Error running tutorial: %v\n", err)
		os.Exit(1)
	}
}

// applyOptions layers command-line flags over cfg and validates the result.
func applyOptions(cfg config.Config, opts options) (config.Config, error) {
	if opts.lesson != 0 {
		cfg.UI.StartLesson = opts.lesson
	}
	if opts.noExamples {
		cfg.UI.ShowExamples = false
	}
	if opts.noAlt {
		cfg.UI.AltScreen = false
	}
	if err := cfg.Validate(len(lesson.Lessons())); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func writeCatalog(w io.Writer) error {
	data, err := lesson.MarshalCatalog()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// lessonOptions builds the select entries for --pick, valued 1-based.
func lessonOptions() []huh.Option[int] {
	lessons := lesson.Lessons()
	opts := make([]huh.Option[int], len(lessons))
	for i, l := range lessons {
		label := fmt.Sprintf("%d. %s (%s)", l.ID, l.Title, lesson.DifficultyFor(i))
		opts[i] = huh.NewOption(label, i+1)
	}
	return opts
}

func pickLesson(current int) (int, error) {
	choice := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Start at lesson").
				Options(lessonOptions()...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return 0, err
	}
	return choice, nil
}

// startConfigWatcher watches the config file for live reload. Failure is
// logged and the TUI runs without reload.
func startConfigWatcher() *watcher.Watcher {
	path := config.ConfigPath()
	if path == "" {
		return nil
	}
	w, err := watcher.New(path, watcher.WithOnError(func(err error) {
		debug.Log("config watcher: %v", err)
	}))
	if err != nil {
		debug.Log("config watcher disabled: %v", err)
		return nil
	}
	if err := w.Start(); err != nil {
		debug.Log("config watcher disabled: %v", err)
		return nil
	}
	return w
}

func runTUIProgram(m ui.Model, altScreen bool) error {
	defer debug.LogEnterExit("runTUIProgram")()

	progOpts := []tea.ProgramOption{tea.WithoutSignalHandler()}
	if altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, progOpts...)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set TSG_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("TSG_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()
			}()
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
