// Package menu implements the interactive terminal session.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"todo/internal/store"
)

type state int

const (
	stateMainMenu state = iota
	stateAdding
	stateListing
	stateCompleting
	stateExiting
)

func (s state) String() string {
	switch s {
	case stateMainMenu:
		return "main menu"
	case stateAdding:
		return "adding"
	case stateListing:
		return "listing"
	case stateCompleting:
		return "completing"
	case stateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Options configures a Menu.
type Options struct {
	ListName  string
	ExitDelay time.Duration
	Logger    *log.Logger
}

// Menu drives the read-evaluate loop over a single task list.
type Menu struct {
	store     store.Store
	in        *bufio.Reader
	out       io.Writer
	styles    styles
	logger    *log.Logger
	list      string
	exitDelay time.Duration
}

// New creates a Menu reading choices from in and rendering to out.
func New(s store.Store, in io.Reader, out io.Writer, opts Options) *Menu {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Menu{
		store:     s,
		in:        bufio.NewReader(in),
		out:       out,
		styles:    newStyles(lipgloss.NewRenderer(out)),
		logger:    logger,
		list:      opts.ListName,
		exitDelay: opts.ExitDelay,
	}
}

// Run loops until the user exits or input ends. Storage errors end the
// session and are returned to the caller.
func (m *Menu) Run(ctx context.Context) error {
	current := stateMainMenu

	for {
		var err error

		switch current {
		case stateMainMenu:
			current, err = m.mainMenu()
		case stateAdding:
			err = m.add(ctx)
			current = stateMainMenu
		case stateListing:
			err = m.listAll(ctx)
			current = stateMainMenu
		case stateCompleting:
			err = m.complete(ctx)
			current = stateMainMenu
		case stateExiting:
			return m.exit(ctx)
		}

		if errors.Is(err, io.EOF) {
			m.logger.Debug("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) mainMenu() (state, error) {
	m.clear()
	m.println(m.styles.Prompt, "Todo Application")
	m.println(m.styles.Add, "1. Add Task")
	m.println(m.styles.List, "2. List Tasks")
	m.println(m.styles.Done, "3. Mark Task Complete")
	m.println(m.styles.Alert, "4. Exit")

	line, err := m.readLine()
	if err != nil {
		return stateMainMenu, err
	}

	next, ok := parseChoice(line)
	if !ok {
		m.logger.Debug("invalid menu choice", "input", line)
		m.println(m.styles.Alert, "Invalid choice. Please choose again.")
		return stateMainMenu, m.pause()
	}

	m.logger.Debug("menu choice", "state", next)
	return next, nil
}

func parseChoice(line string) (state, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return stateMainMenu, false
	}

	switch n {
	case 1:
		return stateAdding, true
	case 2:
		return stateListing, true
	case 3:
		return stateCompleting, true
	case 4:
		return stateExiting, true
	default:
		return stateMainMenu, false
	}
}

func (m *Menu) add(ctx context.Context) error {
	m.clear()
	m.println(m.styles.Prompt, "Enter task description:")

	description, err := m.readLine()
	if err != nil {
		return err
	}

	if err := m.store.AddTask(ctx, m.list, description); err != nil {
		return err
	}
	m.logger.Debug("task added", "list", m.list)

	m.println(m.styles.Add, "Task added successfully!")
	return m.pause()
}

func (m *Menu) listAll(ctx context.Context) error {
	m.clear()

	tasks, err := m.store.ListTasks(ctx, m.list)
	if err != nil {
		return err
	}

	m.renderTasks("Tasks:", tasks)
	return m.pause()
}

func (m *Menu) complete(ctx context.Context) error {
	m.clear()

	tasks, err := m.store.ListTasks(ctx, m.list)
	if err != nil {
		return err
	}
	m.renderTasks("Tasks:", tasks)

	m.println(m.styles.Prompt, "Enter task ID to mark as complete:")
	line, err := m.readLine()
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		m.logger.Debug("invalid task id", "input", line)
		m.println(m.styles.Alert, "Invalid task ID.")
		return m.pause()
	}

	tasks, err = m.store.MarkComplete(ctx, m.list, id)
	if err != nil {
		return err
	}
	m.logger.Debug("task completed", "list", m.list, "id", id)

	m.println(m.styles.Done, "Task marked as complete!")
	m.renderTasks("Updated Tasks:", tasks)
	return m.pause()
}

func (m *Menu) exit(ctx context.Context) error {
	m.clear()
	m.println(m.styles.Alert, "Exiting the application.")

	if m.exitDelay > 0 {
		timer := time.NewTimer(m.exitDelay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}

	m.logger.Debug("session ended")
	return nil
}

func (m *Menu) pause() error {
	fmt.Fprint(m.out, m.styles.Prompt.Render("Press Enter to continue..."))
	_, err := m.readLine()
	return err
}

// readLine returns the next input line without its line terminator.
// A final line without a newline is returned before io.EOF.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
