package menu

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"todo/internal/models"
)

// clearScreen erases the display and homes the cursor.
const clearScreen = ansi.EraseEntireScreen + ansi.CursorHomePosition

// ANSI palette indexes.
var (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
	colorCyan   = lipgloss.Color("6")
)

type styles struct {
	Prompt lipgloss.Style
	Add    lipgloss.Style
	List   lipgloss.Style
	Done   lipgloss.Style
	Alert  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Prompt: r.NewStyle().Foreground(colorCyan),
		Add:    r.NewStyle().Foreground(colorGreen),
		List:   r.NewStyle().Foreground(colorYellow),
		Done:   r.NewStyle().Foreground(colorBlue),
		Alert:  r.NewStyle().Foreground(colorRed),
	}
}

func (m *Menu) clear() {
	fmt.Fprint(m.out, clearScreen)
}

func (m *Menu) println(style lipgloss.Style, text string) {
	fmt.Fprintln(m.out, style.Render(text))
}

// renderTasks prints a heading followed by one "<marker> <id>: <description>" line per task.
func (m *Menu) renderTasks(heading string, tasks []models.Task) {
	m.println(m.styles.List, heading)
	for _, task := range tasks {
		marker := m.styles.Alert.Render(task.Marker())
		if task.Completed {
			marker = m.styles.Add.Render(task.Marker())
		}
		fmt.Fprintf(m.out, "%s %d: %s\n", marker, task.ID, task.Description)
	}
}
