package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPurple      = lipgloss.Color("#7D56F4")
	ColorGreen       = lipgloss.Color("#25A065")
	ColorRed         = lipgloss.Color("#E05252")
	ColorYellow      = lipgloss.Color("#E5C07B")
	ColorGray        = lipgloss.Color("#626262")
	ColorGrayDim     = lipgloss.Color("#404040")
	ColorWhite       = lipgloss.Color("#FFFFFF")
	ColorOffWhite    = lipgloss.Color("#D0D0D0")
	ColorCyan        = lipgloss.Color("#56B6C2")
	ColorOrange      = lipgloss.Color("#D19A66")
	ColorSelectionBg = lipgloss.Color("#2D3B4D")
	ColorDesktopBg   = lipgloss.Color("#101418")
)

// Desktop chrome
var (
	DesktopStyle = lipgloss.NewStyle().
			Foreground(ColorGrayDim)

	TaskbarStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite).
			Background(ColorSelectionBg)

	TaskbarClockStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan).
				Background(ColorSelectionBg)

	TaskbarCreditsStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorYellow).
				Background(ColorSelectionBg)
)

// Window frames
var (
	TitlebarFocusedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite).
				Background(ColorPurple)

	TitlebarStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite).
			Background(ColorGrayDim)

	WindowBodyStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite).
			Background(ColorDesktopBg)

	ResizeHandleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOrange).
				Background(ColorDesktopBg)
)

// Content styles
var (
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelectionBg)

	DirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Menu and toasts
var (
	MenuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	MenuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite).
				Background(ColorPurple).
				Padding(0, 1)

	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(0, 1)

	ToastWarningStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorRed).
				Padding(0, 1)
)

// Status icons
const (
	IconDone     = "✓"
	IconPending  = "○"
	IconResize   = "◢"
	IconLocked   = "🔒"
	IconSelected = "▶"
)
