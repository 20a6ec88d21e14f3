package sdl

import (
	"runtime"

	"github.com/bnema/sdlbind/bitset"
)

// MessageBoxFlags selects the icon and button order of a message box.
type MessageBoxFlags uint32

func (MessageBoxFlags) BitsetEnum() {}

const (
	MessageBoxError              MessageBoxFlags = 0x00000010
	MessageBoxWarning            MessageBoxFlags = 0x00000020
	MessageBoxInformation        MessageBoxFlags = 0x00000040
	MessageBoxButtonsLeftToRight MessageBoxFlags = 0x00000080
	MessageBoxButtonsRightToLeft MessageBoxFlags = 0x00000100
)

// MessageBoxButtonFlags marks the buttons triggered by Return and Escape.
type MessageBoxButtonFlags uint32

func (MessageBoxButtonFlags) BitsetEnum() {}

const (
	MessageBoxButtonReturnKeyDefault MessageBoxButtonFlags = 0x00000001
	MessageBoxButtonEscapeKeyDefault MessageBoxButtonFlags = 0x00000002
)

// MessageBoxButton is one button of a message box. ID is what ShowMessageBox
// returns when it is pressed.
type MessageBoxButton struct {
	Flags MessageBoxButtonFlags
	ID    int32
	Text  string
}

// MessageBoxColor is an RGB triple.
type MessageBoxColor struct {
	R, G, B uint8
}

// MessageBoxColorType indexes MessageBoxColorScheme.
type MessageBoxColorType int

const (
	MessageBoxColorBackground MessageBoxColorType = iota
	MessageBoxColorText
	MessageBoxColorButtonBorder
	MessageBoxColorButtonBackground
	MessageBoxColorButtonSelected
	messageBoxColorMax
)

// MessageBoxColorScheme overrides the platform colors where supported.
type MessageBoxColorScheme struct {
	Colors [messageBoxColorMax]MessageBoxColor
}

// MessageBox describes a modal message box.
type MessageBox struct {
	Flags       MessageBoxFlags
	Window      Window
	Title       string
	Message     string
	Buttons     []MessageBoxButton
	ColorScheme *MessageBoxColorScheme
}

// messageBoxButtonData mirrors SDL_MessageBoxButtonData.
type messageBoxButtonData struct {
	flags    uint32
	buttonID int32
	text     *byte
}

// messageBoxData mirrors SDL_MessageBoxData.
type messageBoxData struct {
	flags       uint32
	window      uintptr
	title       *byte
	message     *byte
	numButtons  int32
	buttons     *messageBoxButtonData
	colorScheme *MessageBoxColorScheme
}

var (
	sdlShowMessageBox       func(data *messageBoxData, buttonID *int32) int32
	sdlShowSimpleMessageBox func(flags uint32, title, message string, window uintptr) int32
)

func init() {
	bind(
		"SDL_ShowMessageBox", &sdlShowMessageBox,
		"SDL_ShowSimpleMessageBox", &sdlShowSimpleMessageBox,
	)
}

// Show displays the box and blocks until it is dismissed. It returns the ID of
// the pressed button, or -1 when the box was closed without one.
func (m *MessageBox) Show() (int32, error) {
	return ShowMessageBox(m)
}

// ShowMessageBox displays m and returns the pressed button's ID.
func ShowMessageBox(m *MessageBox) (int32, error) {
	title := cString(m.Title)
	message := cString(m.Message)
	texts := make([][]byte, len(m.Buttons))
	buttons := make([]messageBoxButtonData, len(m.Buttons))
	for i, b := range m.Buttons {
		texts[i] = cString(b.Text)
		buttons[i] = messageBoxButtonData{
			flags:    uint32(b.Flags),
			buttonID: b.ID,
			text:     &texts[i][0],
		}
	}

	data := messageBoxData{
		flags:       uint32(m.Flags),
		window:      uintptr(m.Window),
		title:       &title[0],
		message:     &message[0],
		numButtons:  int32(len(buttons)),
		colorScheme: m.ColorScheme,
	}
	if len(buttons) > 0 {
		data.buttons = &buttons[0]
	}

	var pressed int32
	err := status("SDL_ShowMessageBox", func() int32 { return sdlShowMessageBox(&data, &pressed) })
	runtime.KeepAlive(texts)
	runtime.KeepAlive(buttons)
	runtime.KeepAlive(title)
	runtime.KeepAlive(message)
	if err != nil {
		return 0, err
	}
	return pressed, nil
}

// ShowSimpleMessageBox displays a box with a single OK button.
func ShowSimpleMessageBox(flags MessageBoxFlags, title, message string, window Window) error {
	return status("SDL_ShowSimpleMessageBox", func() int32 {
		return sdlShowSimpleMessageBox(uint32(flags), title, message, uintptr(window))
	})
}

var messageBoxFlagNames = []bitset.Name[MessageBoxFlags]{
	{Flag: MessageBoxError, Name: "error"},
	{Flag: MessageBoxWarning, Name: "warning"},
	{Flag: MessageBoxInformation, Name: "information"},
	{Flag: MessageBoxButtonsLeftToRight, Name: "left-to-right"},
	{Flag: MessageBoxButtonsRightToLeft, Name: "right-to-left"},
}

func (f MessageBoxFlags) String() string {
	return bitset.Format(f, messageBoxFlagNames, "none")
}
