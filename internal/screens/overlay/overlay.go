package overlay

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahayak/internal/assistant"
	"github.com/abhisek/sahayak/internal/controller"
	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/profile"
	"github.com/abhisek/sahayak/internal/resources"
	"github.com/abhisek/sahayak/internal/screen"
	"github.com/abhisek/sahayak/internal/speech"
	"github.com/abhisek/sahayak/internal/stats"
	"github.com/abhisek/sahayak/internal/ui/components"
	"github.com/abhisek/sahayak/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// EditSuggestions are canned instructions offered in the image editor.
var EditSuggestions = []string{
	"Remove background",
	"Add a retro filter",
	"Make it brighter",
	"Add a whiteboard",
}

// Deps holds what an overlay needs from the application.
type Deps struct {
	Coach    *assistant.Coach
	Profile  profile.UserProfile
	Engine   speech.Engine
	Opener   resources.Opener
	ImageDir string
}

// OverlayScreen is the assistant: a chat with the coach plus the photo
// editor. One screen is one session; closing it discards late results.
type OverlayScreen struct {
	session  *assistant.Session
	capture  *speech.Capture
	opener   resources.Opener
	imageDir string

	input      components.TextInput
	toast      components.Toast
	cursor     int // index into the transcript, -1 follows the latest reply
	suggestion int
	imagePaths map[string]string
	photoPath  string
	editedPath string
	spinning   bool
	frame      int
}

var (
	_ screen.Screen          = (*OverlayScreen)(nil)
	_ screen.Closer          = (*OverlayScreen)(nil)
	_ screen.InputCapturer   = (*OverlayScreen)(nil)
	_ screen.KeyHintProvider = (*OverlayScreen)(nil)
)

// New opens a new assistant session.
func New(deps Deps) *OverlayScreen {
	return &OverlayScreen{
		session:    assistant.NewSession(deps.Coach, deps.Profile),
		capture:    speech.NewCapture(deps.Engine),
		opener:     deps.Opener,
		imageDir:   deps.ImageDir,
		input:      components.NewTextInput("", "Ask anything...", 0),
		cursor:     -1,
		suggestion: -1,
		imagePaths: make(map[string]string),
	}
}

// Session returns the underlying assistant session.
func (o *OverlayScreen) Session() *assistant.Session {
	return o.session
}

func (o *OverlayScreen) Init() tea.Cmd {
	return o.input.Init()
}

func (o *OverlayScreen) Title() string {
	return "Assistant"
}

// Close ends the session. Replies still in flight are dropped on arrival.
func (o *OverlayScreen) Close() {
	o.session.Close()
	o.capture.Abort()
}

// CapturingInput is always true: the prompt keeps focus.
func (o *OverlayScreen) CapturingInput() bool {
	return true
}

func (o *OverlayScreen) KeyHints() []layout.KeyHint {
	if o.session.Mode() == assistant.ModeImageEdit {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Ctrl+N", Description: "Suggest"},
			{Key: "Ctrl+T", Description: "Original"},
			{Key: "Ctrl+X", Description: "Clear"},
			{Key: "Ctrl+E", Description: "Chat"},
			{Key: "Esc", Description: "Close"},
		}
	}
	mic := "Speak"
	if o.capture.Listening() {
		mic = "Stop"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: mic},
		{Key: "↑↓", Description: "Select"},
		{Key: "Ctrl+V", Description: "Visualize"},
		{Key: "Ctrl+E", Description: "Editor"},
		{Key: "Esc", Description: "Close"},
	}
}

func (o *OverlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		o.session.CompleteSend(msg.Turn, msg.Reply)
		return o, nil

	case visualizedMsg:
		return o, o.handleVisualized(msg)

	case editedMsg:
		return o, o.handleEdited(msg)

	case imageLoadedMsg:
		return o, o.handleImageLoaded(msg)

	case imageOpenedMsg:
		if msg.Err != nil {
			return o, o.toast.Show("Could not open the image viewer.", assistant.EditNoticeTTL)
		}
		return o, nil

	case speechMsg:
		return o, o.handleSpeech(msg)

	case components.ToastExpiredMsg:
		o.toast.Update(msg)
		return o, nil

	case spinnerTickMsg:
		if !o.busy() {
			o.spinning = false
			return o, nil
		}
		o.frame++
		return o, spinnerTick()

	case tea.KeyPressMsg:
		return o, o.handleKey(msg)
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

func (o *OverlayScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return screen.Dispatch(controller.CloseOverlay{})
	case "ctrl+e":
		o.toggleMode()
		return nil
	case "enter":
		if o.session.Mode() == assistant.ModeImageEdit {
			return o.submitEdit()
		}
		return o.send()
	}

	if o.session.Mode() == assistant.ModeImageEdit {
		switch msg.String() {
		case "ctrl+n":
			o.nextSuggestion()
			return nil
		case "ctrl+t":
			o.session.ToggleOriginal()
			return nil
		case "ctrl+x":
			o.session.ClearImage()
			o.photoPath, o.editedPath = "", ""
			o.syncPlaceholder()
			return nil
		case "ctrl+o":
			return o.openImage(o.displayedPath())
		}
	} else {
		switch msg.String() {
		case "ctrl+r":
			return o.toggleSpeech()
		case "up":
			o.moveCursor(-1)
			return nil
		case "down":
			o.moveCursor(1)
			return nil
		case "ctrl+v":
			return o.visualize()
		case "ctrl+o":
			return o.openImage(o.imagePaths[o.selectedID()])
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return cmd
}

func (o *OverlayScreen) toggleMode() {
	o.capture.Abort()
	if o.session.Mode() == assistant.ModeChat {
		o.session.SetMode(assistant.ModeImageEdit)
	} else {
		o.session.SetMode(assistant.ModeChat)
	}
	o.input.SetValue("")
	o.syncPlaceholder()
}

func (o *OverlayScreen) syncPlaceholder() {
	switch {
	case o.capture.Listening():
		o.input.Model.Placeholder = "Listening..."
	case o.session.Mode() == assistant.ModeChat:
		o.input.Model.Placeholder = "Ask anything..."
	case o.session.ImageState() == assistant.NoImage:
		o.input.Model.Placeholder = "Path to a classroom photo..."
	default:
		o.input.Model.Placeholder = "Describe the edit..."
	}
}

// send starts a chat turn and counts it as a question asked.
func (o *OverlayScreen) send() tea.Cmd {
	o.capture.Abort()
	turn, ok := o.session.BeginSend(o.input.Value())
	if !ok {
		return nil
	}
	o.input.SetValue("")
	o.cursor = -1
	o.syncPlaceholder()

	coach := o.session.Coach()
	p := o.session.Profile()
	return tea.Batch(
		screen.Dispatch(controller.RecordActivity{Kind: stats.KindQuery}),
		func() tea.Msg {
			reply := coach.Reply(context.Background(), p, turn.History, turn.Text)
			return replyMsg{Turn: turn, Reply: reply}
		},
		o.startSpinner(),
	)
}

// submitEdit loads a photo while none is selected, and edits it otherwise.
func (o *OverlayScreen) submitEdit() tea.Cmd {
	value := o.input.TrimmedValue()
	if value == "" {
		return nil
	}

	if o.session.ImageState() == assistant.NoImage {
		sessionID := o.session.ID
		return func() tea.Msg {
			img, err := assistant.LoadImage(value)
			return imageLoadedMsg{SessionID: sessionID, Path: value, Image: img, Err: err}
		}
	}

	req, ok := o.session.BeginEdit(value)
	if !ok {
		return nil
	}
	o.input.SetValue("")

	coach := o.session.Coach()
	dir := o.imageDir
	return tea.Batch(
		screen.Dispatch(controller.RecordActivity{Kind: stats.KindQuery}),
		func() tea.Msg {
			img, err := coach.EditImage(context.Background(), req.Source, req.Instruction)
			msg := editedMsg{Req: req, Image: img, Err: err}
			if err == nil {
				msg.Path = saveImage(dir, fmt.Sprintf("edited-%s-%d", req.SessionID[:8], req.Seq), img)
			}
			return msg
		},
		o.startSpinner(),
	)
}

func (o *OverlayScreen) visualize() tea.Cmd {
	id := o.selectedID()
	text, ok := o.session.BeginVisualize(id)
	if !ok {
		return nil
	}

	coach := o.session.Coach()
	sessionID := o.session.ID
	dir := o.imageDir
	return tea.Batch(
		func() tea.Msg {
			img, err := coach.Visualize(context.Background(), text)
			msg := visualizedMsg{SessionID: sessionID, MessageID: id, Image: img, Err: err}
			if err == nil {
				msg.Path = saveImage(dir, "visual-"+id, img)
			}
			return msg
		},
		o.startSpinner(),
	)
}

func (o *OverlayScreen) handleVisualized(msg visualizedMsg) tea.Cmd {
	if msg.SessionID != o.session.ID {
		return nil
	}
	if n := o.session.FinishVisualize(msg.MessageID, msg.Image, msg.Err); n != nil {
		return o.toast.Show(n.Text, n.TTL)
	}
	if o.session.Closed() {
		return nil
	}
	if msg.Path != "" {
		o.imagePaths[msg.MessageID] = msg.Path
	}
	return nil
}

func (o *OverlayScreen) handleEdited(msg editedMsg) tea.Cmd {
	if n := o.session.FinishEdit(msg.Req, msg.Image, msg.Err); n != nil {
		return o.toast.Show(n.Text, n.TTL)
	}
	// Stale results leave the displayed image untouched.
	if msg.Image != nil && o.session.DisplayedImage() == msg.Image && msg.Path != "" {
		o.editedPath = msg.Path
	}
	return nil
}

// displayedPath is the file behind the image the editor shows.
func (o *OverlayScreen) displayedPath() string {
	if o.session.ShowingOriginal() {
		return o.photoPath
	}
	return o.editedPath
}

func (o *OverlayScreen) handleImageLoaded(msg imageLoadedMsg) tea.Cmd {
	if msg.SessionID != o.session.ID || o.session.Closed() {
		return nil
	}
	if msg.Err != nil {
		return o.toast.Show("Could not load that photo. Use a PNG, JPEG, GIF or WebP file.", assistant.EditNoticeTTL)
	}
	if o.session.SelectImage(msg.Image) {
		o.photoPath, o.editedPath = msg.Path, ""
		o.input.SetValue("")
		o.suggestion = -1
		o.syncPlaceholder()
	}
	return nil
}

func (o *OverlayScreen) nextSuggestion() {
	o.suggestion = (o.suggestion + 1) % len(EditSuggestions)
	o.input.SetValue(EditSuggestions[o.suggestion])
}

func (o *OverlayScreen) openImage(path string) tea.Cmd {
	if path == "" || o.opener == nil {
		return nil
	}
	opener := o.opener
	return func() tea.Msg {
		abs, err := filepath.Abs(path)
		if err == nil {
			err = opener.Open(context.Background(), abs)
		}
		return imageOpenedMsg{Err: err}
	}
}

// toggleSpeech starts capture appending to the current input, or stops it.
func (o *OverlayScreen) toggleSpeech() tea.Cmd {
	if o.capture.Listening() {
		o.capture.Stop()
		o.syncPlaceholder()
		return nil
	}

	gen, notice := o.capture.Start(context.Background(), o.input.Value())
	o.syncPlaceholder()
	if notice != "" {
		return o.toast.Show(notice, assistant.SpeechNoticeTTL)
	}
	return waitSpeech(gen, o.capture.Events())
}

func (o *OverlayScreen) handleSpeech(msg speechMsg) tea.Cmd {
	upd := o.capture.Apply(msg.Gen, msg.Events, msg.Event)
	if upd.Changed {
		o.input.SetValue(upd.Input)
	}
	o.syncPlaceholder()

	var cmds []tea.Cmd
	if upd.Notice != "" {
		cmds = append(cmds, o.toast.Show(upd.Notice, assistant.SpeechNoticeTTL))
	}
	if !msg.Event.End && o.capture.Owns(msg.Gen, msg.Events) {
		cmds = append(cmds, waitSpeech(msg.Gen, msg.Events))
	}
	return tea.Batch(cmds...)
}

func waitSpeech(gen int, events <-chan speech.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		return speechMsg{Gen: gen, Events: events, Event: speech.Receive(events)}
	}
}

// selectedID returns the message the cursor is on, or the latest reply.
func (o *OverlayScreen) selectedID() string {
	msgs := o.session.Transcript().Messages()
	if o.cursor >= 0 && o.cursor < len(msgs) {
		return msgs[o.cursor].ID
	}
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == assistant.RoleAssistant {
			return msgs[i].ID
		}
	}
	return ""
}

// moveCursor steps between coach replies.
func (o *OverlayScreen) moveCursor(delta int) {
	msgs := o.session.Transcript().Messages()
	i := o.cursor
	if i < 0 {
		i = len(msgs)
		for j := len(msgs) - 1; j >= 0; j-- {
			if msgs[j].Role == assistant.RoleAssistant {
				i = j
				break
			}
		}
	}
	for j := i + delta; j >= 0 && j < len(msgs); j += delta {
		if msgs[j].Role == assistant.RoleAssistant {
			o.cursor = j
			return
		}
	}
}

func (o *OverlayScreen) busy() bool {
	if o.session.Sending() || o.session.ImageState() == assistant.EditPending {
		return true
	}
	for _, m := range o.session.Transcript().Messages() {
		if o.session.Transcript().Status(m.ID).GeneratingImage {
			return true
		}
	}
	return false
}

func (o *OverlayScreen) startSpinner() tea.Cmd {
	if o.spinning {
		return nil
	}
	o.spinning = true
	return spinnerTick()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// saveImage writes img under dir and returns the path, or "" when dir is
// unset or the write failed.
func saveImage(dir, name string, img *llm.Image) string {
	if dir == "" || img == nil {
		return ""
	}
	path := filepath.Join(dir, name+assistant.Extension(img))
	if err := assistant.SaveImage(path, img); err != nil {
		return ""
	}
	return path
}
