package overlay

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sahayak/internal/assistant"
	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (o *OverlayScreen) View(width, height int) string {
	cw := min(width-2, 100)

	header := o.renderModes()
	input := o.renderInput(cw)
	toast := o.toast.View(cw)

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(input) - 2
	if toast != "" {
		bodyHeight -= lipgloss.Height(toast)
	}
	bodyHeight = max(bodyHeight, 1)

	var body string
	if o.session.Mode() == assistant.ModeImageEdit {
		body = o.renderEditor(cw, bodyHeight)
	} else {
		body = o.renderChat(cw, bodyHeight)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)

	parts := []string{header, body}
	if toast != "" {
		parts = append(parts, toast)
	}
	parts = append(parts, input)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(strings.Join(parts, "\n")))
}

func (o *OverlayScreen) spinner() string {
	return spinnerFrames[o.frame%len(spinnerFrames)]
}

func (o *OverlayScreen) renderModes() string {
	chat := theme.Chip.Render("TEACHER CHAT")
	editor := theme.Chip.Render("✎ MAGIC EDITOR")
	if o.session.Mode() == assistant.ModeChat {
		chat = theme.ChipActive.Render("TEACHER CHAT")
	} else {
		editor = lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.Secondary).
			Bold(true).
			Padding(0, 1).
			Render("✎ MAGIC EDITOR")
	}
	return chat + " " + editor + "\n"
}

func (o *OverlayScreen) renderChat(cw, height int) string {
	msgs := o.session.Transcript().Messages()
	selected := o.selectedID()
	bubbleWidth := cw * 3 / 4

	var blocks []string
	for _, m := range msgs {
		blocks = append(blocks, o.renderMessage(m, m.ID == selected, bubbleWidth, cw))
	}
	if o.session.Sending() {
		blocks = append(blocks, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(o.spinner()+" AI Coach is thinking..."))
	}

	return tail(strings.Join(blocks, "\n"), height)
}

func (o *OverlayScreen) renderMessage(m assistant.Message, selected bool, bubbleWidth, cw int) string {
	if m.Role == assistant.RoleUser {
		bubble := theme.UserBubble.MaxWidth(bubbleWidth).Render(
			lipgloss.NewStyle().Width(min(lipgloss.Width(m.Text), bubbleWidth-4)).Render(m.Text))
		return lipgloss.PlaceHorizontal(cw, lipgloss.Right, bubble)
	}

	style := theme.CoachBubble
	if selected {
		style = style.BorderForeground(theme.Accent)
	}
	content := lipgloss.NewStyle().Width(min(lipgloss.Width(m.Text), bubbleWidth-4)).Render(m.Text)

	switch {
	case m.Image != nil:
		content += "\n\n" + o.renderIllustration(m)
	case o.session.Transcript().Status(m.ID).GeneratingImage:
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render(o.spinner()+" Drawing on the board...")
	case selected && strings.TrimSpace(m.Text) != "":
		content += "\n\n" + theme.Hint.Render("✨ Visualize Concept (Ctrl+V)")
	}
	return style.Render(content)
}

func (o *OverlayScreen) renderIllustration(m assistant.Message) string {
	label := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("🖼 Illustration ready") +
		" " + theme.Subtitle.Render(imageSize(m.Image))
	if path, ok := o.imagePaths[m.ID]; ok {
		label += "\n" + theme.Hint.Render(path+"  (Ctrl+O to open)")
	}
	return label
}

func (o *OverlayScreen) renderEditor(cw, height int) string {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Align(lipgloss.Center).
		Padding(1, 2)

	var content string
	switch o.session.ImageState() {
	case assistant.NoImage:
		content = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("📷 Upload Classroom Photo") + "\n" +
			theme.Subtitle.Render("We will use AI to edit it for you.") + "\n\n" +
			theme.Hint.Render("Type the path to a photo below and press Enter.")

	case assistant.EditPending:
		content = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(o.spinner() + " Magic in progress...")

	default:
		content = o.renderPhoto()
		if o.session.ImageState() == assistant.ImageSelected {
			content += "\n\n" + o.renderSuggestions()
		}
	}

	return tail(panel.Render(content), height)
}

func (o *OverlayScreen) renderPhoto() string {
	img := o.session.DisplayedImage()
	which := "Original"
	path := o.photoPath
	if !o.session.ShowingOriginal() {
		which = "Edited"
		path = o.editedPath
	}

	out := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("🖼 "+which) +
		" " + theme.Subtitle.Render(imageSize(img))
	if path != "" {
		out += "\n" + theme.Hint.Render(filepath.Base(path)+"  (Ctrl+O to open)")
	}
	if o.session.ImageState() == assistant.Edited {
		other := "Show Original"
		if o.session.ShowingOriginal() {
			other = "Show Edited"
		}
		out += "\n\n" + theme.Chip.Render("Ctrl+T "+other)
	}
	return out
}

func (o *OverlayScreen) renderSuggestions() string {
	chips := make([]string, len(EditSuggestions))
	for i, s := range EditSuggestions {
		if i == o.suggestion {
			chips[i] = theme.ChipActive.Render(s)
		} else {
			chips[i] = theme.Chip.Render(s)
		}
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("What should I change?") +
		"\n" + strings.Join(chips, " ")
}

func (o *OverlayScreen) renderInput(cw int) string {
	var mic string
	switch {
	case o.session.Mode() != assistant.ModeChat:
		mic = ""
	case o.capture.Listening():
		mic = lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Error).Bold(true).Render(" ● REC ") + " "
	default:
		mic = lipgloss.NewStyle().Foreground(theme.Info).Render("🎤") + " "
	}

	send := theme.ButtonInactive.Render("Send")
	if o.session.Sending() || o.session.ImageState() == assistant.EditPending {
		send = theme.ButtonInactive.Render(o.spinner())
	} else if o.input.TrimmedValue() != "" {
		send = theme.ButtonActive.Render("Send")
	}

	boxWidth := max(cw-lipgloss.Width(mic)-lipgloss.Width(send)-1, 10)
	box := theme.FocusedCard.Width(boxWidth).Render(o.input.View())

	return lipgloss.JoinHorizontal(lipgloss.Center, mic, box, " ", send)
}

// tail keeps the last height lines of s.
func tail(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[len(lines)-height:], "\n")
}

func imageSize(img *llm.Image) string {
	if img == nil {
		return ""
	}
	return fmt.Sprintf("(%s, %d KB)", img.MIMEType, (len(img.Data)+1023)/1024)
}
