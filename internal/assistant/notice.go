package assistant

import "time"

const (
	SpeechNoticeTTL    = 4 * time.Second
	VisualizeNoticeTTL = 3 * time.Second
	EditNoticeTTL      = 4 * time.Second
)

// Notice is a transient toast that disappears after TTL.
type Notice struct {
	Text string
	TTL  time.Duration
}

var (
	visualizeFailedNotice = &Notice{Text: "Could not generate image. Try again.", TTL: VisualizeNoticeTTL}
	editFailedNotice      = &Notice{Text: "Could not edit image. Please try again.", TTL: EditNoticeTTL}
)
