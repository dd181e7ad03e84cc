package sound

import "time"

// Audio parameters for the alert tone: a short A4 beep like a kitchen timer.
const (
	SampleRate     = 44100
	ChannelCount   = 1
	BitDepth       = 16
	AlertFrequency = 440.0 // Hz
	AlertLength    = 500 * time.Millisecond
	AlertVolume    = 0.6 // fraction of full scale
)
