package source

import (
	"fmt"
	"math"
	"strconv"

	vidio "github.com/AlexEidt/Vidio"
)

// Info describes a source video as reported by ffprobe.
type Info struct {
	Path     string
	Width    int
	Height   int
	FPS      float64
	Frames   int
	Duration float64 // Seconds
	Codec    string
}

// Probe opens the video at path and reads its stream metadata.
// ffmpeg and ffprobe must be on PATH.
func Probe(path string) (Info, error) {
	video, err := vidio.NewVideo(path)
	if err != nil {
		return Info{}, fmt.Errorf("unable to open source video %s: %w", path, err)
	}
	defer video.Close()

	return Info{
		Path:     path,
		Width:    video.Width(),
		Height:   video.Height(),
		FPS:      video.FPS(),
		Frames:   video.Frames(),
		Duration: video.Duration(),
		Codec:    video.Codec(),
	}, nil
}

// FrameRateOverride renders the native frame rate as an fps override,
// rounded to the nearest whole frame. Range checks are left to the resolver.
func (i Info) FrameRateOverride() string {
	return strconv.Itoa(int(math.Round(i.FPS)))
}
