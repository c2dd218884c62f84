// Package ffmpeg builds command lines for and invokes the executable under
// test and the optional host tools.
package ffmpeg

// SampleArgs returns host-ffmpeg arguments that synthesize a short test clip
// with one video and one audio stream.
func SampleArgs(outputPath string) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error", "-y",
		"-f", "lavfi", "-i", "testsrc2=duration=2:size=640x360:rate=30",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=2",
		"-c:v", "libx264", "-c:a", "aac",
		"-shortest",
		outputPath,
	}
}

// TranscodeArgs returns arguments for transcoding the sample clip with the
// given video encoder.
func TranscodeArgs(inputPath, outputPath, videoEncoder string) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error", "-y",
		"-i", inputPath,
		"-c:v", videoEncoder,
		"-c:a", "aac",
		outputPath,
	}
}
