package util

import "testing"

func TestFormatDurationFromSecs(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3661, "01:01:01"},
		{7325, "02:02:05"},
	}

	for _, tt := range tests {
		if got := FormatDurationFromSecs(tt.secs); got != tt.want {
			t.Errorf("FormatDurationFromSecs(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single line", "ffmpeg version 7.1", "ffmpeg version 7.1"},
		{"multi line", "ffmpeg version 7.1\nbuilt with gcc\n", "ffmpeg version 7.1"},
		{"trailing carriage return", "ffmpeg version 7.1\r\nbuilt with gcc", "ffmpeg version 7.1"},
		{"leading whitespace", "  version\nrest", "version"},
		{"empty", "", ""},
		{"only newline", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstLine(tt.input); got != tt.want {
				t.Errorf("FirstLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"version", "version"},
		{"codec listing", "codec_listing"},
		{"nvenc transcode", "nvenc_transcode"},
		{"filter scale_cuda", "filter_scale_cuda"},
		{"H264 NVENC", "h264_nvenc"},
		{"a/b:c", "a_b_c"},
	}

	for _, tt := range tests {
		if got := SlugName(tt.input); got != tt.want {
			t.Errorf("SlugName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
