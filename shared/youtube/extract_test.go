package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare ID",
			input: "dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "bare ID with surrounding whitespace",
			input: "  dQw4w9WgXcQ\n",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "short link",
			input: "https://youtu.be/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "short link with query string",
			input: "https://youtu.be/dQw4w9WgXcQ?si=abc123",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "watch URL",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "watch URL with extra params",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "watch URL without scheme",
			input: "youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "search keyword",
			input: "how to grow a channel",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			name:  "watch URL without v param",
			input: "https://www.youtube.com/watch?list=PL123",
			want:  "",
		},
		{
			name:  "short link with empty path",
			input: "https://youtu.be/",
			want:  "",
		},
		{
			name:  "ten character string is not an ID",
			input: "abcdefghij",
			want:  "",
		},
		{
			name:  "twelve character string is not an ID",
			input: "abcdefghijkl",
			want:  "",
		},
		{
			name:  "malformed URL does not panic",
			input: "https://youtube.com/%%%watch?v=",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVideoID(tt.input); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
