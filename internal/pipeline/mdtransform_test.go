package pipeline

import "testing"

func TestCommonMarkPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "unix line endings unchanged",
			input:    "a\nb\n",
			expected: "a\nb\n",
		},
		{
			name:     "windows line endings",
			input:    "a\r\nb\r\n",
			expected: "a\nb\n",
		},
		{
			name:     "old mac line endings",
			input:    "a\rb\r",
			expected: "a\nb\n",
		},
		{
			name:     "mixed line endings",
			input:    "a\r\nb\rc\n",
			expected: "a\nb\nc\n",
		},
		{
			name:     "leading BOM stripped",
			input:    "\uFEFF# Title\n",
			expected: "# Title\n",
		},
		{
			name:     "inner BOM kept",
			input:    "a\uFEFFb",
			expected: "a\uFEFFb",
		},
	}

	p := &CommonMarkPreprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(tt.input); got != tt.expected {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
