package pipeline

import "testing"

func TestHighlightPreWrapper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		class     string
		code      bool
		styleAttr string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "class mode with code",
			class:     "highlight",
			code:      true,
			styleAttr: ` class="chroma"`,
			wantStart: `<pre class="highlight chroma"><code>`,
			wantEnd:   "</code></pre>",
		},
		{
			name:      "inline style mode",
			class:     "highlight",
			styleAttr: ` style="color:#fff"`,
			wantStart: `<pre class="highlight" style="color:#fff">`,
			wantEnd:   "</pre>",
		},
		{
			name:      "empty class falls back to default",
			code:      true,
			styleAttr: ` class="chroma"`,
			wantStart: `<pre class="highlight chroma"><code>`,
			wantEnd:   "</code></pre>",
		},
		{
			name:      "class is escaped",
			class:     `x"y`,
			styleAttr: "",
			wantStart: `<pre class="x&#34;y">`,
			wantEnd:   "</pre>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := NewHighlightPreWrapper(tt.class)
			if got := w.Start(tt.code, tt.styleAttr); got != tt.wantStart {
				t.Errorf("Start() = %q, want %q", got, tt.wantStart)
			}
			if got := w.End(tt.code); got != tt.wantEnd {
				t.Errorf("End() = %q, want %q", got, tt.wantEnd)
			}
		})
	}
}
