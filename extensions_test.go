package md2html

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	first := DefaultExtensions()
	first[0] = "mutated"
	if DefaultExtensions()[0] != ExtMeta {
		t.Error("DefaultExtensions() should return a fresh slice")
	}

	for _, name := range DefaultExtensions() {
		if _, ok := registry[name]; !ok {
			t.Errorf("default extension %q is not registered", name)
		}
	}
}

func TestDefaultExtensionConfigs_Fresh(t *testing.T) {
	t.Parallel()

	cfg := DefaultExtensionConfigs()
	cfg[ExtHighlight]["style"] = "mutated"
	delete(cfg, ExtTOC)

	again := DefaultExtensionConfigs()
	if again[ExtHighlight]["style"] != "onedark" {
		t.Error("DefaultExtensionConfigs() shares maps between calls")
	}
	if _, ok := again[ExtTOC]; !ok {
		t.Error("DefaultExtensionConfigs() shares the outer map between calls")
	}
}

func TestDefaultExtensionConfigs_KeysAreAccepted(t *testing.T) {
	t.Parallel()

	for name, opts := range DefaultExtensionConfigs() {
		spec, ok := registry[name]
		if !ok {
			t.Errorf("default config for unregistered extension %q", name)
			continue
		}
		for key := range opts {
			if !spec.accepts(key) {
				t.Errorf("%s default key %q is not accepted", name, key)
			}
		}
	}
}

func TestAvailableExtensions(t *testing.T) {
	t.Parallel()

	got := AvailableExtensions()
	if !slices.IsSorted(got) {
		t.Errorf("AvailableExtensions() not sorted: %v", got)
	}
	for _, name := range []string{ExtMeta, ExtMath, ExtEmoji, ExtTypographer} {
		if !slices.Contains(got, name) {
			t.Errorf("AvailableExtensions() missing %q", name)
		}
	}
}

func TestResolveExtensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		additions []string
		removals  []string
		want      []string
		wantErr   error
	}{
		{
			name: "defaults",
			want: DefaultExtensions(),
		},
		{
			name:      "additions keep order and drop duplicates",
			additions: []string{ExtTypographer, ExtMeta, ExtTaskList, ExtTypographer},
			want:      append(DefaultExtensions(), ExtTypographer, ExtTaskList),
		},
		{
			name:      "removals apply to defaults and additions",
			additions: []string{ExtEmoji},
			removals:  []string{ExtMermaid, ExtMath, ExtEmoji},
			want:      []string{ExtMeta, ExtTables, ExtFootnotes, ExtFencedCode, ExtHighlight, ExtTOC, ExtCaptions},
		},
		{
			name:      "unknown addition",
			additions: []string{"abbr"},
			wantErr:   ErrUnknownExtension,
		},
		{
			name:     "unknown removal",
			removals: []string{"abbr"},
			wantErr:  ErrUnknownExtension,
		},
		{
			name:     "fenced code cannot be removed",
			removals: []string{ExtFencedCode},
			wantErr:  ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveExtensions(tt.additions, tt.removals)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("resolveExtensions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeExtensionConfigs(t *testing.T) {
	t.Parallel()

	defaults := DefaultExtensionConfigs()
	overrides := ExtensionConfig{
		ExtHighlight: {"style": "github"},
		ExtEmoji:     nil,
	}

	merged, err := mergeExtensionConfigs(defaults, overrides)
	if err != nil {
		t.Fatalf("mergeExtensionConfigs() error: %v", err)
	}
	if merged[ExtHighlight]["style"] != "github" {
		t.Errorf("style = %v, want github", merged[ExtHighlight]["style"])
	}
	if merged[ExtHighlight]["css_class"] != "highlight" {
		t.Errorf("css_class = %v, want default kept", merged[ExtHighlight]["css_class"])
	}
	if defaults[ExtHighlight]["style"] != "onedark" {
		t.Error("defaults argument was modified")
	}
	if _, ok := merged[ExtEmoji]; !ok {
		t.Error("empty override record should still be present")
	}
}

func TestOptionReader(t *testing.T) {
	t.Parallel()

	t.Run("integer widths", func(t *testing.T) {
		t.Parallel()

		for _, v := range []any{3, int8(3), int16(3), int32(3), int64(3), uint(3), uint8(3), uint16(3), uint32(3), uint64(3), 3.0} {
			r := &optionReader{ext: "x", opts: Options{"n": v}}
			if got := r.int("n"); got != 3 || r.err != nil {
				t.Errorf("int(%T) = %d, err %v", v, got, r.err)
			}
		}
	})

	t.Run("non integral float", func(t *testing.T) {
		t.Parallel()

		r := &optionReader{ext: "x", opts: Options{"n": 2.5}}
		r.int("n")
		if !errors.Is(r.err, ErrInvalidOption) {
			t.Errorf("err = %v, want ErrInvalidOption", r.err)
		}
	})

	t.Run("first error is kept", func(t *testing.T) {
		t.Parallel()

		r := &optionReader{ext: "x", opts: Options{"a": 1, "b": "s"}}
		r.string("a")
		r.bool("b")
		if r.err == nil || !errors.Is(r.err, ErrInvalidOption) {
			t.Fatalf("err = %v, want ErrInvalidOption", r.err)
		}
		if want := "x.a must be a string"; !strings.Contains(r.err.Error(), want) {
			t.Errorf("err = %q, want it to mention %q", r.err, want)
		}
	})

	t.Run("missing keys yield zero values", func(t *testing.T) {
		t.Parallel()

		r := &optionReader{ext: "x"}
		if r.string("s") != "" || r.bool("b") || r.int("n") != 0 || r.err != nil {
			t.Error("missing keys should read as zero values without error")
		}
	})
}

func TestOptionReader_DepthRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		wantMin int
		wantMax int
		wantErr bool
	}{
		{name: "absent", value: nil, wantMin: 1, wantMax: 6},
		{name: "integer is max depth", value: 3, wantMin: 1, wantMax: 3},
		{name: "range string", value: "2-4", wantMin: 2, wantMax: 4},
		{name: "range with spaces", value: " 2 - 5 ", wantMin: 2, wantMax: 5},
		{name: "single number string", value: "2", wantMin: 1, wantMax: 2},
		{name: "zero", value: 0, wantErr: true},
		{name: "above six", value: "1-7", wantErr: true},
		{name: "reversed", value: "5-2", wantErr: true},
		{name: "garbage", value: "deep", wantErr: true},
		{name: "wrong type", value: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &optionReader{ext: ExtTOC, opts: Options{"toc_depth": tt.value}}
			gotMin, gotMax := r.depthRange("toc_depth")
			if tt.wantErr {
				if !errors.Is(r.err, ErrInvalidOption) {
					t.Errorf("err = %v, want ErrInvalidOption", r.err)
				}
				return
			}
			if r.err != nil {
				t.Fatalf("unexpected error: %v", r.err)
			}
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("depthRange(%v) = (%d, %d), want (%d, %d)", tt.value, gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestOptionReader_Permalink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   any
		want    string
		wantErr bool
	}{
		{value: nil, want: ""},
		{value: false, want: ""},
		{value: true, want: defaultPermalinkSymbol},
		{value: "#", want: "#"},
		{value: 1, wantErr: true},
	}

	for _, tt := range tests {
		r := &optionReader{ext: ExtTOC, opts: Options{"permalink": tt.value}}
		got := r.permalink("permalink")
		if tt.wantErr != (r.err != nil) {
			t.Errorf("permalink(%v) err = %v, wantErr %v", tt.value, r.err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("permalink(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
