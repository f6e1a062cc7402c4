package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/toast/internal/config"
	"github.com/marcus/toast/pkg/toast"
	"github.com/spf13/pflag"
)

func TestEnumFlag(t *testing.T) {
	allowed := []string{"slide", "scale", "skew", "fade"}

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr string
	}{
		{name: "exact", in: "fade", want: "fade"},
		{name: "case and space", in: " Scale ", want: "scale"},
		{name: "suggests close match", in: "sld", wantErr: `did you mean "slide"`},
		{name: "lists values", in: "zoom", wantErr: "want one of slide, scale, skew, fade"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v string
			f := newEnumFlag(&v, allowed)
			err := f.Set(tt.in)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Set(%q) error = %v, want %q", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q) error = %v", tt.in, err)
			}
			if f.String() != tt.want {
				t.Errorf("String() = %q, want %q", f.String(), tt.want)
			}
		})
	}
}

func TestClosest(t *testing.T) {
	names := toast.AlignmentNames()
	tests := []struct {
		in   string
		want string
	}{
		{"btrail", "bottom-trailing"},
		{"toplead", "top-leading"},
		{"", ""},
		{"xyz", ""},
	}
	for _, tt := range tests {
		if got := closest(tt.in, names); got != tt.want {
			t.Errorf("closest(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug written without --debug: %q", buf.String())
	}

	newLogger(&buf, true).Debug("shown", "id", 7)
	if !strings.Contains(buf.String(), "msg=shown") || !strings.Contains(buf.String(), "id=7") {
		t.Errorf("unexpected log output: %q", buf.String())
	}
	if !newLogger(&buf, true).Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}
}

func TestApplyShowFlags(t *testing.T) {
	cmd := showCmd
	t.Cleanup(func() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})

	if err := cmd.Flags().Parse([]string{"--transition", "skew", "--hide-after", "1s", "--no-tap-dismiss"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cfg := &config.Config{Transition: "slide", Alignment: "top", HideAfter: 3 * time.Second, DismissOnTap: true, Margin: 4}
	applyShowFlags(cmd, cfg)

	if cfg.Transition != "skew" {
		t.Errorf("Transition = %q, want skew", cfg.Transition)
	}
	if cfg.HideAfter != time.Second {
		t.Errorf("HideAfter = %v, want 1s", cfg.HideAfter)
	}
	if cfg.DismissOnTap {
		t.Error("DismissOnTap should be false")
	}
	if cfg.Alignment != "top" || cfg.Margin != 4 {
		t.Errorf("unset flags changed config: %+v", cfg)
	}
}

func TestShowModelQuitsAfterDismiss(t *testing.T) {
	opts := toast.NewOptions(toast.WithAnimation(toast.Animation{}))
	m := newShowModel(toast.InfoMessage("hello"), opts, 30)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(m.View(), "hello") {
		t.Fatalf("view missing message:\n%s", m.View())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command after dismiss")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("model should quit once the toast is gone")
	}
	if m.toast.LastReason() != toast.ReasonKey {
		t.Errorf("LastReason = %v, want key", m.toast.LastReason())
	}
}

func TestShowModelQuitKey(t *testing.T) {
	m := newShowModel(toast.InfoMessage("hello"), toast.NewOptions(toast.WithHideAfter(time.Second)), 30)
	m.Init()
	if !m.toast.Controller().Armed() {
		t.Fatal("expected an armed timer")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if m.toast.Controller().Armed() {
		t.Error("closing should release the timer")
	}
}

func TestDurationValue(t *testing.T) {
	d := 3 * time.Second
	v := newDurationValue(&d)
	if v.text != "3s" {
		t.Errorf("text = %q, want 3s", v.text)
	}
	if err := v.validate("250ms"); err != nil || d != 250*time.Millisecond {
		t.Errorf("validate(250ms) = %v, d = %v", err, d)
	}
	for _, bad := range []string{"soon", "-1s"} {
		if err := v.validate(bad); err == nil {
			t.Errorf("validate(%q) should fail", bad)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("") })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := out.String(); got != "toast 1.2.3\n" {
		t.Errorf("output = %q, want %q", got, "toast 1.2.3\n")
	}
}
