package cmd

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/marcus/toast/internal/config"
	"github.com/marcus/toast/pkg/demo"
	"github.com/marcus/toast/pkg/toast"
	"github.com/spf13/cobra"
)

var demoFlags struct {
	configure bool
	save      string
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open an interactive toast playground",
	Long: `Open a playground hosting a banner toast bound to a flag and a notice
toast bound to an optional message. Use --configure to pick options first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if demoFlags.configure {
			if err := configureForm(cfg).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("configure: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if demoFlags.save != "" {
				if err := config.Save(demoFlags.save, cfg); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved config to %s\n", demoFlags.save)
			}
		}

		opts, err := cfg.Options()
		if err != nil {
			return err
		}

		p := tea.NewProgram(demo.New(opts, cfg.Width), tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run demo: %w", err)
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().BoolVar(&demoFlags.configure, "configure", false, "choose toast options in a form before starting")
	demoCmd.Flags().StringVar(&demoFlags.save, "save", "", "with --configure, write the chosen options to this config file")
	rootCmd.AddCommand(demoCmd)
}

// durationValue adapts a time.Duration to a huh text input.
type durationValue struct {
	d    *time.Duration
	text string
}

func newDurationValue(d *time.Duration) *durationValue {
	return &durationValue{d: d, text: d.String()}
}

func (v *durationValue) validate(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("not a duration (try 3s or 500ms)")
	}
	if d < 0 {
		return fmt.Errorf("must not be negative")
	}
	*v.d = d
	return nil
}

// configureForm edits cfg in place.
func configureForm(cfg *config.Config) *huh.Form {
	hide := newDurationValue(&cfg.HideAfter)
	anim := newDurationValue(&cfg.AnimationDuration)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transition").
				Options(huh.NewOptions(toast.TransitionNames()...)...).
				Value(&cfg.Transition),
			huh.NewSelect[string]().
				Title("Alignment").
				Options(huh.NewOptions(toast.AlignmentNames()...)...).
				Value(&cfg.Alignment),
			huh.NewSelect[string]().
				Title("Curve").
				Options(huh.NewOptions("linear", "ease-in", "ease-out", "ease-in-out")...).
				Value(&cfg.Curve),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hide after").
				Description("0 keeps toasts until dismissed").
				Value(&hide.text).
				Validate(hide.validate),
			huh.NewInput().
				Title("Animation duration").
				Value(&anim.text).
				Validate(anim.validate),
			huh.NewConfirm().
				Title("Dismiss on tap?").
				Value(&cfg.DismissOnTap),
			huh.NewConfirm().
				Title("Dim the screen behind toasts?").
				Value(&cfg.Backdrop),
		),
	)
}
