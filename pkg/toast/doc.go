// Package toast provides transient overlay notifications for Bubble Tea
// programs.
//
// A toast is bound to a single piece of host state, either a boolean flag or
// an optional item. While the state holds a value the toast is drawn over the
// host's frame; when it is dismissed the state is cleared. Auto-hide timers,
// tap and backdrop dismissal, drag-to-dismiss and the enter/exit animation
// are handled by the component.
//
// # Quick Start
//
//	type app struct {
//	    slot  *toast.Slot[toast.Message]
//	    toast *toast.Model[toast.Message]
//	}
//
//	func newApp() app {
//	    slot := toast.NewSlot[toast.Message]()
//	    opts := toast.NewOptions(
//	        toast.WithHideAfter(3*time.Second),
//	        toast.WithAlignment(toast.AlignBottomTrailing),
//	    )
//	    return app{slot: slot, toast: toast.Attach(slot, opts, nil, toast.MessageView(40))}
//	}
//
//	// In Update():
//	case saveDoneMsg:
//	    a.slot.Show(toast.SuccessMessage("Saved"))
//	...
//	cmd := a.toast.Update(msg)
//
//	// In View():
//	return a.toast.View(body, a.width, a.height)
//
// Every message must pass through Update: it is where presence changes are
// observed and timers are armed. Repeated observations of an unchanged
// presence are ignored, so a toast arms its timer once per appearance.
//
// # Boolean mode
//
//	m := toast.AttachBool(&a.saved, opts, nil, func() string { return "Saved" })
//
// # Dismissal
//
//   - Options.HideAfter - dismiss after a delay
//   - tap on the content - unless WithDismissOnTap(false)
//   - tap on the backdrop - when WithBackdrop is set
//   - drag toward the anchored edge - slide, scale and fade transitions
//   - the dismiss key (esc by default)
//   - Model.Dismiss or DismissCmd
//
// Mouse input requires tea.WithMouseCellMotion or tea.WithMouseAllMotion.
package toast
