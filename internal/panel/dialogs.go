package panel

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

// Dialogs are the native pop-ups the panel opens.
type Dialogs interface {
	// PickColor returns ok=false when the user dismisses the picker.
	PickColor(title string, current crosshair.RGB) (rgb crosshair.RGB, ok bool, err error)
	Confirm(question string) bool
	Info(msg string)
	Error(msg string)
}

const dialogTitle = config.WindowTitle + " " + config.Version

// Zenity shows dialogs through the platform's native toolkit.
type Zenity struct{}

func (Zenity) PickColor(title string, current crosshair.RGB) (crosshair.RGB, bool, error) {
	c, err := zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(current.RGBA()),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return current, false, nil
		}
		return current, false, err
	}
	return crosshair.FromColor(c), true, nil
}

func (Zenity) Confirm(question string) bool {
	err := zenity.Question(question,
		zenity.Title(dialogTitle),
		zenity.OKLabel("Yes"),
		zenity.CancelLabel("No"),
		zenity.DefaultCancel(),
	)
	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		log.Printf("panel: question dialog: %v", err)
	}
	return err == nil
}

func (Zenity) Info(msg string) {
	if err := zenity.Info(msg, zenity.Title(dialogTitle), zenity.InfoIcon); err != nil && !errors.Is(err, zenity.ErrCanceled) {
		log.Printf("panel: info dialog: %v", err)
	}
}

func (Zenity) Error(msg string) {
	if err := zenity.Error(msg, zenity.Title(dialogTitle), zenity.ErrorIcon); err != nil && !errors.Is(err, zenity.ErrCanceled) {
		log.Printf("panel: error dialog: %v", err)
	}
}
