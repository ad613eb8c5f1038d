package reschedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"planboard/bizerror"

	"github.com/fundwit/go-commons/types"
)

type PayloadKind string

const (
	PayloadExistingSlot PayloadKind = "existing-slot"
	PayloadPaletteField PayloadKind = "palette-field"
)

// DragPayload is the tagged payload carried by the UI drag event as a
// string field. It is parsed and validated at the drop boundary; a
// malformed payload is rejected before any mutation is dispatched.
type DragPayload struct {
	Kind PayloadKind `json:"kind"`

	// existing-slot
	TaskID   types.ID `json:"taskId,omitempty"`
	Duration int      `json:"duration,omitempty"`

	// palette-field
	Config *PaletteConfig `json:"config,omitempty"`
}

// PaletteConfig describes a task dragged in from the external palette.
type PaletteConfig struct {
	TaskID   types.ID `json:"taskId"`
	Duration int      `json:"duration"`
}

func ParseDragPayload(raw string) (*DragPayload, error) {
	if raw == "" {
		return nil, &bizerror.ErrBadParam{Cause: errors.New("empty drag payload")}
	}
	payload := DragPayload{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}

	switch payload.Kind {
	case PayloadExistingSlot:
		if payload.TaskID == 0 {
			return nil, &bizerror.ErrBadParam{Cause: errors.New("existing-slot payload without taskId")}
		}
		if payload.Duration < 1 {
			return nil, &bizerror.ErrBadParam{Cause: errors.New("existing-slot payload without duration")}
		}
	case PayloadPaletteField:
		if payload.Config == nil || payload.Config.TaskID == 0 {
			return nil, &bizerror.ErrBadParam{Cause: errors.New("palette-field payload without task config")}
		}
		if payload.Config.Duration < 1 {
			payload.Config.Duration = 1
		}
	default:
		return nil, &bizerror.ErrBadParam{Cause: fmt.Errorf("unknown drag payload kind %q", payload.Kind)}
	}
	return &payload, nil
}
