package domain

import (
	"encoding/json"
	"fmt"
)

type pendingEnvelope struct {
	Kind       ModeKind     `json:"kind"`
	Candidates []Target     `json:"candidates,omitempty"`
	Target     *Target      `json:"target,omitempty"`
	Entries    []BatchEntry `json:"entries,omitempty"`
}

// EncodePending serializes a pending mode for storage.
func EncodePending(m PendingMode) (string, error) {
	if m == nil {
		m = Idle{}
	}
	env := pendingEnvelope{Kind: m.Kind()}
	switch v := m.(type) {
	case SelectingEditTarget:
		env.Candidates = v.Candidates
	case SelectingRemoveTarget:
		env.Candidates = v.Candidates
	case EditingContact:
		env.Target = &v.Target
	case ConfirmingRemove:
		env.Target = &v.Target
	case RemovingBatch:
		env.Entries = v.Entries
	}
	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encoding pending mode: %w", err)
	}
	return string(data), nil
}

// DecodePending parses the output of EncodePending. An empty string is Idle.
func DecodePending(s string) (PendingMode, error) {
	if s == "" {
		return Idle{}, nil
	}
	var env pendingEnvelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return nil, fmt.Errorf("decoding pending mode: %w", err)
	}
	switch env.Kind {
	case ModeIdle, "":
		return Idle{}, nil
	case ModeSelectingEditTarget:
		return SelectingEditTarget{Candidates: env.Candidates}, nil
	case ModeSelectingRemoveTarget:
		return SelectingRemoveTarget{Candidates: env.Candidates}, nil
	case ModeAwaitingRemoveName:
		return AwaitingRemoveName{}, nil
	case ModeRemovingBatch:
		return RemovingBatch{Entries: env.Entries}, nil
	case ModeAwaitingWipeConfirmation:
		return AwaitingWipeConfirmation{}, nil
	case ModeEditingContact, ModeConfirmingRemove:
		if env.Target == nil {
			return nil, fmt.Errorf("decoding pending mode %s: missing target", env.Kind)
		}
		if env.Kind == ModeEditingContact {
			return EditingContact{Target: *env.Target}, nil
		}
		return ConfirmingRemove{Target: *env.Target}, nil
	}
	return nil, fmt.Errorf("decoding pending mode: unknown kind %q", env.Kind)
}
