package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/lsobral/solid/pkg/domain"
)

func marshalProgress(progress *domain.Progress) ([]byte, error) {
	raw, err := json.Marshal(progress)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal progress: %w", err)
	}
	return raw, nil
}

func unmarshalProgress(raw []byte) (*domain.Progress, error) {
	var progress domain.Progress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	return &progress, nil
}
