package models

import (
	"time"

	"github.com/google/uuid"
)

// DaemonInfo represents the running daemon's identity.
// This corresponds to ~/.frostbar/daemon.yaml.
type DaemonInfo struct {
	Version    int       `yaml:"version"`
	InstanceID string    `yaml:"instance_id"`
	PID        int       `yaml:"pid"`
	StartedAt  time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates a new daemon info with current values.
func NewDaemonInfo(pid int) *DaemonInfo {
	return &DaemonInfo{
		Version:    1,
		InstanceID: uuid.NewString(),
		PID:        pid,
		StartedAt:  time.Now().UTC(),
	}
}
