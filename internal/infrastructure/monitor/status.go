package monitor

import "time"

type Status struct {
	Cosmos    bool      `json:"cosmos"`
	LastCheck time.Time `json:"last_check"`
}
