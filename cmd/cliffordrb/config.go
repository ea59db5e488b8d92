package main

import (
	"encoding/json"
	"os"
)

// Config for cliffordrb
type Config struct {
	TableDir    string `json:"tables"`
	Parallelism int    `json:"parallelism"`
	Log         string `json:"log"`
	Quiet       bool   `json:"quiet"`

	Qubits    int   `json:"qubits"`
	MinQubits int   `json:"minqubits"`
	MaxQubits int   `json:"maxqubits"`
	Count     int   `json:"count"`
	Seed      int64 `json:"seed"`
	Length    int   `json:"length"`
	OnTheFly  bool  `json:"onthefly"`
}

func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path) // For read access.
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}
